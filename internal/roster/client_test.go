package roster

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/sony/gobreaker"
)

func TestHTTPSource_LoadGroups(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse string
		serverStatus   int
		wantError      bool
		wantTeams      int
	}{
		{
			name:         "successful request",
			serverStatus: http.StatusOK,
			serverResponse: `{
				"A": [
					{"Team": "Kanada", "ISOCode": "CAN", "FIBARanking": 7},
					{"Team": "Australija", "ISOCode": "AUS", "FIBARanking": 5}
				]
			}`,
			wantError: false,
			wantTeams: 2,
		},
		{
			name:           "not found",
			serverStatus:   http.StatusNotFound,
			serverResponse: "null",
			wantError:      true,
		},
		{
			name:           "invalid json",
			serverStatus:   http.StatusOK,
			serverResponse: "{not json",
			wantError:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/"+GroupsFile {
					t.Errorf("Expected path /%s, got %s", GroupsFile, r.URL.Path)
				}
				w.WriteHeader(tt.serverStatus)
				w.Write([]byte(tt.serverResponse))
			}))
			defer server.Close()

			logger, _ := test.NewNullLogger()
			source := NewHTTPSource(server.URL+"/", time.Second, 3, logger)

			groups, err := source.LoadGroups(context.Background())

			if tt.wantError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if !tt.wantError && len(groups["A"]) != tt.wantTeams {
				t.Errorf("Expected %d teams in group A, got %d", tt.wantTeams, len(groups["A"]))
			}
		})
	}
}

func TestHTTPSource_StatusErrorIsTyped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	logger, _ := test.NewNullLogger()
	source := NewHTTPSource(server.URL, time.Second, 3, logger)

	_, err := source.LoadExhibitions(context.Background())
	if err == nil {
		t.Fatal("Expected error but got none")
	}

	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("Expected SourceError, got %T", err)
	}
	if srcErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", srcErr.StatusCode)
	}
	if srcErr.URL != server.URL+"/"+ExhibitionsFile {
		t.Errorf("Unexpected URL %s", srcErr.URL)
	}
}

func TestHTTPSource_CircuitBreakerOpens(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	logger, hook := test.NewNullLogger()
	source := NewHTTPSource(server.URL, time.Second, 2, logger)

	for i := 0; i < 2; i++ {
		if _, err := source.LoadGroups(context.Background()); err == nil {
			t.Fatal("Expected error but got none")
		}
	}

	_, err := source.LoadGroups(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Expected open circuit error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 upstream calls, got %d", calls)
	}

	stateChanged := false
	for _, e := range hook.AllEntries() {
		if e.Message == "Circuit breaker state changed" {
			stateChanged = true
		}
	}
	if !stateChanged {
		t.Error("Expected circuit breaker state change to be logged")
	}
}

func TestHTTPSource_LoadExhibitions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+ExhibitionsFile {
			t.Errorf("Expected path /%s, got %s", ExhibitionsFile, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"CAN": [{"Date": "06/07/24", "Opponent": "GER", "Result": "92-80"}]}`))
	}))
	defer server.Close()

	logger, _ := test.NewNullLogger()
	source := NewHTTPSource(server.URL, 0, 0, logger)

	exhibitions, err := source.LoadExhibitions(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(exhibitions["CAN"]) != 1 {
		t.Fatalf("Expected 1 exhibition for CAN, got %d", len(exhibitions["CAN"]))
	}
	if exhibitions["CAN"][0].Result != "92-80" {
		t.Errorf("Expected result 92-80, got %s", exhibitions["CAN"][0].Result)
	}
}
