package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestTeamsHandler_Tools(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewTeamsHandler(staticProvider(testRoster()), logger)

	listTool := handler.ListGroupsTool()
	if listTool.Name != "list_groups" {
		t.Errorf("Expected tool name 'list_groups', got '%s'", listTool.Name)
	}
	if listTool.InputSchema.Type != "object" {
		t.Errorf("Expected input schema type 'object', got '%s'", listTool.InputSchema.Type)
	}

	formTool := handler.GetTeamFormTool()
	if formTool.Name != "get_team_form" {
		t.Errorf("Expected tool name 'get_team_form', got '%s'", formTool.Name)
	}
	if formTool.Description == "" {
		t.Error("Expected tool description to be set")
	}
	checkRequiredProperty(t, formTool, "team", "string")
}

func TestTeamsHandler_HandleListGroups(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewTeamsHandler(staticProvider(testRoster()), logger)

	result, err := handler.HandleListGroups(context.Background(), map[string]interface{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("Expected successful result")
	}

	var groups []struct {
		Name  string `json:"name"`
		Teams []struct {
			Code string `json:"code"`
		} `json:"teams"`
	}
	response := decodeResponse(t, result, &groups)

	if !response.Success {
		t.Error("Expected success to be true")
	}
	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}
	if groups[2].Name != "C" || groups[2].Teams[0].Code != "USA" {
		t.Errorf("Unexpected group C: %+v", groups[2])
	}
	if !strings.Contains(response.Summary, "12 teams") {
		t.Errorf("Expected summary to count 12 teams, got '%s'", response.Summary)
	}
}

func TestTeamsHandler_HandleListGroupsProviderError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := NewTeamsHandler(failingProvider(), logger)

	result, err := handler.HandleListGroups(context.Background(), map[string]interface{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result")
	}

	errorLogged := false
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Failed to load roster" {
			errorLogged = true
		}
	}
	if !errorLogged {
		t.Error("Expected roster failure to be logged")
	}
}

func TestTeamsHandler_HandleGetTeamForm(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]interface{}
		wantError   bool
		wantIsError bool
		wantScore   float64
		wantDiff    float64
		wantGames   int
	}{
		{
			name:      "team with exhibitions",
			args:      map[string]interface{}{"team": "can"},
			wantScore: 82.5,
			wantDiff:  0,
			wantGames: 2,
		},
		{
			name:      "team without exhibitions",
			args:      map[string]interface{}{"team": "JPN"},
			wantGames: 0,
		},
		{
			name:      "missing team",
			args:      map[string]interface{}{},
			wantError: true,
		},
		{
			name:      "invalid team type",
			args:      map[string]interface{}{"team": 7},
			wantError: true,
		},
		{
			name:        "unknown team",
			args:        map[string]interface{}{"team": "XXX"},
			wantIsError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			handler := NewTeamsHandler(staticProvider(testRoster()), logger)

			result, err := handler.HandleGetTeamForm(context.Background(), tt.args)

			if tt.wantError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result.IsError != tt.wantIsError {
				t.Fatalf("Expected IsError %v, got %v", tt.wantIsError, result.IsError)
			}
			if tt.wantIsError {
				return
			}

			var data TeamFormResponse
			decodeResponse(t, result, &data)
			if data.Form.AverageScore != tt.wantScore {
				t.Errorf("Expected average score %v, got %v", tt.wantScore, data.Form.AverageScore)
			}
			if data.Form.AverageDifference != tt.wantDiff {
				t.Errorf("Expected average difference %v, got %v", tt.wantDiff, data.Form.AverageDifference)
			}
			if len(data.Exhibitions) != tt.wantGames {
				t.Errorf("Expected %d exhibitions, got %d", tt.wantGames, len(data.Exhibitions))
			}
		})
	}
}
