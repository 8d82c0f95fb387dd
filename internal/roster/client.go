package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	GroupsFile      = "groups.json"
	ExhibitionsFile = "exibitions.json"

	DefaultTimeout     = 10 * time.Second
	DefaultMaxFailures = 3
)

// Source provides the raw tournament datasets
type Source interface {
	LoadGroups(ctx context.Context) (GroupsData, error)
	LoadExhibitions(ctx context.Context) (ExhibitionsData, error)
}

// HTTPSource fetches groups.json and exibitions.json from a base URL
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

// NewHTTPSource creates a remote data source. The circuit breaker opens after
// maxFailures consecutive failed requests.
func NewHTTPSource(baseURL string, timeout time.Duration, maxFailures int, logger *logrus.Logger) *HTTPSource {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxFailures <= 0 {
		maxFailures = DefaultMaxFailures
	}

	settings := gobreaker.Settings{
		Name:        "roster-source",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(maxFailures)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "circuit_breaker",
				"source":    name,
				"from":      from.String(),
				"to":        to.String(),
			}).Warn("Circuit breaker state changed")
		},
	}

	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// makeRequest performs an HTTP GET through the circuit breaker and decodes
// the JSON body into result
func (s *HTTPSource) makeRequest(ctx context.Context, file string, result interface{}) error {
	url := fmt.Sprintf("%s/%s", s.baseURL, file)

	s.logger.WithField("url", url).Debug("Fetching roster data")

	body, err := s.breaker.Execute(func() (interface{}, error) {
		return s.fetch(ctx, url)
	})
	if err != nil {
		s.logger.WithError(err).WithField("url", url).Error("Roster request failed")
		return err
	}

	if err := json.Unmarshal(body.([]byte), result); err != nil {
		s.logger.WithError(err).WithField("url", url).Error("Failed to unmarshal roster data")
		return fmt.Errorf("failed to unmarshal %s: %w", file, err)
	}

	s.logger.WithField("url", url).Debug("Roster data fetched")
	return nil
}

func (s *HTTPSource) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &SourceError{
			Type:       "http_error",
			Message:    fmt.Sprintf("request for %s failed with status %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body))),
			StatusCode: resp.StatusCode,
			URL:        url,
		}
	}
	return body, nil
}

// LoadGroups fetches the group rosters
func (s *HTTPSource) LoadGroups(ctx context.Context) (GroupsData, error) {
	var groups GroupsData
	if err := s.makeRequest(ctx, GroupsFile, &groups); err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	return groups, nil
}

// LoadExhibitions fetches the exhibition history
func (s *HTTPSource) LoadExhibitions(ctx context.Context) (ExhibitionsData, error) {
	var exhibitions ExhibitionsData
	if err := s.makeRequest(ctx, ExhibitionsFile, &exhibitions); err != nil {
		return nil, fmt.Errorf("failed to get exhibitions: %w", err)
	}
	return exhibitions, nil
}
