package roster

import (
	"context"
	"sync"
	"time"

	"github.com/sam-maryland/hoops-sim-mcp-server/internal/tournament"
	"github.com/sirupsen/logrus"
)

// Provider loads the roster from a source on first use and caches it. A failed
// load is not cached, so the next call retries.
type Provider struct {
	src    Source
	logger *logrus.Logger

	mu     sync.Mutex
	roster *tournament.Roster
}

// NewProvider creates a caching roster provider
func NewProvider(src Source, logger *logrus.Logger) *Provider {
	return &Provider{src: src, logger: logger}
}

// Roster returns the cached roster, loading it if needed
func (p *Provider) Roster(ctx context.Context) (*tournament.Roster, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.roster != nil {
		return p.roster, nil
	}

	roster, err := Load(ctx, p.src, p.logger)
	if err != nil {
		return nil, err
	}
	p.roster = roster
	return roster, nil
}

// Reset drops the cached roster
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.roster = nil
}

// NewSource picks the HTTP source when dataURL is set and the file source
// otherwise
func NewSource(dataURL, groupsPath, exhibitionsPath string, timeout time.Duration, maxFailures int, logger *logrus.Logger) Source {
	if dataURL != "" {
		logger.WithField("url", dataURL).Info("Using remote roster data")
		return NewHTTPSource(dataURL, timeout, maxFailures, logger)
	}
	logger.WithFields(logrus.Fields{
		"groups":      groupsPath,
		"exhibitions": exhibitionsPath,
	}).Info("Using local roster data")
	return NewFileSource(groupsPath, exhibitionsPath, logger)
}
