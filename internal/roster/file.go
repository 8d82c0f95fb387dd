package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// FileSource reads the datasets from local JSON files
type FileSource struct {
	groupsPath      string
	exhibitionsPath string
	logger          *logrus.Logger
}

// NewFileSource creates a source over the two dataset files
func NewFileSource(groupsPath, exhibitionsPath string, logger *logrus.Logger) *FileSource {
	return &FileSource{
		groupsPath:      groupsPath,
		exhibitionsPath: exhibitionsPath,
		logger:          logger,
	}
}

// LoadGroups reads the group rosters
func (s *FileSource) LoadGroups(ctx context.Context) (GroupsData, error) {
	var groups GroupsData
	if err := s.readJSON(s.groupsPath, &groups); err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	return groups, nil
}

// LoadExhibitions reads the exhibition history
func (s *FileSource) LoadExhibitions(ctx context.Context) (ExhibitionsData, error) {
	var exhibitions ExhibitionsData
	if err := s.readJSON(s.exhibitionsPath, &exhibitions); err != nil {
		return nil, fmt.Errorf("failed to get exhibitions: %w", err)
	}
	return exhibitions, nil
}

func (s *FileSource) readJSON(path string, result interface{}) error {
	s.logger.WithField("path", path).Debug("Reading roster data")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
