package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sam-maryland/hoops-sim-mcp-server/internal/tournament"
	"github.com/spf13/viper"
)

// Settings is the runtime configuration shared by the CLI and the MCP server
type Settings struct {
	GroupsPath         string        `mapstructure:"groups_path"`
	ExhibitionsPath    string        `mapstructure:"exhibitions_path"`
	DataURL            string        `mapstructure:"data_url"`
	Seed               int64         `mapstructure:"seed"`
	TieBreak           string        `mapstructure:"tiebreak"`
	LogLevel           string        `mapstructure:"log_level"`
	LogFormat          string        `mapstructure:"log_format"`
	HTTPTimeout        time.Duration `mapstructure:"http_timeout"`
	BreakerMaxFailures int           `mapstructure:"breaker_max_failures"`
}

// Load reads the settings. Defaults are applied first, then the config file,
// then SIM_* environment variables. An empty configFile searches for
// simulator.yaml in the usual config directories; a missing file is not an
// error in that case.
func Load(configFile string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("groups_path", "data/groups.json")
	v.SetDefault("exhibitions_path", "data/exibitions.json")
	v.SetDefault("data_url", "")
	v.SetDefault("seed", 0)
	v.SetDefault("tiebreak", string(tournament.TieBreakOvertime))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("breaker_max_failures", 3)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("simulator")
		v.SetConfigType("yaml")
		v.AddConfigPath("configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("SIM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks values viper cannot type-check
func (s *Settings) Validate() error {
	if _, err := tournament.ParseTieBreak(s.TieBreak); err != nil {
		return err
	}
	switch strings.ToLower(s.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log_format %q: must be json or text", s.LogFormat)
	}
	if s.DataURL == "" && (s.GroupsPath == "" || s.ExhibitionsPath == "") {
		return errors.New("groups_path and exhibitions_path are required when data_url is empty")
	}
	if s.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %s", s.HTTPTimeout)
	}
	return nil
}

// TieBreakPolicy returns the parsed knockout tie policy
func (s *Settings) TieBreakPolicy() tournament.TieBreak {
	tb, err := tournament.ParseTieBreak(s.TieBreak)
	if err != nil {
		return tournament.TieBreakOvertime
	}
	return tb
}
