package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sam-maryland/hoops-sim-mcp-server/internal/config"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/logger"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/report"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/roster"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/tournament"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run parses flags, loads the roster, plays one tournament and renders the
// report to stdout. Flags override the config file and SIM_* variables.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: simulate [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}

	var (
		configFile  string
		groups      string
		exhibitions string
		url         string
		seed        int64
		tieBreak    string
		logLevel    string
		logFormat   string
	)
	fs.StringVar(&configFile, "config", "", "path to a config file (default: configs/simulator.yaml if present)")
	fs.StringVar(&groups, "groups", "", "path to groups.json")
	fs.StringVar(&exhibitions, "exhibitions", "", "path to exibitions.json")
	fs.StringVar(&url, "url", "", "base URL serving groups.json and exibitions.json")
	fs.Int64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")
	fs.Int64Var(&seed, "s", 0, "random seed (shorthand)")
	fs.StringVar(&tieBreak, "tiebreak", "", "knockout tie policy: overtime or team1")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&logFormat, "log-format", "", "log format: json or text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.Load(configFile)
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "groups":
			settings.GroupsPath = groups
		case "exhibitions":
			settings.ExhibitionsPath = exhibitions
		case "url":
			settings.DataURL = url
		case "seed", "s":
			settings.Seed = seed
		case "tiebreak":
			settings.TieBreak = tieBreak
		case "log-level":
			settings.LogLevel = logLevel
		case "log-format":
			settings.LogFormat = logFormat
		}
	})
	if err := settings.Validate(); err != nil {
		return err
	}

	log := logger.New(settings.LogLevel, settings.LogFormat, stderr)

	source := roster.NewSource(
		settings.DataURL,
		settings.GroupsPath,
		settings.ExhibitionsPath,
		settings.HTTPTimeout,
		settings.BreakerMaxFailures,
		log,
	)
	r, err := roster.Load(ctx, source, log)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}

	result, err := tournament.New(r, log).Run(ctx, tournament.Options{
		Seed:     settings.Seed,
		TieBreak: settings.TieBreakPolicy(),
	})
	if err != nil {
		return err
	}

	return report.NewRenderer(stdout).Render(result)
}
