package main

import (
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/config"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/handlers"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/logger"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/mcp"
	"github.com/sam-maryland/hoops-sim-mcp-server/internal/roster"
	"github.com/sirupsen/logrus"
)

func main() {
	configFile := flag.String("config", "", "path to a config file (default: configs/simulator.yaml if present)")
	flag.Parse()

	settings, err := config.Load(*configFile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// stdout carries the MCP protocol, so logs go to stderr
	log := logger.New(settings.LogLevel, settings.LogFormat, os.Stderr)

	source := roster.NewSource(
		settings.DataURL,
		settings.GroupsPath,
		settings.ExhibitionsPath,
		settings.HTTPTimeout,
		settings.BreakerMaxFailures,
		log,
	)
	provider := roster.NewProvider(source, log)

	defaults := handlers.Defaults{
		Seed:     settings.Seed,
		TieBreak: settings.TieBreakPolicy(),
	}

	mcpServer := mcp.NewTournamentMCPServer(provider, defaults, log)
	if mcpServer == nil {
		log.Fatal("Failed to create MCP server")
	}

	log.Info("Starting Basketball Tournament Simulator MCP Server...")

	if err := server.ServeStdio(mcpServer); err != nil {
		log.WithError(err).Fatal("Server failed to start")
	}
}
