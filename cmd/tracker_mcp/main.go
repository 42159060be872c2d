// Package main runs the tracker MCP server over stdio, for local assistants.
// The same server is mounted on the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/barbelltracker/internal/config"
	"github.com/2beens/barbelltracker/internal/db"
	"github.com/2beens/barbelltracker/internal/progression"
	"github.com/2beens/barbelltracker/internal/tracker"
	trackermcp "github.com/2beens/barbelltracker/internal/tracker/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	engine, err := progression.NewEngine(cfg.Program)
	if err != nil {
		log.Fatalf("progression engine: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         os.Getenv("TRACKER_DB_USER"),
		DBPassword:     os.Getenv("TRACKER_DB_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	// stdout belongs to the protocol, no cache and no metrics here
	service := tracker.NewService(tracker.NewRepo(dbPool), engine, nil, 0, nil)
	server := trackermcp.NewServer(dbPool, service)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
