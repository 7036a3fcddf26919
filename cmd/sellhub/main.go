package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/sellhub/internal/buildinfo"
	"github.com/dmitrijs2005/sellhub/internal/client/cli"
	"github.com/dmitrijs2005/sellhub/internal/client/config"
	"github.com/dmitrijs2005/sellhub/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)
	logger.Debug(ctx, "configuration loaded", "api_url", cfg.APIURL, "db", cfg.DatabasePath)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
