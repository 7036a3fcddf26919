package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"

	"github.com/dmitrijs2005/sellhub/internal/flagx"
)

// parseFlags populates cfg from -a, -d and -l. Other flags (-c, -env) are
// filtered out beforehand so each loader only sees its own.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("sellhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "base URL of the SellHub API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-d", "-l"})); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API URL %q", cfg.APIURL)
	}
	return nil
}
