package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dmitrijs2005/sellhub/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvAPIURL       = "SELLHUB_API_URL"
	EnvDatabasePath = "SELLHUB_DB_PATH"
	EnvLogLevel     = "SELLHUB_LOG_LEVEL"

	defaultEnvFile = ".env"
)

// parseEnv loads the dotenv file into the process environment and copies
// the SELLHUB_* variables into cfg. A missing default .env is not an error;
// a missing file named with -env is.
func parseEnv(cfg *Config, args []string) error {
	path := flagx.EnvFile(args)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDatabasePath)); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	return nil
}
