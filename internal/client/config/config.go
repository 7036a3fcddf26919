package config

// Config holds runtime settings for the SellHub client.
//
// Fields:
//   - APIURL: base URL of the SellHub REST API.
//   - DatabasePath: SQLite file holding the persisted token, user and theme.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIURL       string
	DatabasePath string
	LogLevel     string
}

const (
	DefaultAPIURL       = "http://localhost:8080"
	DefaultDatabasePath = "sellhub.db"
	DefaultLogLevel     = "info"
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = DefaultAPIURL
	c.DatabasePath = DefaultDatabasePath
	c.LogLevel = DefaultLogLevel
}

// LoadConfig constructs a Config from args (normally os.Args[1:]): defaults,
// then environment (including a .env file), then the JSON file, then flags.
// Later sources take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
