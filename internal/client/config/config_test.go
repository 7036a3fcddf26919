package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no SELLHUB_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{EnvAPIURL, EnvDatabasePath, EnvLogLevel} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeTempJSON(t *testing.T, dir string, data map[string]any) string {
	t.Helper()
	b, err := json.Marshal(data)
	require.NoError(t, err)
	return writeFile(t, dir, "cfg.json", string(b))
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.APIURL)
	assert.Equal(t, "sellhub.db", c.DatabasePath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_NoSources(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(&Config{APIURL: DefaultAPIURL, DatabasePath: DefaultDatabasePath, LogLevel: DefaultLogLevel}, cfg))
}

func TestLoadConfig_Environment(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAPIURL, "http://api.sellhub.test")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://api.sellhub.test", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".env", "SELLHUB_API_URL=http://from-dotenv:9000\nSELLHUB_DB_PATH=/tmp/x.db\n")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv:9000", cfg.APIURL)
	assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
}

func TestLoadConfig_ProcessEnvBeatsDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".env", "SELLHUB_API_URL=http://from-dotenv:9000\n")
	t.Setenv(EnvAPIURL, "http://from-process:1")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://from-process:1", cfg.APIURL)
}

func TestLoadConfig_ExplicitEnvFileMustExist(t *testing.T) {
	isolate(t)

	_, err := LoadConfig([]string{"-env", "missing.env"})
	require.ErrorContains(t, err, "missing.env")
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvAPIURL, "http://env:1")
	t.Setenv(EnvDatabasePath, "env.db")
	path := writeTempJSON(t, dir, map[string]any{
		"api_url":   "http://json:2",
		"log_level": "warn",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-a", "http://flag:3"})
	require.NoError(t, err)

	want := &Config{APIURL: "http://flag:3", DatabasePath: "env.db", LogLevel: "warn"}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "https://api.example.com", "-d", "/var/lib/sellhub.db", "-l", "debug"},
			want: &Config{APIURL: "https://api.example.com", DatabasePath: "/var/lib/sellhub.db", LogLevel: "debug"},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "x.json", "-env", "y.env", "-a=http://h:1"},
			want: &Config{APIURL: "http://h:1", DatabasePath: DefaultDatabasePath, LogLevel: DefaultLogLevel},
		},
		{name: "relative api url", args: []string{"-a", "localhost"}, wantErr: true},
		{name: "garbage api url", args: []string{"-a", "http://[::1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, cfg))
		})
	}
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()

	t.Run("no file, no changes", func(t *testing.T) {
		cfg := &Config{APIURL: "http://keep:1"}
		require.NoError(t, parseJson(cfg, nil))
		assert.Equal(t, "http://keep:1", cfg.APIURL)
	})

	t.Run("empty fields keep previous values", func(t *testing.T) {
		path := writeTempJSON(t, dir, map[string]any{"database_path": "j.db"})
		cfg := &Config{APIURL: "http://keep:1", DatabasePath: "old.db"}
		require.NoError(t, parseJson(cfg, []string{"-config", path}))
		assert.Equal(t, "http://keep:1", cfg.APIURL)
		assert.Equal(t, "j.db", cfg.DatabasePath)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.json", `{ this is not valid json`)
		require.Error(t, parseJson(&Config{}, []string{"-c", bad}))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}))
	})
}
