// Package config loads runtime configuration for the SellHub client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: SELLHUB_API_URL, SELLHUB_DB_PATH, SELLHUB_LOG_LEVEL. A
//     dotenv file is loaded first (".env" in the working directory, or the
//     path given with -env); variables already set in the process win.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the SellHub API
//	-d string   path of the local SQLite database
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:8080",
//	  "database_path": "sellhub.db",
//	  "log_level": "info"
//	}
//
// Empty JSON fields leave the previous value in place.
package config
