// Package config handles configuration loading for inkwell.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${INKWELL_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "localhost:8080"
//
// Database:
//
//	database:
//	  path: "~/.local/share/inkwell/inkwell.db"
//
// Authentication:
//
//	auth:
//	  jwt_secret: "${INKWELL_JWT_SECRET}"  # required
//	  token_ttl: "1h"                      # access token lifetime
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Usage
//
//	cfg, err := config.Load("/etc/inkwell/inkwell.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
