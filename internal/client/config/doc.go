// Package config loads runtime configuration for the Fruitie terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Fruitie API
//	-p string   page context: buyer, seller or home
//	-t int      request timeout (seconds)
//	-n int      chat history size
//	-l string   client log file
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "page": "buyer",
//	  "request_timeout": "30s",
//	  "max_history": 50
//	}
package config
