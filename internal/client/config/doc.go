// Package config loads settings for the accountctl command-line client.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Flags
//
//	-a string     address:port of the account service
//	-t duration   per-request timeout, e.g. 5s
//	-s string     path of the local state database
//
// The JSON file uses timex.Duration for the timeout, so it may be a string
// like "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "state_file": "/home/alice/.accountctl.db"
//	}
//
// Arguments that are not flags end up in Config.Args.
package config
