package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
)

var valueFlags = []string{"-a", "-t", "-s", "-c", "-config"}

// parseFlags reads -a, -t and -s and collects the remaining positional
// arguments into cfg.Args. It panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the account service")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.StateFile, "s", cfg.StateFile, "local state database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Args = flagx.Positional(os.Args[1:], valueFlags)
}
