package config

import "time"

// Config holds runtime settings for accountctl.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	StateFile          string
	// Args is the command line left after flags, e.g. ["verify", "<token>"].
	Args []string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.StateFile = "accountctl.db"
}

// LoadConfig applies defaults, then the JSON file, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
