// Package config handles configuration for the account server: defaults,
// then .env and ACCOUNTS_* environment variables, then an optional JSON file,
// then command-line flags. Each layer only overrides what it sets.
package config

import "time"

// Config holds runtime settings for the account server.
//
// An empty DatabaseDSN runs the server on the in-memory store, which is
// meant for development only. MailSender selects the notification
// transport: "log" writes mails to the log, "ses" sends them via Amazon SES.
type Config struct {
	EndpointAddrGRPC             string
	DatabaseDSN                  string
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	SweepInterval                time.Duration
	AppName                      string
	LogLevel                     string
	MailFrom                     string
	MailSender                   string
	MailQueueSize                int
	MailWorkers                  int
	SESRegion                    string
	SESAccessKey                 string
	SESSecretKey                 string
	SESBaseEndpoint              string
	BcryptCost                   int
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 7 * 24 * time.Hour
	c.SweepInterval = 5 * time.Minute
	c.AppName = "Accounts"
	c.LogLevel = "info"
	c.MailFrom = "noreply@localhost"
	c.MailSender = "log"
	c.MailQueueSize = 100
	c.MailWorkers = 2
	c.SESRegion = "us-east-1"
	c.BcryptCost = 10
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
