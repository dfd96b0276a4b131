package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
	"github.com/dmitrijs2005/gophaccounts/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "15m" style
// strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	SweepInterval                timex.Duration `json:"sweep_interval"`
	AppName                      string         `json:"app_name"`
	LogLevel                     string         `json:"log_level"`
	MailFrom                     string         `json:"mail_from"`
	MailSender                   string         `json:"mail_sender"`
	MailQueueSize                int            `json:"mail_queue_size"`
	MailWorkers                  int            `json:"mail_workers"`
	SESRegion                    string         `json:"ses_region"`
	SESAccessKey                 string         `json:"ses_access_key"`
	SESSecretKey                 string         `json:"ses_secret_key"`
	SESBaseEndpoint              string         `json:"ses_base_endpoint"`
	BcryptCost                   int            `json:"bcrypt_cost"`
}

// parseJson overlays values from the file named by -c/-config. Keys that are
// absent from the file leave the current value alone. A missing or invalid
// file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.SweepInterval, c.SweepInterval)
	setString(&config.AppName, c.AppName)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.MailFrom, c.MailFrom)
	setString(&config.MailSender, c.MailSender)
	setInt(&config.MailQueueSize, c.MailQueueSize)
	setInt(&config.MailWorkers, c.MailWorkers)
	setString(&config.SESRegion, c.SESRegion)
	setString(&config.SESAccessKey, c.SESAccessKey)
	setString(&config.SESSecretKey, c.SESSecretKey)
	setString(&config.SESBaseEndpoint, c.SESBaseEndpoint)
	setInt(&config.BcryptCost, c.BcryptCost)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
