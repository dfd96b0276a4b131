package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "ACCOUNTS_"

// parseEnv loads a dotenv file (the -env-file flag, or ./.env when present)
// and then applies ACCOUNTS_* variables. Variables already present in the
// environment win over the file. Malformed values panic.
func parseEnv(config *Config) {
	file := flagx.EnvFile()
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	envString(&config.DatabaseDSN, "DATABASE_DSN")
	envString(&config.SecretKey, "SECRET_KEY")
	envDuration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_TTL")
	envDuration(&config.RefreshTokenValidityDuration, "REFRESH_TOKEN_TTL")
	envDuration(&config.SweepInterval, "SWEEP_INTERVAL")
	envString(&config.AppName, "APP_NAME")
	envString(&config.LogLevel, "LOG_LEVEL")
	envString(&config.MailFrom, "MAIL_FROM")
	envString(&config.MailSender, "MAIL_SENDER")
	envInt(&config.MailQueueSize, "MAIL_QUEUE_SIZE")
	envInt(&config.MailWorkers, "MAIL_WORKERS")
	envString(&config.SESRegion, "SES_REGION")
	envString(&config.SESAccessKey, "SES_ACCESS_KEY")
	envString(&config.SESSecretKey, "SES_SECRET_KEY")
	envString(&config.SESBaseEndpoint, "SES_BASE_ENDPOINT")
	envInt(&config.BcryptCost, "BCRYPT_COST")
}

func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
		*dst = v
	}
}

func envDuration(dst *time.Duration, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func envInt(dst *int, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}
