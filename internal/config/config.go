// Package config reads process configuration once at startup. The resulting
// struct is passed into constructors explicitly; business logic never reads
// the environment.
package config

import "os"

type Config struct {
	Network     string // mainnet, testnet or previewnet
	OperatorID  string // optional operator account for the privileged pathway
	OperatorKey string
	Environment string // development or production; gates error detail
	Port        string
	RedisAddr   string // empty disables idempotency storage and events
}

func Load() *Config {
	return &Config{
		Network:     getEnv("HEDERA_NETWORK", "mainnet"),
		OperatorID:  getEnv("HEDERA_OPERATOR_ID", ""),
		OperatorKey: getEnv("HEDERA_OPERATOR_KEY", ""),
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
	}
}

func (c *Config) Development() bool {
	return c.Environment != "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
