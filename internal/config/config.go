package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"stickynotes/internal/pkg/jwt"
)

type Config struct {
	DatabaseURL string
	SecretKey   string
	TokenTTL    time.Duration

	HTTPAddr    string
	CORSOrigins []string

	MaxOpenConns int
	MaxIdleConns int

	NotePurgeAfter time.Duration
}

func Load() Config {
	return Config{
		DatabaseURL:    getenv("DATABASE_URL", ""),
		SecretKey:      getenv("SECRET_KEY", ""),
		TokenTTL:       getenvDuration("TOKEN_TTL", jwt.DefaultTTL),
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		CORSOrigins:    getenvList("CORS_ORIGINS"),
		MaxOpenConns:   getenvInt("DB_MAX_OPEN", 20),
		MaxIdleConns:   getenvInt("DB_MAX_IDLE", 10),
		NotePurgeAfter: getenvDuration("NOTE_PURGE_AFTER", 720*time.Hour),
	}
}

func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	return nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getenvList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
