package cmd

import (
	"fmt"
	"time"
)

// Config holds everything the process reads from its environment.
// DB settings are optional; with an empty DBHost the service runs on the
// in-memory store.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SimTickInterval time.Duration
	SimAutoStart    bool
}

// DatabaseConfigured reports whether postgres settings were provided.
func (c Config) DatabaseConfigured() bool {
	return c.DBHost != ""
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
