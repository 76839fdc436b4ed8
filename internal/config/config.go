// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration of the server and the client.
// Nested env names are built from envPrefix tags (caarlos0/env).
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`
	Client  Client  `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional JSON config file. Env: CONFIG, flags: -c, -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token and request-signing settings.
type App struct {
	// TokenSignKey signs and verifies JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey enables HMAC-SHA256 signing of request and response bodies
	// (HashSHA256 header). Empty disables signing.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// PasswordCost is the bcrypt cost for stored passwords.
	// Env: APP_PASSWORD_COST
	PasswordCost int `env:"PASSWORD_COST"`
}

// Storage groups the server database and the client cache.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB is the server Postgres database.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache is the client-side SQLite snapshot cache.
type Cache struct {
	// Path of the SQLite file. Created when missing.
	// Env: STORAGE_CACHE_PATH
	Path string `env:"PATH"`
}

// Server holds the listening addresses of the server process.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter is the client's view of the server.
type Adapter struct {
	// HTTPAddress is the server address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job intervals.
type Workers struct {
	// FeedInterval is how often the client polls the server for a new snapshot.
	// Env: WORKERS_FEED_INTERVAL
	FeedInterval time.Duration `env:"FEED_INTERVAL"`

	// HealthInterval is how often the server probes its database.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Client holds terminal client presentation settings.
type Client struct {
	// Mode is "notes" (cards with title, color, deadline) or "todo" (plain rows).
	// Env: CLIENT_MODE
	Mode string `env:"MODE"`

	// LogFile receives client logs. Empty means a "logs" file next to the binary.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Presentation modes of the terminal client.
const (
	ModeNotes = "notes"
	ModeTodo  = "todo"
)

// defaults returns the lowest-precedence configuration.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-note-keeper",
			TokenDuration: 24 * time.Hour,
			PasswordCost:  10,
		},
		Storage: Storage{
			Cache: Cache{Path: "notes-cache.db"},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			GRPCAddress:     "localhost:9090",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			FeedInterval:   5 * time.Second,
			HealthInterval: 15 * time.Second,
		},
		Client: Client{
			Mode: ModeNotes,
		},
	}
}

// GetStructuredConfig loads, merges and validates the configuration from
// defaults, the JSON file, environment variables and command-line flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(nil).
		withJSON().
		build()
}
