package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.defaults)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:1000"}, App: App{TokenSignKey: "env"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:2000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:2000", cfg.Server.HTTPAddress)
	assert.Equal(t, "env", cfg.App.TokenSignKey, "zero value must not override")
	assert.Equal(t, 5*time.Second, cfg.Workers.FeedInterval, "default kept")
}

func TestBuild_ValidationErrorReturned(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Client: Client{Mode: "kanban"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidClientConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_SitsBelowEnvAndFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "10.0.0.1:80", "grpc_address": "10.0.0.1:90"},
		"app":    map[string]any{"token_issuer": "json-issuer"},
	})

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: path,
		Server:       Server{HTTPAddress: "127.0.0.1:8081"},
	})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress, "env beats json")
	assert.Equal(t, "10.0.0.1:90", cfg.Server.GRPCAddress, "json beats defaults")
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_MissingFileIsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	_, err := b.build()
	require.Error(t, err)
}

// ── withFlags / withEnv ───────────────────────────────────────────────────────

func TestWithFlags_BadFlagIsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "not-an-address"})
	require.Error(t, b.err)
}

func TestWithEnvAndFlags_FlagsWin(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7000")
	t.Setenv("APP_TOKEN_SIGN_KEY", "from-env")

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-a", "127.0.0.1:7001"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7001", cfg.Server.HTTPAddress)
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
}

// ── client config ─────────────────────────────────────────────────────────────

func TestNewClientConfig(t *testing.T) {
	base := defaults()

	cfg, err := NewClientConfig(base)
	require.NoError(t, err)
	assert.Equal(t, ModeNotes, cfg.App.Mode)
	assert.Equal(t, "notes-cache.db", cfg.Storage.CachePath)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Workers.FeedInterval)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *StructuredConfig)
		want   error
	}{
		{name: "empty cache", mutate: func(c *StructuredConfig) { c.Storage.Cache.Path = "" }, want: ErrInvalidStorageConfigs},
		{name: "memory cache", mutate: func(c *StructuredConfig) { c.Storage.Cache.Path = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "no server", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, want: ErrInvalidAdapterConfigs},
		{name: "no feed interval", mutate: func(c *StructuredConfig) { c.Workers.FeedInterval = 0 }, want: ErrInvalidWorkerConfigs},
		{name: "bad mode", mutate: func(c *StructuredConfig) { c.Client.Mode = "" }, want: ErrInvalidClientConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)

			_, err := NewClientConfig(c)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateServer(t *testing.T) {
	c := defaults()
	assert.ErrorIs(t, c.ValidateServer(), ErrInvalidStorageConfigs)

	c.Storage.DB.DSN = "postgres://localhost/notes"
	assert.ErrorIs(t, c.ValidateServer(), ErrInvalidAppConfigs)

	c.App.TokenSignKey = "secret"
	assert.NoError(t, c.ValidateServer())

	c.Server.HTTPAddress = ""
	assert.ErrorIs(t, c.ValidateServer(), ErrInvalidServerConfigs)
}
