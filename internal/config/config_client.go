package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs request bodies when the server expects it.
	HashKey string
	// Mode is ModeNotes or ModeTodo.
	Mode string
	// LogFile is where the client writes its logs.
	LogFile string
}

// ClientAdapter holds the server address used by the client.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage is the local snapshot cache.
type ClientStorage struct {
	CachePath string
}

// ClientWorkers holds the live feed polling interval.
type ClientWorkers struct {
	FeedInterval time.Duration
}

// ClientConfig is the terminal client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the structured config and maps the client fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig derives and validates a [ClientConfig] from cfg.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Mode:    cfg.Client.Mode,
			LogFile: cfg.Client.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			CachePath: cfg.Storage.Cache.Path,
		},
		Workers: ClientWorkers{FeedInterval: cfg.Workers.FeedInterval},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
