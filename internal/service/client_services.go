package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	Gateway     MutationGateway
	Feed        LiveFeed
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	feed := NewLiveFeed(serverAdapter, storages.ItemRepository, cfg.FeedInterval, logger)

	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, storages.SessionRepository, storages.ItemRepository, logger),
		Gateway:     NewMutationGateway(serverAdapter, feed, logger),
		Feed:        feed,
	}
}
