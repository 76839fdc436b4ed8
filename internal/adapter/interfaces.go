// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to talk
// to the note keeper server.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
// Non-2xx responses are mapped to the sentinel errors in errors.go so callers
// can use [errors.Is] without looking at status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the remote store.
//
// Authenticated calls use the bearer token stored with SetToken. Register and
// Login store the token returned by the server themselves.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	// Register creates an account and logs in. The returned user carries
	// the id taken from the issued token.
	Register(ctx context.Context, user models.User) (models.User, error)
	// Login authenticates with login and password.
	Login(ctx context.Context, user models.User) (models.User, error)

	GetUser(ctx context.Context) (models.User, error)
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error)

	// ListItems returns the caller's whole collection.
	ListItems(ctx context.Context) ([]models.Item, error)
	// CreateItem returns the id assigned by the server.
	CreateItem(ctx context.Context, item models.NewItem) (string, error)
	UpdateItem(ctx context.Context, update models.ItemUpdate) error
	DeleteItem(ctx context.Context, id string) error

	Version(ctx context.Context) (models.VersionResponse, error)
}
