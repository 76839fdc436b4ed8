package config

import "errors"

// Validation errors returned when a configuration group is incomplete or invalid.
var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidClientConfigs  = errors.New("invalid client configuration")
)
