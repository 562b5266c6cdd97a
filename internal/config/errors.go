package config

import "errors"

var (
	ErrInvalidStorageConfigs = errors.New("invalid storage configs provided")
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs provided")
	ErrInvalidSyncConfigs    = errors.New("invalid sync configs provided")
)
