package service

import (
	"errors"

	"github.com/MKhiriev/go-sync-relay/internal/store"
)

var (
	// ErrNoSyncKeyProvided is returned when a diff or upload request carries
	// an empty sync key.
	ErrNoSyncKeyProvided = errors.New("no sync key provided")

	// ErrSyncKeyNotFound aliases the store sentinel so handlers can match the
	// condition without importing the store package.
	ErrSyncKeyNotFound = store.ErrSyncKeyNotFound

	// ErrVersionIsNotSpecified is returned by the app-info constructor when
	// the build version is missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSyncDisabled is returned by the client reconciliation service once
	// it has permanently disabled itself after too many consecutive
	// unknown-sync-key responses.
	ErrSyncDisabled = errors.New("synchronization disabled")
)
