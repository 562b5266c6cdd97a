// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the sync relay server.
//
// The primary abstraction is [SyncClient], which decouples the reconciliation
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSyncClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrSyncKeyNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_client_mock.go -package=mock

// SyncClient defines transport-agnostic communication with the sync relay
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type SyncClient interface {
	// Generate asks the server to mint a new sync key seeded with the given
	// entries. Version optionally carries the client's own timestamps for the
	// seed entries; names absent from it are stamped by the server.
	Generate(ctx context.Context, data map[string]string, version models.VersionMap) (string, error)

	// Diff sends the client's local version cache and returns every entry the
	// server holds a strictly newer timestamp for, plus the server's full
	// version map. Returns [ErrSyncKeyNotFound] (wrapped) when the key is
	// unknown to the server.
	Diff(ctx context.Context, key string, version models.VersionMap) (models.DiffResponse, error)

	// Upload pushes locally newer entries to the server and returns the
	// post-merge server version map. Returns [ErrSyncKeyNotFound] (wrapped)
	// when the key is unknown to the server.
	Upload(ctx context.Context, key string, changes map[string]models.Entry) (models.VersionMap, error)
}
