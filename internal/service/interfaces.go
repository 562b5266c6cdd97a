// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic of the sync relay: minting sync
// keys, answering diff queries, merging uploads, and (on the client side)
// driving the periodic reconciliation cycle.
package service

import (
	"context"

	"github.com/MKhiriev/go-sync-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// SyncService is the server-side core of the relay. All three operations are
// safe for concurrent use; last-write-wins conflict resolution happens inside
// the store, so concurrent uploads for the same entry converge on the one with
// the greatest timestamp.
type SyncService interface {
	// Generate mints a fresh sync key and seeds the new group with the
	// request's initial entries. Seed names without a client-provided
	// timestamp are stamped with the server's current time.
	Generate(ctx context.Context, req models.GenerateRequest) (string, error)

	// Diff returns every entry whose server timestamp is strictly greater
	// than the timestamp the client reported, plus the full server version
	// map. Returns [ErrSyncKeyNotFound] for unknown keys.
	Diff(ctx context.Context, req models.DiffRequest) (models.DiffResponse, error)

	// Upload merges the client's changes through the store's conditional
	// write and returns the post-merge server version map. Stale changes are
	// silently ignored. Returns [ErrSyncKeyNotFound] for unknown keys.
	Upload(ctx context.Context, req models.UploadRequest) (models.VersionMap, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
