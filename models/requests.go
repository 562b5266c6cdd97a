// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerateRequest is the body of POST /sync/generate. Data holds the initial
// entries for the new group; Version optionally carries the client's local
// timestamps for those entries (names absent from Version are seeded with the
// server's current time).
type GenerateRequest struct {
	Data    map[string]string `json:"data"`
	Version VersionMap        `json:"version"`
}

// GenerateResponse returns the freshly minted sync key.
type GenerateResponse struct {
	SyncKey string `json:"syncKey"`
}

// DiffRequest is the body of POST /sync/diff. Version is the client's local
// version cache; the server answers with every entry it holds a strictly
// newer timestamp for.
type DiffRequest struct {
	SyncKey string     `json:"syncKey"`
	Version VersionMap `json:"version"`
}

// DiffResponse carries the newer-on-server entries plus the full server
// version map, so the client can replace its cache wholesale and discover
// entries it has never seen without another round trip.
type DiffResponse struct {
	Updates map[string]Entry `json:"updates"`
	Version VersionMap       `json:"version"`
}

// UploadRequest is the body of POST /sync/upload.
type UploadRequest struct {
	SyncKey string           `json:"syncKey"`
	Changes map[string]Entry `json:"changes"`
}

// UploadResponse carries the post-merge server version map.
type UploadResponse struct {
	Version VersionMap `json:"version"`
}

// ErrorResponse is the JSON error body returned by the HTTP handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
