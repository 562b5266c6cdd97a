package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-sync-relay/internal/config"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/models"
	"github.com/go-resty/resty/v2"
)

type httpSyncClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPSyncClient constructs an HTTP/REST implementation of [SyncClient].
// It normalises and validates the base URL from cfg.BaseURL and configures the
// underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPSyncClient(cfg config.ClientAdapter, logger *logger.Logger) (SyncClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sync server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpSyncClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Generate implements [SyncClient]. It POSTs the seed entries to
// POST /sync/generate and returns the minted sync key.
func (h *httpSyncClient) Generate(ctx context.Context, data map[string]string, version models.VersionMap) (string, error) {
	var result models.GenerateResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.GenerateRequest{Data: data, Version: version}).
		SetResult(&result).
		Post("/sync/generate")
	if err != nil {
		return "", fmt.Errorf("generate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.SyncKey, nil
}

// Diff implements [SyncClient]. It POSTs the local version cache to
// POST /sync/diff and decodes the server's updates and version map.
func (h *httpSyncClient) Diff(ctx context.Context, key string, version models.VersionMap) (models.DiffResponse, error) {
	var result models.DiffResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DiffRequest{SyncKey: key, Version: version}).
		SetResult(&result).
		Post("/sync/diff")
	if err != nil {
		return models.DiffResponse{}, fmt.Errorf("diff request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DiffResponse{}, err
	}

	return result, nil
}

// Upload implements [SyncClient]. It POSTs locally newer changes to
// POST /sync/upload and returns the post-merge server version map.
func (h *httpSyncClient) Upload(ctx context.Context, key string, changes map[string]models.Entry) (models.VersionMap, error) {
	var result models.UploadResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UploadRequest{SyncKey: key, Changes: changes}).
		SetResult(&result).
		Post("/sync/upload")
	if err != nil {
		return nil, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Version, nil
}
