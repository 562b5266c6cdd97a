package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/internal/service"
	"github.com/MKhiriev/go-sync-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock
// ─────────────────────────────────────────────

// mockSyncService implements service.SyncService with canned answers and
// records the last request of each kind.
type mockSyncService struct {
	generateKey  string
	generateErr  error
	lastGenerate models.GenerateRequest

	diffResponse models.DiffResponse
	diffErr      error
	lastDiff     models.DiffRequest

	uploadVersion models.VersionMap
	uploadErr     error
	lastUpload    models.UploadRequest
}

func (m *mockSyncService) Generate(_ context.Context, req models.GenerateRequest) (string, error) {
	m.lastGenerate = req
	return m.generateKey, m.generateErr
}

func (m *mockSyncService) Diff(_ context.Context, req models.DiffRequest) (models.DiffResponse, error) {
	m.lastDiff = req
	return m.diffResponse, m.diffErr
}

func (m *mockSyncService) Upload(_ context.Context, req models.UploadRequest) (models.VersionMap, error) {
	m.lastUpload = req
	return m.uploadVersion, m.uploadErr
}

func newHandlerWithSyncService(t *testing.T, svc service.SyncService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{SyncService: svc}, logger.Nop())
}

// ─────────────────────────────────────────────
// POST /sync/generate
// ─────────────────────────────────────────────

func TestGenerateSyncKey_Success(t *testing.T) {
	svc := &mockSyncService{generateKey: "minted-key"}
	h := newHandlerWithSyncService(t, svc)

	body := `{"data":{"theme":"dark"},"version":{"theme":100}}`
	req := httptest.NewRequest(http.MethodPost, "/sync/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.generateSyncKey(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "minted-key", resp.SyncKey)

	assert.Equal(t, "dark", svc.lastGenerate.Data["theme"])
	assert.Equal(t, int64(100), svc.lastGenerate.Version["theme"])
}

func TestGenerateSyncKey_InvalidJSON(t *testing.T) {
	h := newHandlerWithSyncService(t, &mockSyncService{})

	req := httptest.NewRequest(http.MethodPost, "/sync/generate", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.generateSyncKey(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

// ─────────────────────────────────────────────
// POST /sync/diff
// ─────────────────────────────────────────────

func TestDiff_Success(t *testing.T) {
	svc := &mockSyncService{
		diffResponse: models.DiffResponse{
			Updates: map[string]models.Entry{
				"theme":   {Value: models.StringValue("dark"), UpdatedAt: 200},
				"deleted": {Value: nil, UpdatedAt: 300},
			},
			Version: models.VersionMap{"theme": 200, "deleted": 300},
		},
	}
	h := newHandlerWithSyncService(t, svc)

	body := `{"syncKey":"known-key","version":{"theme":100}}`
	req := httptest.NewRequest(http.MethodPost, "/sync/diff", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.diff(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "known-key", svc.lastDiff.SyncKey)

	var resp models.DiffResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dark", *resp.Updates["theme"].Value)
	assert.True(t, resp.Updates["deleted"].Deleted(), "tombstones must survive serialization")
	assert.Equal(t, models.VersionMap{"theme": 200, "deleted": 300}, resp.Version)
}

func TestDiff_UnknownKey(t *testing.T) {
	h := newHandlerWithSyncService(t, &mockSyncService{diffErr: service.ErrSyncKeyNotFound})

	body := `{"syncKey":"never-generated","version":{}}`
	req := httptest.NewRequest(http.MethodPost, "/sync/diff", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.diff(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "sync key not found")
}

func TestDiff_MissingKey(t *testing.T) {
	h := newHandlerWithSyncService(t, &mockSyncService{diffErr: service.ErrNoSyncKeyProvided})

	req := httptest.NewRequest(http.MethodPost, "/sync/diff", strings.NewReader(`{"version":{}}`))
	rec := httptest.NewRecorder()

	h.diff(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /sync/upload
// ─────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	svc := &mockSyncService{uploadVersion: models.VersionMap{"theme": 500}}
	h := newHandlerWithSyncService(t, svc)

	body := `{"syncKey":"known-key","changes":{"theme":{"value":"light","updatedAt":500}}}`
	req := httptest.NewRequest(http.MethodPost, "/sync/upload", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.Contains(t, svc.lastUpload.Changes, "theme")
	assert.Equal(t, "light", *svc.lastUpload.Changes["theme"].Value)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.VersionMap{"theme": 500}, resp.Version)
}

func TestUpload_TombstoneChange(t *testing.T) {
	svc := &mockSyncService{uploadVersion: models.VersionMap{"theme": 600}}
	h := newHandlerWithSyncService(t, svc)

	body := `{"syncKey":"known-key","changes":{"theme":{"value":null,"updatedAt":600}}}`
	req := httptest.NewRequest(http.MethodPost, "/sync/upload", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, svc.lastUpload.Changes, "theme")
	assert.True(t, svc.lastUpload.Changes["theme"].Deleted())
}

func TestUpload_UnknownKey(t *testing.T) {
	h := newHandlerWithSyncService(t, &mockSyncService{uploadErr: service.ErrSyncKeyNotFound})

	body := `{"syncKey":"never-generated","changes":{}}`
	req := httptest.NewRequest(http.MethodPost, "/sync/upload", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpload_InvalidJSON(t *testing.T) {
	h := newHandlerWithSyncService(t, &mockSyncService{})

	req := httptest.NewRequest(http.MethodPost, "/sync/upload", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
