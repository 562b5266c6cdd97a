package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-sync-relay/internal/app"
	"github.com/MKhiriev/go-sync-relay/internal/logger"
	"github.com/MKhiriev/go-sync-relay/internal/utils"
	"github.com/MKhiriev/go-sync-relay/models"
)

func (h *Handler) generateSyncKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var generateRequest models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&generateRequest); err != nil {
		log.Err(err).Str("func", "*Handler.generateSyncKey").Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	syncKey, err := h.services.SyncService.Generate(ctx, generateRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.generateSyncKey").Msg("error generating sync key")
		writeError(w, app.MsgGenerateFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.GenerateResponse{SyncKey: syncKey}, http.StatusCreated)
}

func (h *Handler) diff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var diffRequest models.DiffRequest
	if err := json.NewDecoder(r.Body).Decode(&diffRequest); err != nil {
		log.Err(err).Str("func", "*Handler.diff").Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.Diff(ctx, diffRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.diff").Msg("error computing diff")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var uploadRequest models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&uploadRequest); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	merged, err := h.services.SyncService.Upload(ctx, uploadRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error merging upload")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UploadResponse{Version: merged}, http.StatusOK)
}
