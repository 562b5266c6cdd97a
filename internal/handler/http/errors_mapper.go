package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-relay/internal/service"
	"github.com/MKhiriev/go-sync-relay/internal/store"
	"github.com/MKhiriev/go-sync-relay/internal/utils"
	"github.com/MKhiriev/go-sync-relay/models"
)

var errorStatusMap = map[error]int{
	service.ErrNoSyncKeyProvided:     http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrSyncKeyNotFound:   http.StatusNotFound,
	store.ErrSyncKeyNotCreated: http.StatusInternalServerError,

	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the JSON error body every endpoint shares.
func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
