package adapter

import "errors"

var (
	// ErrBadRequest is mapped from HTTP 400: the request body was rejected by
	// the server before reaching the store.
	ErrBadRequest = errors.New("bad request")

	// ErrSyncKeyNotFound is mapped from HTTP 404: the sync key is unknown to
	// the server. The reconciliation daemon counts consecutive occurrences of
	// this error to decide whether to disable itself.
	ErrSyncKeyNotFound = errors.New("sync key not found")

	// ErrInternalServerError is mapped from HTTP 500.
	ErrInternalServerError = errors.New("internal server error")
)
