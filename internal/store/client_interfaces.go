package store

import (
	"context"

	"github.com/MKhiriev/go-sync-relay/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalEntryRepository is the device-local key/value store the reconciliation
// daemon works against.
//
// Writes come from two distinct sources and must stay distinguishable:
//
//   - Set/Remove are local writes (the device's own application changed a
//     value). They are stamped with the current local time and fire the
//     OnChange callback.
//   - ApplyRemote is a daemon write carrying the server's timestamp. It never
//     fires the callback and is safe to re-apply, so the daemon applying a
//     diff cannot feed back into itself.
//
// A locally removed entry is kept as a tombstone row (nil value, fresh local
// timestamp) so the deletion itself can be uploaded; States exposes
// tombstones while Get and ListKeys treat them as absent.
type LocalEntryRepository interface {
	Get(ctx context.Context, name string) (*string, error)
	Set(ctx context.Context, name, value string) error
	Remove(ctx context.Context, name string) error
	ListKeys(ctx context.Context) ([]string, error)

	// States returns every stored row, tombstones included, with its local
	// write timestamp. This is what the daemon diffs against the server's
	// reported version map to find locally-newer entries.
	States(ctx context.Context) (map[string]models.Entry, error)

	// ApplyRemote writes (value, updatedAt) as received from the server;
	// value == nil removes the local entry (stores the server's tombstone).
	ApplyRemote(ctx context.Context, name string, value *string, updatedAt int64) error

	// SetOnChange registers the callback fired after every local Set or
	// Remove. Only one callback is held; passing nil unregisters.
	SetOnChange(fn func(name string))
}
