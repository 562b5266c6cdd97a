package service

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientSyncService is the device-side half of the relay: it reconciles the
// local store with the server in discrete cycles.
type ClientSyncService interface {
	// GenerateKey creates a new synchronization group on the server, seeded
	// with the device's current live entries, and returns the minted sync
	// key. The caller is responsible for persisting the key in the device
	// configuration.
	GenerateKey(ctx context.Context) (string, error)

	// RunCycle executes one full reconciliation pass: diff against the
	// server, apply remote updates locally, then upload entries whose local
	// timestamp beats the server's. At most one cycle runs at a time; a call
	// arriving while a cycle is in flight returns immediately with no error.
	RunCycle(ctx context.Context) error

	// Disabled reports whether the service has permanently shut itself down
	// after too many consecutive unknown-sync-key responses.
	Disabled() bool
}

// ClientSyncJob drives [ClientSyncService.RunCycle] on a fixed interval.
type ClientSyncJob interface {
	// Start launches the periodic loop. Calling Start on a running job is a
	// no-op.
	Start(ctx context.Context)

	// Stop cancels the loop and blocks until the in-flight cycle, if any,
	// has finished.
	Stop()
}
