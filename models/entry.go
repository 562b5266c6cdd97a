package models

// Entry is one versioned value in a synchronization group.
//
// Value == nil is a tombstone: the entry was deleted, and the deletion itself
// propagates between devices through the same last-write-wins comparison as a
// regular write. UpdatedAt is a monotonic epoch-milliseconds timestamp; for a
// given (sync key, name) pair the stored UpdatedAt never decreases.
type Entry struct {
	Value     *string `json:"value"`
	UpdatedAt int64   `json:"updatedAt"`
}

// Deleted reports whether the entry is a tombstone.
func (e Entry) Deleted() bool {
	return e.Value == nil
}

// VersionMap maps entry names to their last-known UpdatedAt timestamps.
// The server derives its authoritative map by scanning a group's entries;
// each client keeps a local cache of the map it last received from the server.
type VersionMap map[string]int64

// NewerThan returns the names whose timestamp in m is strictly greater than
// the timestamp known to other (names absent from other count as 0).
func (m VersionMap) NewerThan(other VersionMap) []string {
	newer := make([]string, 0, len(m))
	for name, updatedAt := range m {
		if updatedAt > other[name] {
			newer = append(newer, name)
		}
	}
	return newer
}

// StringValue is a helper for building *string entry values in one expression.
func StringValue(s string) *string {
	return &s
}
