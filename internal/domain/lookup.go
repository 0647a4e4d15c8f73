package domain

import "sync"

// NameError is the sentinel merged for a user id whose enrichment fetch
// failed. A key absent from the lookup means "not yet resolved"; a key
// holding NameError means "resolution failed".
const NameError = "Error"

// NameLookup maps a reqUserId to its resolved display name. It is filled
// entry-by-entry by concurrent enrichment fetches, so every write goes
// through a guarded merge: a completion can overwrite its own key but can
// never drop a peer's entry.
type NameLookup struct {
	mu    sync.RWMutex
	names map[string]string
}

// NewNameLookup returns an empty lookup.
func NewNameLookup() *NameLookup {
	return &NameLookup{names: make(map[string]string)}
}

// Merge records a resolved name for the given user id. Merging the same
// id twice is allowed and idempotent in effect; repeated ids across orders
// are fetched repeatedly and simply overwrite with the same value.
func (l *NameLookup) Merge(userID, name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names[userID] = name
}

// MergeError records the failure sentinel for the given user id, so the
// caller can distinguish "failed" from "still loading".
func (l *NameLookup) MergeError(userID string) {
	l.Merge(userID, NameError)
}

// Resolve returns the name for a user id and whether it is present.
func (l *NameLookup) Resolve(userID string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	name, ok := l.names[userID]
	return name, ok
}

// Snapshot returns an independent copy of the current mapping. Callers
// may read it freely while merges continue.
func (l *NameLookup) Snapshot() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]string, len(l.names))
	for k, v := range l.names {
		out[k] = v
	}
	return out
}
