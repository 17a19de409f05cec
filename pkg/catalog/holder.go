package catalog

import (
	"errors"
	"sync/atomic"
)

// ErrNotInitialized is returned by catalog-dependent operations when no
// snapshot has been loaded. Callers can thereby distinguish "no catalog"
// from "zero matches".
var ErrNotInitialized = errors.New("location catalog is not initialized")

// Holder distributes the current snapshot to concurrent readers.
// Readers get the snapshot by pointer; a reload builds a fresh snapshot
// and swaps the pointer atomically, so in-flight reads keep a coherent
// view.
type Holder struct {
	snap atomic.Pointer[Snapshot]
}

// NewHolder returns an empty holder. Until Swap is called, Snapshot
// returns ErrNotInitialized.
func NewHolder() *Holder {
	return &Holder{}
}

// Swap publishes a fully built snapshot, replacing any previous one.
func (h *Holder) Swap(s *Snapshot) {
	h.snap.Store(s)
}

// Snapshot returns the current snapshot or ErrNotInitialized when the
// catalog was never successfully loaded.
func (h *Holder) Snapshot() (*Snapshot, error) {
	s := h.snap.Load()
	if s == nil {
		return nil, ErrNotInitialized
	}
	return s, nil
}

// Ready reports whether a snapshot has been published.
func (h *Holder) Ready() bool {
	return h.snap.Load() != nil
}
