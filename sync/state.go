// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sync

import "sync/atomic"

// State holds the current Status behind an atomic.Value so concurrent
// readers always observe either the old or the new variant, never a torn
// state. Updates replace the whole variant;
// there is no in-place mutation of a stored Status.
type State struct {
	v atomic.Value // holds Status
}

// NewState creates a State starting in AwaitingPeers(initial=true).
func NewState() *State {
	s := &State{}
	s.Update(AwaitingPeers{Initial: true})
	return s
}

// Status returns the current status.
func (s *State) Status() Status {
	return s.v.Load().(Status)
}

// Update atomically replaces the current status.
func (s *State) Update(status Status) {
	s.v.Store(status)
}

// IsSyncing reports whether the current status represents an active sync
// phase.
func (s *State) IsSyncing() bool {
	return IsSyncing(s.Status())
}
