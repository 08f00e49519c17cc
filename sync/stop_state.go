// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sync

import "sync/atomic"

// StopState is the single shared cancellation flag the orchestrator checks
// at every loop entry and during the peer wait.
// Delegates are expected to check the same flag at their own suspension
// points.
type StopState struct {
	stopped atomic.Bool
}

// NewStopState returns a StopState that is not stopped.
func NewStopState() *StopState {
	return &StopState{}
}

// Stop requests a clean shutdown.
func (s *StopState) Stop() {
	s.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (s *StopState) IsStopped() bool {
	return s.stopped.Load()
}
