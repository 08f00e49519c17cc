// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p2p

import (
	"sync"

	"github.com/decred/dcrd/container/apbf"
)

// SeenFilter de-duplicates repeated peer announcements (pings, inventory)
// using an age-partitioned bloom filter, so a chatty peer re-announcing
// the same height/difficulty doesn't repeatedly wake interested callers.
type SeenFilter struct {
	mu     sync.Mutex
	filter *apbf.Filter
}

// NewSeenFilter builds a filter sized for maxElements expected distinct
// announcements with the given false-positive rate.
func NewSeenFilter(maxElements uint32, falsePositiveRate float64) *SeenFilter {
	return &SeenFilter{
		filter: apbf.NewFilter(maxElements, falsePositiveRate),
	}
}

// SeenBefore reports whether key has already been observed, recording it
// as seen either way.
func (s *SeenFilter) SeenBefore(key []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filter.Contains(key) {
		return true
	}
	s.filter.Add(key)
	return false
}
