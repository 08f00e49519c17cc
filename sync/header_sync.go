// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sync

import (
	"time"

	"github.com/decred/dcrd/lru"
	"github.com/jrick/bitset"
	"github.com/mwc-project/mwc-node/chain"
	"github.com/mwc-project/mwc-node/p2p"
)

// HeaderSync tracks header-sync progress toward the highest known height:
// it reports HeaderSyncing while the header head is behind and records the
// header head of each paced run in a bounded cache and a height bitset. It
// does not request headers from peers or validate them. It is idempotent
// and safe to call every loop tick.
type HeaderSync struct {
	state *State
	peers p2p.Peers
	store chain.Store

	// headerCache holds the header head seen at each run, keyed by
	// height, up to header_cache_size entries, evicting
	// least-recently-used. It is one cache for the delegate, not one per
	// peer.
	headerCache *lru.Map[uint64, chain.Tip]

	// validated marks which header-head heights in the active window
	// have been recorded by a run.
	validated bitset.Bytes
	windowLo  uint64

	lastRun       time.Time
	longInterval  time.Duration
	shortInterval time.Duration
}

// NewHeaderSync constructs a HeaderSync delegate.
func NewHeaderSync(state *State, peers p2p.Peers, store chain.Store) *HeaderSync {
	return &HeaderSync{state: state, peers: peers, store: store}
}

// CheckRun drives one tick of header sync. durationLong (while the header
// head is behind highestHeight) and durationShort (once it has caught up)
// set the minimum time between two runs; a call inside that interval only
// updates the status. A run returns an ErrNoPeers error when no peer is
// available, and otherwise records the header head in the cache and the
// bitset. headerCacheSize bounds the in-memory header cache (1024 when
// zero).
func (h *HeaderSync) CheckRun(
	headerHead chain.Tip,
	highestHeight uint64,
	durationLong, durationShort time.Duration,
	headerCacheSize uint32,
) error {
	if headerCacheSize == 0 {
		headerCacheSize = 1024
	}
	if h.headerCache == nil || h.headerCache.Limit() != headerCacheSize {
		h.headerCache = lru.NewMap[uint64, chain.Tip](headerCacheSize)
	}

	if highestHeight > headerHead.Height {
		h.state.Update(HeaderSyncing{
			CurrentHeight: headerHead.Height,
			HighestHeight: highestHeight,
		})
	}

	interval := h.shortIntervalOr(durationShort)
	if headerHead.Height < highestHeight {
		interval = h.longIntervalOr(durationLong)
	}
	if !h.lastRun.IsZero() && time.Since(h.lastRun) < interval {
		return nil
	}
	h.lastRun = time.Now()

	peer := h.peers.MostWorkPeer()
	if peer == nil {
		return newError(ErrNoPeers, "header sync: no peers available")
	}

	h.headerCache.Put(headerHead.Height, headerHead)
	h.markValidated(headerHead.Height)

	return nil
}

func (h *HeaderSync) longIntervalOr(d time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return h.longInterval
}

func (h *HeaderSync) shortIntervalOr(d time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return h.shortInterval
}

// markValidated records height as validated in the rolling bitset window,
// resizing the window forward as the chain advances.
func (h *HeaderSync) markValidated(height uint64) {
	const windowSize = 4096

	if h.validated == nil || height < h.windowLo || height >= h.windowLo+windowSize {
		h.windowLo = height
		h.validated = bitset.NewBytes(windowSize)
	}
	h.validated.Set(uint(height - h.windowLo))
}

// IsValidated reports whether height was marked validated in the current
// rolling window.
func (h *HeaderSync) IsValidated(height uint64) bool {
	if h.validated == nil || height < h.windowLo || height >= h.windowLo+uint64(len(h.validated))*8 {
		return false
	}
	return h.validated.Get(uint(height - h.windowLo))
}
