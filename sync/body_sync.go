// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sync

import (
	"github.com/mwc-project/mwc-node/chain"
	"github.com/mwc-project/mwc-node/p2p"
)

// BodySync decides whether the gap between head and the highest known
// height is large enough that a state snapshot should be fetched instead
// of block bodies, and otherwise reports BodySyncing progress. It does not
// check which headers are present and does not download block bodies.
type BodySync struct {
	state *State
	peers p2p.Peers
	store chain.Store

	// stateSyncThreshold is the height gap beyond which body sync defers
	// to a txhashset download rather than fetching every intervening
	// block.
	stateSyncThreshold uint64
}

// NewBodySync constructs a BodySync delegate.
func NewBodySync(state *State, peers p2p.Peers, store chain.Store, stateSyncThreshold uint64) *BodySync {
	return &BodySync{state: state, peers: peers, store: store, stateSyncThreshold: stateSyncThreshold}
}

// CheckRun drives one tick of body sync. It returns true when the gap to
// highestHeight has grown beyond the state-sync threshold, signaling the
// caller to invoke StateSync instead.
func (b *BodySync) CheckRun(head chain.Tip, highestHeight uint64) (bool, error) {
	if highestHeight <= head.Height {
		return false, nil
	}

	gap := highestHeight - head.Height
	if gap > b.stateSyncThreshold {
		return true, nil
	}

	b.state.Update(BodySyncing{
		CurrentHeight: head.Height,
		HighestHeight: highestHeight,
	})
	return false, nil
}
