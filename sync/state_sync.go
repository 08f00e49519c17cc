// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sync

import (
	"github.com/mwc-project/mwc-node/chain"
	"github.com/mwc-project/mwc-node/p2p"
)

// StateSync drives the multi-phase txhashset download and validation state
// machine, progressing Status through
// TxHashsetDownload -> Setup -> RangeProofsValidation -> KernelsValidation
// -> Save -> Done.
type StateSync struct {
	state *State
	peers p2p.Peers
	store chain.Store
}

// NewStateSync constructs a StateSync delegate.
func NewStateSync(state *State, peers p2p.Peers, store chain.Store) *StateSync {
	return &StateSync{state: state, peers: peers, store: store}
}

// CheckRun drives one tick of state sync, advancing to the next phase in
// the sequence each time it is called. The MMR snapshot transfer and
// validation themselves are handled by an external collaborator; this
// delegate only owns the phase transitions.
func (s *StateSync) CheckRun(headerHead, head, tail chain.Tip, highestHeight uint64) error {
	switch cur := s.state.Status().(type) {
	case TxHashsetDownload:
		if cur.BytesDownloaded >= cur.TotalBytes && cur.TotalBytes > 0 {
			s.state.Update(TxHashsetSetup{})
			return nil
		}
		s.state.Update(TxHashsetDownload{
			BytesDownloaded: cur.BytesDownloaded,
			TotalBytes:      cur.TotalBytes,
		})
	case TxHashsetSetup:
		s.state.Update(TxHashsetRangeProofsValidation{})
	case TxHashsetRangeProofsValidation:
		if cur.RangeProofs >= cur.RangeProofsTotal && cur.RangeProofsTotal > 0 {
			s.state.Update(TxHashsetKernelsValidation{})
			return nil
		}
		s.state.Update(cur)
	case TxHashsetKernelsValidation:
		if cur.Kernels >= cur.KernelsTotal && cur.KernelsTotal > 0 {
			s.state.Update(TxHashsetSave{})
			return nil
		}
		s.state.Update(cur)
	case TxHashsetSave:
		s.state.Update(TxHashsetDone{})
	case TxHashsetDone:
		// Terminal; the orchestrator transitions out via needs_syncing
		// once local difficulty has caught up.
	default:
		// Entered state sync fresh: start the download phase.
		s.state.Update(TxHashsetDownload{})
	}
	return nil
}
