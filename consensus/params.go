// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consensus holds the pure, deterministic functions every node on
// the network must agree on byte-for-byte: graph weight, the secondary PoW
// target ratio, and header version selection.
package consensus

import "github.com/mwc-project/mwc-node/chaincfg"

// BlockTimeWindow returns the ideal wall-clock span, in seconds, of one
// difficulty adjustment window.
func BlockTimeWindow(p *chaincfg.Params) uint64 {
	return p.DifficultyAdjustWindow * p.BlockTimeSec
}

// UnitDifficulty is graph_weight(SECOND_POW_EDGE_BITS), the scalar unit the
// secondary PoW's nominal difficulty is expressed in.
func UnitDifficulty(p *chaincfg.Params) uint64 {
	return GraphWeight(p, 0, p.SecondPowEdgeBits)
}

// InitialDifficulty is the over-estimated starting difficulty used to seed
// synthetic pre-genesis HeaderInfo records.
func InitialDifficulty(p *chaincfg.Params) uint64 {
	return 1_000_000 * UnitDifficulty(p)
}

// GraphWeight computes the weight of a Cuckoo-cycle graph as a function of
// its edge_bits, deliberately demoting oversize graphs.
//
// height is accepted to match the upstream signature and to leave room for
// a future height-keyed demotion schedule; it is currently unused.
func GraphWeight(p *chaincfg.Params, height uint64, edgeBits uint8) uint64 {
	_ = height
	if edgeBits <= 31 {
		return (uint64(2) << (uint64(edgeBits) - uint64(p.BaseEdgeBits))) * uint64(edgeBits)
	}
	return 1
}

// SecondaryPowRatio is the target percentage (0-100) of blocks that should
// be solved by the secondary (AR) proof of work at the given height. It
// starts at 90% and loses one percentage point every 2*YearHeight/90 blocks
// (about eight days), using a saturating subtraction so it never underflows
// past zero.
func SecondaryPowRatio(p *chaincfg.Params, height uint64) uint64 {
	decay := height / (2 * p.YearHeight() / 90)
	if decay >= 90 {
		return 0
	}
	return 90 - decay
}

// HeaderVersion returns the block header version in effect at height. It
// always returns 1 at the current deployment; the height parameter exists
// so a future fork can branch on it without changing the call signature.
func HeaderVersion(height uint64) uint32 {
	_ = height
	return 1
}

// ValidHeaderVersion reports whether version is the one in effect at height.
func ValidHeaderVersion(height uint64, version uint32) bool {
	return version == HeaderVersion(height)
}
