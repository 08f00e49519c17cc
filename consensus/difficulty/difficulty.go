// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty implements the dual primary/secondary proof-of-work
// retarget engine: given a window of past headers it computes the next
// block's target difficulty and secondary-PoW scaling factor.
package difficulty

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/blockchain/standalone/v2"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/math/uint256"
	"github.com/mwc-project/mwc-node/chaincfg"
	"github.com/mwc-project/mwc-node/consensus"
)

// HeaderInfo is the minimal snapshot of one past block header the
// difficulty engine needs to retarget.
type HeaderInfo struct {
	// BlockHash is the header's identifying hash, or chainhash.ZeroHash
	// for a synthetic pre-genesis pad.
	BlockHash chainhash.Hash

	// Timestamp is seconds since the Unix epoch; 1 when unused in a
	// returned result.
	Timestamp uint64

	// Difficulty is the scalar network difficulty of this header, or the
	// next difficulty to use when this HeaderInfo is a return value.
	Difficulty uint64

	// SecondaryScaling is the secondary-PoW scale factor in force for
	// this header.
	SecondaryScaling uint32

	// IsSecondary marks that this header's block was solved by the
	// secondary (AR) proof of work rather than the primary one.
	IsSecondary bool

	// Bits is the compact-bits encoding of Difficulty, the form a wire
	// header actually carries; derived via Target, never set directly.
	Bits uint32
}

// FromTimestampAndDifficulty builds a synthetic HeaderInfo used to pad the
// difficulty window when real history is short. The initial
// secondary scaling of a synthetic entry is always 1, the minimum possible
// graph weight basis, matching the reference padding behavior.
func FromTimestampAndDifficulty(timestamp, diff uint64) HeaderInfo {
	return HeaderInfo{
		BlockHash:        chainhash.ZeroHash,
		Timestamp:        timestamp,
		Difficulty:       diff,
		SecondaryScaling: 1,
		IsSecondary:      true,
		Bits:             Target(diff),
	}
}

// damp moves actual linearly toward goal, applying damping factor f:
// (actual + (f-1)*goal) / f.
func damp(actual, goal, f uint64) uint64 {
	return (actual + (f-1)*goal) / f
}

// clamp bounds actual into [goal/clampFactor, goal*clampFactor], inclusive
// on both ends.
func clamp(actual, goal, clampFactor uint64) uint64 {
	lo := goal / clampFactor
	hi := goal * clampFactor
	if actual < lo {
		return lo
	}
	if actual > hi {
		return hi
	}
	return actual
}

// arCount returns the number of secondary (AR) blocks in the provided window
// slice, multiplied by 100 so it can be compared with a percentage target.
func arCount(window []HeaderInfo) uint64 {
	var n uint64
	for _, hi := range window {
		if hi.IsSecondary {
			n++
		}
	}
	return n * 100
}

// secondaryPowScaling computes the adjustment factor applied to the
// secondary PoW's nominal difficulty so its share of blocks tracks
// SecondaryPowRatio(height).
func secondaryPowScaling(p *chaincfg.Params, height uint64, window []HeaderInfo) uint32 {
	var scaleSum uint64
	for _, hi := range window {
		scaleSum += uint64(hi.SecondaryScaling)
	}

	targetPct := consensus.SecondaryPowRatio(p, height)
	targetCount := p.DifficultyAdjustWindow * targetPct

	adjCount := clamp(
		damp(arCount(window), targetCount, p.ARScaleDampFactor),
		targetCount,
		p.ClampFactor,
	)
	if adjCount == 0 {
		adjCount = 1
	}

	scale := scaleSum * targetPct / adjCount
	if scale < p.MinARScale {
		scale = p.MinARScale
	}
	return uint32(scale)
}

// NextDifficulty computes the proof-of-work difficulty and secondary
// scaling the next block must satisfy, given a difficulty window that is
// already exactly DifficultyAdjustWindow+1 records long, oldest first.
//
// The caller (the chain store collaborator) is responsible for padding
// short histories with synthetic pre-genesis entries; this function never
// special-cases early heights itself.
func NextDifficulty(p *chaincfg.Params, height uint64, window []HeaderInfo) (HeaderInfo, error) {
	want := int(p.DifficultyAdjustWindow) + 1
	if len(window) != want {
		return HeaderInfo{}, fmt.Errorf("difficulty window has %d entries, want %d", len(window), want)
	}

	// Secondary scaling is computed over the newest W entries, skipping
	// the oldest bound record.
	secScaling := secondaryPowScaling(p, height, window[1:])

	tsDelta := window[p.DifficultyAdjustWindow].Timestamp - window[0].Timestamp

	// Wide accumulator for the windowed difficulty sum: checked
	// arithmetic rather than trusting a bare uint64 add chain not to
	// overflow.
	sum := new(uint256.Uint256)
	for _, hi := range window[1:] {
		sum.Add(new(uint256.Uint256).SetUint64(hi.Difficulty))
	}
	if !sum.IsUint64() {
		panic("difficulty: windowed sum overflowed uint64, protocol violation")
	}
	diffSum := sum.Uint64()

	goal := consensus.BlockTimeWindow(p)
	adjTs := clamp(damp(tsDelta, goal, p.DifficultyDampFactor), goal, p.ClampFactor)

	nextDiff := diffSum * p.BlockTimeSec / adjTs
	if nextDiff < p.MinDifficulty {
		nextDiff = p.MinDifficulty
	}

	return HeaderInfo{
		BlockHash:        chainhash.ZeroHash,
		Timestamp:        1,
		Difficulty:       nextDiff,
		SecondaryScaling: secScaling,
		IsSecondary:      true,
		Bits:             Target(nextDiff),
	}, nil
}

// Target converts a scalar network difficulty into the compact-bits
// encoding of the 256-bit proof-of-work bound it implies, following the
// same compact-bits convention standalone.CompactToBig/BigToCompact use
// for Bitcoin/Decred-style targets. The scalar-to-target mapping used here
// treats difficulty as an inverse scale of the maximum 256-bit target,
// which is how this engine's scalar difficulty is reconciled with the
// compact wire encoding at serialization boundaries.
func Target(difficulty uint64) uint32 {
	if difficulty == 0 {
		difficulty = 1
	}
	maxTarget := standalone.CompactToBig(0x1d00ffff)
	target := new(big.Int).Div(maxTarget, new(big.Int).SetUint64(difficulty))
	return standalone.BigToCompact(target)
}
