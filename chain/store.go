// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain defines the boundary the sync orchestrator consumes from
// the chain store: head/tail/header-head snapshots, a bounded-wait lock on
// the header head, the difficulty iterator, and opportunistic compaction.
package chain

import (
	"context"
	"errors"
	"time"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/mwc-project/mwc-node/consensus/difficulty"
)

// ErrorKind classifies a chain access failure.
type ErrorKind int

// Recognized error kinds.
const (
	ErrChainAccess ErrorKind = iota
	ErrHeaderLockTimeout
)

// Error wraps a chain-store failure with its kind, in the familiar
// ruleError idiom (a kind code plus a human string).
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Tip is the (total_difficulty, height, last_block_hash) triple the
// orchestrator reads once per iteration and passes to its delegates by
// value.
type Tip struct {
	TotalDifficulty uint64
	Height          uint64
	LastBlockHash   chainhash.Hash
}

// Store is the external collaborator contract the sync orchestrator
// depends on. The MMR/kernel storage and block validation behind it
// belong to a different layer; only this boundary matters here.
type Store interface {
	// Head returns the current chain tip.
	Head() (Tip, error)

	// Tail returns the oldest retained block, for chains that prune
	// spent history beyond the cut-through horizon.
	Tail() (Tip, error)

	// TryHeaderHead attempts to acquire a time-bounded read of the
	// header chain's tip. It returns (Tip{}, false, nil) on a lock
	// acquisition timeout, not an error — only genuine access failures
	// are errors.
	TryHeaderHead(ctx context.Context, deadline time.Duration) (Tip, bool, error)

	// DifficultyIter streams HeaderInfo records for real headers,
	// newest to oldest.
	DifficultyIter() (HeaderInfoIterator, error)

	// Compact performs opportunistic maintenance; safe to call
	// repeatedly, since real implementations gate it behind an internal
	// threshold.
	Compact() error
}

// HeaderInfoIterator yields difficulty.HeaderInfo records newest-first.
type HeaderInfoIterator interface {
	// Next returns the next record, or ok=false when exhausted.
	Next() (hi difficulty.HeaderInfo, ok bool)
}

// sliceIterator adapts a newest-first slice to HeaderInfoIterator.
type sliceIterator struct {
	items []difficulty.HeaderInfo
	pos   int
}

func (s *sliceIterator) Next() (difficulty.HeaderInfo, bool) {
	if s.pos >= len(s.items) {
		return difficulty.HeaderInfo{}, false
	}
	hi := s.items[s.pos]
	s.pos++
	return hi, true
}

// NewSliceIterator wraps a newest-first slice of HeaderInfo as an
// iterator, convenient for tests and in-memory stores.
func NewSliceIterator(items []difficulty.HeaderInfo) HeaderInfoIterator {
	return &sliceIterator{items: items}
}

// DifficultyDataToVector pads and reorders a newest-to-oldest
// HeaderInfoIterator into the oldest-first window of exactly
// windowSize+1 records the difficulty engine requires.
//
// When the iterator yields fewer than windowSize+1 real records, the
// older end is padded with synthetic pre-genesis entries carrying
// strictly increasing timestamps spaced by blockTimeSec and the supplied
// initialDifficulty, so the retarget formula degenerates gracefully
// without the engine itself special-casing short histories. When the
// oldest real timestamp is below need*blockTimeSec (need being the number
// of synthetic entries), the spacing shrinks to oldestTs/(need+1) so the
// padding still fits below it; when it is below need+1, no strictly
// increasing padding fits and every synthetic entry carries the oldest
// real timestamp.
func DifficultyDataToVector(it HeaderInfoIterator, windowSize int, blockTimeSec, initialDifficulty uint64) []difficulty.HeaderInfo {
	real := make([]difficulty.HeaderInfo, 0, windowSize+1)
	for {
		hi, ok := it.Next()
		if !ok {
			break
		}
		real = append(real, hi)
		if len(real) == windowSize+1 {
			break
		}
	}

	// real is newest-first; reverse it to oldest-first.
	for i, j := 0, len(real)-1; i < j; i, j = i+1, j-1 {
		real[i], real[j] = real[j], real[i]
	}

	need := windowSize + 1 - len(real)
	if need <= 0 {
		return real
	}

	var oldestTs uint64
	if len(real) > 0 {
		oldestTs = real[0].Timestamp
	}

	padding := make([]difficulty.HeaderInfo, need)
	span := uint64(need) * blockTimeSec
	step := blockTimeSec
	if len(real) > 0 && oldestTs < span {
		// The real window is too close to the epoch for blockTimeSec
		// spacing: shrink the step so the padding stays below it.
		step = oldestTs / uint64(need+1)
	}
	for i := 0; i < need; i++ {
		// Earliest synthetic entry gets the smallest timestamp so the
		// whole padded+real sequence is strictly increasing. With no
		// real records at all, count up from zero: the formula only
		// needs the sequence to be strictly increasing, not aligned to
		// wall time.
		var ts uint64
		if len(real) > 0 {
			ts = oldestTs - uint64(need-i)*step
		} else {
			ts = uint64(i+1) * blockTimeSec
		}
		padding[i] = difficulty.FromTimestampAndDifficulty(ts, initialDifficulty)
	}

	out := make([]difficulty.HeaderInfo, 0, windowSize+1)
	out = append(out, padding...)
	out = append(out, real...)
	return out
}

// ErrNoHeaderLock describes a header-head lock that was not acquired before
// its deadline. TryHeaderHead does not return it: the Store contract
// reports such a timeout as ok == false with a nil error.
var ErrNoHeaderLock = errors.New("chain: header head lock not acquired before deadline")
