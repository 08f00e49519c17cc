// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sync implements the sync orchestrator: the long-lived state
// machine that brings a newly started node to the network's current head
// by coordinating header download, optional state-snapshot fetch, and
// body download against a dynamic pool of peers.
package sync

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Status is the sealed tagged union over sync phases. Rather than an
// inheritance hierarchy of "syncing phase" objects, a single sum type
// with per-variant payloads is the right shape: delegates inspect and
// replace it atomically.
type Status interface {
	isStatus()
	fmt.Stringer
}

// AwaitingPeers indicates the node is waiting to reach the minimum peer
// count before any sync stage may run. Initial reports whether this is
// the very first wait since process start (it gets the long 30s timeout
// rather than the usual 3s one).
type AwaitingPeers struct {
	Initial bool
}

func (AwaitingPeers) isStatus() {}
func (s AwaitingPeers) String() string {
	return fmt.Sprintf("AwaitingPeers(initial=%v)", s.Initial)
}

// NoSync indicates the node believes it is caught up with the network.
type NoSync struct{}

func (NoSync) isStatus() {}
func (NoSync) String() string { return "NoSync" }

// HeaderSyncing reports header-download progress.
type HeaderSyncing struct {
	CurrentHeight uint64
	HighestHeight uint64
}

func (HeaderSyncing) isStatus() {}
func (s HeaderSyncing) String() string {
	return fmt.Sprintf("HeaderSync(%d/%d)", s.CurrentHeight, s.HighestHeight)
}

// TxHashsetDownload reports the in-flight state-snapshot transfer.
type TxHashsetDownload struct {
	BytesDownloaded int64
	TotalBytes      int64
}

func (TxHashsetDownload) isStatus() {}
func (s TxHashsetDownload) String() string {
	return fmt.Sprintf("TxHashsetDownload(%d/%d)", s.BytesDownloaded, s.TotalBytes)
}

// TxHashsetSetup indicates the downloaded snapshot is being unpacked.
type TxHashsetSetup struct{}

func (TxHashsetSetup) isStatus()   {}
func (TxHashsetSetup) String() string { return "TxHashsetSetup" }

// TxHashsetRangeProofsValidation reports range-proof validation progress.
type TxHashsetRangeProofsValidation struct {
	RangeProofs      uint64
	RangeProofsTotal uint64
}

func (TxHashsetRangeProofsValidation) isStatus() {}
func (s TxHashsetRangeProofsValidation) String() string {
	return fmt.Sprintf("TxHashsetRangeProofsValidation(%d/%d)", s.RangeProofs, s.RangeProofsTotal)
}

// TxHashsetKernelsValidation reports kernel-signature validation progress.
type TxHashsetKernelsValidation struct {
	Kernels      uint64
	KernelsTotal uint64
}

func (TxHashsetKernelsValidation) isStatus() {}
func (s TxHashsetKernelsValidation) String() string {
	return fmt.Sprintf("TxHashsetKernelsValidation(%d/%d)", s.Kernels, s.KernelsTotal)
}

// TxHashsetSave indicates the validated snapshot is being committed.
type TxHashsetSave struct{}

func (TxHashsetSave) isStatus()    {}
func (TxHashsetSave) String() string { return "TxHashsetSave" }

// TxHashsetDone indicates the state sync phase has completed.
type TxHashsetDone struct{}

func (TxHashsetDone) isStatus()    {}
func (TxHashsetDone) String() string { return "TxHashsetDone" }

// BodySyncing reports block-body download progress.
type BodySyncing struct {
	CurrentHeight uint64
	HighestHeight uint64
}

func (BodySyncing) isStatus() {}
func (s BodySyncing) String() string {
	return fmt.Sprintf("BodySync(%d/%d)", s.CurrentHeight, s.HighestHeight)
}

// Shutdown indicates the orchestrator is tearing down.
type Shutdown struct{}

func (Shutdown) isStatus()    {}
func (Shutdown) String() string { return "Shutdown" }

// IsTxHashsetPhase reports whether status is any of the txhashset
// variants, the carve-out the header-lock backoff and body-sync skip
// both key on.
func IsTxHashsetPhase(status Status) bool {
	switch status.(type) {
	case TxHashsetDownload, TxHashsetSetup, TxHashsetRangeProofsValidation,
		TxHashsetKernelsValidation, TxHashsetSave, TxHashsetDone:
		return true
	default:
		return false
	}
}

// IsSyncing reports whether status represents an active sync phase rather
// than NoSync/AwaitingPeers/Shutdown.
func IsSyncing(status Status) bool {
	switch status.(type) {
	case NoSync, AwaitingPeers, Shutdown:
		return false
	default:
		return true
	}
}

// DebugDump renders status for structured debug logging, in the familiar
// spew-backed idiom for dumping arbitrary state.
func DebugDump(status Status) string {
	return spew.Sdump(status)
}
