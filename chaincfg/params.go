// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg bundles the network-specific consensus parameters a node
// needs to pick between mainnet and the test network, in the style of
// params.go's activeNetParams/netName pattern.
package chaincfg

import "github.com/decred/dcrd/chaincfg/chainhash"

// Network identifies one of the node's supported networks.
type Network uint8

// Supported networks.
const (
	MainNet Network = iota
	TestNet
)

// String returns the human name of the network.
func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	default:
		return "unknown"
	}
}

// PowInfo carries the genesis block's proof-of-work payload. The concrete
// Cuckoo-cycle proof is an opaque blob — this node never interprets it,
// only stores and forwards it.
type PowInfo struct {
	TotalDifficulty  uint64
	SecondaryScaling uint32
	Nonce            uint64
	EdgeBits         uint8
	ProofNonces      [42]uint64
}

// GenesisSkeleton carries the byte-exact genesis block fields. The actual
// constants are network-operator literals external to this package; this
// struct only fixes their shape.
type GenesisSkeleton struct {
	Height          uint64
	Timestamp       int64
	PrevRoot        chainhash.Hash
	OutputRoot      chainhash.Hash
	RangeProofRoot  chainhash.Hash
	KernelRoot      chainhash.Hash
	KernelOffset    [32]byte
	OutputMMRSize   uint64
	KernelMMRSize   uint64
	Pow             PowInfo
	CoinbaseKernel  []byte // commitment || signature, opaque
	CoinbaseOutput  []byte // commitment || bulletproof range proof, opaque
}

// Params is the frozen bundle of compile-time consensus constants that must
// match bit-exactly across every implementation on a given network.
type Params struct {
	Net Network

	// Epoch length in blocks. 2,100,000 on mainnet, 2,880 on testnet.
	SubsidyEpochLength uint64

	// Timing.
	BlockTimeSec uint64

	// Retarget window.
	DifficultyAdjustWindow uint64
	ClampFactor            uint64
	DifficultyDampFactor   uint64
	ARScaleDampFactor      uint64
	MinDifficulty          uint64
	MinARScale             uint64

	// PoW sizing.
	ProofSize          int
	DefaultMinEdgeBits uint8
	SecondPowEdgeBits  uint8
	BaseEdgeBits       uint8

	// Block weighting.
	InputWeight    uint64
	OutputWeight   uint64
	KernelWeight   uint64
	MaxBlockWeight uint64

	CoinbaseMaturity   uint64
	CutThroughHorizon  uint64
	StateSyncThreshold uint64

	Genesis GenesisSkeleton
}

// Derived height constants: HOUR/DAY/WEEK/YEAR are expressed in blocks,
// not wall-clock time, and scale with BlockTimeSec.
func (p *Params) HourHeight() uint64 { return 3600 / p.BlockTimeSec }
func (p *Params) DayHeight() uint64  { return 24 * p.HourHeight() }
func (p *Params) WeekHeight() uint64 { return 7 * p.DayHeight() }
func (p *Params) YearHeight() uint64 { return 52 * p.WeekHeight() }

func newParams(net Network, epochLength uint64) *Params {
	p := &Params{
		Net:                  net,
		SubsidyEpochLength:   epochLength,
		BlockTimeSec:         60,
		ClampFactor:          2,
		DifficultyDampFactor: 3,
		ARScaleDampFactor:    13,
		MinDifficulty:        3,
		MinARScale:           13,
		ProofSize:            42,
		DefaultMinEdgeBits:   31,
		SecondPowEdgeBits:    29,
		BaseEdgeBits:         24,
		InputWeight:          1,
		OutputWeight:         21,
		KernelWeight:         3,
		MaxBlockWeight:       40_000,
	}
	p.DifficultyAdjustWindow = p.HourHeight()
	p.CoinbaseMaturity = p.DayHeight()
	p.CutThroughHorizon = p.WeekHeight()
	p.StateSyncThreshold = 2 * p.DayHeight()
	return p
}

// MainNetParams are the consensus parameters for the production network.
var MainNetParams = newParams(MainNet, 2_100_000)

// TestNetParams are the consensus parameters for the test network. The
// epoch length is drastically shortened so the full emission schedule is
// observable during testing.
var TestNetParams = newParams(TestNet, 2_880)

// ActiveParams selects the Params for a Network.
func ActiveParams(net Network) *Params {
	switch net {
	case TestNet:
		return TestNetParams
	default:
		return MainNetParams
	}
}
