// Copyright (c) 2026 The MWC Node developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package subsidy implements the emission engine: the per-height block
// subsidy and the cumulative supply ("overage") it sums to.
package subsidy

import "fmt"

// Per-epoch reward constants.
const (
	// GenesisReward is the one-off block-0 correction so total ever-mined
	// supply equals exactly 21,000,000 * 10^9 base units.
	GenesisReward uint64 = 44_100_000

	// FirstGroupReward is the boosted subsidy paid throughout epoch 0.
	FirstGroupReward uint64 = 5_238_095_238

	// SecondGroupReward halves starting at epoch 1.
	SecondGroupReward uint64 = 2_380_952_380

	// numGroups is the number of halving epochs after which the subsidy
	// has floored to zero.
	numGroups = 32
)

// BlockSubsidy returns the base subsidy for the block at height, excluding
// fees:
//
//   - height == 0 (genesis): GenesisReward
//   - epoch 0 (1..epochLength):   FirstGroupReward
//   - epoch k, 1 <= k < 32:       SecondGroupReward*2 >> k
//   - epoch >= 32:                0
func BlockSubsidy(height, epochLength uint64) uint64 {
	if height == 0 {
		return GenesisReward
	}

	group := (height - 1) / epochLength
	switch {
	case group < 1:
		return FirstGroupReward
	case group >= numGroups:
		return 0
	default:
		return (SecondGroupReward * 2) >> group
	}
}

// BlockReward returns the total reward for a block: its subsidy plus the
// transaction fees it collects, saturating rather than overflowing.
func BlockReward(fee, height, epochLength uint64) uint64 {
	subsidy := BlockSubsidy(height, epochLength)
	sum := subsidy + fee
	if sum < subsidy {
		// overflow: saturate
		return ^uint64(0)
	}
	return sum
}

// CumulativeSupply sums every subsidy paid from genesis through height
// inclusive. When genesisHadReward is false, the genesis correction is
// subtracted — used exclusively by tests constructing chains that never
// paid out the genesis block.
//
// The loop always walks all 32 epochs, crediting
// min(remainingBlocks, epochLength) * epochSubsidy per iteration and
// breaking early once remainingBlocks is exhausted. It is deliberately not
// rewritten as a closed form.
func CumulativeSupply(height, epochLength uint64, genesisHadReward bool) uint64 {
	blockCount := height
	overage := GenesisReward

	for group := uint64(0); group < numGroups; group++ {
		var epochSubsidy uint64
		if group == 0 {
			epochSubsidy = FirstGroupReward
		} else {
			epochSubsidy = BlockSubsidy(group*epochLength+1, epochLength)
		}

		n := blockCount
		if n > epochLength {
			n = epochLength
		}
		overage += n * epochSubsidy

		if blockCount < epochLength {
			break
		}
		blockCount -= epochLength
	}

	if !genesisHadReward {
		overage -= GenesisReward
	}
	return overage
}

// Amount formats a base-unit quantity for logging, following the
// dcrutil.Amount idiom (an integral type with a divisor-aware String())
// but with this chain's own 10^9 base-unit scale rather than DCR's 10^8.
type Amount uint64

// String renders the amount as whole-coin units with nine fractional
// digits, trimming trailing zeros.
func (a Amount) String() string {
	const baseUnit = 1_000_000_000
	whole := uint64(a) / baseUnit
	frac := uint64(a) % baseUnit
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	s := fmt.Sprintf("%d.%09d", whole, frac)
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if s[i-1] == '.' {
		i--
	}
	return s[:i]
}
