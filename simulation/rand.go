package simulation

import (
	"math"
	"math/rand"
	"strings"

	sdkmath "cosmossdk.io/math"

	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/tokenvault/types"
)

const (
	ChanceOfBoundaryAmount = 4 // 1 in X
	ChanceOfEmptyVault     = 8 // 1 in X
	ChanceOfZeroFee        = 3 // 1 in X
	ChanceOfMaxFee         = 6 // 1 in X
	MinDenomLength         = 3
	MaxDenomLength         = 12
)

// Magnitudes are the upper bounds RandomMagnitude picks between, so that small,
// realistic and overflow-adjacent values are all exercised.
var Magnitudes = []uint64{10, 1_000, 1_000_000_000, 1 << 40, math.MaxUint64 / 2, math.MaxUint64}

// RandomAmount returns a value in [0, maxVal], biased toward 0, 1, maxVal-1 and maxVal.
func RandomAmount(r *rand.Rand, maxVal uint64) uint64 {
	if maxVal == 0 {
		return 0
	}
	if r.Intn(ChanceOfBoundaryAmount) == 0 {
		boundaries := []uint64{0, 1, maxVal - 1, maxVal}
		return boundaries[r.Intn(len(boundaries))]
	}
	return simtypes.RandomAmount(r, sdkmath.NewIntFromUint64(maxVal)).Uint64()
}

// RandomMagnitude returns RandomAmount under a randomly chosen magnitude.
func RandomMagnitude(r *rand.Rand) uint64 {
	return RandomAmount(r, Magnitudes[r.Intn(len(Magnitudes))])
}

// RandomPositive returns a RandomMagnitude of at least 1.
func RandomPositive(r *rand.Rand) uint64 {
	if v := RandomMagnitude(r); v > 0 {
		return v
	}
	return 1
}

// RandomTotals returns a legal (shares, assets) pair: both zero or both positive.
func RandomTotals(r *rand.Rand) (shares, assets uint64) {
	if r.Intn(ChanceOfEmptyVault) == 0 {
		return 0, 0
	}
	return RandomPositive(r), RandomPositive(r)
}

// RandomFeeBps returns a fee in [0, MaxFeeBps], biased toward both ends.
func RandomFeeBps(r *rand.Rand) uint64 {
	switch {
	case r.Intn(ChanceOfZeroFee) == 0:
		return 0
	case r.Intn(ChanceOfMaxFee) == 0:
		return types.MaxFeeBps
	default:
		return uint64(r.Int63n(int64(types.MaxFeeBps) + 1))
	}
}

// RandomVaultState returns a valid vault with random totals and fee.
func RandomVaultState(r *rand.Rand, id uint32, admin, feeTokenAccount string) types.VaultRecord {
	vault := types.NewVaultRecord(id, admin, RandomDenom(r, "vs"), RandomDenom(r, "va"), RandomFeeBps(r), feeTokenAccount)
	vault.Shares, vault.Assets = RandomTotals(r)
	return vault
}

// RandomDenom generates a random lowercase denom starting with prefix.
func RandomDenom(r *rand.Rand, prefix string) string {
	n := MinDenomLength + r.Intn(MaxDenomLength-MinDenomLength+1)
	return prefix + strings.ToLower(simtypes.RandStringOfLength(r, n))
}
