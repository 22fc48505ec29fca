package simulation

import (
	"math"
	"math/rand"

	"github.com/provlabs/tokenvault/engine"
	"github.com/provlabs/tokenvault/types"
)

// Step records one operation applied by RunSequence.
type Step struct {
	Op     engine.Operation
	Amount uint64
	Pre    types.VaultRecord
	Post   types.VaultRecord
	Effect types.Effect
	Err    error
}

// RandomOperation picks any engine operation.
func RandomOperation(r *rand.Rand) engine.Operation {
	return engine.AllOperations[r.Intn(len(engine.AllOperations))]
}

// RandomOperationAmount picks an amount for op that is meaningful against vault,
// occasionally stepping outside the valid range.
func RandomOperationAmount(r *rand.Rand, vault types.VaultRecord, op engine.Operation) uint64 {
	switch op {
	case engine.OpRedeemShares:
		if r.Intn(10) == 0 {
			return RandomMagnitude(r)
		}
		return RandomAmount(r, vault.Shares)
	case engine.OpUpdateReward:
		return vault.Assets + RandomAmount(r, math.MaxUint64-vault.Assets)
	case engine.OpSlash:
		return RandomAmount(r, vault.Assets)
	default:
		return RandomMagnitude(r)
	}
}

// RunSequence applies steps random operations to vault, reporting each to observe.
// Failed operations are reported too; vault is left unchanged by them.
func RunSequence(r *rand.Rand, vault *types.VaultRecord, steps int, observe func(Step)) {
	for i := 0; i < steps; i++ {
		op := RandomOperation(r)
		amount := RandomOperationAmount(r, *vault, op)

		pre := *vault
		effect, err := engine.Apply(vault, op, amount)
		observe(Step{
			Op:     op,
			Amount: amount,
			Pre:    pre,
			Post:   *vault,
			Effect: effect,
			Err:    err,
		})
	}
}
