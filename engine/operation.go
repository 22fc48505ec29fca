package engine

import (
	"fmt"

	"github.com/provlabs/tokenvault/types"
)

// Operation names one of the vault handlers.
type Operation uint8

const (
	OpDeposit Operation = iota
	OpDepositWithFee
	OpDepositExact
	OpDepositWithFeeExact
	OpRedeemShares
	OpUpdateReward
	OpSlash
)

// AllOperations lists every operation in declaration order.
var AllOperations = []Operation{
	OpDeposit,
	OpDepositWithFee,
	OpDepositExact,
	OpDepositWithFeeExact,
	OpRedeemShares,
	OpUpdateReward,
	OpSlash,
}

var operationNames = map[Operation]string{
	OpDeposit:             "deposit",
	OpDepositWithFee:      "deposit_with_fee",
	OpDepositExact:        "deposit_exact",
	OpDepositWithFeeExact: "deposit_with_fee_exact",
	OpRedeemShares:        "redeem_shares",
	OpUpdateReward:        "update_reward",
	OpSlash:               "slash",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", uint8(o))
}

// IsDeposit reports whether o mints shares.
func (o Operation) IsDeposit() bool {
	return o <= OpDepositWithFeeExact
}

// IsExact reports whether o takes a share amount rather than an asset amount.
func (o Operation) IsExact() bool {
	return o == OpDepositExact || o == OpDepositWithFeeExact
}

// IsPrivileged reports whether o requires the vault admin.
func (o Operation) IsPrivileged() bool {
	return o == OpUpdateReward || o == OpSlash
}

// Apply runs op against v with the given amount.
func Apply(v *types.VaultRecord, op Operation, amount uint64) (types.Effect, error) {
	switch op {
	case OpDeposit:
		return Deposit(v, amount)
	case OpDepositWithFee:
		return DepositWithFee(v, amount)
	case OpDepositExact:
		return DepositExact(v, amount)
	case OpDepositWithFeeExact:
		return DepositWithFeeExact(v, amount)
	case OpRedeemShares:
		return RedeemShares(v, amount)
	case OpUpdateReward:
		return UpdateReward(v, amount)
	case OpSlash:
		return Slash(v, amount)
	default:
		return types.Effect{}, types.ErrUnspecified.Wrapf("unknown %s", op)
	}
}

// Preview runs op against a copy of v, returning the effect it would have.
func Preview(v types.VaultRecord, op Operation, amount uint64) (types.Effect, error) {
	return Apply(&v, op, amount)
}

// DepositOperation selects the deposit handler for the given flags.
func DepositOperation(exact, withFee bool) Operation {
	switch {
	case exact && withFee:
		return OpDepositWithFeeExact
	case exact:
		return OpDepositExact
	case withFee:
		return OpDepositWithFee
	default:
		return OpDeposit
	}
}
