package interest

import (
	"fmt"

	cosmosmath "cosmossdk.io/math"

	"github.com/provlabs/tokenvault/types"
	"github.com/provlabs/tokenvault/utils"
)

const (
	SecondsPerYear = 31_536_000
	EulerPrecision = 18

	// MaxExponent bounds r*t. e^45 exceeds the 64-bit range, so any larger
	// exponent overflows for every nonzero principal.
	MaxExponent = 45
)

// CalculateRewardEarned returns the continuously compounded yield on principal
// over periodSeconds at the annual rate:
//
//	reward = floor( P * e^(r*t) - P ),  t = periodSeconds / SecondsPerYear
//
// The rate must not be negative; losses are realized through a slash instead.
func CalculateRewardEarned(principal uint64, rate string, periodSeconds int64) (uint64, error) {
	if periodSeconds <= 0 {
		return 0, fmt.Errorf("periodSeconds must be positive")
	}

	r, err := cosmosmath.LegacyNewDecFromStr(rate)
	if err != nil {
		return 0, fmt.Errorf("invalid rate string: %w", err)
	}
	if r.IsNegative() {
		return 0, types.ErrGuardFail.Wrapf("negative rate %s cannot accrue a reward", rate)
	}

	p := cosmosmath.LegacyNewDecFromInt(cosmosmath.NewIntFromUint64(principal))
	t := cosmosmath.LegacyNewDec(periodSeconds).QuoInt64(SecondsPerYear)
	if r.GT(cosmosmath.LegacyNewDec(MaxExponent).Quo(t)) {
		return 0, types.ErrMathOverflow.Wrapf("rate %s over %d seconds grows beyond 64 bits", rate, periodSeconds)
	}

	eRt := utils.ExpDec(r.Mul(t), EulerPrecision)
	reward := p.Mul(eRt).Sub(p).TruncateInt()

	if !reward.IsUint64() {
		return 0, types.ErrMathOverflow.Wrapf("reward %s on %d does not fit in 64 bits", reward, principal)
	}
	return reward.Uint64(), nil
}
