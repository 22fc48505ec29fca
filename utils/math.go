package utils

import (
	"math/bits"

	"cosmossdk.io/math"

	"github.com/provlabs/tokenvault/types"
)

// Rounding selects the direction of the single narrowing division in MulDiv.
type Rounding uint8

const (
	// RoundFloor rounds the quotient toward zero.
	RoundFloor Rounding = iota
	// RoundCeil rounds any non-zero remainder up.
	RoundCeil
)

// CheckedAdd returns a + b or ErrMathOverflow.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, types.ErrMathOverflow.Wrapf("%d + %d overflows uint64", a, b)
	}
	return sum, nil
}

// CheckedSub returns a - b or ErrMathOverflow on underflow.
func CheckedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, types.ErrMathOverflow.Wrapf("%d - %d underflows uint64", a, b)
	}
	return diff, nil
}

// CheckedMul returns a * b or ErrMathOverflow.
func CheckedMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, types.ErrMathOverflow.Wrapf("%d * %d overflows uint64", a, b)
	}
	return lo, nil
}

// MulDiv computes a * b / c with the product held in a wide integer, so the only
// narrowing step is the final quotient.
//
//	floor: q = floor(a*b / c)
//	ceil:  q = floor(a*b / c) + (a*b mod c != 0 ? 1 : 0)
//
// Returns ErrUnspecified when c is zero and ErrMathOverflow when q does not fit in 64 bits.
func MulDiv(a, b, c uint64, rounding Rounding) (uint64, error) {
	if c == 0 {
		return 0, types.ErrUnspecified.Wrapf("division by zero computing %d * %d / 0", a, b)
	}

	num := math.NewIntFromUint64(a).Mul(math.NewIntFromUint64(b))
	den := math.NewIntFromUint64(c)

	q := num.Quo(den)
	if rounding == RoundCeil && !num.Mod(den).IsZero() {
		q = q.AddRaw(1)
	}

	if !q.IsUint64() {
		return 0, types.ErrMathOverflow.Wrapf("%d * %d / %d overflows uint64", a, b, c)
	}
	return q.Uint64(), nil
}

// MulDivFloor is MulDiv rounding down.
func MulDivFloor(a, b, c uint64) (uint64, error) {
	return MulDiv(a, b, c, RoundFloor)
}

// MulDivCeil is MulDiv rounding up.
func MulDivCeil(a, b, c uint64) (uint64, error) {
	return MulDiv(a, b, c, RoundCeil)
}

// ExpDec calculates e^x using the Maclaurin series expansion up to `terms` terms.
// Safe for on-chain use (fully deterministic).
//
//	e^x = 1 + x + x^2/2! + x^3/3! + ... + x^n/n!
//
// Note: x is cosmosmath.LegacyDec; higher `terms` -> greater accuracy.
func ExpDec(x math.LegacyDec, terms int) math.LegacyDec {
	result := math.LegacyOneDec()
	power := math.LegacyOneDec()
	factorial := math.LegacyOneDec()

	for i := 1; i <= terms; i++ {
		power = power.Mul(x)
		factorial = factorial.MulInt64(int64(i))
		term := power.Quo(factorial)
		result = result.Add(term)
	}

	return result
}
