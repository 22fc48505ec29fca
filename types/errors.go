package types

import "cosmossdk.io/errors"

// Engine failure kinds. Every arithmetic or guard failure raised by the accounting
// engine wraps exactly one of the first four errors.
var (
	ErrUnspecified  = errors.Register(ModuleName, 2, "unspecified vault error")
	ErrMathOverflow = errors.Register(ModuleName, 3, "math overflow")
	ErrGuardFail    = errors.Register(ModuleName, 4, "guard failed")
	ErrSelfTransfer = errors.Register(ModuleName, 5, "self transfer")

	ErrInvalidRequest = errors.Register(ModuleName, 6, "invalid request")
	ErrVaultNotFound  = errors.Register(ModuleName, 7, "vault not found")
	ErrUnauthorized   = errors.Register(ModuleName, 8, "unauthorized")
	ErrInsolvent      = errors.Register(ModuleName, 9, "vault insolvent")
	ErrInvalidDenom   = errors.Register(ModuleName, 10, "invalid denom")
)

// ErrorKind is the stable numeric classification of an engine failure.
type ErrorKind uint32

const (
	KindUnspecified ErrorKind = iota
	KindMathOverflow
	KindGuardFail
	KindSelfTransfer
)

// String returns the human readable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindMathOverflow:
		return "MathOverflow"
	case KindGuardFail:
		return "GuardFail"
	case KindSelfTransfer:
		return "SelfTransfer"
	default:
		return "Unspecified"
	}
}

// Kind classifies err. Errors that do not wrap an engine error are KindUnspecified.
func Kind(err error) ErrorKind {
	switch {
	case errors.IsOf(err, ErrMathOverflow):
		return KindMathOverflow
	case errors.IsOf(err, ErrGuardFail):
		return KindGuardFail
	case errors.IsOf(err, ErrSelfTransfer):
		return KindSelfTransfer
	default:
		return KindUnspecified
	}
}
