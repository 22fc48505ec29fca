package utils

import (
	"github.com/provlabs/tokenvault/types"
)

// ApplyFee splits gross into the amount credited to the vault and the fee.
//
//	fee = floor( gross * feeBps / 10000 )
//	net = gross - fee
//
// feeBps is validated when the vault is configured and is not checked here.
func ApplyFee(gross, feeBps uint64) (net uint64, fee uint64, err error) {
	fee, err = MulDivFloor(gross, feeBps, types.BpsDenominator)
	if err != nil {
		return 0, 0, err
	}
	net, err = CheckedSub(gross, fee)
	if err != nil {
		return 0, 0, err
	}
	return net, fee, nil
}

// GrossForNet returns a gross payment whose ApplyFee net is at least net, along
// with the fee ApplyFee takes from it.
//
//	gross = ceil( net * 10000 / (10000 - feeBps) )
//	fee   = floor( gross * feeBps / 10000 )
//
// net <= gross - fee <= net + 1.
func GrossForNet(net, feeBps uint64) (gross uint64, fee uint64, err error) {
	if feeBps >= types.BpsDenominator {
		return 0, 0, types.ErrUnspecified.Wrapf("fee of %d bps leaves nothing for the vault", feeBps)
	}
	gross, err = MulDivCeil(net, types.BpsDenominator, types.BpsDenominator-feeBps)
	if err != nil {
		return 0, 0, err
	}
	if _, fee, err = ApplyFee(gross, feeBps); err != nil {
		return 0, 0, err
	}
	return gross, fee, nil
}
