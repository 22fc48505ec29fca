package utils

import (
	"github.com/provlabs/tokenvault/types"
)

// AssetsToShares returns the number of shares minted for depositing amount assets
// into a vault holding assetsTotal assets backed by sharesTotal shares.
//
// Formula (integer, floor):
//
//	if sharesTotal == 0:
//	    shares = amount                      (1:1 bootstrap)
//	else:
//	    shares = floor( amount * sharesTotal / assetsTotal )
//
// Rounding down keeps every fractional share with the existing holders.
func AssetsToShares(amount, sharesTotal, assetsTotal uint64) (uint64, error) {
	if sharesTotal == 0 {
		return amount, nil
	}
	if assetsTotal == 0 {
		return 0, types.ErrUnspecified.Wrapf("vault has %d shares but no assets", sharesTotal)
	}
	return MulDivFloor(amount, sharesTotal, assetsTotal)
}

// SharesToAssets returns the assets paid out for redeeming amount shares.
//
// Formula (integer, floor):
//
//	assets = floor( amount * assetsTotal / sharesTotal )
//
// A vault with no shares outstanding cannot price a redemption and returns ErrUnspecified.
func SharesToAssets(amount, sharesTotal, assetsTotal uint64) (uint64, error) {
	if sharesTotal == 0 {
		return 0, types.ErrUnspecified.Wrap("vault has no shares outstanding")
	}
	return MulDivFloor(amount, assetsTotal, sharesTotal)
}

// AssetsForExactShares returns the assets a depositor must pay to receive exactly
// desiredShares.
//
// Formula (integer, ceil):
//
//	if sharesTotal == 0:
//	    assets = desiredShares               (1:1 bootstrap)
//	else:
//	    assets = ceil( desiredShares * assetsTotal / sharesTotal )
//
// Rounding up makes the depositor, not the vault, absorb the remainder.
func AssetsForExactShares(desiredShares, sharesTotal, assetsTotal uint64) (uint64, error) {
	if sharesTotal == 0 {
		return desiredShares, nil
	}
	if assetsTotal == 0 {
		return 0, types.ErrUnspecified.Wrapf("vault has %d shares but no assets", sharesTotal)
	}
	return MulDivCeil(desiredShares, assetsTotal, sharesTotal)
}

// SharePriceCeil returns ceil(assetsTotal / sharesTotal), the most a depositor can
// lose to rounding on a deposit followed by a full redeem. Zero for an empty vault.
func SharePriceCeil(sharesTotal, assetsTotal uint64) uint64 {
	if sharesTotal == 0 {
		return 0
	}
	price, _ := MulDivCeil(assetsTotal, 1, sharesTotal)
	return price
}
