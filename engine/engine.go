// Package engine implements the vault accounting operations.
//
// Every handler reads the vault's (Shares, Assets) totals as the pre-operation
// state, computes the resulting effect, and writes both totals only after every
// fallible step has succeeded. A handler that returns an error leaves the vault
// exactly as it was. Handlers move no tokens; callers apply the returned Effect.
package engine

import (
	"github.com/provlabs/tokenvault/types"
	"github.com/provlabs/tokenvault/utils"
)

// Deposit converts assetsIn into shares at the current price.
func Deposit(v *types.VaultRecord, assetsIn uint64) (types.Effect, error) {
	sharesOut, err := utils.AssetsToShares(assetsIn, v.Shares, v.Assets)
	if err != nil {
		return types.Effect{}, err
	}
	if sharesOut == 0 {
		return types.Effect{}, types.ErrGuardFail.Wrapf("deposit of %d assets mints zero shares", assetsIn)
	}

	effect := types.Effect{AssetsToVault: assetsIn, SharesToUser: sharesOut}
	if err := credit(v, assetsIn, sharesOut); err != nil {
		return types.Effect{}, err
	}
	return effect, nil
}

// DepositWithFee takes the vault's fee from assetsIn and converts the remainder.
// With a zero fee it behaves exactly like Deposit.
func DepositWithFee(v *types.VaultRecord, assetsIn uint64) (types.Effect, error) {
	net, fee, err := utils.ApplyFee(assetsIn, v.FeeBps)
	if err != nil {
		return types.Effect{}, err
	}

	sharesOut, err := utils.AssetsToShares(net, v.Shares, v.Assets)
	if err != nil {
		return types.Effect{}, err
	}
	if sharesOut == 0 {
		return types.Effect{}, types.ErrGuardFail.Wrapf("deposit of %d assets (%d after fee) mints zero shares", assetsIn, net)
	}

	effect := types.Effect{AssetsToVault: net, AssetsToFee: fee, SharesToUser: sharesOut}
	if err := credit(v, net, sharesOut); err != nil {
		return types.Effect{}, err
	}
	return effect, nil
}

// DepositExact mints exactly desiredShares, charging the rounded-up asset cost.
func DepositExact(v *types.VaultRecord, desiredShares uint64) (types.Effect, error) {
	assetsIn, err := utils.AssetsForExactShares(desiredShares, v.Shares, v.Assets)
	if err != nil {
		return types.Effect{}, err
	}

	effect := types.Effect{AssetsToVault: assetsIn, SharesToUser: desiredShares}
	if err := credit(v, assetsIn, desiredShares); err != nil {
		return types.Effect{}, err
	}
	return effect, nil
}

// DepositWithFeeExact mints exactly desiredShares. The depositor pays the gross
// amount whose post-fee remainder covers the rounded-up share cost.
func DepositWithFeeExact(v *types.VaultRecord, desiredShares uint64) (types.Effect, error) {
	cost, err := utils.AssetsForExactShares(desiredShares, v.Shares, v.Assets)
	if err != nil {
		return types.Effect{}, err
	}

	gross, fee, err := utils.GrossForNet(cost, v.FeeBps)
	if err != nil {
		return types.Effect{}, err
	}
	net, err := utils.CheckedSub(gross, fee)
	if err != nil {
		return types.Effect{}, err
	}

	effect := types.Effect{AssetsToVault: net, AssetsToFee: fee, SharesToUser: desiredShares}
	if err := credit(v, net, desiredShares); err != nil {
		return types.Effect{}, err
	}
	return effect, nil
}

// RedeemShares burns sharesIn and pays out their rounded-down asset value. A
// dust redeem burns its shares for nothing, which only raises the share price.
func RedeemShares(v *types.VaultRecord, sharesIn uint64) (types.Effect, error) {
	if sharesIn == 0 {
		return types.Effect{}, nil
	}
	if sharesIn > v.Shares {
		return types.Effect{}, types.ErrGuardFail.Wrapf("cannot redeem %d shares, only %d outstanding", sharesIn, v.Shares)
	}

	assetsOut, err := utils.SharesToAssets(sharesIn, v.Shares, v.Assets)
	if err != nil {
		return types.Effect{}, err
	}
	newAssets, err := utils.CheckedSub(v.Assets, assetsOut)
	if err != nil {
		return types.Effect{}, err
	}
	newShares, err := utils.CheckedSub(v.Shares, sharesIn)
	if err != nil {
		return types.Effect{}, err
	}

	// Redeeming every share pays out exactly Assets, so the vault returns to (0, 0).
	v.Assets, v.Shares = newAssets, newShares
	return types.Effect{SharesToBurn: sharesIn, AssetsToUser: assetsOut}, nil
}

// UpdateReward raises the vault's recognized assets to newAssetsTotal.
// A decrease must go through Slash.
func UpdateReward(v *types.VaultRecord, newAssetsTotal uint64) (types.Effect, error) {
	if newAssetsTotal < v.Assets {
		return types.Effect{}, types.ErrGuardFail.Wrapf("reward cannot lower assets from %d to %d", v.Assets, newAssetsTotal)
	}
	if v.Shares == 0 && newAssetsTotal > 0 {
		return types.Effect{}, types.ErrGuardFail.Wrap("cannot reward a vault with no shares outstanding")
	}

	v.Assets = newAssetsTotal
	return types.Effect{}, nil
}

// Slash lowers the vault's recognized assets to newAssetsTotal. It is the only
// operation that may reduce the price per share.
func Slash(v *types.VaultRecord, newAssetsTotal uint64) (types.Effect, error) {
	if newAssetsTotal > v.Assets {
		return types.Effect{}, types.ErrGuardFail.Wrapf("slash cannot raise assets from %d to %d", v.Assets, newAssetsTotal)
	}
	if v.Shares > 0 && newAssetsTotal == 0 {
		return types.Effect{}, types.ErrGuardFail.Wrapf("slash to zero would leave %d shares unbacked", v.Shares)
	}

	v.Assets = newAssetsTotal
	return types.Effect{}, nil
}

// credit adds assets and shares to the vault totals, committing neither on overflow.
func credit(v *types.VaultRecord, assets, shares uint64) error {
	newAssets, err := utils.CheckedAdd(v.Assets, assets)
	if err != nil {
		return err
	}
	newShares, err := utils.CheckedAdd(v.Shares, shares)
	if err != nil {
		return err
	}
	v.Assets, v.Shares = newAssets, newShares
	return nil
}
