package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/engine"
	"github.com/provlabs/tokenvault/types"
)

// settleFunc moves the tokens described by effect for an operation already applied to vault.
type settleFunc func(ctx sdk.Context, vault types.VaultRecord, effect types.Effect) error

// Deposit deposits assets into the vault in exchange for newly minted shares.
// With withFee set the vault's fee is deducted from the deposit and sent to the
// vault's fee token account.
//
// It performs the following steps:
//  1. Loads the vault and checks the coin is the vault's asset denom.
//  2. Rejects an owner that is the vault assets account (or the fee account when a nonzero fee applies).
//  3. Runs the engine on a copy of the vault.
//  4. Persists the new totals, transfers the assets and fee, and mints the shares to owner,
//     all in a cached context that is written only if every step succeeds.
//  5. Emits a deposit event.
func (k *Keeper) Deposit(ctx sdk.Context, vaultID uint32, owner sdk.AccAddress, assets sdk.Coin, withFee bool) (types.Effect, error) {
	return k.deposit(ctx, vaultID, owner, assets, engine.DepositOperation(false, withFee))
}

// DepositExact mints exactly shares.Amount shares to owner, charging the rounded-up
// asset cost (plus fee when withFee is set).
func (k *Keeper) DepositExact(ctx sdk.Context, vaultID uint32, owner sdk.AccAddress, shares sdk.Coin, withFee bool) (types.Effect, error) {
	return k.deposit(ctx, vaultID, owner, shares, engine.DepositOperation(true, withFee))
}

func (k *Keeper) deposit(ctx sdk.Context, vaultID uint32, owner sdk.AccAddress, amount sdk.Coin, op engine.Operation) (types.Effect, error) {
	vault, err := k.loadVault(ctx, vaultID)
	if err != nil {
		return types.Effect{}, err
	}

	expected := vault.AssetsDenom
	if op.IsExact() {
		expected = vault.SharesDenom
	}
	if amount.Denom != expected {
		return types.Effect{}, types.ErrInvalidDenom.Wrapf("%s expects %q, got %q", op, expected, amount.Denom)
	}
	amt, err := coinAmount(amount)
	if err != nil {
		return types.Effect{}, err
	}

	if owner.Equals(vault.GetVaultAssetsAccount()) {
		return types.Effect{}, types.ErrSelfTransfer.Wrapf("vault %d assets account cannot deposit into itself", vaultID)
	}
	chargesFee := (op == engine.OpDepositWithFee || op == engine.OpDepositWithFeeExact) && vault.FeeBps > 0
	if chargesFee && owner.Equals(vault.GetFeeTokenAccount()) {
		return types.Effect{}, types.ErrSelfTransfer.Wrapf("fee token account of vault %d cannot pay its own fee", vaultID)
	}

	next, effect, err := k.apply(ctx, *vault, op, amt, func(cacheCtx sdk.Context, next types.VaultRecord, effect types.Effect) error {
		return k.settleDeposit(cacheCtx, next, owner, effect)
	})
	if err != nil {
		return types.Effect{}, err
	}

	k.getLogger(ctx).Debug("vault deposit",
		"vault_id", vaultID,
		"operation", op.String(),
		"owner", owner.String(),
		"assets_in", effect.AssetsToVault,
		"fee", effect.AssetsToFee,
		"shares_out", effect.SharesToUser,
	)
	k.emitEvent(ctx, types.NewEventDeposit(next, owner.String(), op.String(), effect))
	return effect, nil
}

// RedeemShares burns the owner's shares and sends the rounded-down asset value
// from the vault assets account to owner.
func (k *Keeper) RedeemShares(ctx sdk.Context, vaultID uint32, owner sdk.AccAddress, shares sdk.Coin) (types.Effect, error) {
	vault, err := k.loadVault(ctx, vaultID)
	if err != nil {
		return types.Effect{}, err
	}
	if shares.Denom != vault.SharesDenom {
		return types.Effect{}, types.ErrInvalidDenom.Wrapf("redeem expects %q, got %q", vault.SharesDenom, shares.Denom)
	}
	amt, err := coinAmount(shares)
	if err != nil {
		return types.Effect{}, err
	}
	if owner.Equals(vault.GetVaultAssetsAccount()) {
		return types.Effect{}, types.ErrSelfTransfer.Wrapf("vault %d assets account cannot redeem to itself", vaultID)
	}

	next, effect, err := k.apply(ctx, *vault, engine.OpRedeemShares, amt, func(cacheCtx sdk.Context, next types.VaultRecord, effect types.Effect) error {
		return k.settleRedeem(cacheCtx, next, owner, effect)
	})
	if err != nil {
		return types.Effect{}, err
	}

	k.getLogger(ctx).Debug("vault redeem",
		"vault_id", vaultID,
		"owner", owner.String(),
		"shares_burned", effect.SharesToBurn,
		"assets_out", effect.AssetsToUser,
	)
	k.emitEvent(ctx, types.NewEventRedeem(next, owner.String(), effect))
	return effect, nil
}

// UpdateReward recognizes yield by raising the vault's assets to newAssetsTotal.
// The vault assets account must already hold at least newAssetsTotal.
func (k *Keeper) UpdateReward(ctx sdk.Context, vaultID uint32, admin sdk.AccAddress, newAssetsTotal uint64) error {
	vault, err := k.loadVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(*vault, admin); err != nil {
		return err
	}

	before := vault.Assets
	next, _, err := k.apply(ctx, *vault, engine.OpUpdateReward, newAssetsTotal, k.requireSolvent)
	if err != nil {
		return err
	}

	k.getLogger(ctx).Info("vault reward updated", "vault_id", vaultID, "assets_before", before, "assets_after", next.Assets)
	k.emitEvent(ctx, types.NewEventRewardUpdated(next, admin.String(), before))
	return nil
}

// Slash realizes a loss by lowering the vault's assets to newAssetsTotal.
// No tokens move; the loss has already happened outside the vault.
func (k *Keeper) Slash(ctx sdk.Context, vaultID uint32, admin sdk.AccAddress, newAssetsTotal uint64) error {
	vault, err := k.loadVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(*vault, admin); err != nil {
		return err
	}

	before := vault.Assets
	next, _, err := k.apply(ctx, *vault, engine.OpSlash, newAssetsTotal, nil)
	if err != nil {
		return err
	}

	k.getLogger(ctx).Info("vault slashed", "vault_id", vaultID, "assets_before", before, "assets_after", next.Assets)
	k.emitEvent(ctx, types.NewEventSlashed(next, admin.String(), before))
	return nil
}

// apply runs op on a copy of vault, then persists the result and settles it in a
// cached context. The cache is written only if both succeed.
func (k *Keeper) apply(ctx sdk.Context, vault types.VaultRecord, op engine.Operation, amount uint64, settle settleFunc) (types.VaultRecord, types.Effect, error) {
	next := vault
	effect, err := engine.Apply(&next, op, amount)
	if err != nil {
		return types.VaultRecord{}, types.Effect{}, errorsmod.Wrapf(err, "%s on vault %d", op, vault.ID)
	}

	cacheCtx, write := ctx.CacheContext()
	if err := k.Vaults.Set(cacheCtx, next.ID, next); err != nil {
		return types.VaultRecord{}, types.Effect{}, fmt.Errorf("failed to store vault %d: %w", next.ID, err)
	}
	if settle != nil {
		if err := settle(cacheCtx, next, effect); err != nil {
			k.getLogger(ctx).Error("vault settlement failed", "vault_id", vault.ID, "operation", op.String(), "error", err)
			return types.VaultRecord{}, types.Effect{}, err
		}
	}
	write()

	return next, effect, nil
}

func (k *Keeper) settleDeposit(ctx sdk.Context, vault types.VaultRecord, owner sdk.AccAddress, effect types.Effect) error {
	if err := k.BankKeeper.SendCoins(ctx, owner, vault.GetVaultAssetsAccount(), newCoins(vault.AssetsDenom, effect.AssetsToVault)); err != nil {
		return fmt.Errorf("failed to transfer assets to vault: %w", err)
	}
	if effect.AssetsToFee > 0 {
		if err := k.BankKeeper.SendCoins(ctx, owner, vault.GetFeeTokenAccount(), newCoins(vault.AssetsDenom, effect.AssetsToFee)); err != nil {
			return fmt.Errorf("failed to transfer fee: %w", err)
		}
	}

	shares := newCoins(vault.SharesDenom, effect.SharesToUser)
	if err := k.BankKeeper.MintCoins(ctx, types.ModuleName, shares); err != nil {
		return fmt.Errorf("failed to mint shares: %w", err)
	}
	if err := k.BankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, shares); err != nil {
		return fmt.Errorf("failed to send minted shares: %w", err)
	}
	return nil
}

func (k *Keeper) settleRedeem(ctx sdk.Context, vault types.VaultRecord, owner sdk.AccAddress, effect types.Effect) error {
	shares := newCoins(vault.SharesDenom, effect.SharesToBurn)
	if err := k.BankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, shares); err != nil {
		return fmt.Errorf("failed to escrow shares for burning: %w", err)
	}
	if err := k.BankKeeper.BurnCoins(ctx, types.ModuleName, shares); err != nil {
		return fmt.Errorf("failed to burn shares: %w", err)
	}
	if err := k.BankKeeper.SendCoins(ctx, vault.GetVaultAssetsAccount(), owner, newCoins(vault.AssetsDenom, effect.AssetsToUser)); err != nil {
		return fmt.Errorf("failed to transfer assets to owner: %w", err)
	}
	return nil
}

// requireSolvent returns ErrInsolvent when the vault assets account holds less than the vault's assets.
func (k *Keeper) requireSolvent(ctx sdk.Context, vault types.VaultRecord, _ types.Effect) error {
	balance := k.BankKeeper.GetBalance(ctx, vault.GetVaultAssetsAccount(), vault.AssetsDenom)
	if balance.Amount.LT(sdkmath.NewIntFromUint64(vault.Assets)) {
		return types.ErrInsolvent.Wrapf("vault %d recognizes %d %s but holds %s", vault.ID, vault.Assets, vault.AssetsDenom, balance)
	}
	return nil
}

func coinAmount(coin sdk.Coin) (uint64, error) {
	if coin.Amount.IsNil() || coin.Amount.IsNegative() {
		return 0, types.ErrInvalidRequest.Wrapf("invalid amount %s", coin)
	}
	if !coin.Amount.IsUint64() {
		return 0, types.ErrMathOverflow.Wrapf("amount %s does not fit in 64 bits", coin)
	}
	return coin.Amount.Uint64(), nil
}

func newCoins(denom string, amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
}
