package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/interest"
	"github.com/provlabs/tokenvault/utils"
)

// AccrueReward pays continuously compounded yield on the vault's recognized assets
// for periodSeconds at the annual rate. The admin funds the reward into the vault
// assets account and the vault's assets are raised by the same amount.
//
// Returns the reward paid, which is zero when nothing accrued.
func (k *Keeper) AccrueReward(ctx sdk.Context, vaultID uint32, admin sdk.AccAddress, rate string, periodSeconds int64) (uint64, error) {
	vault, err := k.loadVault(ctx, vaultID)
	if err != nil {
		return 0, err
	}
	if err := k.requireAdmin(*vault, admin); err != nil {
		return 0, err
	}

	reward, err := interest.CalculateRewardEarned(vault.Assets, rate, periodSeconds)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate reward: %w", err)
	}
	if reward == 0 {
		k.getLogger(ctx).Debug("no reward accrued", "vault_id", vaultID, "rate", rate, "period_seconds", periodSeconds)
		return 0, nil
	}

	newTotal, err := utils.CheckedAdd(vault.Assets, reward)
	if err != nil {
		return 0, err
	}

	cacheCtx, write := ctx.CacheContext()
	if err := k.BankKeeper.SendCoins(cacheCtx, admin, vault.GetVaultAssetsAccount(), newCoins(vault.AssetsDenom, reward)); err != nil {
		return 0, fmt.Errorf("failed to fund reward: %w", err)
	}
	if err := k.UpdateReward(cacheCtx, vaultID, admin, newTotal); err != nil {
		return 0, err
	}
	write()

	return reward, nil
}
