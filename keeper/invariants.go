package keeper

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/types"
)

const (
	SolvencyInvariantRoute    = "solvency"
	ShareSupplyInvariantRoute = "share-supply"
)

// RegisterInvariants registers the tokenvault module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, SolvencyInvariantRoute, SolvencyInvariant(k))
	ir.RegisterRoute(types.ModuleName, ShareSupplyInvariantRoute, ShareSupplyInvariant(k))
}

// SolvencyInvariant checks that every vault's assets account holds at least the
// vault's recognized assets, and that no vault is in an illegal zero state.
func SolvencyInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		return k.checkVaults(ctx, SolvencyInvariantRoute, func(vault types.VaultRecord) string {
			if (vault.Shares == 0) != (vault.Assets == 0) {
				return fmt.Sprintf("vault %d has %d shares and %d assets", vault.ID, vault.Shares, vault.Assets)
			}
			balance := k.BankKeeper.GetBalance(ctx, vault.GetVaultAssetsAccount(), vault.AssetsDenom)
			if balance.Amount.LT(sdkmath.NewIntFromUint64(vault.Assets)) {
				return fmt.Sprintf("vault %d recognizes %d %s but holds %s", vault.ID, vault.Assets, vault.AssetsDenom, balance)
			}
			return ""
		})
	}
}

// ShareSupplyInvariant checks that every vault's share supply equals its recorded shares.
func ShareSupplyInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		return k.checkVaults(ctx, ShareSupplyInvariantRoute, func(vault types.VaultRecord) string {
			supply := k.BankKeeper.GetSupply(ctx, vault.SharesDenom)
			if !supply.Amount.Equal(sdkmath.NewIntFromUint64(vault.Shares)) {
				return fmt.Sprintf("vault %d records %d shares but supply is %s", vault.ID, vault.Shares, supply)
			}
			return ""
		})
	}
}

func (k *Keeper) checkVaults(ctx sdk.Context, route string, check func(types.VaultRecord) string) (string, bool) {
	var broken []string
	err := k.Vaults.Walk(ctx, nil, func(_ uint32, vault types.VaultRecord) (bool, error) {
		if msg := check(vault); msg != "" {
			broken = append(broken, msg)
		}
		return false, nil
	})
	if err != nil {
		broken = append(broken, fmt.Sprintf("failed to walk vaults: %s", err))
	}

	msg := fmt.Sprintf("%d vaults broken\n", len(broken))
	if len(broken) > 0 {
		msg += strings.Join(broken, "\n")
	}
	return sdk.FormatInvariant(types.ModuleName, route, msg), len(broken) > 0
}
