package keeper

import (
	"fmt"
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/types"
)

// InitGenesis initializes the tokenvault module state from genesis.
func (k Keeper) InitGenesis(ctx sdk.Context, genState *types.GenesisState) {
	if genState == nil {
		return
	}

	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid tokenvault genesis state: %w", err))
	}

	for i, v := range genState.Vaults {
		if err := k.SetVault(ctx, v); err != nil {
			panic(fmt.Errorf("failed to store vault at index %d: %w", i, err))
		}
	}

	if err := k.VaultSeq.Set(ctx, uint64(genState.NextVaultID)); err != nil {
		panic(fmt.Errorf("failed to set vault sequence: %w", err))
	}
}

// ExportGenesis exports the current state of the tokenvault module.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	vaults, err := k.GetVaults(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to export vaults: %w", err))
	}

	next, err := k.VaultSeq.Peek(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to read vault sequence: %w", err))
	}
	if next > math.MaxUint32 {
		panic(fmt.Errorf("vault sequence %d does not fit in 32 bits", next))
	}

	return &types.GenesisState{
		Vaults:      vaults,
		NextVaultID: uint32(next),
	}
}
