package keeper

import (
	"errors"
	"fmt"
	"math"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/types"
)

// VaultAttributer provides the attributes for creating a new vault.
type VaultAttributer interface {
	GetAdmin() string
	GetSharesDenom() string
	GetAssetsDenom() string
	GetFeeBps() uint64
	GetFeeTokenAccount() string
}

// CreateVault creates an empty vault based on the provided attributes.
//
// The shares denom must not be used by another vault and must have no supply, since
// the vault mints and burns it exclusively.
func (k *Keeper) CreateVault(ctx sdk.Context, attributes VaultAttributer) (*types.VaultRecord, error) {
	sharesDenom := attributes.GetSharesDenom()

	if supply := k.BankKeeper.GetSupply(ctx, sharesDenom); !supply.IsZero() {
		return nil, fmt.Errorf("shares denom %q already has a supply of %s", sharesDenom, supply)
	}
	inUse, err := k.Vaults.Iterate(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate vaults: %w", err)
	}
	defer inUse.Close()
	for ; inUse.Valid(); inUse.Next() {
		existing, err := inUse.Value()
		if err != nil {
			return nil, fmt.Errorf("failed to read vault: %w", err)
		}
		if existing.SharesDenom == sharesDenom {
			return nil, fmt.Errorf("shares denom %q is already used by vault %d", sharesDenom, existing.ID)
		}
	}

	id, err := k.VaultSeq.Peek(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault sequence: %w", err)
	}
	// The next id must still fit in the exported uint32 sequence.
	if id >= math.MaxUint32 {
		return nil, fmt.Errorf("vault id space exhausted")
	}

	vault := types.NewVaultRecord(
		uint32(id),
		attributes.GetAdmin(),
		sharesDenom,
		attributes.GetAssetsDenom(),
		attributes.GetFeeBps(),
		attributes.GetFeeTokenAccount(),
	)
	if err := k.SetVault(ctx, vault); err != nil {
		return nil, err
	}
	if _, err := k.VaultSeq.Next(ctx); err != nil {
		return nil, fmt.Errorf("failed to advance vault sequence: %w", err)
	}

	k.getLogger(ctx).Info("vault created", "vault_id", vault.ID, "shares_denom", vault.SharesDenom, "assets_denom", vault.AssetsDenom)
	k.emitEvent(ctx, types.NewEventVaultCreated(vault))
	return &vault, nil
}

// GetVault finds a vault by id.
//
// This function will return nil if no vault exists with this id.
func (k Keeper) GetVault(ctx sdk.Context, vaultID uint32) (*types.VaultRecord, error) {
	vault, err := k.Vaults.Get(ctx, vaultID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vault %d: %w", vaultID, err)
	}
	return &vault, nil
}

// SetVault validates and persists a vault.
func (k Keeper) SetVault(ctx sdk.Context, vault types.VaultRecord) error {
	if err := vault.Validate(); err != nil {
		return fmt.Errorf("failed to validate vault: %w", err)
	}
	if err := k.Vaults.Set(ctx, vault.ID, vault); err != nil {
		return fmt.Errorf("failed to store vault %d: %w", vault.ID, err)
	}
	return nil
}

// GetVaults is a helper function for retrieving all vaults from state.
func (k Keeper) GetVaults(ctx sdk.Context) ([]types.VaultRecord, error) {
	vaults := []types.VaultRecord{}
	err := k.Vaults.Walk(ctx, nil, func(_ uint32, vault types.VaultRecord) (stop bool, err error) {
		vaults = append(vaults, vault)
		return false, nil
	})
	return vaults, err
}

// SetFeeBps changes the vault's deposit fee. Only the vault admin may call it.
func (k *Keeper) SetFeeBps(ctx sdk.Context, vaultID uint32, admin sdk.AccAddress, feeBps uint64) error {
	vault, err := k.loadVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if err := k.requireAdmin(*vault, admin); err != nil {
		return err
	}
	if feeBps > types.MaxFeeBps {
		return types.ErrInvalidRequest.Wrapf("fee bps %d exceeds maximum %d", feeBps, types.MaxFeeBps)
	}

	before := vault.FeeBps
	vault.FeeBps = feeBps
	if err := k.SetVault(ctx, *vault); err != nil {
		return err
	}

	k.getLogger(ctx).Info("vault fee updated", "vault_id", vaultID, "fee_bps", feeBps)
	k.emitEvent(ctx, types.NewEventFeeUpdated(vaultID, admin.String(), before, feeBps))
	return nil
}

// loadVault returns the vault or ErrVaultNotFound.
func (k Keeper) loadVault(ctx sdk.Context, vaultID uint32) (*types.VaultRecord, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if vault == nil {
		return nil, types.ErrVaultNotFound.Wrapf("vault %d", vaultID)
	}
	return vault, nil
}

// requireAdmin returns ErrUnauthorized unless addr is the vault admin.
func (k Keeper) requireAdmin(vault types.VaultRecord, addr sdk.AccAddress) error {
	admin, err := k.parseAddress("admin", vault.Admin)
	if err != nil {
		return err
	}
	if !admin.Equals(addr) {
		return types.ErrUnauthorized.Wrapf("%s is not the admin of vault %d", addr, vault.ID)
	}
	return nil
}
