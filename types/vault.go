package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// BpsDenominator is the number of basis points in one whole.
	BpsDenominator uint64 = 10_000
	// MaxFeeBps is the largest deposit fee a vault may be configured with (10%).
	MaxFeeBps uint64 = 1_000
)

// VaultRecord is the persisted accounting state of a single vault.
//
// Shares and Assets are the engine totals: Shares is the outstanding share supply
// and Assets is the amount of the asset denom backing it. The real balance held by
// VaultAssetsAccount may exceed Assets (unrecognized donations) but never fall below it.
type VaultRecord struct {
	ID                 uint32 `json:"id"`
	Admin              string `json:"admin"`
	SharesDenom        string `json:"shares_denom"`
	AssetsDenom        string `json:"assets_denom"`
	Shares             uint64 `json:"shares"`
	Assets             uint64 `json:"assets"`
	VaultAssetsAccount string `json:"vault_assets_account"`
	FeeBps             uint64 `json:"fee_bps"`
	FeeTokenAccount    string `json:"fee_token_account"`
}

// NewVaultRecord creates an empty vault whose assets are held by the derived vault address.
func NewVaultRecord(id uint32, admin, sharesDenom, assetsDenom string, feeBps uint64, feeTokenAccount string) VaultRecord {
	return VaultRecord{
		ID:                 id,
		Admin:              admin,
		SharesDenom:        sharesDenom,
		AssetsDenom:        assetsDenom,
		VaultAssetsAccount: GetVaultAddress(id).String(),
		FeeBps:             feeBps,
		FeeTokenAccount:    feeTokenAccount,
	}
}

// Validate performs basic validation on the vault fields.
func (v VaultRecord) Validate() error {
	if _, err := sdk.AccAddressFromBech32(v.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	if err := sdk.ValidateDenom(v.SharesDenom); err != nil {
		return fmt.Errorf("invalid shares denom: %w", err)
	}
	if err := sdk.ValidateDenom(v.AssetsDenom); err != nil {
		return fmt.Errorf("invalid assets denom: %w", err)
	}
	if v.SharesDenom == v.AssetsDenom {
		return fmt.Errorf("shares denom and assets denom must differ: %q", v.SharesDenom)
	}
	if _, err := sdk.AccAddressFromBech32(v.VaultAssetsAccount); err != nil {
		return fmt.Errorf("invalid vault assets account: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(v.FeeTokenAccount); err != nil {
		return fmt.Errorf("invalid fee token account: %w", err)
	}
	if v.FeeTokenAccount == v.VaultAssetsAccount {
		return ErrSelfTransfer.Wrap("fee token account cannot be the vault assets account")
	}
	if v.FeeBps > MaxFeeBps {
		return fmt.Errorf("fee bps %d exceeds maximum %d", v.FeeBps, MaxFeeBps)
	}
	if v.Shares == 0 && v.Assets > 0 {
		return fmt.Errorf("vault holds %d assets with no shares outstanding", v.Assets)
	}
	if v.Shares > 0 && v.Assets == 0 {
		return fmt.Errorf("vault has %d shares outstanding with no assets", v.Shares)
	}
	return nil
}

// IsEmpty reports whether the vault is in the bootstrap state.
func (v VaultRecord) IsEmpty() bool {
	return v.Shares == 0 && v.Assets == 0
}

// GetVaultAssetsAccount returns the parsed address holding the vault's assets.
func (v VaultRecord) GetVaultAssetsAccount() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(v.VaultAssetsAccount)
}

// GetFeeTokenAccount returns the parsed address receiving deposit fees.
func (v VaultRecord) GetFeeTokenAccount() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(v.FeeTokenAccount)
}

// AssetsCoin returns the vault's recognized assets as a coin.
func (v VaultRecord) AssetsCoin() sdk.Coin {
	return sdk.NewCoin(v.AssetsDenom, sdkmath.NewIntFromUint64(v.Assets))
}

// SharesCoin returns the vault's outstanding shares as a coin.
func (v VaultRecord) SharesCoin() sdk.Coin {
	return sdk.NewCoin(v.SharesDenom, sdkmath.NewIntFromUint64(v.Shares))
}

// NoDilution reports whether the price per share did not decrease from pre to post:
//
//	pre.Assets * post.Shares <= post.Assets * pre.Shares
//
// The products are evaluated in wide integers.
func NoDilution(pre, post VaultRecord) bool {
	lhs := sdkmath.NewIntFromUint64(pre.Assets).Mul(sdkmath.NewIntFromUint64(post.Shares))
	rhs := sdkmath.NewIntFromUint64(post.Assets).Mul(sdkmath.NewIntFromUint64(pre.Shares))
	return lhs.LTE(rhs)
}

// Effect is the token movement produced by a single vault operation.
// A zero field means no movement of that kind.
type Effect struct {
	AssetsToVault uint64 `json:"assets_to_vault"`
	SharesToUser  uint64 `json:"shares_to_user"`
	AssetsToFee   uint64 `json:"assets_to_fee"`
	AssetsToUser  uint64 `json:"assets_to_user"`
	SharesToBurn  uint64 `json:"shares_to_burn"`
}

// IsZero reports whether the effect moves nothing.
func (e Effect) IsZero() bool {
	return e == Effect{}
}
