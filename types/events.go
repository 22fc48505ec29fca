package types

import (
	"strconv"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeVaultCreated   = "vault_created"
	EventTypeDeposit        = "vault_deposit"
	EventTypeRedeem         = "vault_redeem"
	EventTypeRewardUpdated  = "vault_reward_updated"
	EventTypeSlashed        = "vault_slashed"
	EventTypeFeeUpdated     = "vault_fee_updated"
	AttributeKeyVaultID     = "vault_id"
	AttributeKeyAdmin       = "admin"
	AttributeKeyOwner       = "owner"
	AttributeKeyOperation   = "operation"
	AttributeKeySharesDenom = "shares_denom"
	AttributeKeyAssetsDenom = "assets_denom"
	AttributeKeyAssetsIn    = "assets_in"
	AttributeKeyFee         = "fee"
	AttributeKeySharesOut   = "shares_out"
	AttributeKeySharesBurn  = "shares_burned"
	AttributeKeyAssetsOut   = "assets_out"
	AttributeKeyAssetsFrom  = "assets_before"
	AttributeKeyAssetsTo    = "assets_after"
	AttributeKeyFeeBpsFrom  = "fee_bps_before"
	AttributeKeyFeeBpsTo    = "fee_bps_after"
)

// NewEventVaultCreated creates a new vault_created event.
func NewEventVaultCreated(vault VaultRecord) sdk.Event {
	return sdk.NewEvent(EventTypeVaultCreated,
		sdk.NewAttribute(AttributeKeyVaultID, vaultIDString(vault.ID)),
		sdk.NewAttribute(AttributeKeyAdmin, vault.Admin),
		sdk.NewAttribute(AttributeKeySharesDenom, vault.SharesDenom),
		sdk.NewAttribute(AttributeKeyAssetsDenom, vault.AssetsDenom),
		sdk.NewAttribute(AttributeKeyFeeBpsTo, strconv.FormatUint(vault.FeeBps, 10)),
	)
}

// NewEventDeposit creates a new vault_deposit event for any of the deposit operations.
func NewEventDeposit(vault VaultRecord, owner, operation string, effect Effect) sdk.Event {
	return sdk.NewEvent(EventTypeDeposit,
		sdk.NewAttribute(AttributeKeyVaultID, vaultIDString(vault.ID)),
		sdk.NewAttribute(AttributeKeyOwner, owner),
		sdk.NewAttribute(AttributeKeyOperation, operation),
		sdk.NewAttribute(AttributeKeyAssetsIn, coinString(vault.AssetsDenom, effect.AssetsToVault)),
		sdk.NewAttribute(AttributeKeyFee, coinString(vault.AssetsDenom, effect.AssetsToFee)),
		sdk.NewAttribute(AttributeKeySharesOut, coinString(vault.SharesDenom, effect.SharesToUser)),
	)
}

// NewEventRedeem creates a new vault_redeem event.
func NewEventRedeem(vault VaultRecord, owner string, effect Effect) sdk.Event {
	return sdk.NewEvent(EventTypeRedeem,
		sdk.NewAttribute(AttributeKeyVaultID, vaultIDString(vault.ID)),
		sdk.NewAttribute(AttributeKeyOwner, owner),
		sdk.NewAttribute(AttributeKeySharesBurn, coinString(vault.SharesDenom, effect.SharesToBurn)),
		sdk.NewAttribute(AttributeKeyAssetsOut, coinString(vault.AssetsDenom, effect.AssetsToUser)),
	)
}

// NewEventRewardUpdated creates a new vault_reward_updated event.
func NewEventRewardUpdated(vault VaultRecord, admin string, assetsBefore uint64) sdk.Event {
	return newAssetsChangeEvent(EventTypeRewardUpdated, vault, admin, assetsBefore)
}

// NewEventSlashed creates a new vault_slashed event.
func NewEventSlashed(vault VaultRecord, admin string, assetsBefore uint64) sdk.Event {
	return newAssetsChangeEvent(EventTypeSlashed, vault, admin, assetsBefore)
}

// NewEventFeeUpdated creates a new vault_fee_updated event.
func NewEventFeeUpdated(vaultID uint32, admin string, before, after uint64) sdk.Event {
	return sdk.NewEvent(EventTypeFeeUpdated,
		sdk.NewAttribute(AttributeKeyVaultID, vaultIDString(vaultID)),
		sdk.NewAttribute(AttributeKeyAdmin, admin),
		sdk.NewAttribute(AttributeKeyFeeBpsFrom, strconv.FormatUint(before, 10)),
		sdk.NewAttribute(AttributeKeyFeeBpsTo, strconv.FormatUint(after, 10)),
	)
}

func newAssetsChangeEvent(eventType string, vault VaultRecord, admin string, assetsBefore uint64) sdk.Event {
	return sdk.NewEvent(eventType,
		sdk.NewAttribute(AttributeKeyVaultID, vaultIDString(vault.ID)),
		sdk.NewAttribute(AttributeKeyAdmin, admin),
		sdk.NewAttribute(AttributeKeyAssetsFrom, coinString(vault.AssetsDenom, assetsBefore)),
		sdk.NewAttribute(AttributeKeyAssetsTo, coinString(vault.AssetsDenom, vault.Assets)),
	)
}

func vaultIDString(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

// coinString does not use NewCoin so an empty denom never panics.
func coinString(denom string, amount uint64) string {
	return sdk.Coin{Denom: denom, Amount: sdkmath.NewIntFromUint64(amount)}.String()
}
