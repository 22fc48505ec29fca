package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreateVaultRequest creates a new, empty vault.
type MsgCreateVaultRequest struct {
	Admin           string `json:"admin"`
	SharesDenom     string `json:"shares_denom"`
	AssetsDenom     string `json:"assets_denom"`
	FeeBps          uint64 `json:"fee_bps"`
	FeeTokenAccount string `json:"fee_token_account"`
}

type MsgCreateVaultResponse struct {
	VaultID            uint32 `json:"vault_id"`
	VaultAssetsAccount string `json:"vault_assets_account"`
}

func (m MsgCreateVaultRequest) GetAdmin() string           { return m.Admin }
func (m MsgCreateVaultRequest) GetSharesDenom() string     { return m.SharesDenom }
func (m MsgCreateVaultRequest) GetAssetsDenom() string     { return m.AssetsDenom }
func (m MsgCreateVaultRequest) GetFeeBps() uint64          { return m.FeeBps }
func (m MsgCreateVaultRequest) GetFeeTokenAccount() string { return m.FeeTokenAccount }

// ValidateBasic performs stateless validation of MsgCreateVaultRequest.
func (m MsgCreateVaultRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %q: %w", m.Admin, err)
	}
	if err := sdk.ValidateDenom(m.SharesDenom); err != nil {
		return fmt.Errorf("invalid shares denom: %q: %w", m.SharesDenom, err)
	}
	if err := sdk.ValidateDenom(m.AssetsDenom); err != nil {
		return fmt.Errorf("invalid assets denom: %q: %w", m.AssetsDenom, err)
	}
	if m.SharesDenom == m.AssetsDenom {
		return fmt.Errorf("shares denom and assets denom must differ: %q", m.SharesDenom)
	}
	if _, err := sdk.AccAddressFromBech32(m.FeeTokenAccount); err != nil {
		return fmt.Errorf("invalid fee token account: %q: %w", m.FeeTokenAccount, err)
	}
	if m.FeeBps > MaxFeeBps {
		return fmt.Errorf("fee bps %d exceeds maximum %d", m.FeeBps, MaxFeeBps)
	}
	return nil
}

// MsgDepositRequest deposits an exact amount of assets. With WithFee set the
// vault's fee is deducted from Assets before conversion.
type MsgDepositRequest struct {
	Owner   string   `json:"owner"`
	VaultID uint32   `json:"vault_id"`
	Assets  sdk.Coin `json:"assets"`
	WithFee bool     `json:"with_fee"`
}

type MsgDepositResponse struct {
	SharesReceived sdk.Coin `json:"shares_received"`
	AssetsPaid     sdk.Coin `json:"assets_paid"`
	FeePaid        sdk.Coin `json:"fee_paid"`
}

// ValidateBasic performs stateless validation of MsgDepositRequest.
func (m MsgDepositRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %q: %w", m.Owner, err)
	}
	return validatePositiveU64Coin("assets", m.Assets)
}

// MsgDepositExactRequest mints exactly Shares, charging the owner however many
// assets that costs.
type MsgDepositExactRequest struct {
	Owner   string   `json:"owner"`
	VaultID uint32   `json:"vault_id"`
	Shares  sdk.Coin `json:"shares"`
	WithFee bool     `json:"with_fee"`
}

// ValidateBasic performs stateless validation of MsgDepositExactRequest.
func (m MsgDepositExactRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %q: %w", m.Owner, err)
	}
	return validatePositiveU64Coin("shares", m.Shares)
}

// MsgRedeemSharesRequest burns Shares in exchange for the vault's assets.
type MsgRedeemSharesRequest struct {
	Owner   string   `json:"owner"`
	VaultID uint32   `json:"vault_id"`
	Shares  sdk.Coin `json:"shares"`
}

type MsgRedeemSharesResponse struct {
	AssetsReceived sdk.Coin `json:"assets_received"`
}

// ValidateBasic performs stateless validation of MsgRedeemSharesRequest.
func (m MsgRedeemSharesRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %q: %w", m.Owner, err)
	}
	return validatePositiveU64Coin("shares", m.Shares)
}

// MsgUpdateRewardRequest recognizes yield already held by the vault assets account.
type MsgUpdateRewardRequest struct {
	Admin          string `json:"admin"`
	VaultID        uint32 `json:"vault_id"`
	NewAssetsTotal uint64 `json:"new_assets_total"`
}

type MsgUpdateRewardResponse struct{}

// ValidateBasic performs stateless validation of MsgUpdateRewardRequest.
func (m MsgUpdateRewardRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %q: %w", m.Admin, err)
	}
	return nil
}

// MsgSlashRequest realizes a loss by lowering the vault's recognized assets.
type MsgSlashRequest struct {
	Admin          string `json:"admin"`
	VaultID        uint32 `json:"vault_id"`
	NewAssetsTotal uint64 `json:"new_assets_total"`
}

type MsgSlashResponse struct{}

// ValidateBasic performs stateless validation of MsgSlashRequest.
func (m MsgSlashRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %q: %w", m.Admin, err)
	}
	return nil
}

// MaxAccrualRate is the largest annual rate an accrual may request (10000%).
const MaxAccrualRate int64 = 100

// MsgAccrueRewardRequest pays continuously compounded yield on the vault's assets
// from the admin's balance and recognizes it.
type MsgAccrueRewardRequest struct {
	Admin         string `json:"admin"`
	VaultID       uint32 `json:"vault_id"`
	Rate          string `json:"rate"`
	PeriodSeconds int64  `json:"period_seconds"`
}

type MsgAccrueRewardResponse struct {
	Reward sdk.Coin `json:"reward"`
}

// ValidateBasic performs stateless validation of MsgAccrueRewardRequest.
func (m MsgAccrueRewardRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %q: %w", m.Admin, err)
	}
	rate, err := sdkmath.LegacyNewDecFromStr(m.Rate)
	if err != nil {
		return fmt.Errorf("invalid rate: %q: %w", m.Rate, err)
	}
	if rate.IsNegative() {
		return fmt.Errorf("rate must not be negative: %q", m.Rate)
	}
	if rate.GT(sdkmath.LegacyNewDec(MaxAccrualRate)) {
		return fmt.Errorf("rate %q exceeds maximum %d", m.Rate, MaxAccrualRate)
	}
	if m.PeriodSeconds <= 0 {
		return fmt.Errorf("period seconds must be positive: %d", m.PeriodSeconds)
	}
	return nil
}

// MsgSetFeeBpsRequest changes a vault's deposit fee.
type MsgSetFeeBpsRequest struct {
	Admin   string `json:"admin"`
	VaultID uint32 `json:"vault_id"`
	FeeBps  uint64 `json:"fee_bps"`
}

type MsgSetFeeBpsResponse struct{}

// ValidateBasic performs stateless validation of MsgSetFeeBpsRequest.
func (m MsgSetFeeBpsRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %q: %w", m.Admin, err)
	}
	if m.FeeBps > MaxFeeBps {
		return fmt.Errorf("fee bps %d exceeds maximum %d", m.FeeBps, MaxFeeBps)
	}
	return nil
}

func validatePositiveU64Coin(field string, coin sdk.Coin) error {
	if err := coin.Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}
	if !coin.IsPositive() {
		return fmt.Errorf("%s must be positive: %s", field, coin)
	}
	if !coin.Amount.IsUint64() {
		return ErrMathOverflow.Wrapf("%s amount %s does not fit in 64 bits", field, coin.Amount)
	}
	return nil
}
