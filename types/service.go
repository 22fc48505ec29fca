package types

import "context"

// MsgServer is the tokenvault transaction service.
type MsgServer interface {
	CreateVault(context.Context, *MsgCreateVaultRequest) (*MsgCreateVaultResponse, error)
	Deposit(context.Context, *MsgDepositRequest) (*MsgDepositResponse, error)
	DepositExact(context.Context, *MsgDepositExactRequest) (*MsgDepositResponse, error)
	RedeemShares(context.Context, *MsgRedeemSharesRequest) (*MsgRedeemSharesResponse, error)
	UpdateReward(context.Context, *MsgUpdateRewardRequest) (*MsgUpdateRewardResponse, error)
	Slash(context.Context, *MsgSlashRequest) (*MsgSlashResponse, error)
	AccrueReward(context.Context, *MsgAccrueRewardRequest) (*MsgAccrueRewardResponse, error)
	SetFeeBps(context.Context, *MsgSetFeeBpsRequest) (*MsgSetFeeBpsResponse, error)
}

// QueryServer is the tokenvault query service.
type QueryServer interface {
	Vault(context.Context, *QueryVaultRequest) (*QueryVaultResponse, error)
	Vaults(context.Context, *QueryVaultsRequest) (*QueryVaultsResponse, error)
	PreviewDeposit(context.Context, *QueryPreviewDepositRequest) (*QueryPreviewDepositResponse, error)
	PreviewRedeem(context.Context, *QueryPreviewRedeemRequest) (*QueryPreviewRedeemResponse, error)
}
