package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// CreateVault creates a new vault.
func (k msgServer) CreateVault(goCtx context.Context, msg *types.MsgCreateVaultRequest) (*types.MsgCreateVaultResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	vault, err := k.Keeper.CreateVault(ctx, msg)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateVaultResponse{
		VaultID:            vault.ID,
		VaultAssetsAccount: vault.VaultAssetsAccount,
	}, nil
}

// Deposit deposits assets into a vault.
func (k msgServer) Deposit(goCtx context.Context, msg *types.MsgDepositRequest) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := k.parseAddress("owner", msg.Owner)
	if err != nil {
		return nil, err
	}

	effect, err := k.Keeper.Deposit(ctx, msg.VaultID, owner, msg.Assets, msg.WithFee)
	if err != nil {
		return nil, err
	}
	return k.depositResponse(ctx, msg.VaultID, effect)
}

// DepositExact deposits whatever assets are needed to mint an exact number of shares.
func (k msgServer) DepositExact(goCtx context.Context, msg *types.MsgDepositExactRequest) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := k.parseAddress("owner", msg.Owner)
	if err != nil {
		return nil, err
	}

	effect, err := k.Keeper.DepositExact(ctx, msg.VaultID, owner, msg.Shares, msg.WithFee)
	if err != nil {
		return nil, err
	}
	return k.depositResponse(ctx, msg.VaultID, effect)
}

// RedeemShares redeems shares for assets.
func (k msgServer) RedeemShares(goCtx context.Context, msg *types.MsgRedeemSharesRequest) (*types.MsgRedeemSharesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := k.parseAddress("owner", msg.Owner)
	if err != nil {
		return nil, err
	}

	effect, err := k.Keeper.RedeemShares(ctx, msg.VaultID, owner, msg.Shares)
	if err != nil {
		return nil, err
	}

	vault, err := k.loadVault(ctx, msg.VaultID)
	if err != nil {
		return nil, err
	}
	return &types.MsgRedeemSharesResponse{
		AssetsReceived: sdk.NewCoin(vault.AssetsDenom, sdkmath.NewIntFromUint64(effect.AssetsToUser)),
	}, nil
}

// UpdateReward raises a vault's recognized assets.
func (k msgServer) UpdateReward(goCtx context.Context, msg *types.MsgUpdateRewardRequest) (*types.MsgUpdateRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	admin, err := k.parseAddress("admin", msg.Admin)
	if err != nil {
		return nil, err
	}
	if err := k.Keeper.UpdateReward(ctx, msg.VaultID, admin, msg.NewAssetsTotal); err != nil {
		return nil, err
	}
	return &types.MsgUpdateRewardResponse{}, nil
}

// Slash lowers a vault's recognized assets.
func (k msgServer) Slash(goCtx context.Context, msg *types.MsgSlashRequest) (*types.MsgSlashResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	admin, err := k.parseAddress("admin", msg.Admin)
	if err != nil {
		return nil, err
	}
	if err := k.Keeper.Slash(ctx, msg.VaultID, admin, msg.NewAssetsTotal); err != nil {
		return nil, err
	}
	return &types.MsgSlashResponse{}, nil
}

// AccrueReward pays and recognizes accrued yield.
func (k msgServer) AccrueReward(goCtx context.Context, msg *types.MsgAccrueRewardRequest) (*types.MsgAccrueRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	admin, err := k.parseAddress("admin", msg.Admin)
	if err != nil {
		return nil, err
	}
	reward, err := k.Keeper.AccrueReward(ctx, msg.VaultID, admin, msg.Rate, msg.PeriodSeconds)
	if err != nil {
		return nil, err
	}

	vault, err := k.loadVault(ctx, msg.VaultID)
	if err != nil {
		return nil, err
	}
	return &types.MsgAccrueRewardResponse{
		Reward: sdk.NewCoin(vault.AssetsDenom, sdkmath.NewIntFromUint64(reward)),
	}, nil
}

// SetFeeBps changes a vault's deposit fee.
func (k msgServer) SetFeeBps(goCtx context.Context, msg *types.MsgSetFeeBpsRequest) (*types.MsgSetFeeBpsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	admin, err := k.parseAddress("admin", msg.Admin)
	if err != nil {
		return nil, err
	}
	if err := k.Keeper.SetFeeBps(ctx, msg.VaultID, admin, msg.FeeBps); err != nil {
		return nil, err
	}
	return &types.MsgSetFeeBpsResponse{}, nil
}

func (k msgServer) depositResponse(ctx sdk.Context, vaultID uint32, effect types.Effect) (*types.MsgDepositResponse, error) {
	vault, err := k.loadVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{
		SharesReceived: sdk.NewCoin(vault.SharesDenom, sdkmath.NewIntFromUint64(effect.SharesToUser)),
		AssetsPaid:     sdk.NewCoin(vault.AssetsDenom, sdkmath.NewIntFromUint64(effect.AssetsToVault)),
		FeePaid:        sdk.NewCoin(vault.AssetsDenom, sdkmath.NewIntFromUint64(effect.AssetsToFee)),
	}, nil
}
