package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/provlabs/tokenvault/engine"
	"github.com/provlabs/tokenvault/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates a new QueryServer for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// Vaults returns a paginated list of all vaults.
func (k queryServer) Vaults(goCtx context.Context, req *types.QueryVaultsRequest) (*types.QueryVaultsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	vaults, pageRes, err := query.CollectionPaginate(
		goCtx,
		k.Keeper.Vaults,
		req.Pagination,
		func(_ uint32, vault types.VaultRecord) (types.VaultRecord, error) {
			return vault, nil
		},
	)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryVaultsResponse{
		Vaults:     vaults,
		Pagination: pageRes,
	}, nil
}

// Vault returns the state of a specific vault along with its real asset balance.
func (k queryServer) Vault(goCtx context.Context, req *types.QueryVaultRequest) (*types.QueryVaultResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	vault, err := k.lookupVault(ctx, req.VaultID)
	if err != nil {
		return nil, err
	}

	balance := k.BankKeeper.GetBalance(ctx, vault.GetVaultAssetsAccount(), vault.AssetsDenom)
	if !balance.Amount.IsUint64() {
		return nil, status.Errorf(codes.Internal, "vault %d balance %s does not fit in 64 bits", req.VaultID, balance)
	}

	return &types.QueryVaultResponse{
		Vault:   *vault,
		Balance: balance.Amount.Uint64(),
	}, nil
}

// PreviewDeposit returns the effect a deposit would have without changing state.
func (k queryServer) PreviewDeposit(goCtx context.Context, req *types.QueryPreviewDepositRequest) (*types.QueryPreviewDepositResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	vault, err := k.lookupVault(sdk.UnwrapSDKContext(goCtx), req.VaultID)
	if err != nil {
		return nil, err
	}

	op := engine.DepositOperation(req.Exact, req.WithFee)
	effect, err := engine.Preview(*vault, op, req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "%s: %v", types.Kind(err), err)
	}
	return &types.QueryPreviewDepositResponse{Effect: effect}, nil
}

// PreviewRedeem returns the effect a redeem would have without changing state.
func (k queryServer) PreviewRedeem(goCtx context.Context, req *types.QueryPreviewRedeemRequest) (*types.QueryPreviewRedeemResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	vault, err := k.lookupVault(sdk.UnwrapSDKContext(goCtx), req.VaultID)
	if err != nil {
		return nil, err
	}

	effect, err := engine.Preview(*vault, engine.OpRedeemShares, req.Shares)
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "%s: %v", types.Kind(err), err)
	}
	return &types.QueryPreviewRedeemResponse{Effect: effect}, nil
}

func (k queryServer) lookupVault(ctx sdk.Context, vaultID uint32) (*types.VaultRecord, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if vault == nil {
		return nil, status.Errorf(codes.NotFound, "vault %d not found", vaultID)
	}
	return vault, nil
}
