package mocks

import (
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/keeper"
	"github.com/provlabs/tokenvault/types"
)

// NewVaultKeeper returns an instance of the Keeper backed by a fresh store and a mock bank.
func NewVaultKeeper(
	t testing.TB,
) (sdk.Context, *keeper.Keeper, *BankKeeper) {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	storeService := runtime.NewKVStoreService(key)
	bank := NewBankKeeper(storeService)

	k := keeper.NewKeeper(
		storeService,
		addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		bank,
	)

	ctx := wrapper.Ctx.
		WithHeaderInfo(header.Info{Time: time.Now().UTC()}).
		WithLogger(log.NewNopLogger())
	return ctx, k, bank
}
