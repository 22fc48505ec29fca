package keeper

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/types"
)

type Keeper struct {
	schema       collections.Schema
	addressCodec address.Codec

	BankKeeper types.BankKeeper

	Vaults   collections.Map[uint32, types.VaultRecord]
	VaultSeq collections.Sequence
}

func NewKeeper(
	storeService store.KVStoreService,
	addressCodec address.Codec,
	bankKeeper types.BankKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		addressCodec: addressCodec,
		BankKeeper:   bankKeeper,
		Vaults:       collections.NewMap(builder, types.VaultsKeyPrefix, types.VaultsName, collections.Uint32Key, types.VaultRecordValue),
		VaultSeq:     collections.NewSequence(builder, types.VaultSeqKeyPrefix, types.VaultSeqName),
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// getLogger returns a logger with tokenvault module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// emitEvent emits a module event on the context's event manager.
func (k Keeper) emitEvent(ctx sdk.Context, event sdk.Event) {
	ctx.EventManager().EmitEvent(event)
}

// parseAddress decodes a bech32 address with the keeper's address codec.
func (k Keeper) parseAddress(field, bech32 string) (sdk.AccAddress, error) {
	bz, err := k.addressCodec.StringToBytes(bech32)
	if err != nil {
		return nil, types.ErrInvalidRequest.Wrapf("invalid %s address %q: %s", field, bech32, err)
	}
	return sdk.AccAddress(bz), nil
}
