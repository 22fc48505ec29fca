package tokenvault

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/provlabs/tokenvault/keeper"
	"github.com/provlabs/tokenvault/types"
)

// ConsensusVersion defines the current x/tokenvault module consensus version.
const ConsensusVersion = 1

var (
	_ module.AppModuleBasic      = AppModule{}
	_ appmodule.AppModule        = AppModule{}
	_ module.HasConsensusVersion = AppModule{}
	_ module.HasGenesis          = AppModule{}
	_ module.HasGenesisBasics    = AppModuleBasic{}
	_ module.HasInvariants       = AppModule{}
)

// AppModuleBasic implements the basic methods for the tokenvault module.
type AppModuleBasic struct{}

// NewAppModuleBasic creates a new AppModuleBasic.
func NewAppModuleBasic() AppModuleBasic {
	return AppModuleBasic{}
}

// Name returns the tokenvault module name.
func (AppModuleBasic) Name() string { return types.ModuleName }

// RegisterLegacyAminoCodec is a no-op; the module has no amino messages.
func (AppModuleBasic) RegisterLegacyAminoCodec(*codec.LegacyAmino) {}

// RegisterInterfaces is a no-op; the module has no interface implementations.
func (AppModuleBasic) RegisterInterfaces(codectypes.InterfaceRegistry) {}

// RegisterGRPCGatewayRoutes is a no-op; the module exposes no gateway routes.
func (AppModuleBasic) RegisterGRPCGatewayRoutes(client.Context, *runtime.ServeMux) {}

// DefaultGenesis returns default genesis state as raw bytes.
func (AppModuleBasic) DefaultGenesis(codec.JSONCodec) json.RawMessage {
	bz, err := json.Marshal(types.DefaultGenesisState())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis validates the tokenvault genesis state.
func (AppModuleBasic) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	genesis, err := unmarshalGenesis(bz)
	if err != nil {
		return err
	}
	return genesis.Validate()
}

// AppModule implements the core tokenvault module functionality.
//
// The module registers no gRPC services. Messages and queries are typed Go
// structs served in-process: callers build a server with keeper.NewMsgServer or
// keeper.NewQueryServer around the keeper from ProvideModule.
type AppModule struct {
	AppModuleBasic
	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule instance.
func NewAppModule(keeper *keeper.Keeper) AppModule {
	return AppModule{
		AppModuleBasic: NewAppModuleBasic(),
		keeper:         keeper,
	}
}

// IsOnePerModuleType asserts one module per type.
func (AppModule) IsOnePerModuleType() {}

// IsAppModule asserts this is an app module.
func (AppModule) IsAppModule() {}

// ConsensusVersion returns the module consensus version.
func (AppModule) ConsensusVersion() uint64 { return ConsensusVersion }

// InitGenesis initializes the module's state from genesis.
func (m AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, bz json.RawMessage) {
	genesis, err := unmarshalGenesis(bz)
	if err != nil {
		panic(err)
	}
	m.keeper.InitGenesis(ctx, genesis)
}

// ExportGenesis exports the module's state to genesis.
func (m AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	bz, err := json.Marshal(m.keeper.ExportGenesis(ctx))
	if err != nil {
		panic(fmt.Errorf("failed to marshal %s genesis state: %w", types.ModuleName, err))
	}
	return bz
}

// RegisterInvariants registers the solvency and share supply invariants.
func (m AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, m.keeper)
}

func unmarshalGenesis(bz json.RawMessage) (*types.GenesisState, error) {
	var genesis types.GenesisState
	if err := json.Unmarshal(bz, &genesis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return &genesis, nil
}

// ModuleInputs defines the inputs required to initialize the tokenvault module.
type ModuleInputs struct {
	depinject.In
	StoreService store.KVStoreService
	AddressCodec address.Codec
	BankKeeper   types.BankKeeper
}

// ModuleOutputs defines the outputs of the tokenvault module provider.
type ModuleOutputs struct {
	depinject.Out
	Keeper *keeper.Keeper
	Module appmodule.AppModule
}

// ProvideModule wires up the tokenvault module and its keeper.
func ProvideModule(in ModuleInputs) ModuleOutputs {
	k := keeper.NewKeeper(
		in.StoreService,
		in.AddressCodec,
		in.BankKeeper,
	)
	m := NewAppModule(k)
	return ModuleOutputs{Keeper: k, Module: m}
}
