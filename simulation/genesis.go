package simulation

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/tokenvault/types"
)

const MaxNumVaults = 5

// RandomizedGenState generates a random GenesisState for the tokenvault module.
//
// Vaults start empty so that the generated state is solvent without funding the
// vault assets accounts.
func RandomizedGenState(simState *module.SimulationState) {
	genesis := RandomGenesisState(simState.Rand, simState.Accounts)

	bz, err := json.MarshalIndent(&genesis, "", " ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Selected randomly generated tokenvault parameters: %s\n", bz)

	simState.GenState[types.ModuleName] = bz
}

// RandomGenesisState returns up to MaxNumVaults empty vaults administered by random accounts.
func RandomGenesisState(r *rand.Rand, accs []simtypes.Account) types.GenesisState {
	genesis := types.GenesisState{Vaults: []types.VaultRecord{}}
	if len(accs) < 2 {
		return genesis
	}

	n := r.Intn(MaxNumVaults + 1)
	for i := 0; i < n; i++ {
		admin, _ := simtypes.RandomAcc(r, accs)
		feeAcct, _ := simtypes.RandomAcc(r, accs)

		vault := RandomVaultState(r, uint32(i), admin.Address.String(), feeAcct.Address.String())
		vault.SharesDenom = fmt.Sprintf("%s%d", vault.SharesDenom, i)
		vault.Shares, vault.Assets = 0, 0
		genesis.Vaults = append(genesis.Vaults, vault)
	}
	genesis.NextVaultID = uint32(n)
	return genesis
}
