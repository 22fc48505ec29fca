package types

import "fmt"

// GenesisState is the tokenvault module's genesis state.
type GenesisState struct {
	Vaults []VaultRecord `json:"vaults"`
	// NextVaultID is the id the next created vault will receive.
	NextVaultID uint32 `json:"next_vault_id"`
}

// DefaultGenesisState returns the default genesis state
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Vaults:      []VaultRecord{},
		NextVaultID: 0,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. Vault ids, shares denoms and vault assets accounts must each be unique.
func (gs GenesisState) Validate() error {
	seen := make(map[uint32]struct{}, len(gs.Vaults))
	sharesDenoms := make(map[string]uint32, len(gs.Vaults))
	accounts := make(map[string]uint32, len(gs.Vaults))
	for i, v := range gs.Vaults {
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("duplicate vault id %d at index %d", v.ID, i)
		}
		seen[v.ID] = struct{}{}

		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid vault at index %d: %w", i, err)
		}
		if v.ID >= gs.NextVaultID {
			return fmt.Errorf("vault id %d at index %d is not below next vault id %d", v.ID, i, gs.NextVaultID)
		}

		if other, dup := sharesDenoms[v.SharesDenom]; dup {
			return fmt.Errorf("duplicate shares denom %q at index %d: already used by vault %d", v.SharesDenom, i, other)
		}
		sharesDenoms[v.SharesDenom] = v.ID
		if other, dup := accounts[v.VaultAssetsAccount]; dup {
			return fmt.Errorf("duplicate vault assets account %s at index %d: already used by vault %d", v.VaultAssetsAccount, i, other)
		}
		accounts[v.VaultAssetsAccount] = v.ID
	}
	return nil
}
