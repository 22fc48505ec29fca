package types

import (
	fmt "fmt"

	"cosmossdk.io/collections"
	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "tokenvault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// VaultsKeyPrefix is the prefix to retrieve all VaultRecords
	VaultsKeyPrefix = collections.NewPrefix(0)
	// VaultsName is a human-readable name for the vaults collection.
	VaultsName = "vaults"
	// VaultSeqKeyPrefix is the prefix of the vault id sequence.
	VaultSeqKeyPrefix = collections.NewPrefix(1)
	// VaultSeqName is a human-readable name for the vault id sequence.
	VaultSeqName = "vault_seq"
)

// GetVaultAddress returns the account address that custodies the assets of the given vaultID.
func GetVaultAddress(vaultID uint32) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(fmt.Sprintf("%s/%d", ModuleName, vaultID))))
}
