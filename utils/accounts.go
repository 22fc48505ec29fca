package utils

import (
	"github.com/cometbft/cometbft/crypto/secp256k1"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type Address struct {
	Bytes  []byte
	Bech32 string
}

// TestAddress generates a fresh secp256k1 address using the configured account prefix.
func TestAddress() Address {
	key := secp256k1.GenPrivKey()
	bytes := key.PubKey().Address().Bytes()

	return Address{
		Bytes:  bytes,
		Bech32: generateAddress(sdk.GetConfig().GetBech32AccountAddrPrefix(), bytes),
	}
}

func generateAddress(prefix string, bytes []byte) string {
	address, err := sdk.Bech32ifyAddressBytes(prefix, bytes)
	if err != nil {
		panic("error during test address creation")
	}
	return address
}
