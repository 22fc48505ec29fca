package mocks

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/provlabs/tokenvault/types"
)

var _ types.BankKeeper = (*BankKeeper)(nil)

// BankKeeper is a store-backed bank used by tests. Balances live in the same
// multistore as the module, so a discarded cache context also discards transfers.
type BankKeeper struct {
	balances collections.Map[collections.Pair[sdk.AccAddress, string], sdkmath.Int]
	supply   collections.Map[string, sdkmath.Int]
	failures map[string]error
}

// NewBankKeeper creates a BankKeeper under prefixes that do not collide with the module's.
func NewBankKeeper(storeService store.KVStoreService) *BankKeeper {
	sb := collections.NewSchemaBuilder(storeService)
	b := &BankKeeper{
		balances: collections.NewMap(sb, collections.NewPrefix(100), "mock_balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
		supply:   collections.NewMap(sb, collections.NewPrefix(101), "mock_supply", collections.StringKey, sdk.IntValue),
		failures: map[string]error{},
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return b
}

// FailOn makes the named method return err. A nil err clears the failure.
func (b *BankKeeper) FailOn(method string, err error) {
	if err == nil {
		delete(b.failures, method)
		return
	}
	b.failures[method] = err
}

// FundAccount mints amt directly into addr.
func (b *BankKeeper) FundAccount(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		if err := b.add(ctx, addr, coin); err != nil {
			return err
		}
		if err := b.addSupply(ctx, coin.Denom, coin.Amount); err != nil {
			return err
		}
	}
	return nil
}

// RemoveFunds takes amt out of addr and out of supply, simulating an outside loss.
func (b *BankKeeper) RemoveFunds(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		if err := b.sub(ctx, addr, coin); err != nil {
			return err
		}
		if err := b.addSupply(ctx, coin.Denom, coin.Amount.Neg()); err != nil {
			return err
		}
	}
	return nil
}

func (b *BankKeeper) SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if err := b.failures["SendCoins"]; err != nil {
		return err
	}
	for _, coin := range amt {
		if err := b.sub(ctx, fromAddr, coin); err != nil {
			return err
		}
		if err := b.add(ctx, toAddr, coin); err != nil {
			return err
		}
	}
	return nil
}

func (b *BankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	if err := b.failures["SendCoinsFromAccountToModule"]; err != nil {
		return err
	}
	return b.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (b *BankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if err := b.failures["SendCoinsFromModuleToAccount"]; err != nil {
		return err
	}
	return b.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (b *BankKeeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	if err := b.failures["MintCoins"]; err != nil {
		return err
	}
	return b.FundAccount(ctx, authtypes.NewModuleAddress(moduleName), amt)
}

func (b *BankKeeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	if err := b.failures["BurnCoins"]; err != nil {
		return err
	}
	return b.RemoveFunds(ctx, authtypes.NewModuleAddress(moduleName), amt)
}

func (b *BankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amount, err := b.balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		return sdk.NewCoin(denom, sdkmath.ZeroInt())
	}
	return sdk.NewCoin(denom, amount)
}

func (b *BankKeeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	amount, err := b.supply.Get(ctx, denom)
	if err != nil {
		return sdk.NewCoin(denom, sdkmath.ZeroInt())
	}
	return sdk.NewCoin(denom, amount)
}

func (b *BankKeeper) add(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) error {
	balance := b.GetBalance(ctx, addr, coin.Denom)
	return b.balances.Set(ctx, collections.Join(addr, coin.Denom), balance.Amount.Add(coin.Amount))
}

func (b *BankKeeper) sub(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) error {
	balance := b.GetBalance(ctx, addr, coin.Denom)
	if balance.Amount.LT(coin.Amount) {
		return sdkerrors.ErrInsufficientFunds.Wrapf("%s is smaller than %s", balance, coin)
	}
	return b.balances.Set(ctx, collections.Join(addr, coin.Denom), balance.Amount.Sub(coin.Amount))
}

func (b *BankKeeper) addSupply(ctx context.Context, denom string, delta sdkmath.Int) error {
	current, err := b.supply.Get(ctx, denom)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		current = sdkmath.ZeroInt()
	}
	return b.supply.Set(ctx, denom, current.Add(delta))
}
