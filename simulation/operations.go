package simulation

import (
	"fmt"
	"math/rand"
	"slices"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/tokenvault/keeper"
	"github.com/provlabs/tokenvault/types"
	"github.com/provlabs/tokenvault/utils"
)

const (
	WeightDeposit      = 35
	WeightDepositExact = 15
	WeightRedeem       = 25
	WeightDonate       = 5
	WeightReward       = 10
	WeightSlash        = 5
	WeightSetFee       = 5
)

// Result counts the messages delivered by DeliverRandomMsgs.
type Result struct {
	Delivered int
	Failed    int
	ByMsg     map[string]int
}

type weightedMsg struct {
	name   string
	weight int
	fn     func(r *rand.Rand, ctx sdk.Context, k *keeper.Keeper, ms types.MsgServer, vault types.VaultRecord, acc simtypes.Account) error
}

var weightedMsgs = []weightedMsg{
	{"deposit", WeightDeposit, simulateDeposit},
	{"deposit_exact", WeightDepositExact, simulateDepositExact},
	{"redeem_shares", WeightRedeem, simulateRedeem},
	{"donate", WeightDonate, simulateDonate},
	{"update_reward", WeightReward, simulateUpdateReward},
	{"slash", WeightSlash, simulateSlash},
	{"set_fee_bps", WeightSetFee, simulateSetFee},
}

// DeliverRandomMsgs delivers n randomly chosen messages from accs against the
// existing vaults. Messages the vault rejects are counted as failed; the keeper
// must leave state consistent either way.
func DeliverRandomMsgs(r *rand.Rand, ctx sdk.Context, k *keeper.Keeper, accs []simtypes.Account, n int) (Result, error) {
	res := Result{ByMsg: map[string]int{}}

	vaults, err := k.GetVaults(ctx)
	if err != nil {
		return res, err
	}
	if len(vaults) == 0 {
		return res, fmt.Errorf("no vaults found")
	}
	if len(accs) == 0 {
		return res, fmt.Errorf("no accounts provided")
	}

	ms := keeper.NewMsgServer(k)
	total := 0
	for _, m := range weightedMsgs {
		total += m.weight
	}

	for i := 0; i < n; i++ {
		vault, err := k.GetVault(ctx, vaults[r.Intn(len(vaults))].ID)
		if err != nil || vault == nil {
			return res, fmt.Errorf("failed to reload vault: %w", err)
		}
		acc, _ := simtypes.RandomAcc(r, accs)

		m := pickMsg(r, total)
		if err := m.fn(r, ctx, k, ms, *vault, acc); err != nil {
			res.Failed++
		} else {
			res.Delivered++
		}
		res.ByMsg[m.name]++
	}
	return res, nil
}

// FundedAccounts returns the accounts holding a positive balance of denom.
func FundedAccounts(ctx sdk.Context, k *keeper.Keeper, accs []simtypes.Account, denom string) []simtypes.Account {
	return slices.Collect(utils.Filter(accs, func(acc simtypes.Account) bool {
		return k.BankKeeper.GetBalance(ctx, acc.Address, denom).IsPositive()
	}))
}

func pickMsg(r *rand.Rand, total int) weightedMsg {
	x := r.Intn(total)
	for _, m := range weightedMsgs {
		if x < m.weight {
			return m
		}
		x -= m.weight
	}
	return weightedMsgs[0]
}

func balanceOf(ctx sdk.Context, k *keeper.Keeper, addr sdk.AccAddress, denom string) uint64 {
	bal := k.BankKeeper.GetBalance(ctx, addr, denom)
	if !bal.Amount.IsUint64() {
		return 0
	}
	return bal.Amount.Uint64()
}

func coin(denom string, amount uint64) sdk.Coin {
	return sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount))
}

func simulateDeposit(r *rand.Rand, ctx sdk.Context, k *keeper.Keeper, ms types.MsgServer, vault types.VaultRecord, acc simtypes.Account) error {
	amount := RandomAmount(r, balanceOf(ctx, k, acc.Address, vault.AssetsDenom))
	if amount == 0 {
		return fmt.Errorf("nothing to deposit")
	}
	_, err := ms.Deposit(ctx, &types.MsgDepositRequest{
		Owner:   acc.Address.String(),
		VaultID: vault.ID,
		Assets:  coin(vault.AssetsDenom, amount),
		WithFee: r.Intn(2) == 0,
	})
	return err
}

func simulateDepositExact(r *rand.Rand, ctx sdk.Context, k *keeper.Keeper, ms types.MsgServer, vault types.VaultRecord, acc simtypes.Account) error {
	budget := balanceOf(ctx, k, acc.Address, vault.AssetsDenom)
	affordable := budget
	if vault.Shares > 0 && vault.Assets > 0 {
		// Scale the budget into shares at the current price so most requests are affordable.
		scaled := sdkmath.NewIntFromUint64(budget).Mul(sdkmath.NewIntFromUint64(vault.Shares)).Quo(sdkmath.NewIntFromUint64(vault.Assets))
		if scaled.IsUint64() {
			affordable = scaled.Uint64()
		}
	}
	shares := RandomAmount(r, affordable)
	if shares == 0 {
		return fmt.Errorf("nothing to mint")
	}
	_, err := ms.DepositExact(ctx, &types.MsgDepositExactRequest{
		Owner:   acc.Address.String(),
		VaultID: vault.ID,
		Shares:  coin(vault.SharesDenom, shares),
		WithFee: r.Intn(2) == 0,
	})
	return err
}

func simulateRedeem(r *rand.Rand, ctx sdk.Context, k *keeper.Keeper, ms types.MsgServer, vault types.VaultRecord, acc simtypes.Account) error {
	shares := RandomAmount(r, balanceOf(ctx, k, acc.Address, vault.SharesDenom))
	if shares == 0 {
		return fmt.Errorf("nothing to redeem")
	}
	_, err := ms.RedeemShares(ctx, &types.MsgRedeemSharesRequest{
		Owner:   acc.Address.String(),
		VaultID: vault.ID,
		Shares:  coin(vault.SharesDenom, shares),
	})
	return err
}

// simulateDonate sends assets straight to the vault assets account without minting shares.
func simulateDonate(r *rand.Rand, ctx sdk.Context, k *keeper.Keeper, _ types.MsgServer, vault types.VaultRecord, acc simtypes.Account) error {
	amount := RandomAmount(r, balanceOf(ctx, k, acc.Address, vault.AssetsDenom))
	if amount == 0 {
		return fmt.Errorf("nothing to donate")
	}
	return k.BankKeeper.SendCoins(ctx, acc.Address, vault.GetVaultAssetsAccount(), sdk.NewCoins(coin(vault.AssetsDenom, amount)))
}

// simulateUpdateReward recognizes some or all of the vault's unrecognized balance.
func simulateUpdateReward(r *rand.Rand, ctx sdk.Context, k *keeper.Keeper, ms types.MsgServer, vault types.VaultRecord, _ simtypes.Account) error {
	balance := balanceOf(ctx, k, vault.GetVaultAssetsAccount(), vault.AssetsDenom)
	if balance < vault.Assets {
		return fmt.Errorf("vault %d is insolvent", vault.ID)
	}
	_, err := ms.UpdateReward(ctx, &types.MsgUpdateRewardRequest{
		Admin:          vault.Admin,
		VaultID:        vault.ID,
		NewAssetsTotal: vault.Assets + RandomAmount(r, balance-vault.Assets),
	})
	return err
}

func simulateSlash(r *rand.Rand, ctx sdk.Context, _ *keeper.Keeper, ms types.MsgServer, vault types.VaultRecord, _ simtypes.Account) error {
	_, err := ms.Slash(ctx, &types.MsgSlashRequest{
		Admin:          vault.Admin,
		VaultID:        vault.ID,
		NewAssetsTotal: RandomAmount(r, vault.Assets),
	})
	return err
}

func simulateSetFee(r *rand.Rand, ctx sdk.Context, _ *keeper.Keeper, ms types.MsgServer, vault types.VaultRecord, _ simtypes.Account) error {
	_, err := ms.SetFeeBps(ctx, &types.MsgSetFeeBpsRequest{
		Admin:   vault.Admin,
		VaultID: vault.ID,
		FeeBps:  RandomFeeBps(r),
	})
	return err
}
