package keeper_test

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/interest"
	"github.com/provlabs/tokenvault/keeper"
	"github.com/provlabs/tokenvault/types"
)

// vaultTotals are the totals a vault is expected to hold after a message.
type vaultTotals struct {
	vaultID uint32
	shares  uint64
	assets  uint64
}

func (s *TestSuite) checkTotals(_ any, args vaultTotals) {
	s.assertTotals(args.vaultID, args.shares, args.assets)
}

func (s *TestSuite) TestMsgServer_CreateVault() {
	tc := msgServerTestCase[types.MsgCreateVaultRequest, vaultTotals]{
		name:          "creates an empty vault",
		msg:           *s.createVaultMsg(50),
		expectedResp:  &types.MsgCreateVaultResponse{VaultID: 0, VaultAssetsAccount: types.GetVaultAddress(0).String()},
		postCheckArgs: vaultTotals{vaultID: 0},
	}
	vault := types.NewVaultRecord(0, s.adminAddr.String(), sharesDenom, assetsDenom, 50, s.feeAddr.String())
	tc.expectedEvents = sdk.Events{types.NewEventVaultCreated(vault)}

	td := msgServerTestDef[types.MsgCreateVaultRequest, types.MsgCreateVaultResponse, vaultTotals]{
		endpointName: "CreateVault",
		endpoint:     keeper.NewMsgServer(s.k).CreateVault,
		postCheck: func(msg *types.MsgCreateVaultRequest, args vaultTotals) {
			got := s.getVault(args.vaultID)
			s.Assert().Equal(msg.FeeBps, got.FeeBps)
			s.Assert().Equal(msg.FeeTokenAccount, got.FeeTokenAccount)
		},
	}
	runMsgServerTestCase(s, td, tc)

	invalid := *s.createVaultMsg(0)
	invalid.Admin = "nope"
	runMsgServerTestCase(s, td, msgServerTestCase[types.MsgCreateVaultRequest, vaultTotals]{
		name:               "invalid admin",
		msg:                invalid,
		expectedErrSubstrs: []string{"invalid admin address", "invalid request"},
	})
}

func (s *TestSuite) TestMsgServer_Deposit() {
	vault, _ := s.seedVault(100, 1000)
	owner := s.CreateAndFundAccount(assetsCoin(1000))

	td := msgServerTestDef[types.MsgDepositRequest, types.MsgDepositResponse, vaultTotals]{
		endpointName: "Deposit",
		endpoint:     keeper.NewMsgServer(s.k).Deposit,
		postCheck:    func(msg *types.MsgDepositRequest, args vaultTotals) { s.checkTotals(msg, args) },
	}

	tests := []msgServerTestCase[types.MsgDepositRequest, vaultTotals]{
		{
			name: "with fee",
			msg:  types.MsgDepositRequest{Owner: owner.String(), VaultID: vault.ID, Assets: assetsCoin(1000), WithFee: true},
			expectedResp: &types.MsgDepositResponse{
				SharesReceived: sharesCoin(990),
				AssetsPaid:     assetsCoin(990),
				FeePaid:        assetsCoin(10),
			},
			postCheckArgs: vaultTotals{vaultID: vault.ID, shares: 1990, assets: 1990},
			expectedEvents: sdk.Events{types.NewEventDeposit(vault, owner.String(), "deposit_with_fee",
				types.Effect{AssetsToVault: 990, AssetsToFee: 10, SharesToUser: 990})},
		},
		{
			name: "without fee",
			msg:  types.MsgDepositRequest{Owner: owner.String(), VaultID: vault.ID, Assets: assetsCoin(400)},
			expectedResp: &types.MsgDepositResponse{
				SharesReceived: sharesCoin(400),
				AssetsPaid:     assetsCoin(400),
				FeePaid:        assetsCoin(0),
			},
			postCheckArgs: vaultTotals{vaultID: vault.ID, shares: 1400, assets: 1400},
			expectedEvents: sdk.Events{types.NewEventDeposit(vault, owner.String(), "deposit",
				types.Effect{AssetsToVault: 400, SharesToUser: 400})},
		},
		{
			name:               "zero amount",
			msg:                types.MsgDepositRequest{Owner: owner.String(), VaultID: vault.ID, Assets: assetsCoin(0)},
			expectedErrSubstrs: []string{"assets must be positive", "invalid request"},
		},
		{
			name:               "bad owner",
			msg:                types.MsgDepositRequest{Owner: "bad", VaultID: vault.ID, Assets: assetsCoin(1)},
			expectedErrSubstrs: []string{"invalid owner address"},
		},
		{
			name:               "unknown vault",
			msg:                types.MsgDepositRequest{Owner: owner.String(), VaultID: 9, Assets: assetsCoin(1)},
			expectedErrSubstrs: []string{"vault 9", "vault not found"},
		},
		{
			name:               "shares instead of assets",
			msg:                types.MsgDepositRequest{Owner: owner.String(), VaultID: vault.ID, Assets: sharesCoin(1), WithFee: true},
			expectedErrSubstrs: []string{`deposit_with_fee expects "uusd"`, "invalid denom"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			runMsgServerTestCase(s, td, tc)
		})
	}
}

func (s *TestSuite) TestMsgServer_DepositExact() {
	vault, _ := s.seedVault(0, 3)
	s.fund(vault.GetVaultAssetsAccount(), assetsCoin(7))
	s.Require().NoError(s.k.UpdateReward(s.ctx, vault.ID, s.adminAddr, 10))
	owner := s.CreateAndFundAccount(assetsCoin(100))

	td := msgServerTestDef[types.MsgDepositExactRequest, types.MsgDepositResponse, vaultTotals]{
		endpointName: "DepositExact",
		endpoint:     keeper.NewMsgServer(s.k).DepositExact,
		postCheck: func(msg *types.MsgDepositExactRequest, args vaultTotals) {
			s.checkTotals(msg, args)
			s.assertBalance(owner, assetsDenom, 93)
		},
	}

	runMsgServerTestCase(s, td, msgServerTestCase[types.MsgDepositExactRequest, vaultTotals]{
		name: "cost rounds up",
		msg:  types.MsgDepositExactRequest{Owner: owner.String(), VaultID: vault.ID, Shares: sharesCoin(2)},
		expectedResp: &types.MsgDepositResponse{
			SharesReceived: sharesCoin(2),
			AssetsPaid:     assetsCoin(7),
			FeePaid:        assetsCoin(0),
		},
		postCheckArgs: vaultTotals{vaultID: vault.ID, shares: 5, assets: 17},
		expectedEvents: sdk.Events{types.NewEventDeposit(vault, owner.String(), "deposit_exact",
			types.Effect{AssetsToVault: 7, SharesToUser: 2})},
	})

	runMsgServerTestCase(s, td, msgServerTestCase[types.MsgDepositExactRequest, vaultTotals]{
		name:               "shares given in assets",
		msg:                types.MsgDepositExactRequest{Owner: owner.String(), VaultID: vault.ID, Shares: assetsCoin(2)},
		expectedErrSubstrs: []string{`expects "vshare"`, "invalid denom"},
	})
}

func (s *TestSuite) TestMsgServer_RedeemShares() {
	vault, owner := s.seedVault(0, 1000)

	td := msgServerTestDef[types.MsgRedeemSharesRequest, types.MsgRedeemSharesResponse, vaultTotals]{
		endpointName: "RedeemShares",
		endpoint:     keeper.NewMsgServer(s.k).RedeemShares,
		postCheck:    func(msg *types.MsgRedeemSharesRequest, args vaultTotals) { s.checkTotals(msg, args) },
	}

	runMsgServerTestCase(s, td, msgServerTestCase[types.MsgRedeemSharesRequest, vaultTotals]{
		name:          "partial redeem",
		msg:           types.MsgRedeemSharesRequest{Owner: owner.String(), VaultID: vault.ID, Shares: sharesCoin(300)},
		expectedResp:  &types.MsgRedeemSharesResponse{AssetsReceived: assetsCoin(300)},
		postCheckArgs: vaultTotals{vaultID: vault.ID, shares: 700, assets: 700},
		expectedEvents: sdk.Events{types.NewEventRedeem(vault, owner.String(),
			types.Effect{SharesToBurn: 300, AssetsToUser: 300})},
	})

	runMsgServerTestCase(s, td, msgServerTestCase[types.MsgRedeemSharesRequest, vaultTotals]{
		name:               "more than outstanding",
		msg:                types.MsgRedeemSharesRequest{Owner: owner.String(), VaultID: vault.ID, Shares: sharesCoin(1001)},
		expectedErrSubstrs: []string{"redeem_shares on vault 0", "only 1000 outstanding", "guard failed"},
	})
}

func (s *TestSuite) TestMsgServer_AdminMessages() {
	vault, owner := s.seedVault(0, 1000)
	s.fund(vault.GetVaultAssetsAccount(), assetsCoin(200))
	s.fund(s.adminAddr, assetsCoin(1_000_000))
	ms := keeper.NewMsgServer(s.k)

	rewardDef := msgServerTestDef[types.MsgUpdateRewardRequest, types.MsgUpdateRewardResponse, vaultTotals]{
		endpointName:     "UpdateReward",
		endpoint:         ms.UpdateReward,
		expectedResponse: &types.MsgUpdateRewardResponse{},
		postCheck:        func(msg *types.MsgUpdateRewardRequest, args vaultTotals) { s.checkTotals(msg, args) },
	}
	rewarded := vault
	rewarded.Assets = 1200
	runMsgServerTestCase(s, rewardDef, msgServerTestCase[types.MsgUpdateRewardRequest, vaultTotals]{
		name:           "reward",
		msg:            types.MsgUpdateRewardRequest{Admin: s.adminAddr.String(), VaultID: vault.ID, NewAssetsTotal: 1200},
		postCheckArgs:  vaultTotals{vaultID: vault.ID, shares: 1000, assets: 1200},
		expectedEvents: sdk.Events{types.NewEventRewardUpdated(rewarded, s.adminAddr.String(), 1000)},
	})
	runMsgServerTestCase(s, rewardDef, msgServerTestCase[types.MsgUpdateRewardRequest, vaultTotals]{
		name:               "reward from holder",
		msg:                types.MsgUpdateRewardRequest{Admin: owner.String(), VaultID: vault.ID, NewAssetsTotal: 1200},
		expectedErrSubstrs: []string{"is not the admin of vault 0", "unauthorized"},
	})

	slashDef := msgServerTestDef[types.MsgSlashRequest, types.MsgSlashResponse, vaultTotals]{
		endpointName:     "Slash",
		endpoint:         ms.Slash,
		expectedResponse: &types.MsgSlashResponse{},
		postCheck:        func(msg *types.MsgSlashRequest, args vaultTotals) { s.checkTotals(msg, args) },
	}
	slashed := vault
	slashed.Assets = 800
	runMsgServerTestCase(s, slashDef, msgServerTestCase[types.MsgSlashRequest, vaultTotals]{
		name:           "slash",
		msg:            types.MsgSlashRequest{Admin: s.adminAddr.String(), VaultID: vault.ID, NewAssetsTotal: 800},
		postCheckArgs:  vaultTotals{vaultID: vault.ID, shares: 1000, assets: 800},
		expectedEvents: sdk.Events{types.NewEventSlashed(slashed, s.adminAddr.String(), 1000)},
	})

	accrueDef := msgServerTestDef[types.MsgAccrueRewardRequest, types.MsgAccrueRewardResponse, vaultTotals]{
		endpointName:     "AccrueReward",
		endpoint:         ms.AccrueReward,
		expectedResponse: &types.MsgAccrueRewardResponse{Reward: assetsCoin(51)},
		postCheck:        func(msg *types.MsgAccrueRewardRequest, args vaultTotals) { s.checkTotals(msg, args) },
	}
	accrued := vault
	accrued.Assets = 1051
	runMsgServerTestCase(s, accrueDef, msgServerTestCase[types.MsgAccrueRewardRequest, vaultTotals]{
		name:           "accrue a year at five percent",
		msg:            types.MsgAccrueRewardRequest{Admin: s.adminAddr.String(), VaultID: vault.ID, Rate: "0.05", PeriodSeconds: interest.SecondsPerYear},
		postCheckArgs:  vaultTotals{vaultID: vault.ID, shares: 1000, assets: 1051},
		expectedEvents: sdk.Events{types.NewEventRewardUpdated(accrued, s.adminAddr.String(), 1000)},
	})

	feeDef := msgServerTestDef[types.MsgSetFeeBpsRequest, types.MsgSetFeeBpsResponse, vaultTotals]{
		endpointName:     "SetFeeBps",
		endpoint:         ms.SetFeeBps,
		expectedResponse: &types.MsgSetFeeBpsResponse{},
		postCheck: func(msg *types.MsgSetFeeBpsRequest, _ vaultTotals) {
			s.Assert().Equal(msg.FeeBps, s.getVault(msg.VaultID).FeeBps)
		},
	}
	runMsgServerTestCase(s, feeDef, msgServerTestCase[types.MsgSetFeeBpsRequest, vaultTotals]{
		name:           "set fee",
		msg:            types.MsgSetFeeBpsRequest{Admin: s.adminAddr.String(), VaultID: vault.ID, FeeBps: 30},
		expectedEvents: sdk.Events{types.NewEventFeeUpdated(vault.ID, s.adminAddr.String(), 0, 30)},
	})
	runMsgServerTestCase(s, feeDef, msgServerTestCase[types.MsgSetFeeBpsRequest, vaultTotals]{
		name:               "fee above maximum",
		msg:                types.MsgSetFeeBpsRequest{Admin: s.adminAddr.String(), VaultID: vault.ID, FeeBps: 1001},
		expectedErrSubstrs: []string{"fee bps 1001 exceeds maximum 1000", "invalid request"},
	})
}

// msgServerTestDef defines the endpoint under test.
// Req is the request message type.
// Resp is the response message type.
// CheckArgs is the argument type passed to the postCheck function.
type msgServerTestDef[Req any, Resp any, CheckArgs any] struct {
	endpointName     string
	endpoint         func(ctx context.Context, msg *Req) (*Resp, error)
	expectedResponse *Resp
	postCheck        func(msg *Req, args CheckArgs)
}

// msgServerTestCase defines a single test case for a MsgServer endpoint.
// expectedResp overrides the definition's expectedResponse when set.
type msgServerTestCase[Req any, CheckArgs any] struct {
	name               string
	setup              func()
	msg                Req
	expectedResp       any
	expectedErrSubstrs []string
	postCheckArgs      CheckArgs
	expectedEvents     sdk.Events
}

// runMsgServerTestCase executes a unit test for a MsgServer endpoint using the given test definition and test case.
// Each case runs against a cached context so cases do not affect each other.
func runMsgServerTestCase[Req any, Resp any, CheckArgs any](
	s *TestSuite,
	td msgServerTestDef[Req, Resp, CheckArgs],
	tc msgServerTestCase[Req, CheckArgs],
) {
	s.T().Helper()

	origCtx := s.ctx
	defer func() { s.ctx = origCtx }()
	s.ctx, _ = s.ctx.CacheContext()

	if tc.setup != nil {
		tc.setup()
	}

	em := sdk.NewEventManager()
	s.ctx = s.ctx.WithEventManager(em)

	var resp *Resp
	var err error
	s.Require().NotPanicsf(func() {
		resp, err = td.endpoint(s.ctx, &tc.msg)
	}, "%s panic", td.endpointName)

	if len(tc.expectedErrSubstrs) > 0 {
		s.Assert().Errorf(err, "%s error", td.endpointName)
		if err == nil {
			return
		}
		for _, substr := range tc.expectedErrSubstrs {
			s.Assert().Containsf(err.Error(), substr, "%s error missing expected substring", td.endpointName)
		}
		s.Assert().Empty(em.Events(), "%s emitted events on failure", td.endpointName)
		return
	}

	expected := td.expectedResponse
	if tc.expectedResp != nil {
		expected = tc.expectedResp.(*Resp)
	}
	s.Assert().NoErrorf(err, "%s error", td.endpointName)
	s.Assert().Equalf(expected, resp, "%s response", td.endpointName)
	s.Assert().Equalf(tc.expectedEvents, em.Events(), "%s events", td.endpointName)

	if td.postCheck != nil {
		td.postCheck(&tc.msg, tc.postCheckArgs)
	}
}
