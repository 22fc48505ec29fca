package keeper_test

import (
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/types"
)

func (s *TestSuite) TestCreateVault() {
	vault := s.createVault(25)

	s.Assert().Equal(uint32(0), vault.ID, "first vault id")
	s.Assert().Equal(types.GetVaultAddress(0).String(), vault.VaultAssetsAccount)
	s.Assert().True(vault.IsEmpty(), "new vault should be empty")
	s.Assert().Equal(uint64(25), vault.FeeBps)
	s.Assert().Equal(vault, s.getVault(0), "stored vault")

	event := s.lastEvent()
	s.Assert().Equal(types.EventTypeVaultCreated, event.Type)
	s.assertEventAttribute(event, types.AttributeKeyVaultID, "0")
	s.assertEventAttribute(event, types.AttributeKeySharesDenom, sharesDenom)

	msg := s.createVaultMsg(0)
	msg.SharesDenom = "vshare2"
	second, err := s.k.CreateVault(s.ctx, msg)
	s.Require().NoError(err)
	s.Assert().Equal(uint32(1), second.ID, "ids are sequential")
}

func (s *TestSuite) TestCreateVault_Errors() {
	s.createVault(0)

	tests := []struct {
		name        string
		setup       func()
		mutate      func(m *types.MsgCreateVaultRequest)
		expectedErr string
	}{
		{
			name:        "shares denom used by another vault",
			mutate:      func(*types.MsgCreateVaultRequest) {},
			expectedErr: `shares denom "vshare" is already used by vault 0`,
		},
		{
			name:        "shares denom already in circulation",
			setup:       func() { s.CreateAndFundAccount(sdk.NewInt64Coin("premint", 1)) },
			mutate:      func(m *types.MsgCreateVaultRequest) { m.SharesDenom = "premint" },
			expectedErr: `shares denom "premint" already has a supply of 1premint`,
		},
		{
			name:        "invalid fee",
			mutate:      func(m *types.MsgCreateVaultRequest) { m.SharesDenom = "other"; m.FeeBps = types.MaxFeeBps + 1 },
			expectedErr: "failed to validate vault: fee bps 1001 exceeds maximum 1000",
		},
		{
			name:        "same denoms",
			mutate:      func(m *types.MsgCreateVaultRequest) { m.SharesDenom = assetsDenom },
			expectedErr: "shares denom and assets denom must differ",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			if tc.setup != nil {
				tc.setup()
			}
			msg := s.createVaultMsg(0)
			tc.mutate(msg)
			_, err := s.k.CreateVault(s.ctx, msg)
			s.Assert().ErrorContains(err, tc.expectedErr)
		})
	}

	vaults, err := s.k.GetVaults(s.ctx)
	s.Require().NoError(err)
	s.Assert().Len(vaults, 1, "failed creations must not store a vault")

	msg := s.createVaultMsg(0)
	msg.SharesDenom = "fresh"
	next, err := s.k.CreateVault(s.ctx, msg)
	s.Require().NoError(err)
	s.Assert().Equal(uint32(1), next.ID, "failed creations must not consume an id")
}

func (s *TestSuite) TestCreateVault_IDSpaceExhausted() {
	s.Require().NoError(s.k.VaultSeq.Set(s.ctx, math.MaxUint32-1))

	last, err := s.k.CreateVault(s.ctx, s.createVaultMsg(0))
	s.Require().NoError(err)
	s.Assert().Equal(uint32(math.MaxUint32-1), last.ID)
	s.Assert().Equal(uint32(math.MaxUint32), s.k.ExportGenesis(s.ctx).NextVaultID)

	msg := s.createVaultMsg(0)
	msg.SharesDenom = "overflow"
	_, err = s.k.CreateVault(s.ctx, msg)
	s.Assert().EqualError(err, "vault id space exhausted")
	s.Assert().Equal(uint32(math.MaxUint32), s.k.ExportGenesis(s.ctx).NextVaultID, "sequence must not advance")

	s.Require().NoError(s.k.VaultSeq.Set(s.ctx, math.MaxUint32+1))
	s.Assert().PanicsWithError("vault sequence 4294967296 does not fit in 32 bits", func() { s.k.ExportGenesis(s.ctx) })
}

func (s *TestSuite) TestGetVault_NotFound() {
	vault, err := s.k.GetVault(s.ctx, 42)
	s.Require().NoError(err)
	s.Assert().Nil(vault)

	_, err = s.k.Deposit(s.ctx, 42, s.CreateAndFundAccount(assetsCoin(1)), assetsCoin(1), false)
	s.Assert().ErrorIs(err, types.ErrVaultNotFound)
}

func (s *TestSuite) TestGetVaults() {
	vaults, err := s.k.GetVaults(s.ctx)
	s.Require().NoError(err)
	s.Assert().Empty(vaults)

	for _, denom := range []string{"vsa", "vsb", "vsc"} {
		msg := s.createVaultMsg(0)
		msg.SharesDenom = denom
		_, err := s.k.CreateVault(s.ctx, msg)
		s.Require().NoError(err)
	}

	vaults, err = s.k.GetVaults(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(vaults, 3)
	for i, v := range vaults {
		s.Assert().Equal(uint32(i), v.ID, "vaults are returned in id order")
	}
}

func (s *TestSuite) TestSetVault_Validates() {
	vault := s.createVault(0)
	vault.Shares = 10

	err := s.k.SetVault(s.ctx, vault)
	s.Assert().ErrorContains(err, "vault has 10 shares outstanding with no assets")
	s.assertTotals(vault.ID, 0, 0)
}

func (s *TestSuite) TestSetFeeBps() {
	vault := s.createVault(10)
	s.resetEvents()

	s.Require().NoError(s.k.SetFeeBps(s.ctx, vault.ID, s.adminAddr, 75))
	s.Assert().Equal(uint64(75), s.getVault(vault.ID).FeeBps)

	event := s.lastEvent()
	s.Assert().Equal(types.EventTypeFeeUpdated, event.Type)
	s.assertEventAttribute(event, types.AttributeKeyFeeBpsFrom, "10")
	s.assertEventAttribute(event, types.AttributeKeyFeeBpsTo, "75")

	err := s.k.SetFeeBps(s.ctx, vault.ID, s.feeAddr, 0)
	s.Assert().ErrorIs(err, types.ErrUnauthorized)

	err = s.k.SetFeeBps(s.ctx, vault.ID, s.adminAddr, types.MaxFeeBps+1)
	s.Assert().ErrorIs(err, types.ErrInvalidRequest)

	err = s.k.SetFeeBps(s.ctx, 99, s.adminAddr, 0)
	s.Assert().ErrorIs(err, types.ErrVaultNotFound)

	s.Assert().Equal(uint64(75), s.getVault(vault.ID).FeeBps, "failed updates leave the fee unchanged")
}
