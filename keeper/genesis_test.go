package keeper_test

import (
	"github.com/provlabs/tokenvault/types"
)

func (s *TestSuite) TestVaultGenesis_InitAndExport() {
	first := types.NewVaultRecord(2, s.adminAddr.String(), "vsa", assetsDenom, 10, s.feeAddr.String())
	first.Shares, first.Assets = 400, 500
	second := types.NewVaultRecord(5, s.adminAddr.String(), "vsb", assetsDenom, 0, s.feeAddr.String())

	genesis := &types.GenesisState{
		Vaults:      []types.VaultRecord{first, second},
		NextVaultID: 7,
	}

	s.k.InitGenesis(s.ctx, genesis)

	s.Assert().Equal(first, s.getVault(2))
	s.Assert().Equal(second, s.getVault(5))

	exported := s.k.ExportGenesis(s.ctx)
	s.Assert().Equal(genesis, exported, "exported genesis")

	msg := s.createVaultMsg(0)
	msg.SharesDenom = "vsc"
	created, err := s.k.CreateVault(s.ctx, msg)
	s.Require().NoError(err)
	s.Assert().Equal(uint32(7), created.ID, "ids continue from the genesis sequence")
	s.Assert().Equal(uint32(8), s.k.ExportGenesis(s.ctx).NextVaultID)
}

func (s *TestSuite) TestVaultGenesis_Default() {
	s.k.InitGenesis(s.ctx, types.DefaultGenesisState())

	exported := s.k.ExportGenesis(s.ctx)
	s.Assert().Empty(exported.Vaults)
	s.Assert().Equal(uint32(0), exported.NextVaultID)
}

func (s *TestSuite) TestVaultGenesis_Nil() {
	s.Require().NotPanics(func() { s.k.InitGenesis(s.ctx, nil) })
	s.Assert().Empty(s.k.ExportGenesis(s.ctx).Vaults)
}

func (s *TestSuite) TestVaultGenesis_InvalidPanics() {
	bad := types.NewVaultRecord(0, s.adminAddr.String(), sharesDenom, assetsDenom, 0, s.feeAddr.String())
	bad.Shares = 10

	s.Require().PanicsWithError(
		"invalid tokenvault genesis state: invalid vault at index 0: vault has 10 shares outstanding with no assets",
		func() {
			s.k.InitGenesis(s.ctx, &types.GenesisState{Vaults: []types.VaultRecord{bad}, NextVaultID: 1})
		},
	)

	ok := types.NewVaultRecord(3, s.adminAddr.String(), sharesDenom, assetsDenom, 0, s.feeAddr.String())
	s.Require().Panics(func() {
		s.k.InitGenesis(s.ctx, &types.GenesisState{Vaults: []types.VaultRecord{ok}, NextVaultID: 3})
	}, "vault id at or above the next id")

	twin := types.NewVaultRecord(4, s.adminAddr.String(), sharesDenom, assetsDenom, 0, s.feeAddr.String())
	s.Require().PanicsWithError(
		`invalid tokenvault genesis state: duplicate shares denom "`+sharesDenom+`" at index 1: already used by vault 3`,
		func() {
			s.k.InitGenesis(s.ctx, &types.GenesisState{Vaults: []types.VaultRecord{ok, twin}, NextVaultID: 5})
		},
	)
}
