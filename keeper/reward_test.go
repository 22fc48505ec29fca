package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/tokenvault/interest"
	"github.com/provlabs/tokenvault/types"
)

func (s *TestSuite) TestAccrueReward() {
	vault, owner := s.seedVault(0, 100_000_000)
	s.fund(s.adminAddr, assetsCoin(10_000_000))
	s.resetEvents()

	reward, err := s.k.AccrueReward(s.ctx, vault.ID, s.adminAddr, "0.05", interest.SecondsPerYear)
	s.Require().NoError(err)
	s.Assert().Equal(uint64(5_127_109), reward)

	s.assertTotals(vault.ID, 100_000_000, 105_127_109)
	s.assertBalance(s.adminAddr, assetsDenom, 10_000_000-5_127_109)
	s.assertBalance(vault.GetVaultAssetsAccount(), assetsDenom, 105_127_109)
	s.Assert().Equal(types.EventTypeRewardUpdated, s.lastEvent().Type, "accrual is recognized as a reward")

	effect, err := s.k.RedeemShares(s.ctx, vault.ID, owner, sharesCoin(100_000_000))
	s.Require().NoError(err)
	s.Assert().Equal(uint64(105_127_109), effect.AssetsToUser)
}

func (s *TestSuite) TestAccrueReward_NothingAccrued() {
	vault, _ := s.seedVault(0, 1_000_000)
	s.resetEvents()

	reward, err := s.k.AccrueReward(s.ctx, vault.ID, s.adminAddr, "0.00001", 60)
	s.Require().NoError(err)
	s.Assert().Zero(reward)
	s.assertTotals(vault.ID, 1_000_000, 1_000_000)
	s.Assert().Empty(s.ctx.EventManager().Events())
}

func (s *TestSuite) TestAccrueReward_Errors() {
	vault, owner := s.seedVault(0, 100_000_000)

	tests := []struct {
		name        string
		admin       sdk.AccAddress
		rate        string
		period      int64
		expectedErr string
	}{
		{
			name:        "not the admin",
			admin:       owner,
			rate:        "0.05",
			period:      interest.SecondsPerYear,
			expectedErr: "is not the admin of vault 0",
		},
		{
			name:        "negative rate",
			admin:       s.adminAddr,
			rate:        "-0.05",
			period:      interest.SecondsPerYear,
			expectedErr: "negative rate -0.05 cannot accrue a reward",
		},
		{
			name:        "zero period",
			admin:       s.adminAddr,
			rate:        "0.05",
			expectedErr: "periodSeconds must be positive",
		},
		{
			name:        "rate too large to compute",
			admin:       s.adminAddr,
			rate:        "100000000",
			period:      interest.SecondsPerYear,
			expectedErr: "math overflow",
		},
		{
			name:        "admin cannot fund the reward",
			admin:       s.adminAddr,
			rate:        "0.05",
			period:      interest.SecondsPerYear,
			expectedErr: "failed to fund reward",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.k.AccrueReward(s.ctx, vault.ID, tc.admin, tc.rate, tc.period)
			s.Assert().ErrorContains(err, tc.expectedErr)
			s.assertTotals(vault.ID, 100_000_000, 100_000_000)
			s.assertBalance(vault.GetVaultAssetsAccount(), assetsDenom, 100_000_000)
		})
	}
}
