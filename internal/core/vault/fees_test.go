package vault

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfrac/gofracd/internal/core/ledger"
)

func TestAccruedShares(t *testing.T) {
	// 630720000 shares at 100 per-mille accrue exactly 2 shares per second
	tests := []struct {
		name    string
		rate    uint64
		supply  uint64
		elapsed uint64
		want    uint64
	}{
		{"zero rate", 0, 630720000, 3600, 0},
		{"zero supply", 100, 0, 3600, 0},
		{"zero elapsed", 100, 630720000, 0, 0},
		{"one hour at 10%", 100, 630720000, 3600, 7200},
		{"one hour at 5%", 50, 630720000, 3600, 3600},
		{"sub-second rate truncates", 10, 1000, 999999, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, accruedShares(tc.rate, tc.supply, tc.elapsed))
		})
	}
}

func TestSettleFees(t *testing.T) {
	settings := DefaultSettings()
	settings.Governance = "governance"
	settings.FeeReceiver = "treasury"
	settings.GovernanceFee = 50

	v := &State{
		Curator:     "curator",
		CuratorFee:  100,
		LastClaimed: 1000,
		Settings:    settings,
		UserPrices:  make(map[string]uint64),
	}
	lg := ledger.New("asset-1")
	lg.Mint("holder", 630720000)

	accrual := SettleFees(v, lg, 1000+3600)

	require.Equal(t, uint64(7200), accrual.Curator)
	require.Equal(t, uint64(3600), accrual.Governance)
	require.Equal(t, uint64(3600), accrual.Elapsed)
	require.Equal(t, uint64(10800), accrual.Total())

	require.Equal(t, uint64(7200), lg.SharesOf("curator"))
	require.Equal(t, uint64(3600), lg.SharesOf("treasury"))
	require.Equal(t, uint64(630720000+10800), lg.TotalSupply())
	require.Equal(t, uint64(4600), v.LastClaimed)
}

func TestSettleFeesSnapshotsSupplyOnce(t *testing.T) {
	// Both rates are computed from the pre-mint supply: the curator mint
	// must not inflate the governance accrual.
	settings := DefaultSettings()
	settings.Governance = "governance"
	settings.FeeReceiver = "treasury"
	settings.GovernanceFee = 100

	v := &State{
		Curator:     "curator",
		CuratorFee:  100,
		LastClaimed: 0,
		Settings:    settings,
		UserPrices:  make(map[string]uint64),
	}
	lg := ledger.New("asset-1")
	lg.Mint("holder", 630720000)

	accrual := SettleFees(v, lg, 3600)
	require.Equal(t, accrual.Curator, accrual.Governance)
}

func TestSettleFeesNoElapsedTime(t *testing.T) {
	settings := DefaultSettings()
	settings.Governance = "governance"
	settings.FeeReceiver = "treasury"

	v := &State{
		Curator:     "curator",
		CuratorFee:  100,
		LastClaimed: 5000,
		Settings:    settings,
		UserPrices:  make(map[string]uint64),
	}
	lg := ledger.New("asset-1")
	lg.Mint("holder", 630720000)

	require.Equal(t, FeeAccrual{}, SettleFees(v, lg, 5000))
	require.Equal(t, FeeAccrual{}, SettleFees(v, lg, 4000))
	require.Equal(t, uint64(5000), v.LastClaimed)
	require.Equal(t, uint64(630720000), lg.TotalSupply())
}
