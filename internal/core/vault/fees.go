package vault

import "github.com/openfrac/gofracd/internal/core/ledger"

// SecondsPerYear converts annual rates to per-second accrual.
const SecondsPerYear = 31536000

// FeeAccrual is the outcome of a fee settlement.
type FeeAccrual struct {
	// Curator and Governance are the shares minted to each
	Curator    uint64 `json:"curator"`
	Governance uint64 `json:"governance"`

	// Elapsed is the settled period in seconds
	Elapsed uint64 `json:"elapsed"`
}

// Total returns the combined minted shares.
func (f FeeAccrual) Total() uint64 {
	return f.Curator + f.Governance
}

// accruedShares computes the shares earned by one rate over a period.
// Truncation order is fixed: annual amount, then per-second, then scaled
// by elapsed time. Supply is snapshotted once per settlement, so the
// curator's mint does not inflate the governance mint.
func accruedShares(rate, supply, elapsed uint64) uint64 {
	return rate * supply / PerMille / SecondsPerYear * elapsed
}

// SettleFees mints the shares accrued since LastClaimed to the curator
// and the fee receiver, at the rates in effect for the settled period,
// and advances LastClaimed. Callers that change a rate settle first so
// the old rate covers the elapsed time.
func SettleFees(v *State, lg *ledger.Ledger, now uint64) FeeAccrual {
	if now <= v.LastClaimed {
		return FeeAccrual{}
	}
	elapsed := now - v.LastClaimed
	supply := lg.TotalSupply()

	accrual := FeeAccrual{
		Curator:    accruedShares(v.CuratorFee, supply, elapsed),
		Governance: accruedShares(v.Settings.GovernanceFee, supply, elapsed),
		Elapsed:    elapsed,
	}

	lg.Mint(v.Curator, accrual.Curator)
	lg.Mint(v.Settings.FeeReceiver, accrual.Governance)
	v.LastClaimed = now
	return accrual
}
