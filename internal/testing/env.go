// Package testing provides a test harness for driving the vault through
// transactions against a manual clock.
package testing

import (
	stdtesting "testing"
	"time"

	"github.com/openfrac/gofracd/internal/core/ledger"
	"github.com/openfrac/gofracd/internal/core/tx"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// Well-known test accounts.
const (
	Curator    = "curator"
	Governance = "governance"
	Treasury   = "treasury"
)

// TestEnv manages an in-memory vault environment for transaction
// testing: genesis, accounts, submission, and time control.
type TestEnv struct {
	t      *stdtesting.T
	engine *tx.Engine
	clock  *ManualClock
	bus    *events.Bus
}

// DefaultGenesis returns the standard test deployment: 1000 shares,
// list price 100, fee rates zeroed so balances stay exact unless a test
// opts in.
func DefaultGenesis() vault.Genesis {
	settings := vault.DefaultSettings()
	settings.Governance = Governance
	settings.FeeReceiver = Treasury
	settings.GovernanceFee = 0

	return vault.Genesis{
		AssetID:    "asset-1",
		Curator:    Curator,
		Supply:     1000,
		ListPrice:  100,
		CuratorFee: 0,
		Settings:   settings,
		Accounts: []vault.GenesisAccount{
			{Address: Governance},
			{Address: Treasury},
		},
	}
}

// NewTestEnv creates a test environment from the default genesis.
func NewTestEnv(t *stdtesting.T) *TestEnv {
	t.Helper()
	return NewTestEnvWithGenesis(t, DefaultGenesis())
}

// NewTestEnvWithGenesis creates a test environment from a custom genesis.
func NewTestEnvWithGenesis(t *stdtesting.T, g vault.Genesis) *TestEnv {
	t.Helper()

	clock := NewManualClock()
	if g.Now == 0 {
		g.Now = uint64(clock.Now().Unix())
	}

	state, lg, err := vault.NewFromGenesis(g)
	if err != nil {
		t.Fatalf("failed to create genesis vault: %v", err)
	}

	bus := events.NewBus()
	return &TestEnv{
		t:      t,
		engine: tx.NewEngine(state, lg, clock, bus),
		clock:  clock,
		bus:    bus,
	}
}

// Fund registers an account and credits it with native value.
func (e *TestEnv) Fund(address string, native uint64) {
	e.t.Helper()
	lg := e.engine.Ledger()
	lg.Register(address, false)
	lg.CreditNative(address, native)
}

// FundContract registers a contract-flagged account; payouts to it land
// as wrapped value.
func (e *TestEnv) FundContract(address string, native uint64) {
	e.t.Helper()
	lg := e.engine.Ledger()
	lg.Register(address, true)
	lg.CreditNative(address, native)
}

// Submit applies a transaction, filling in the account's next sequence
// when the caller left it unset.
func (e *TestEnv) Submit(txn tx.Transaction) TxResult {
	e.t.Helper()

	common := txn.GetCommon()
	if common.Sequence == nil {
		if acct, ok := e.engine.Ledger().Account(common.Account); ok {
			common.SetSequence(acct.Sequence)
		} else {
			common.SetSequence(0)
		}
	}

	result := e.engine.Apply(txn)
	return TxResult{
		Code:    result.Result.String(),
		Success: result.Result.IsSuccess(),
		Applied: result.Applied,
		Message: result.Message,
		Hash:    result.Hash,
	}
}

// Engine returns the transaction engine.
func (e *TestEnv) Engine() *tx.Engine {
	return e.engine
}

// Events returns the event bus.
func (e *TestEnv) Events() *events.Bus {
	return e.bus
}

// Vault returns the live vault aggregate.
func (e *TestEnv) Vault() *vault.State {
	return e.engine.Vault()
}

// Ledger returns the live ledger.
func (e *TestEnv) Ledger() *ledger.Ledger {
	return e.engine.Ledger()
}

// SharesOf returns an account's share balance.
func (e *TestEnv) SharesOf(address string) uint64 {
	return e.engine.Ledger().SharesOf(address)
}

// NativeOf returns an account's native balance.
func (e *TestEnv) NativeOf(address string) uint64 {
	return e.engine.Ledger().NativeOf(address)
}

// WrappedOf returns an account's wrapped balance.
func (e *TestEnv) WrappedOf(address string) uint64 {
	return e.engine.Ledger().WrappedOf(address)
}

// Supply returns the outstanding share supply.
func (e *TestEnv) Supply() uint64 {
	return e.engine.Ledger().TotalSupply()
}

// ReservePrice returns the current weighted-average reserve price.
func (e *TestEnv) ReservePrice() uint64 {
	return e.engine.Vault().ReservePrice()
}

// Now returns the test clock reading in unix seconds.
func (e *TestEnv) Now() uint64 {
	return uint64(e.clock.Now().Unix())
}

// AdvanceTime moves the test clock forward.
func (e *TestEnv) AdvanceTime(d time.Duration) {
	e.clock.Advance(d)
}

// SetTime sets the test clock.
func (e *TestEnv) SetTime(t time.Time) {
	e.clock.Set(t)
}
