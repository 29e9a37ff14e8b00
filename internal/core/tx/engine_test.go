package tx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfrac/gofracd/internal/core/tx"
	testenv "github.com/openfrac/gofracd/internal/testing"
)

// probeTx drives the engine with a scripted outcome, optionally mutating
// the working state before returning it.
type probeTx struct {
	tx.BaseTx
	result tx.Result
	mutate func(ctx *tx.ApplyContext)
}

func newProbe(account string, result tx.Result) *probeTx {
	return &probeTx{
		BaseTx: *tx.NewBaseTx(tx.TypePriceVote, account),
		result: result,
	}
}

func (p *probeTx) Apply(ctx *tx.ApplyContext) tx.Result {
	if p.mutate != nil {
		p.mutate(ctx)
	}
	return p.result
}

func accountSequence(t *testing.T, env *testenv.TestEnv, address string) uint32 {
	t.Helper()
	acct, ok := env.Ledger().Account(address)
	require.True(t, ok)
	return acct.Sequence
}

func TestEngineRejectsUnknownAccount(t *testing.T) {
	env := testenv.NewTestEnv(t)

	result := env.Submit(newProbe("ghost", tx.TesSUCCESS))
	testenv.RequireTxFail(t, result, "terNO_ACCOUNT")
	require.False(t, result.Applied)
}

func TestEngineRequiresSequence(t *testing.T) {
	env := testenv.NewTestEnv(t)

	// Bypass the env's auto-fill
	probe := newProbe(testenv.Curator, tx.TesSUCCESS)
	result := env.Engine().Apply(probe)
	require.Equal(t, tx.TemBAD_SEQUENCE, result.Result)
	require.False(t, result.Applied)
}

func TestEngineSequenceOrdering(t *testing.T) {
	env := testenv.NewTestEnv(t)

	// Future sequence: retryable, not applied
	ahead := newProbe(testenv.Curator, tx.TesSUCCESS)
	ahead.SetSequence(5)
	result := env.Submit(ahead)
	testenv.RequireTxFail(t, result, "terPRE_SEQ")
	require.Equal(t, uint32(0), accountSequence(t, env, testenv.Curator))

	// Current sequence applies and consumes
	testenv.RequireTxSuccess(t, env.Submit(newProbe(testenv.Curator, tx.TesSUCCESS)))
	require.Equal(t, uint32(1), accountSequence(t, env, testenv.Curator))

	// Replaying the consumed sequence fails hard
	replay := newProbe(testenv.Curator, tx.TesSUCCESS)
	replay.SetSequence(0)
	testenv.RequireTxFail(t, env.Submit(replay), "tefPAST_SEQ")
	require.Equal(t, uint32(1), accountSequence(t, env, testenv.Curator))
}

func TestEngineCommitsOnSuccess(t *testing.T) {
	env := testenv.NewTestEnv(t)

	probe := newProbe(testenv.Curator, tx.TesSUCCESS)
	probe.mutate = func(ctx *tx.ApplyContext) {
		ctx.Vault.Pool = 42
		ctx.Ledger.CreditNative("winner", 7)
	}

	testenv.RequireTxSuccess(t, env.Submit(probe))
	require.Equal(t, uint64(42), env.Vault().Pool)
	require.Equal(t, uint64(7), env.NativeOf("winner"))
}

func TestEngineDiscardsEffectsOnTec(t *testing.T) {
	env := testenv.NewTestEnv(t)

	probe := newProbe(testenv.Curator, tx.TecWRONG_STATE)
	probe.mutate = func(ctx *tx.ApplyContext) {
		// Partial work that must never become visible
		ctx.Vault.Pool = 9999
		ctx.Ledger.Mint(testenv.Curator, 500)
	}

	result := env.Submit(probe)
	testenv.RequireTxFail(t, result, "tecWRONG_STATE")

	// tec is applied: the sequence is consumed, nothing else
	require.True(t, result.Applied)
	require.Equal(t, uint32(1), accountSequence(t, env, testenv.Curator))
	require.Equal(t, uint64(0), env.Vault().Pool)
	require.Equal(t, uint64(1000), env.Supply())
}

func TestEngineDiscardsSequenceOnTef(t *testing.T) {
	env := testenv.NewTestEnv(t)

	result := env.Submit(newProbe(testenv.Curator, tx.TefFAILURE))
	testenv.RequireTxFail(t, result, "tefFAILURE")
	require.False(t, result.Applied)
	require.Equal(t, uint32(0), accountSequence(t, env, testenv.Curator))
}

func TestEnginePreclaimChecksAttachedValue(t *testing.T) {
	env := testenv.NewTestEnv(t)

	// The curator has shares but no native value
	probe := newProbe(testenv.Curator, tx.TesSUCCESS)
	probe.Common.Value = 100

	result := env.Submit(probe)
	testenv.RequireTxFail(t, result, "tecINSUFFICIENT_FUNDS")
	require.True(t, result.Applied)
	require.Equal(t, uint32(1), accountSequence(t, env, testenv.Curator))
}

func TestEngineTransactorSeesConsumedSequence(t *testing.T) {
	env := testenv.NewTestEnv(t)

	var seen uint32
	probe := newProbe(testenv.Curator, tx.TesSUCCESS)
	probe.mutate = func(ctx *tx.ApplyContext) {
		acct, _ := ctx.Ledger.Account(testenv.Curator)
		seen = acct.Sequence
	}

	testenv.RequireTxSuccess(t, env.Submit(probe))
	require.Equal(t, uint32(1), seen)
}

func TestEngineHashIsSet(t *testing.T) {
	env := testenv.NewTestEnv(t)

	result := env.Submit(newProbe(testenv.Curator, tx.TesSUCCESS))
	require.NotEqual(t, [32]byte{}, result.Hash)
}
