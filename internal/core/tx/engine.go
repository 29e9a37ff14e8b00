package tx

import (
	"crypto/sha256"
	"encoding/json"
	"strings"
	"sync"

	"github.com/openfrac/gofracd/internal/core/ledger"
	"github.com/openfrac/gofracd/internal/core/vault"
	"github.com/openfrac/gofracd/internal/events"
)

// Engine processes transactions against the vault and ledger.
//
// Every Apply runs in three phases: preflight (syntactic validation),
// preclaim (checks against current state: account, sequence, attached
// value), and doApply (the transactor itself). doApply runs against
// working copies of the vault and ledger; the engine commits them only
// for tesSUCCESS, so a rejected transaction leaves no partial effects.
// tec results still consume the account sequence.
type Engine struct {
	mu     sync.Mutex
	vault  *vault.State
	ledger *ledger.Ledger
	clock  Clock
	events *events.Bus
}

// ApplyResult contains the result of applying a transaction
type ApplyResult struct {
	// Result is the transaction result code
	Result Result

	// Applied indicates the sequence was consumed and the transaction recorded
	Applied bool

	// Hash identifies the transaction
	Hash [32]byte

	// Message is a human-readable result message
	Message string
}

// NewEngine creates a new transaction engine. The vault is installed as
// the ledger's transfer hook so share moves feed the reserve aggregator.
func NewEngine(v *vault.State, l *ledger.Ledger, clock Clock, bus *events.Bus) *Engine {
	l.SetHook(v)
	return &Engine{
		vault:  v,
		ledger: l,
		clock:  clock,
		events: bus,
	}
}

// Vault returns the live vault aggregate. Read-only use.
func (e *Engine) Vault() *vault.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vault
}

// Ledger returns the live ledger. Read-only use.
func (e *Engine) Ledger() *ledger.Ledger {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger
}

// Now returns the engine's current time in unix seconds.
func (e *Engine) Now() uint64 {
	return uint64(e.clock.Now().Unix())
}

// Apply processes a transaction
func (e *Engine) Apply(txn Transaction) ApplyResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Step 1: Preflight (syntax)
	result := e.preflight(txn)
	if !result.IsSuccess() {
		return ApplyResult{
			Result:  result,
			Applied: false,
			Message: result.Message(),
		}
	}

	// Step 2: Preclaim (current state)
	result = e.preclaim(txn)
	if !result.IsSuccess() && !result.IsTec() {
		return ApplyResult{
			Result:  result,
			Applied: false,
			Message: result.Message(),
		}
	}

	// Step 3: Transaction hash
	txHash, err := computeTransactionHash(txn)
	if err != nil {
		return ApplyResult{
			Result:  TefINTERNAL,
			Applied: false,
			Message: "failed to compute transaction hash: " + err.Error(),
		}
	}

	// Step 4: Apply
	if result.IsSuccess() {
		result = e.doApply(txn, txHash)
	}

	// tec results consume the sequence without any other effect
	if result.IsTec() {
		e.ledger.BumpSequence(txn.GetCommon().Account)
	}

	return ApplyResult{
		Result:  result,
		Applied: result.IsApplied(),
		Hash:    txHash,
		Message: result.Message(),
	}
}

// preflight performs syntactic validation on the transaction
func (e *Engine) preflight(txn Transaction) Result {
	common := txn.GetCommon()

	if common.Account == "" {
		return TemBAD_ACCOUNT
	}
	if common.TransactionType == "" {
		return TemINVALID
	}
	if common.Sequence == nil {
		return TemBAD_SEQUENCE
	}

	if err := txn.Validate(); err != nil {
		return parseValidationError(err)
	}
	return TesSUCCESS
}

// preclaim validates the transaction against current state
func (e *Engine) preclaim(txn Transaction) Result {
	common := txn.GetCommon()

	acct, ok := e.ledger.Account(common.Account)
	if !ok {
		return TerNO_ACCOUNT
	}

	if *common.Sequence < acct.Sequence {
		return TefPAST_SEQ
	}
	if *common.Sequence > acct.Sequence {
		return TerPRE_SEQ
	}

	// Attached value must be covered before the transactor runs
	if common.Value > acct.Native {
		return TecINSUFFICIENT_FUNDS
	}

	return TesSUCCESS
}

// doApply runs the transactor against working copies and commits on success
func (e *Engine) doApply(txn Transaction, txHash [32]byte) Result {
	common := txn.GetCommon()

	workVault := e.vault.Clone()
	workLedger := e.ledger.Clone()
	workLedger.SetHook(workVault)

	// The sequence is consumed up front, as the transactor sees it
	workLedger.BumpSequence(common.Account)

	ctx := &ApplyContext{
		Vault:   workVault,
		Ledger:  workLedger,
		Account: common.Account,
		Value:   common.Value,
		Now:     e.Now(),
		TxHash:  txHash,
		Events:  e.events,
	}

	appliable, ok := txn.(Appliable)
	if !ok {
		return TefINTERNAL
	}

	result := appliable.Apply(ctx)
	if result.IsSuccess() {
		e.vault = workVault
		e.ledger = workLedger
	}
	return result
}

// computeTransactionHash computes the hash of a transaction as the
// SHA-256 of its canonical JSON encoding.
func computeTransactionHash(txn Transaction) ([32]byte, error) {
	data, err := json.Marshal(txn)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}

// parseValidationError extracts a result code from a validation error.
// Validate() implementations include the code as a prefix
// (e.g. "temBAD_AMOUNT: Amount must be positive").
func parseValidationError(err error) Result {
	msg := err.Error()

	codes := map[string]Result{
		"temMALFORMED":    TemMALFORMED,
		"temBAD_AMOUNT":   TemBAD_AMOUNT,
		"temBAD_SEQUENCE": TemBAD_SEQUENCE,
		"temBAD_ACCOUNT":  TemBAD_ACCOUNT,
		"temDST_NEEDED":   TemDST_NEEDED,
		"temDST_IS_SRC":   TemDST_IS_SRC,
		"temINVALID":      TemINVALID,
		"temREDUNDANT":    TemREDUNDANT,
	}

	for code, result := range codes {
		if strings.HasPrefix(msg, code) {
			rest := msg[len(code):]
			if rest == "" || rest[0] == ':' || rest[0] == ' ' {
				return result
			}
		}
	}
	return TemINVALID
}
