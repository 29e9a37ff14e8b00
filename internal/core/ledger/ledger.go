// Package ledger holds account state: share balances, native and wrapped
// value balances, and ownership of the vaulted asset.
package ledger

import "errors"

// Ledger errors
var (
	ErrNoAccount          = errors.New("account does not exist")
	ErrInsufficientShares = errors.New("insufficient share balance")
	ErrInsufficientFunds  = errors.New("insufficient native balance")
)

// TransferHook observes share movements before they commit. The vault
// implements it to keep the reserve aggregator in sync. Mints reach the
// hook with an empty sender, burns with an empty receiver.
type TransferHook interface {
	OnShareTransfer(from, to string, amount uint64)
}

// Account is the per-address record.
type Account struct {
	Address  string `json:"address"`
	Shares   uint64 `json:"shares"`
	Native   uint64 `json:"native"`
	Wrapped  uint64 `json:"wrapped"`
	Sequence uint32 `json:"sequence"`

	// Contract marks addresses that cannot receive native value directly;
	// payouts to them are credited as wrapped value instead.
	Contract bool `json:"contract"`
}

// Ledger tracks all accounts, the share supply, and the vaulted asset.
type Ledger struct {
	accounts   map[string]*Account
	supply     uint64
	assetID    string
	assetOwner string
	hook       TransferHook
}

// New creates an empty ledger for the given asset.
func New(assetID string) *Ledger {
	return &Ledger{
		accounts: make(map[string]*Account),
		assetID:  assetID,
	}
}

// SetHook installs the transfer hook.
func (l *Ledger) SetHook(h TransferHook) {
	l.hook = h
}

// Register creates an account. No-op if it already exists.
func (l *Ledger) Register(address string, contract bool) *Account {
	if acct, ok := l.accounts[address]; ok {
		return acct
	}
	acct := &Account{Address: address, Contract: contract}
	l.accounts[address] = acct
	return acct
}

// Account looks up an account by address.
func (l *Ledger) Account(address string) (*Account, bool) {
	acct, ok := l.accounts[address]
	return acct, ok
}

// BumpSequence advances the sequence of an existing account.
func (l *Ledger) BumpSequence(address string) {
	if acct, ok := l.accounts[address]; ok {
		acct.Sequence++
	}
}

// TotalSupply returns the outstanding share supply.
func (l *Ledger) TotalSupply() uint64 {
	return l.supply
}

// SharesOf returns the share balance of an address.
func (l *Ledger) SharesOf(address string) uint64 {
	if acct, ok := l.accounts[address]; ok {
		return acct.Shares
	}
	return 0
}

// NativeOf returns the native balance of an address.
func (l *Ledger) NativeOf(address string) uint64 {
	if acct, ok := l.accounts[address]; ok {
		return acct.Native
	}
	return 0
}

// WrappedOf returns the wrapped balance of an address.
func (l *Ledger) WrappedOf(address string) uint64 {
	if acct, ok := l.accounts[address]; ok {
		return acct.Wrapped
	}
	return 0
}

// Mint creates shares for an address. The hook sees the mint as a
// transfer from an empty sender, so minted weight joins the receiver's
// standing vote.
func (l *Ledger) Mint(to string, amount uint64) {
	if amount == 0 {
		return
	}
	acct := l.Register(to, false)
	if l.hook != nil {
		l.hook.OnShareTransfer("", to, amount)
	}
	acct.Shares += amount
	l.supply += amount
}

// Burn destroys shares held by an address. The hook sees the burn as a
// transfer to an empty receiver, which withdraws the holder's vote weight.
func (l *Ledger) Burn(from string, amount uint64) error {
	acct, ok := l.accounts[from]
	if !ok {
		return ErrNoAccount
	}
	if acct.Shares < amount {
		return ErrInsufficientShares
	}
	if l.hook != nil && amount > 0 {
		l.hook.OnShareTransfer(from, "", amount)
	}
	acct.Shares -= amount
	l.supply -= amount
	return nil
}

// Transfer moves shares between accounts. The hook runs synchronously
// before the balances change; a transaction that fails afterwards is
// discarded wholesale by the engine, so hook and balances stay in step.
func (l *Ledger) Transfer(from, to string, amount uint64) error {
	src, ok := l.accounts[from]
	if !ok {
		return ErrNoAccount
	}
	if src.Shares < amount {
		return ErrInsufficientShares
	}
	dst, ok := l.accounts[to]
	if !ok {
		return ErrNoAccount
	}
	if l.hook != nil && amount > 0 {
		l.hook.OnShareTransfer(from, to, amount)
	}
	src.Shares -= amount
	dst.Shares += amount
	return nil
}

// CreditNative adds native value to an account, creating it if needed.
func (l *Ledger) CreditNative(address string, amount uint64) {
	acct := l.Register(address, false)
	acct.Native += amount
}

// DebitNative removes native value from an account.
func (l *Ledger) DebitNative(address string, amount uint64) error {
	acct, ok := l.accounts[address]
	if !ok {
		return ErrNoAccount
	}
	if acct.Native < amount {
		return ErrInsufficientFunds
	}
	acct.Native -= amount
	return nil
}

// PayOut credits value to an account: native normally, wrapped when the
// account is flagged as a contract that cannot take native value.
func (l *Ledger) PayOut(address string, amount uint64) {
	acct := l.Register(address, false)
	if acct.Contract {
		acct.Wrapped += amount
		return
	}
	acct.Native += amount
}

// AssetID returns the identifier of the vaulted asset.
func (l *Ledger) AssetID() string {
	return l.assetID
}

// AssetOwner returns the current owner of the vaulted asset.
func (l *Ledger) AssetOwner() string {
	return l.assetOwner
}

// TransferAsset moves the vaulted asset to a new owner.
func (l *Ledger) TransferAsset(to string) {
	l.assetOwner = to
}

// Clone returns a deep copy, without the hook. The engine re-wires the
// hook to the matching vault copy.
func (l *Ledger) Clone() *Ledger {
	accounts := make(map[string]*Account, len(l.accounts))
	for addr, acct := range l.accounts {
		copied := *acct
		accounts[addr] = &copied
	}
	return &Ledger{
		accounts:   accounts,
		supply:     l.supply,
		assetID:    l.assetID,
		assetOwner: l.assetOwner,
	}
}

// Accounts returns all addresses with an account, in no particular order.
func (l *Ledger) Accounts() []string {
	addrs := make([]string, 0, len(l.accounts))
	for addr := range l.accounts {
		addrs = append(addrs, addr)
	}
	return addrs
}
