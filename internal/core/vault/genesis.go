package vault

import (
	"errors"

	"github.com/openfrac/gofracd/internal/core/ledger"
)

// Genesis errors
var (
	ErrGenesisNoAsset      = errors.New("genesis: asset id is required")
	ErrGenesisNoCurator    = errors.New("genesis: curator account is required")
	ErrGenesisNoSupply     = errors.New("genesis: share supply must be positive")
	ErrGenesisCuratorFee   = errors.New("genesis: curator fee above the configured maximum")
	ErrGenesisDuplicateAcc = errors.New("genesis: duplicate account address")
)

// GenesisAccount funds an address at creation.
type GenesisAccount struct {
	Address  string `json:"address"`
	Native   uint64 `json:"native"`
	Contract bool   `json:"contract"`
}

// Genesis describes the one-time vault creation.
type Genesis struct {
	AssetID    string           `json:"asset_id"`
	Curator    string           `json:"curator"`
	Supply     uint64           `json:"supply"`
	ListPrice  uint64           `json:"list_price"`
	CuratorFee uint64           `json:"curator_fee"`
	Settings   Settings         `json:"settings"`
	Accounts   []GenesisAccount `json:"accounts"`

	// Now anchors LastClaimed, in unix seconds
	Now uint64 `json:"now"`
}

// NewFromGenesis builds the initial vault and ledger: the full supply is
// minted to the curator, the curator's vote is seeded at the list price,
// and the asset moves into the vault. A zero list price leaves the vault
// with no votes at all.
func NewFromGenesis(g Genesis) (*State, *ledger.Ledger, error) {
	if g.AssetID == "" {
		return nil, nil, ErrGenesisNoAsset
	}
	if g.Curator == "" {
		return nil, nil, ErrGenesisNoCurator
	}
	if g.Supply == 0 {
		return nil, nil, ErrGenesisNoSupply
	}
	if err := g.Settings.Validate(); err != nil {
		return nil, nil, err
	}
	if g.CuratorFee > g.Settings.MaxCuratorFee {
		return nil, nil, ErrGenesisCuratorFee
	}

	lg := ledger.New(g.AssetID)
	seen := make(map[string]bool, len(g.Accounts))
	for _, acct := range g.Accounts {
		if seen[acct.Address] {
			return nil, nil, ErrGenesisDuplicateAcc
		}
		seen[acct.Address] = true
		lg.Register(acct.Address, acct.Contract)
		lg.CreditNative(acct.Address, acct.Native)
	}
	lg.Register(g.Curator, false)
	lg.Mint(g.Curator, g.Supply)
	lg.TransferAsset(Address)

	v := &State{
		AssetID:       g.AssetID,
		Curator:       g.Curator,
		CuratorFee:    g.CuratorFee,
		LastClaimed:   g.Now,
		Settings:      g.Settings,
		Auction:       AuctionInactive,
		AuctionLength: g.Settings.MinAuctionLength,
		UserPrices:    make(map[string]uint64),
	}

	if g.ListPrice > 0 {
		v.VotingTokens = g.Supply
		v.ReserveTotal = g.Supply * g.ListPrice
		v.UserPrices[g.Curator] = g.ListPrice
	}

	return v, lg, nil
}
