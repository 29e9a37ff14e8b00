package vault

// Address is the account under which the vault itself holds the asset
// and the bid pool.
const Address = "vault"

// AuctionState is the lifecycle phase of the vault's auction.
type AuctionState uint8

const (
	// AuctionInactive: no auction yet; voting and redemption are open
	AuctionInactive AuctionState = iota

	// AuctionLive: a timed auction is running
	AuctionLive

	// AuctionEnded: the asset was sold; holders cash out. Terminal.
	AuctionEnded

	// AuctionRedeemed: a sole holder took the asset back. Terminal.
	AuctionRedeemed
)

// String returns the wire name of the auction state.
func (s AuctionState) String() string {
	switch s {
	case AuctionInactive:
		return "inactive"
	case AuctionLive:
		return "live"
	case AuctionEnded:
		return "ended"
	case AuctionRedeemed:
		return "redeemed"
	default:
		return "unknown"
	}
}

// State is the vault aggregate. One instance governs one asset.
type State struct {
	// AssetID identifies the vaulted asset
	AssetID string `json:"asset_id"`

	// Curator runs the vault and earns CuratorFee per-mille annually
	Curator    string `json:"curator"`
	CuratorFee uint64 `json:"curator_fee"`

	// LastClaimed is the unix time fees were last settled up to
	LastClaimed uint64 `json:"last_claimed"`

	// Settings are the governance-owned bounds
	Settings Settings `json:"settings"`

	// Auction state machine
	Auction       AuctionState `json:"auction"`
	AuctionEnd    uint64       `json:"auction_end"`
	AuctionLength uint64       `json:"auction_length"`
	LivePrice     uint64       `json:"live_price"`
	Winning       string       `json:"winning"`

	// Reserve price aggregator
	ReserveTotal uint64            `json:"reserve_total"`
	VotingTokens uint64            `json:"voting_tokens"`
	UserPrices   map[string]uint64 `json:"user_prices"`

	// Pool is the native value the vault holds: the live bid while the
	// auction runs, the sale proceeds afterwards
	Pool uint64 `json:"pool"`
}

// ReservePrice returns the balance-weighted average of holder votes,
// or 0 when nobody is voting.
func (s *State) ReservePrice() uint64 {
	if s.VotingTokens == 0 {
		return 0
	}
	return s.ReserveTotal / s.VotingTokens
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	copied := *s
	copied.UserPrices = make(map[string]uint64, len(s.UserPrices))
	for addr, price := range s.UserPrices {
		copied.UserPrices[addr] = price
	}
	return &copied
}
