package tx

// Type identifies a transaction type.
type Type int

const (
	TypeUnknown Type = iota

	// Reserve price voting
	TypePriceVote

	// Share ledger
	TypeShareTransfer

	// Auction lifecycle
	TypeAuctionStart
	TypeAuctionBid
	TypeAuctionEnd
	TypeRedeem
	TypeCash

	// Curator / governance surface
	TypeFeeClaim
	TypeCuratorSet
	TypeCuratorFeeSet
	TypeAuctionLengthSet
	TypeKickCurator
	TypeGovernanceSet
)

// String returns the canonical wire name of the transaction type.
func (t Type) String() string {
	switch t {
	case TypePriceVote:
		return "PriceVote"
	case TypeShareTransfer:
		return "ShareTransfer"
	case TypeAuctionStart:
		return "AuctionStart"
	case TypeAuctionBid:
		return "AuctionBid"
	case TypeAuctionEnd:
		return "AuctionEnd"
	case TypeRedeem:
		return "Redeem"
	case TypeCash:
		return "Cash"
	case TypeFeeClaim:
		return "FeeClaim"
	case TypeCuratorSet:
		return "CuratorSet"
	case TypeCuratorFeeSet:
		return "CuratorFeeSet"
	case TypeAuctionLengthSet:
		return "AuctionLengthSet"
	case TypeKickCurator:
		return "KickCurator"
	case TypeGovernanceSet:
		return "GovernanceSet"
	default:
		return "Unknown"
	}
}

// TypeFromString resolves a wire name to a transaction type.
// Returns TypeUnknown for unrecognized names.
func TypeFromString(s string) Type {
	switch s {
	case "PriceVote":
		return TypePriceVote
	case "ShareTransfer":
		return TypeShareTransfer
	case "AuctionStart":
		return TypeAuctionStart
	case "AuctionBid":
		return TypeAuctionBid
	case "AuctionEnd":
		return TypeAuctionEnd
	case "Redeem":
		return TypeRedeem
	case "Cash":
		return TypeCash
	case "FeeClaim":
		return TypeFeeClaim
	case "CuratorSet":
		return TypeCuratorSet
	case "CuratorFeeSet":
		return TypeCuratorFeeSet
	case "AuctionLengthSet":
		return TypeAuctionLengthSet
	case "KickCurator":
		return TypeKickCurator
	case "GovernanceSet":
		return TypeGovernanceSet
	default:
		return TypeUnknown
	}
}
