package vault

import "errors"

// Reserve aggregator errors
var (
	ErrSamePrice           = errors.New("price equals the current vote")
	ErrPriceOutOfBounds    = errors.New("price outside the reserve factor band")
	ErrWeightExceedsTotals = errors.New("vote weight exceeds the aggregate totals")
)

// checkBand verifies a proposed price against the band around an average.
// Both bounds truncate, matching the per-mille arithmetic everywhere else.
func (s *State) checkBand(price, average uint64) error {
	lower := average * s.Settings.MinReserveFactor / PerMille
	upper := average * s.Settings.MaxReserveFactor / PerMille
	if price < lower || price > upper {
		return ErrPriceOutOfBounds
	}
	return nil
}

// UpdateUserPrice records a holder's reserve price vote of weight
// (their share balance), keeping ReserveTotal and VotingTokens exact.
//
// The first voter and a sole voter bypass the band check: with no other
// votes there is no meaningful average to deviate from. A withdrawal
// (price 0) is never band-checked. New voters are checked against the
// pre-update average; re-votes against the average over the other voters.
func (s *State) UpdateUserPrice(holder string, weight, price uint64) error {
	old := s.UserPrices[holder]
	if price == old {
		return ErrSamePrice
	}

	switch {
	case s.VotingTokens == 0:
		// First voter sets the baseline
		s.VotingTokens = weight
		s.ReserveTotal = weight * price

	case weight >= s.VotingTokens && old != 0:
		// Sole voter replaces the baseline. A holder of at least all
		// counted weight cannot have co-voters, so the totals re-anchor
		// on their balance.
		s.VotingTokens = weight
		s.ReserveTotal = weight * price

	case old == 0:
		// New voter joins: band-checked against the current average
		if err := s.checkBand(price, s.ReserveTotal/s.VotingTokens); err != nil {
			return err
		}
		s.VotingTokens += weight
		s.ReserveTotal += weight * price

	case price == 0:
		// Withdrawal. A weight the totals never counted must not wrap
		// them; reject the vote wholesale instead.
		if weight > s.VotingTokens || weight*old > s.ReserveTotal {
			return ErrWeightExceedsTotals
		}
		s.VotingTokens -= weight
		s.ReserveTotal -= weight * old

	default:
		// Re-vote: band-checked against the average over everyone else
		if weight*old > s.ReserveTotal {
			return ErrWeightExceedsTotals
		}
		average := (s.ReserveTotal - weight*old) / (s.VotingTokens - weight)
		if err := s.checkBand(price, average); err != nil {
			return err
		}
		s.ReserveTotal = s.ReserveTotal - weight*old + weight*price
	}

	if s.UserPrices == nil {
		s.UserPrices = make(map[string]uint64)
	}
	s.UserPrices[holder] = price
	return nil
}

// OnShareTransfer keeps the aggregator consistent as shares move between
// holders with different (possibly zero) votes. It implements
// ledger.TransferHook: the ledger calls it before committing a transfer,
// mint, or burn. Mints arrive with an empty sender and burns with an
// empty receiver; the empty address never carries a vote, so minted
// weight joins the receiver's standing vote and burned weight leaves.
// Inert outside the Inactive phase; there is no band check on transfers.
func (s *State) OnShareTransfer(from, to string, amount uint64) {
	if s.Auction != AuctionInactive {
		return
	}

	fromPrice := s.UserPrices[from]
	toPrice := s.UserPrices[to]

	switch {
	case fromPrice == toPrice:
		// Weight moves between equal votes; totals unchanged
	case toPrice == 0:
		s.VotingTokens = subClamped(s.VotingTokens, amount)
		s.ReserveTotal = subClamped(s.ReserveTotal, amount*fromPrice)
	case fromPrice == 0:
		s.VotingTokens += amount
		s.ReserveTotal += amount * toPrice
	default:
		s.ReserveTotal = subClamped(s.ReserveTotal+amount*toPrice, amount*fromPrice)
	}
}

// subClamped subtracts without wrapping. The totals clamp at zero when a
// holder's weight was never fully counted rather than corrupting.
func subClamped(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
