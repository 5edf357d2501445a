package auction

import "github.com/lox/bridgebid/bridge/domain"

// LastBid returns the most recent actual Bid (skipping Pass/Double/
// Redouble) and the position that made it.
func (a *Auction) LastBid() (domain.Call, domain.Position, bool) {
	for i := len(a.Calls) - 1; i >= 0; i-- {
		if a.Calls[i].IsBid() {
			return a.Calls[i], a.PositionOf(i), true
		}
	}
	return domain.Call{}, 0, false
}

// lastBidIndex returns the index of the most recent Bid, or -1.
func (a *Auction) lastBidIndex() int {
	for i := len(a.Calls) - 1; i >= 0; i-- {
		if a.Calls[i].IsBid() {
			return i
		}
	}
	return -1
}

// LastCallIndexForPosition returns the index of p's most recent call, or
// false if p has not called yet.
func (a *Auction) LastCallIndexForPosition(p domain.Position) (int, bool) {
	for i := len(a.Calls) - 1; i >= 0; i-- {
		if a.PositionOf(i) == p {
			return i, true
		}
	}
	return 0, false
}

// MinimumBidInStrain returns the smallest legal level for a bid in strain
// st given the last bid made so far (1 if no bid has been made yet).
func (a *Auction) MinimumBidInStrain(st domain.Strain) int {
	lastBid, _, ok := a.LastBid()
	if !ok {
		return 1
	}
	for level := lastBid.Level; level <= 7; level++ {
		if domain.LessBid(lastBid.Level, lastBid.Strain, level, st) {
			return level
		}
	}
	return 8 // unreachable in a valid auction; signals "no legal bid"
}

// CurrentContract returns the contract implied by the auction so far: the
// highest bid, with the double status set by the latest Double/Redouble
// since that bid, and the declarer set to the first member of the bidding
// partnership to have named that strain.
func (a *Auction) CurrentContract() (domain.Contract, bool) {
	idx := a.lastBidIndex()
	if idx < 0 {
		return domain.Contract{}, false
	}
	bid := a.Calls[idx]
	bidder := a.PositionOf(idx)
	side := domain.PartnershipOf(bidder)

	status := domain.Undoubled
	for i := idx + 1; i < len(a.Calls); i++ {
		switch a.Calls[i].Kind {
		case domain.CallDouble:
			status = domain.Doubled
		case domain.CallRedouble:
			status = domain.Redoubled
		}
	}

	declarer := bidder
	for i := 0; i <= idx; i++ {
		if a.Calls[i].IsBid() && a.Calls[i].Strain == bid.Strain && domain.PartnershipOf(a.PositionOf(i)) == side {
			declarer = a.PositionOf(i)
			break
		}
	}

	return domain.Contract{
		Level:    bid.Level,
		Strain:   bid.Strain,
		Double:   status,
		Declarer: declarer,
	}, true
}

// Opener returns the position of the first player to make a Bid in the
// auction, i.e. the opening bidder.
func (a *Auction) Opener() (domain.Position, bool) {
	for i, c := range a.Calls {
		if c.IsBid() {
			return a.PositionOf(i), true
		}
	}
	return 0, false
}

// IsOpen reports whether any bid has been made yet.
func (a *Auction) IsOpen() bool {
	_, ok := a.Opener()
	return ok
}

// lastMeaningfulIsOpponentBid reports whether the most recent non-pass
// call was a Bid made by an opponent of `by`, with no intervening
// Double/Redouble.
func (a *Auction) lastMeaningfulIsOpponentBid(by domain.Position) bool {
	for i := len(a.Calls) - 1; i >= 0; i-- {
		c := a.Calls[i]
		if c.IsPass() {
			continue
		}
		if c.IsBid() {
			return !domain.SameSide(a.PositionOf(i), by)
		}
		return false // Double or Redouble intervenes
	}
	return false
}

// lastMeaningfulIsOpponentDoubleOverOurBid reports whether the most recent
// non-pass call was a Double made by an opponent of `by`, with no
// intervening Redouble, and the doubled bid belongs to by's side.
func (a *Auction) lastMeaningfulIsOpponentDoubleOverOurBid(by domain.Position) bool {
	for i := len(a.Calls) - 1; i >= 0; i-- {
		c := a.Calls[i]
		if c.IsPass() {
			continue
		}
		if c.IsDouble() {
			if domain.SameSide(a.PositionOf(i), by) {
				return false
			}
			// the doubled bid must belong to `by`'s side
			for j := i - 1; j >= 0; j-- {
				if a.Calls[j].IsBid() {
					return domain.SameSide(a.PositionOf(j), by)
				}
				if !a.Calls[j].IsPass() {
					return false
				}
			}
			return false
		}
		return false
	}
	return false
}

// LegalCalls enumerates every call that is currently legal: Pass; every
// bid strictly above the last bid; Double iff the last meaningful call was
// an opponent's undoubled bid; Redouble iff the last meaningful call was
// an opponent's Double over our bid.
func (a *Auction) LegalCalls() []domain.Call {
	if a.IsFinished() {
		return nil
	}
	by := a.CurrentPlayer()

	calls := make([]domain.Call, 0, 38)
	calls = append(calls, domain.Pass)

	lastBid, _, haveBid := a.LastBid()
	startLevel, startStrain := 1, domain.StrainOf(domain.Clubs)
	if haveBid {
		startLevel, startStrain = lastBid.Level, lastBid.Strain
	}
	for level := 1; level <= 7; level++ {
		for _, st := range []domain.Strain{domain.StrainOf(domain.Clubs), domain.StrainOf(domain.Diamonds), domain.StrainOf(domain.Hearts), domain.StrainOf(domain.Spades), domain.Notrump} {
			if haveBid && !domain.LessBid(startLevel, startStrain, level, st) {
				continue
			}
			calls = append(calls, domain.NewBid(level, st))
		}
	}

	if a.lastMeaningfulIsOpponentBid(by) {
		calls = append(calls, domain.Double)
	}
	if a.lastMeaningfulIsOpponentDoubleOverOurBid(by) {
		calls = append(calls, domain.Redouble)
	}
	return calls
}

// ValidateCalls reports whether the given full call sequence (from the
// empty auction) is entirely legal.
func ValidateCalls(dealer domain.Position, calls []domain.Call) bool {
	a := New(dealer)
	for _, c := range calls {
		if a.IsFinished() {
			return false
		}
		if !containsCall(a.LegalCalls(), c) {
			return false
		}
		a.Calls = append(a.Calls, c)
	}
	return true
}

func containsCall(calls []domain.Call, c domain.Call) bool {
	for _, x := range calls {
		if x == c {
			return true
		}
	}
	return false
}
