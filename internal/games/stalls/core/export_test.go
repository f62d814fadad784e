package core

// SetState replaces the inventory and offer so tests can reach specific
// positions without replaying random rounds.
func (s *Session) SetState(inv Inventory, offer Offer) {
	s.inventory = inv
	s.offer = offer
}

// SetRound moves the round counter.
func (s *Session) SetRound(round int) {
	s.round = round
}
