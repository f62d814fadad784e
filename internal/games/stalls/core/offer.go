package core

import "fmt"

// Offer bounds.
const (
	MinTradeAmount   = 1
	MaxTradeAmount   = 3
	MinTradeToAmount = 2
	MaxTradeToAmount = 4

	// DefaultMaxAttempts caps the dead-offer re-roll loop.
	DefaultMaxAttempts = 10000
)

// Offer is the pair of actions available in the current round: collect one
// Collect, or give TradeAmount of TradeFrom for TradeToAmount of TradeTo.
type Offer struct {
	Collect       Resource `json:"collect"`
	TradeFrom     Resource `json:"trade_from"`
	TradeTo       Resource `json:"trade_to"`
	TradeAmount   int      `json:"trade_amount"`
	TradeToAmount int      `json:"trade_to_amount"`
}

// CanCollect reports whether collecting would keep the inventory in bounds.
func (o Offer) CanCollect(inv Inventory) bool {
	return inv.CanAdd(o.Collect, 1)
}

// CanTrade reports whether the trade is affordable and fits.
func (o Offer) CanTrade(inv Inventory) bool {
	return inv.CanRemove(o.TradeFrom, o.TradeAmount) && inv.CanAdd(o.TradeTo, o.TradeToAmount)
}

// Dead reports whether the collect target is full and the trade would
// overflow its destination at the same time.
func (o Offer) Dead(inv Inventory) bool {
	return inv.Full(o.Collect) && !inv.CanAdd(o.TradeTo, o.TradeToAmount)
}

// String formats the offer as "+stone | +3 gold -2 wood".
func (o Offer) String() string {
	return fmt.Sprintf("+%s | +%d %s -%d %s", o.Collect, o.TradeToAmount, o.TradeTo, o.TradeAmount, o.TradeFrom)
}

// Source is the randomness an offer generator draws from.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Generator produces randomized offers consistent with an inventory.
type Generator struct {
	rng         Source
	maxAttempts int
}

// NewGenerator creates a generator drawing from rng. A non-positive
// maxAttempts uses DefaultMaxAttempts.
func NewGenerator(rng Source, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{rng: rng, maxAttempts: maxAttempts}
}

// Generate rolls offers until one is not dead for inv.
func (g *Generator) Generate(inv Inventory) (Offer, error) {
	for range g.maxAttempts {
		o, err := g.roll(inv)
		if err != nil {
			return Offer{}, err
		}
		if !o.Dead(inv) {
			return o, nil
		}
	}
	return Offer{}, fmt.Errorf("%w: %d attempts for inventory %v", ErrGenerationExhausted, g.maxAttempts, inv)
}

// roll draws every field of an offer once.
func (g *Generator) roll(inv Inventory) (Offer, error) {
	all := AllResources()
	collect := all[g.rng.Intn(len(all))]

	stocked := inv.InStock()
	if len(stocked) == 0 {
		return Offer{}, ErrInvalidState
	}
	from := stocked[g.rng.Intn(len(stocked))]

	others := make([]Resource, 0, ResourceCount-1)
	for _, r := range all {
		if r != from {
			others = append(others, r)
		}
	}
	to := others[g.rng.Intn(len(others))]

	maxGive := min(MaxTradeAmount, inv[from])
	give := MinTradeAmount + g.rng.Intn(maxGive-MinTradeAmount+1)
	get := MinTradeToAmount + g.rng.Intn(MaxTradeToAmount-MinTradeToAmount+1)

	return Offer{
		Collect:       collect,
		TradeFrom:     from,
		TradeTo:       to,
		TradeAmount:   give,
		TradeToAmount: get,
	}, nil
}
