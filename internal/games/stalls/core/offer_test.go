package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-stalls/internal/games/stalls/core"
)

// fixedSource replays a list of draws, each reduced modulo n.
type fixedSource struct {
	draws []int
	i     int
}

func (s *fixedSource) Intn(n int) int {
	v := s.draws[s.i%len(s.draws)]
	s.i++
	return v % n
}

func TestGenerateRespectsBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	gen := core.NewGenerator(rng, 0)

	for i := 0; i < 2000; i++ {
		inv := randomInventory(rng)
		if len(inv.InStock()) == 0 {
			continue
		}

		o, err := gen.Generate(inv)
		if errors.Is(err, core.ErrGenerationExhausted) {
			continue
		}
		if err != nil {
			t.Fatalf("Generate(%v) failed: %v", inv, err)
		}

		if o.TradeFrom == o.TradeTo {
			t.Fatalf("offer %v trades %s for itself", o, o.TradeFrom)
		}
		if o.TradeAmount < core.MinTradeAmount || o.TradeAmount > core.MaxTradeAmount {
			t.Fatalf("trade amount %d out of range", o.TradeAmount)
		}
		if o.TradeToAmount < core.MinTradeToAmount || o.TradeToAmount > core.MaxTradeToAmount {
			t.Fatalf("trade-to amount %d out of range", o.TradeToAmount)
		}
		if o.TradeAmount > inv.Count(o.TradeFrom) {
			t.Fatalf("offer %v asks for more %s than the %d held", o, o.TradeFrom, inv.Count(o.TradeFrom))
		}
		if o.Dead(inv) {
			t.Fatalf("offer %v is dead for %v", o, inv)
		}
	}
}

func TestGenerateEmptyInventory(t *testing.T) {
	gen := core.NewGenerator(rand.New(rand.NewSource(1)), 0)

	_, err := gen.Generate(core.Inventory{})
	if !errors.Is(err, core.ErrInvalidState) {
		t.Errorf("Generate(empty) error = %v, want ErrInvalidState", err)
	}
}

func TestGenerateExhausted(t *testing.T) {
	gen := core.NewGenerator(rand.New(rand.NewSource(1)), 50)

	var full core.Inventory
	for _, r := range core.AllResources() {
		full[r] = core.MaxStock
	}

	_, err := gen.Generate(full)
	if !errors.Is(err, core.ErrGenerationExhausted) {
		t.Errorf("Generate(full) error = %v, want ErrGenerationExhausted", err)
	}
}

func TestGenerateRerollsDeadOffers(t *testing.T) {
	var inv core.Inventory
	inv[core.Stone] = core.MaxStock
	inv[core.Gold] = 9
	inv[core.Wood] = 1

	// First roll: collect stone (full), wood -> gold, 1 for 2 (overflow): dead.
	// Second roll: collect wood, wood -> gold, 1 for 2: fine.
	src := &fixedSource{draws: []int{
		2, 0, 2, 0, 0, // collect=stone, from=wood, to=others[2]=gold, give=1, get=2
		0, 0, 2, 0, 0, // collect=wood, same trade
	}}
	gen := core.NewGenerator(src, 0)

	o, err := gen.Generate(inv)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if o.Collect != core.Wood {
		t.Errorf("Collect = %s, want wood from the second roll", o.Collect)
	}
	if o.TradeFrom != core.Wood || o.TradeTo != core.Gold {
		t.Errorf("trade = %s -> %s, want wood -> gold", o.TradeFrom, o.TradeTo)
	}
}

func TestOfferPredicates(t *testing.T) {
	var inv core.Inventory
	inv[core.Wood] = 3
	inv[core.Sheep] = 8

	tests := []struct {
		name        string
		offer       core.Offer
		wantCollect bool
		wantTrade   bool
		wantDead    bool
	}{
		{
			name:        "affordable trade",
			offer:       core.Offer{Collect: core.Gold, TradeFrom: core.Wood, TradeTo: core.Sheep, TradeAmount: 2, TradeToAmount: 2},
			wantCollect: true,
			wantTrade:   true,
		},
		{
			name:        "destination overflow",
			offer:       core.Offer{Collect: core.Gold, TradeFrom: core.Wood, TradeTo: core.Sheep, TradeAmount: 1, TradeToAmount: 3},
			wantCollect: true,
		},
		{
			name:        "source short",
			offer:       core.Offer{Collect: core.Gold, TradeFrom: core.Bread, TradeTo: core.Stone, TradeAmount: 1, TradeToAmount: 2},
			wantCollect: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.offer.CanCollect(inv); got != tc.wantCollect {
				t.Errorf("CanCollect = %v, want %v", got, tc.wantCollect)
			}
			if got := tc.offer.CanTrade(inv); got != tc.wantTrade {
				t.Errorf("CanTrade = %v, want %v", got, tc.wantTrade)
			}
			if got := tc.offer.Dead(inv); got != tc.wantDead {
				t.Errorf("Dead = %v, want %v", got, tc.wantDead)
			}
		})
	}
}

// randomInventory returns counts in [0, MaxStock], biased toward the edges.
func randomInventory(rng *rand.Rand) core.Inventory {
	var inv core.Inventory
	for _, r := range core.AllResources() {
		switch rng.Intn(4) {
		case 0:
			inv[r] = 0
		case 1:
			inv[r] = core.MaxStock
		default:
			inv[r] = rng.Intn(core.MaxStock + 1)
		}
	}
	return inv
}
