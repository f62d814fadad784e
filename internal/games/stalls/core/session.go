package core

import (
	"errors"
	"fmt"

	platformcore "github.com/vovakirdan/tui-stalls/internal/core"
)

// Rounds is the number of successful actions in a game.
const Rounds = 10

// Phase is the session's state machine position.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Options tunes a session. The zero value is valid.
type Options struct {
	// MaxAttempts caps the dead-offer re-roll loop (0 = DefaultMaxAttempts).
	MaxAttempts int
	// Paths supplies stall transitions (nil = built-in table).
	Paths *Paths
}

// Outcome describes what one click did.
type Outcome struct {
	Action  platformcore.Action
	Applied bool
	// Offer is the offer the click was judged against.
	Offer Offer
	// FromStall and ToStall are set when the action was applied.
	FromStall int
	ToStall   int
	// Path is the walk to play back, nil when the game just ended.
	Path Path
}

// Session is the mutable state of one game: inventory, round counter,
// current stall and the offer on display. Create a new session to replay.
type Session struct {
	gen   *Generator
	paths *Paths

	inventory Inventory
	round     int
	stall     int
	offer     Offer
	phase     Phase
}

// NewSession starts a game with the starting inventory and a first offer.
func NewSession(rng Source, opts Options) (*Session, error) {
	paths := opts.Paths
	if paths == nil {
		paths = NewPaths()
	}
	s := &Session{
		gen:       NewGenerator(rng, opts.MaxAttempts),
		paths:     paths,
		inventory: StartingInventory(),
		round:     1,
		phase:     PhasePlaying,
	}
	offer, err := s.gen.Generate(s.inventory)
	if err != nil {
		return nil, fmt.Errorf("first offer: %w", err)
	}
	s.offer = offer
	return s, nil
}

// HandleClick applies a collect or trade action. Clicks that the current
// offer cannot satisfy, clicks after game over and other actions are ignored
// and reported with Applied=false and a nil error. A non-nil error means a
// broken invariant; the session should not be used further.
func (s *Session) HandleClick(a platformcore.Action) (Outcome, error) {
	switch a {
	case platformcore.ActionCollect:
		out, err := s.Collect()
		if errors.Is(err, ErrGameOver) {
			return Outcome{Action: a, Offer: s.offer}, nil
		}
		return out, err
	case platformcore.ActionTrade:
		out, err := s.Trade()
		if errors.Is(err, ErrGameOver) {
			return Outcome{Action: a, Offer: s.offer}, nil
		}
		return out, err
	default:
		return Outcome{Action: a, Offer: s.offer}, nil
	}
}

// Collect takes one of the offered resource if there is room for it.
func (s *Session) Collect() (Outcome, error) {
	out := Outcome{Action: platformcore.ActionCollect, Offer: s.offer}
	if s.phase == PhaseGameOver {
		return out, ErrGameOver
	}
	if !s.offer.CanCollect(s.inventory) {
		return out, nil
	}
	if err := s.inventory.Add(s.offer.Collect, 1); err != nil {
		return out, err
	}
	return s.advance(out)
}

// Trade performs the offered exchange if it is affordable and fits.
func (s *Session) Trade() (Outcome, error) {
	out := Outcome{Action: platformcore.ActionTrade, Offer: s.offer}
	if s.phase == PhaseGameOver {
		return out, ErrGameOver
	}
	if !s.offer.CanTrade(s.inventory) {
		return out, nil
	}
	next := s.inventory
	if err := next.Remove(s.offer.TradeFrom, s.offer.TradeAmount); err != nil {
		return out, err
	}
	if err := next.Add(s.offer.TradeTo, s.offer.TradeToAmount); err != nil {
		return out, err
	}
	s.inventory = next
	return s.advance(out)
}

// advance moves to the next round after a successful action.
func (s *Session) advance(out Outcome) (Outcome, error) {
	out.Applied = true
	out.FromStall = s.stall
	out.ToStall = (s.stall + 1) % StallCount

	s.round++
	s.stall = out.ToStall

	if s.round > Rounds {
		s.phase = PhaseGameOver
		return out, nil
	}

	offer, err := s.gen.Generate(s.inventory)
	if err != nil {
		return out, fmt.Errorf("round %d offer: %w", s.round, err)
	}
	s.offer = offer

	path, err := s.paths.Frames(out.FromStall, out.ToStall)
	if err != nil {
		return out, err
	}
	out.Path = path
	return out, nil
}

// IsGameOver reports whether all rounds have been played.
func (s *Session) IsGameOver() bool {
	return s.phase == PhaseGameOver
}

// FinalScore is the sum of squared resource counts.
func (s *Session) FinalScore() int {
	return s.inventory.Score()
}

// Round returns the current round, starting at 1. It is Rounds+1 once the
// game is over.
func (s *Session) Round() int {
	return s.round
}

// Stall returns the index of the stall the sprite is at.
func (s *Session) Stall() int {
	return s.stall
}

// Inventory returns a copy of the current inventory.
func (s *Session) Inventory() Inventory {
	return s.inventory
}

// Offer returns the offer on display.
func (s *Session) Offer() Offer {
	return s.offer
}

// Phase returns the state machine position.
func (s *Session) Phase() Phase {
	return s.phase
}

// Snapshot captures the session for tests, logs and journals.
type Snapshot struct {
	Round     int            `json:"round"`
	Stall     int            `json:"stall"`
	Phase     Phase          `json:"phase"`
	Inventory map[string]int `json:"inventory"`
	Offer     Offer          `json:"offer"`
	Score     int            `json:"score"`
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Round:     s.round,
		Stall:     s.stall,
		Phase:     s.phase,
		Inventory: s.inventory.Map(),
		Offer:     s.offer,
		Score:     s.inventory.Score(),
	}
}
