package stalls

import "github.com/vovakirdan/tui-stalls/internal/games/stalls/core"

// Snapshot is the game state recorded in journals at the end of a game.
// Uses JSON-friendly types only.
type Snapshot struct {
	Tick      uint64         `json:"tick"`
	Session   *core.Snapshot `json:"session,omitempty"`
	Sprite    core.Sample    `json:"sprite"`
	Walking   bool           `json:"walking"`
	Remaining int            `json:"remaining"` // samples left in the current walk
	Error     string         `json:"error,omitempty"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Sprite:  g.sprite,
		Walking: g.walk != nil,
	}
	if g.session != nil {
		s := g.session.Snapshot()
		snap.Session = &s
	}
	if g.walk != nil {
		snap.Remaining = g.walk.Remaining()
	}
	if g.failure != nil {
		snap.Error = g.failure.Error()
	}
	return snap
}
