// Package stalls implements the market trading game: ten rounds of collect
// or trade offers while a sprite walks from stall to stall.
package stalls

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-stalls/internal/config"
	platformcore "github.com/vovakirdan/tui-stalls/internal/core"
	"github.com/vovakirdan/tui-stalls/internal/games/stalls/core"
	"github.com/vovakirdan/tui-stalls/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "stalls"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game drives a core.Session from platform ticks. It turns key presses and
// clicks into actions, paces transition playback and renders the market.
type Game struct {
	cfg         config.StallsConfig
	fixedConfig bool // set by NewWithConfig; Reset does not reload
	runtime     platformcore.RuntimeConfig
	paths       *core.Paths
	session     *core.Session
	layout      Layout

	// Playback
	sprite         core.Sample
	walk           *core.Cursor
	walkTicks      int // ticks since the last sample was shown
	ticksPerSample int

	tick    uint64
	failure error
	pending []platformcore.Event
}

// New creates a new game instance with the default configuration.
func New() *Game {
	return &Game{
		cfg:   config.DefaultStallsConfig(),
		paths: core.NewPaths(),
	}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.StallsConfig) *Game {
	g := New()
	g.cfg = cfg
	g.fixedConfig = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Market Stalls"
}

// Reset starts a new session. Unless the config was fixed at construction,
// it is loaded again so edits apply to the next game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.tick = 0
	g.walk = nil
	g.walkTicks = 0
	g.failure = nil
	g.pending = g.pending[:0]

	if !g.fixedConfig {
		cfg, err := config.LoadStalls(configPath)
		if err != nil {
			g.emit(platformcore.EventConfigFallback, map[string]any{"error": err.Error()})
		}
		g.cfg = cfg
	}

	g.layout = NewLayout(g.cfg.Display.ScaleX, g.cfg.Display.ScaleY, runtime.ScreenW, runtime.ScreenH)
	g.ticksPerSample = ticksPer(g.cfg.FrameInterval(), runtime.TickRate)
	if err := g.layout.Check(); err != nil {
		g.session = nil
		g.fail(err)
		return
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	session, err := core.NewSession(rng, core.Options{
		MaxAttempts: g.cfg.Offers.MaxAttempts,
		Paths:       g.paths,
	})
	if err != nil {
		g.session = nil
		g.fail(err)
		return
	}
	g.session = session
	g.sprite = idleSample(session.Stall())
	g.emit(platformcore.EventStarted, map[string]any{
		"seed":      runtime.Seed,
		"inventory": session.Inventory().Map(),
		"offer":     session.Offer(),
	})
}

// ticksPer converts a playback interval to a whole number of ticks.
func ticksPer(interval time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = platformcore.DefaultConfig().TickRate
	}
	tick := time.Second / time.Duration(tickRate)
	return max(1, int((interval+tick/2)/tick))
}

// idleSample is the sprite standing at a stall, facing it.
func idleSample(stall int) core.Sample {
	s := core.Stalls[stall]
	return core.Sample{Dir: s.Facing, Frame: core.Still, At: s.Spot}
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.session != nil && g.failure == nil {
		if g.walk != nil {
			g.advanceWalk()
		}
		for _, action := range g.actions(in) {
			g.apply(action)
		}
	}

	events := g.pending
	g.pending = nil
	return platformcore.StepResult{State: g.State(), Events: events}
}

// actions collects the collect/trade requests of a frame: keys first, then
// clicks in order.
func (g *Game) actions(in platformcore.InputFrame) []platformcore.Action {
	var out []platformcore.Action
	for _, a := range []platformcore.Action{platformcore.ActionCollect, platformcore.ActionTrade} {
		if in.Has(a) {
			out = append(out, a)
		}
	}
	for _, click := range in.Clicks {
		if a := g.layout.HitTest(click); a != platformcore.ActionNone {
			out = append(out, a)
		}
	}
	return out
}

// advanceWalk shows the next path sample once per sample interval.
func (g *Game) advanceWalk() {
	g.walkTicks++
	if g.walkTicks < g.ticksPerSample {
		return
	}
	g.walkTicks = 0

	if s, ok := g.walk.Next(); ok {
		g.sprite = s
		return
	}
	g.walk = nil
	g.sprite = idleSample(g.session.Stall())
	g.emit(platformcore.EventWalkFinished, map[string]any{"stall": g.session.Stall()})
}

// apply hands one action to the session. Input is ignored while the sprite
// is walking and after the game has ended.
func (g *Game) apply(action platformcore.Action) {
	name := strings.ToLower(action.String())
	if g.walk != nil {
		g.emit(platformcore.EventActionIgnored, map[string]any{"action": name, "reason": "walking"})
		return
	}
	if g.session.IsGameOver() {
		return
	}

	out, err := g.session.HandleClick(action)
	if err != nil {
		g.fail(err)
		return
	}
	if !out.Applied {
		g.emit(platformcore.EventActionIgnored, map[string]any{
			"action": name,
			"reason": "offer not affordable",
			"offer":  out.Offer,
		})
		return
	}

	g.emit(platformcore.EventActionApplied, map[string]any{
		"action":    name,
		"offer":     out.Offer,
		"from":      out.FromStall,
		"to":        out.ToStall,
		"round":     g.session.Round(),
		"inventory": g.session.Inventory().Map(),
	})

	if g.session.IsGameOver() {
		g.sprite = idleSample(g.session.Stall())
		g.emit(platformcore.EventGameOver, map[string]any{
			"score":     g.session.FinalScore(),
			"inventory": g.session.Inventory().Map(),
			"snapshot":  g.Snapshot(),
		})
		return
	}

	if out.Path.Len() > 0 {
		g.walk = out.Path.Cursor()
		g.walkTicks = 0
		g.sprite, _ = g.walk.Next()
	}
}

// fail stops the game on a broken invariant.
func (g *Game) fail(err error) {
	g.failure = err
	g.walk = nil
	g.emit(platformcore.EventFailure, map[string]any{"error": err.Error(), "snapshot": g.Snapshot()})
}

func (g *Game) emit(kind platformcore.EventKind, fields map[string]any) {
	g.pending = append(g.pending, platformcore.Event{Kind: kind, Tick: g.tick, Fields: fields})
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Walking: g.walk != nil,
		Failed:  g.failure != nil,
	}
	if g.session != nil {
		st.Score = g.session.FinalScore()
		st.Round = g.session.Round()
		st.GameOver = g.session.IsGameOver()
	}
	if g.failure != nil {
		st.GameOver = true
	}
	return st
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.failure
}

// Session exposes the running session, nil before Reset or after a failed start.
func (g *Game) Session() *core.Session {
	return g.session
}

// Layout returns the cell mapping used by the last Reset or Render.
func (g *Game) Layout() Layout {
	return g.layout
}
