package stalls

import (
	"fmt"
	"strings"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-stalls/internal/core"
	"github.com/vovakirdan/tui-stalls/internal/games/stalls/core"
)

const stallCounterGlyph = '⌂'

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.layout = NewLayout(g.cfg.Display.ScaleX, g.cfg.Display.ScaleY, dst.Width(), dst.Height())

	if !g.layout.Fits(dst.Width(), dst.Height()) {
		g.renderTooSmall(dst)
		return
	}

	dst.FillBg(g.layout.Bounds(), platformcore.ColorEarthGreen)
	g.renderBooths(dst)
	g.renderSprite(dst)
	g.renderHUD(dst)

	switch {
	case g.failure != nil:
		g.renderBox(dst, "Game Stopped", g.failure.Error())
	case g.session != nil && g.session.IsGameOver():
		g.renderBox(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.session.FinalScore()))
	case g.session != nil:
		g.renderButtons(dst)
	}
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, "Terminal too small")
	dst.DrawTextCentered(cy, fmt.Sprintf("need %dx%d, have %dx%d", g.layout.Cols, g.layout.Rows, dst.Width(), dst.Height()))
}

// renderHUD draws the grey band with the round counter and the inventory.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	band := g.layout.Rect(platformcore.NewRect(0, 0, LayoutW, hudBandH))
	dst.FillBg(band, platformcore.ColorLightGray)

	if g.session == nil {
		return
	}

	round := min(g.session.Round(), core.Rounds)
	g.renderCounter(dst, 0, stallCounterGlyph, round)

	inv := g.session.Inventory()
	for i, r := range core.AllResources() {
		g.renderCounter(dst, i+1, g.glyph(r), inv.Count(r))
	}
}

func (g *Game) renderCounter(dst *platformcore.Screen, i int, glyph rune, n int) {
	box := g.layout.hudBox(i)
	dst.FillBg(box, platformcore.ColorWhite)
	dst.DrawTextIn(box, box.Y+(box.H-1)/2, fmt.Sprintf("%c %2d", glyph, n), platformcore.ColorBlack)
}

// renderBooths draws each distinct booth once; several stalls share one.
func (g *Game) renderBooths(dst *platformcore.Screen) {
	seen := make(map[platformcore.Point]bool, core.StallCount)
	for _, s := range core.Stalls {
		if seen[s.Booth] {
			continue
		}
		seen[s.Booth] = true
		g.renderBooth(dst, g.layout.Rect(platformcore.NewRect(s.Booth.X, s.Booth.Y, boothSize, boothSize)))
	}
}

func (g *Game) renderBooth(dst *platformcore.Screen, r platformcore.Rect) {
	// Striped awning
	for x := r.X; x < r.Right(); x++ {
		c := platformcore.ColorRed
		if (x-r.X)%2 == 1 {
			c = platformcore.ColorBrightWhite
		}
		dst.SetColored(x, r.Y, '▄', c)
	}
	// Posts and counter
	for y := r.Y + 1; y < r.Bottom(); y++ {
		dst.SetColored(r.X, y, '│', platformcore.ColorBrown)
		dst.SetColored(r.Right()-1, y, '│', platformcore.ColorBrown)
	}
	if r.H > 1 {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, r.Bottom()-1, '▀', platformcore.ColorBrown)
		}
	}
}

var frameColors = map[core.Frame]platformcore.Color{
	core.Walking1: platformcore.ColorYellow,
	core.Still:    platformcore.ColorBrightWhite,
	core.Walking2: platformcore.ColorBrightYellow,
}

func (g *Game) renderSprite(dst *platformcore.Screen) {
	if g.session == nil {
		return
	}
	cell := g.layout.Point(g.sprite.At)
	dst.SetColored(cell.X, cell.Y, g.cfg.Display.SpriteGlyph(g.sprite.Dir.String()), frameColors[g.sprite.Frame])
}

// renderButtons draws the two offer buttons. Labels are grey while the
// sprite walks since clicks are ignored until it arrives.
func (g *Game) renderButtons(dst *platformcore.Screen) {
	offer := g.session.Offer()
	text := platformcore.ColorBrightWhite
	if g.walk != nil {
		text = platformcore.ColorGray
	}

	collect := g.layout.CollectButton()
	dst.FillBg(collect, platformcore.ColorBrown)
	dst.DrawTextIn(collect, collect.Y+(collect.H-1)/2, g.collectLabel(offer), text)

	trade := g.layout.TradeButton()
	dst.FillBg(trade, platformcore.ColorBrown)
	dst.DrawTextIn(trade, trade.Y+(trade.H-1)/2, g.tradeLabel(offer), text)
}

// collectLabel reads "+<glyph>".
func (g *Game) collectLabel(o core.Offer) string {
	return "+" + string(g.glyph(o.Collect))
}

// tradeLabel reads "+<to glyph repeated> -<from glyph repeated>".
func (g *Game) tradeLabel(o core.Offer) string {
	return "+" + strings.Repeat(string(g.glyph(o.TradeTo)), o.TradeToAmount) +
		" -" + strings.Repeat(string(g.glyph(o.TradeFrom)), o.TradeAmount)
}

func (g *Game) glyph(r core.Resource) rune {
	return g.cfg.Display.Glyph(r.String())
}

// renderBox draws the centered end-of-game box.
func (g *Game) renderBox(dst *platformcore.Screen, title, line string) {
	box := g.layout.Rect(gameOverBoxPx)
	dst.FillBg(box, platformcore.ColorBrown)
	dst.DrawTextIn(box, g.layout.Point(platformcore.Pt(0, gameOverBoxPx.Y+60)).Y, title, platformcore.ColorBrightYellow)
	if width := box.W - 2; utf8.RuneCountInString(line) > width {
		line = string([]rune(line)[:width-1]) + "…"
	}
	dst.DrawTextIn(box, g.layout.Point(platformcore.Pt(0, gameOverBoxPx.Y+120)).Y, line, platformcore.ColorBrightWhite)
}
