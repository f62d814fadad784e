package stalls

import (
	"errors"
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/tui-stalls/internal/core"
)

// Market dimensions in layout pixels. Stall positions, paths and buttons
// are all expressed in this space and scaled to terminal cells.
const (
	LayoutW = 526
	LayoutH = 595

	hudBandH   = 75
	boothSize  = 80
	hudBoxW    = 70
	hudBoxH    = 50
	hudBoxStep = 85
)

var (
	collectButtonPx = platformcore.NewRect(135, LayoutH-135, 150, 50)
	tradeButtonPx   = platformcore.NewRect(50, LayoutH-75, 300, 50)
	gameOverBoxPx   = platformcore.NewRect((LayoutW-400)/2, (LayoutH-200)/2, 400, 200)
)

// Layout maps layout pixels onto screen cells. The scaled market is
// centered on the screen.
type Layout struct {
	ScaleX, ScaleY   int
	OriginX, OriginY int
	Cols, Rows       int // scaled market size in cells
}

// NewLayout computes the mapping for a screen of the given size.
func NewLayout(scaleX, scaleY, screenW, screenH int) Layout {
	l := Layout{ScaleX: max(scaleX, 1), ScaleY: max(scaleY, 1)}
	l.Cols = roundDiv(LayoutW, l.ScaleX)
	l.Rows = roundDiv(LayoutH, l.ScaleY)
	l.OriginX = max(0, (screenW-l.Cols)/2)
	l.OriginY = max(0, (screenH-l.Rows)/2)
	return l
}

// ErrButtonsOverlap is returned for scales that round the collect and trade
// buttons onto shared cells.
var ErrButtonsOverlap = errors.New("collect and trade buttons overlap")

// Check reports whether every hit region maps to its own cells.
func (l Layout) Check() error {
	if l.CollectButton().Intersects(l.TradeButton()) {
		return fmt.Errorf("layout scale %dx%d: %w", l.ScaleX, l.ScaleY, ErrButtonsOverlap)
	}
	return nil
}

// Fits reports whether the scaled market fits the screen.
func (l Layout) Fits(screenW, screenH int) bool {
	return screenW >= l.Cols && screenH >= l.Rows
}

// Point converts a layout pixel to a screen cell.
func (l Layout) Point(p platformcore.Point) platformcore.Point {
	return platformcore.Pt(l.OriginX+roundDiv(p.X, l.ScaleX), l.OriginY+roundDiv(p.Y, l.ScaleY))
}

// Rect converts a layout rectangle to screen cells. Edges are rounded
// independently so adjacent pixel rectangles stay disjoint; the result is
// at least one cell in each dimension.
func (l Layout) Rect(r platformcore.Rect) platformcore.Rect {
	x0, y0 := roundDiv(r.X, l.ScaleX), roundDiv(r.Y, l.ScaleY)
	x1, y1 := roundDiv(r.Right(), l.ScaleX), roundDiv(r.Bottom(), l.ScaleY)
	return platformcore.NewRect(l.OriginX+x0, l.OriginY+y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Bounds returns the whole market area in cells.
func (l Layout) Bounds() platformcore.Rect {
	return platformcore.NewRect(l.OriginX, l.OriginY, l.Cols, l.Rows)
}

// CollectButton returns the collect hit region in cells.
func (l Layout) CollectButton() platformcore.Rect {
	return l.Rect(collectButtonPx)
}

// TradeButton returns the trade hit region in cells.
func (l Layout) TradeButton() platformcore.Rect {
	return l.Rect(tradeButtonPx)
}

// HitTest maps a clicked cell to the button under it. Collect wins where
// the two regions would overlap.
func (l Layout) HitTest(cell platformcore.Point) platformcore.Action {
	switch {
	case l.CollectButton().ContainsPoint(cell):
		return platformcore.ActionCollect
	case l.TradeButton().ContainsPoint(cell):
		return platformcore.ActionTrade
	default:
		return platformcore.ActionNone
	}
}

// hudBox returns the i-th HUD counter box (0 is the round counter).
func (l Layout) hudBox(i int) platformcore.Rect {
	return l.Rect(platformcore.NewRect(15+hudBoxStep*i, 15, hudBoxW, hudBoxH))
}

func roundDiv(a, b int) int {
	return int(math.Round(float64(a) / float64(b)))
}
