package core

import (
	"iter"

	platformcore "github.com/vovakirdan/tui-stalls/internal/core"
)

// Direction is the way the sprite faces.
type Direction uint8

const (
	Front Direction = iota // facing the viewer, walking down the screen
	Back                   // facing away, walking up
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit (dx, dy) offset of one step in this direction.
// Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Front:
		return 0, 1
	case Back:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Frame is a sprite animation frame.
type Frame uint8

const (
	Walking1 Frame = iota
	Still
	Walking2
)

// walkCycle is the number of frames a walk run cycles through.
const walkCycle = 3

// String returns the frame name.
func (f Frame) String() string {
	switch f {
	case Walking1:
		return "walk1"
	case Still:
		return "still"
	case Walking2:
		return "walk2"
	default:
		return "unknown"
	}
}

// StepSize is the distance in layout pixels between two walk samples.
const StepSize = 5

// Sample is one rendered sprite state along a path.
type Sample struct {
	Dir   Direction          `json:"dir"`
	Frame Frame              `json:"frame"`
	At    platformcore.Point `json:"at"`
}

// Segment is either a still pose (Steps == 0) or a walk run of Steps samples
// starting at From, moving StepSize per sample in Dir while the frame cycles
// Walking1, Still, Walking2.
type Segment struct {
	Dir   Direction
	Frame Frame // pose frame; ignored for walk runs
	From  platformcore.Point
	Steps int
}

// Pose returns a single-sample segment.
func Pose(dir Direction, frame Frame, x, y int) Segment {
	return Segment{Dir: dir, Frame: frame, From: platformcore.Pt(x, y)}
}

// Walk returns a walk run whose first sample is at (x, y).
func Walk(dir Direction, x, y, steps int) Segment {
	return Segment{Dir: dir, From: platformcore.Pt(x, y), Steps: steps}
}

// IsWalk reports whether the segment is a walk run.
func (s Segment) IsWalk() bool {
	return s.Steps > 0
}

// Len returns the number of samples the segment emits.
func (s Segment) Len() int {
	if s.IsWalk() {
		return s.Steps
	}
	return 1
}

// At returns the i-th sample of the segment.
func (s Segment) At(i int) Sample {
	if !s.IsWalk() {
		return Sample{Dir: s.Dir, Frame: s.Frame, At: s.From}
	}
	dx, dy := s.Dir.Delta()
	return Sample{
		Dir:   s.Dir,
		Frame: Frame(i % walkCycle),
		At:    platformcore.Pt(s.From.X+dx*StepSize*i, s.From.Y+dy*StepSize*i),
	}
}

// Path is the full sample sequence of one stall transition, stored as
// segments and expanded lazily.
type Path []Segment

// Len returns the total number of samples.
func (p Path) Len() int {
	n := 0
	for _, s := range p {
		n += s.Len()
	}
	return n
}

// All returns an iterator over every sample in order. It can be ranged
// over any number of times and always yields the same sequence.
func (p Path) All() iter.Seq[Sample] {
	return func(yield func(Sample) bool) {
		c := p.Cursor()
		for {
			s, ok := c.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Samples expands the whole path into a slice.
func (p Path) Samples() []Sample {
	out := make([]Sample, 0, p.Len())
	for s := range p.All() {
		out = append(out, s)
	}
	return out
}

// First returns the first sample. The path must not be empty.
func (p Path) First() Sample {
	return p[0].At(0)
}

// Last returns the final sample. The path must not be empty.
func (p Path) Last() Sample {
	seg := p[len(p)-1]
	return seg.At(seg.Len() - 1)
}

// Cursor returns a pull-style reader positioned before the first sample.
func (p Path) Cursor() *Cursor {
	return &Cursor{path: p}
}

// Cursor steps through a path one sample at a time. Tick-driven shells use
// it to emit a sample per frame without expanding the path.
type Cursor struct {
	path Path
	seg  int
	idx  int
	done int
}

// Next returns the next sample, or false once the path is exhausted.
func (c *Cursor) Next() (Sample, bool) {
	for c.seg < len(c.path) {
		seg := c.path[c.seg]
		if c.idx < seg.Len() {
			s := seg.At(c.idx)
			c.idx++
			c.done++
			return s, true
		}
		c.seg++
		c.idx = 0
	}
	return Sample{}, false
}

// Done returns how many samples have been emitted.
func (c *Cursor) Done() int {
	return c.done
}

// Remaining returns how many samples are left.
func (c *Cursor) Remaining() int {
	return c.path.Len() - c.done
}

// Reset rewinds the cursor to the start of the path.
func (c *Cursor) Reset() {
	c.seg, c.idx, c.done = 0, 0, 0
}
