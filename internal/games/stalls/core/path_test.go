package core_test

import (
	"errors"
	"testing"

	platformcore "github.com/vovakirdan/tui-stalls/internal/core"
	"github.com/vovakirdan/tui-stalls/internal/games/stalls/core"
)

func TestTransitionLengths(t *testing.T) {
	want := map[int]int{1: 48, 2: 31, 3: 32, 4: 51, 5: 54, 6: 49, 7: 46, 8: 86, 9: 49}
	paths := core.NewPaths()

	for k, n := range want {
		path, err := paths.Transition(k)
		if err != nil {
			t.Fatalf("Transition(%d) failed: %v", k, err)
		}
		if path.Len() != n {
			t.Errorf("transition %d: Len() = %d, want %d", k, path.Len(), n)
		}
		if got := len(path.Samples()); got != n {
			t.Errorf("transition %d: %d samples, want %d", k, got, n)
		}
	}
}

func TestTransitionEndpoints(t *testing.T) {
	paths := core.NewPaths()

	for from := 0; from < core.TransitionCount; from++ {
		to := from + 1
		path, err := paths.Frames(from, to)
		if err != nil {
			t.Fatalf("Frames(%d, %d) failed: %v", from, to, err)
		}
		if got := path.First().At; got != core.Stalls[from].Spot {
			t.Errorf("%d -> %d starts at %v, want %v", from, to, got, core.Stalls[from].Spot)
		}
		if got := path.Last().At; got != core.Stalls[to].Spot {
			t.Errorf("%d -> %d ends at %v, want %v", from, to, got, core.Stalls[to].Spot)
		}
	}
}

func TestTransitionsAreContinuous(t *testing.T) {
	paths := core.NewPaths()

	for _, k := range paths.Indices() {
		path, _ := paths.Transition(k)
		var prev *core.Sample
		for s := range path.All() {
			if prev != nil {
				dx := abs(s.At.X - prev.At.X)
				dy := abs(s.At.Y - prev.At.Y)
				if dx > 2*core.StepSize || dy > 2*core.StepSize {
					t.Errorf("transition %d jumps from %v to %v", k, prev.At, s.At)
				}
			}
			cur := s
			prev = &cur
		}
	}
}

func TestFramesUnknownTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
	}{
		{"wrap-around", 9, 0},
		{"non-adjacent", 0, 2},
		{"backwards", 3, 2},
		{"same stall", 4, 4},
		{"negative", -1, 0},
		{"out of range", 10, 11},
	}

	paths := core.NewPaths()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := paths.Frames(tc.from, tc.to)
			if !errors.Is(err, core.ErrUnknownTransition) {
				t.Fatalf("Frames(%d, %d) error = %v, want ErrUnknownTransition", tc.from, tc.to, err)
			}
			var ute *core.UnknownTransitionError
			if !errors.As(err, &ute) {
				t.Fatalf("error %T is not *UnknownTransitionError", err)
			}
			if ute.From != tc.from || ute.To != tc.to {
				t.Errorf("error carries %d -> %d, want %d -> %d", ute.From, ute.To, tc.from, tc.to)
			}
		})
	}
}

func TestPathIsRestartable(t *testing.T) {
	path, err := core.NewPaths().Frames(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	first := path.Samples()
	second := path.Samples()
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCursorMatchesAll(t *testing.T) {
	path, err := core.NewPaths().Transition(8)
	if err != nil {
		t.Fatal(err)
	}

	c := path.Cursor()
	if c.Remaining() != path.Len() {
		t.Fatalf("Remaining() = %d, want %d", c.Remaining(), path.Len())
	}

	i := 0
	for want := range path.All() {
		got, ok := c.Next()
		if !ok {
			t.Fatalf("cursor ended early at %d", i)
		}
		if got != want {
			t.Fatalf("sample %d: cursor %+v, All %+v", i, got, want)
		}
		i++
	}
	if _, ok := c.Next(); ok {
		t.Error("cursor should be exhausted")
	}
	if c.Done() != path.Len() || c.Remaining() != 0 {
		t.Errorf("Done/Remaining = %d/%d, want %d/0", c.Done(), c.Remaining(), path.Len())
	}

	c.Reset()
	if s, ok := c.Next(); !ok || s != path.First() {
		t.Errorf("after Reset Next() = %+v, %v; want first sample", s, ok)
	}
}

func TestAllStopsEarly(t *testing.T) {
	path, _ := core.NewPaths().Transition(1)

	n := 0
	for range path.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d samples, want 3", n)
	}
}

func TestWalkSegment(t *testing.T) {
	seg := core.Walk(core.Front, 100, 150, 4)

	wantFrames := []core.Frame{core.Walking1, core.Still, core.Walking2, core.Walking1}
	for i, want := range wantFrames {
		s := seg.At(i)
		if s.Frame != want {
			t.Errorf("sample %d frame = %s, want %s", i, s.Frame, want)
		}
		if s.At != platformcore.Pt(100, 150+i*core.StepSize) {
			t.Errorf("sample %d at %v, want (100, %d)", i, s.At, 150+i*core.StepSize)
		}
		if s.Dir != core.Front {
			t.Errorf("sample %d dir = %s, want front", i, s.Dir)
		}
	}

	pose := core.Pose(core.Left, core.Still, 35, 280)
	if pose.IsWalk() || pose.Len() != 1 {
		t.Errorf("pose should be a single sample, Len() = %d", pose.Len())
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
