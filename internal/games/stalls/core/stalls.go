package core

import platformcore "github.com/vovakirdan/tui-stalls/internal/core"

// StallCount is the number of stall waypoints the sprite visits in turn.
const StallCount = 10

// Stall is a waypoint on the market map, in layout pixels.
type Stall struct {
	Booth  platformcore.Point // top-left corner of the stall picture
	Spot   platformcore.Point // where the sprite stands while shopping
	Facing Direction
}

// Stalls is the market layout. Entries 7-9 revisit the booths of 4, 1 and 0
// on the way back to the start.
var Stalls = [StallCount]Stall{
	{Booth: platformcore.Pt(45, 85), Spot: platformcore.Pt(70, 145), Facing: Back},
	{Booth: platformcore.Pt(-20, 250), Spot: platformcore.Pt(35, 280), Facing: Left},
	{Booth: platformcore.Pt(80, 360), Spot: platformcore.Pt(75, 385), Facing: Right},
	{Booth: platformcore.Pt(130, 260), Spot: platformcore.Pt(155, 320), Facing: Back},
	{Booth: platformcore.Pt(278, 255), Spot: platformcore.Pt(305, 310), Facing: Back},
	{Booth: platformcore.Pt(405, 120), Spot: platformcore.Pt(430, 180), Facing: Back},
	{Booth: platformcore.Pt(365, 382), Spot: platformcore.Pt(425, 410), Facing: Left},
	{Booth: platformcore.Pt(278, 255), Spot: platformcore.Pt(305, 310), Facing: Back},
	{Booth: platformcore.Pt(-20, 250), Spot: platformcore.Pt(35, 280), Facing: Left},
	{Booth: platformcore.Pt(45, 85), Spot: platformcore.Pt(70, 145), Facing: Back},
}

// transitions holds the scripted walk for every stall-to-stall move that has
// one. Transition k walks from stall k-1 to stall k. The wrap-around walk
// from stall 9 back to stall 0 is not tabulated.
var transitions = map[int]Path{
	1: {
		Pose(Right, Still, 70, 145),
		Walk(Right, 75, 145, 4),
		Pose(Right, Still, 100, 145),
		Pose(Front, Still, 100, 145),
		Walk(Front, 100, 150, 26),
		Pose(Front, Still, 100, 280),
		Pose(Left, Still, 100, 280),
		Walk(Left, 95, 280, 12),
		Pose(Left, Still, 35, 280),
	},
	2: {
		Pose(Front, Still, 35, 280),
		Walk(Front, 35, 285, 20),
		Pose(Front, Still, 35, 385),
		Pose(Right, Still, 35, 385),
		Walk(Right, 40, 385, 7),
		Pose(Right, Still, 75, 385),
	},
	3: {
		Pose(Back, Still, 75, 385),
		Walk(Back, 75, 380, 12),
		Pose(Back, Still, 75, 320),
		Pose(Right, Still, 75, 320),
		Walk(Right, 80, 320, 15),
		Pose(Right, Still, 155, 320),
		Pose(Back, Still, 155, 320),
	},
	4: {
		Pose(Front, Still, 155, 320),
		Walk(Front, 155, 325, 6),
		Pose(Front, Still, 155, 360),
		Pose(Right, Still, 155, 360),
		Walk(Right, 155, 360, 18),
		Pose(Right, Still, 250, 360),
		Pose(Back, Still, 250, 360),
		Walk(Back, 250, 355, 9),
		Pose(Back, Still, 250, 310),
		Pose(Right, Still, 250, 310),
		Walk(Right, 255, 310, 10),
		Pose(Right, Still, 305, 310),
	},
	5: {
		Pose(Right, Still, 305, 310),
		Walk(Right, 310, 310, 21),
		Pose(Right, Still, 415, 310),
		Pose(Back, Still, 415, 310),
		Walk(Back, 415, 305, 25),
		Pose(Back, Still, 415, 180),
		Pose(Right, Still, 415, 180),
		Walk(Right, 420, 180, 2),
		Pose(Right, Still, 430, 180),
	},
	6: {
		Pose(Front, Still, 430, 180),
		Walk(Front, 430, 185, 45),
		Pose(Front, Still, 430, 410),
		Pose(Left, Still, 430, 410),
		Pose(Left, Walking1, 425, 410),
	},
	7: {
		Pose(Back, Still, 425, 410),
		Walk(Back, 425, 405, 19),
		Pose(Back, Still, 425, 310),
		Pose(Left, Still, 425, 310),
		Walk(Left, 420, 310, 23),
		Pose(Left, Still, 305, 310),
	},
	8: {
		Pose(Left, Still, 305, 310),
		Walk(Left, 300, 310, 10),
		Pose(Left, Still, 250, 310),
		Pose(Front, Still, 250, 310),
		Walk(Front, 250, 315, 9),
		Pose(Front, Still, 250, 360),
		Pose(Left, Still, 250, 360),
		Walk(Left, 245, 360, 18),
		Pose(Left, Still, 155, 360),
		Pose(Back, Still, 155, 360),
		Walk(Back, 155, 355, 5),
		Pose(Back, Still, 155, 330),
		Pose(Left, Still, 155, 330),
		Walk(Left, 150, 330, 23),
		Pose(Left, Still, 35, 330),
		Pose(Back, Still, 35, 330),
		Walk(Back, 35, 325, 9),
		Pose(Back, Still, 35, 280),
	},
	9: {
		Pose(Right, Still, 35, 280),
		Walk(Right, 40, 280, 12),
		Pose(Right, Still, 100, 280),
		Pose(Back, Still, 100, 280),
		Walk(Back, 100, 275, 26),
		Pose(Back, Still, 100, 145),
		Pose(Left, Still, 100, 145),
		Walk(Left, 95, 145, 5),
		Pose(Left, Still, 70, 145),
	},
}

// TransitionCount is the number of tabulated transitions.
const TransitionCount = 9

// Paths looks up scripted walks between stalls.
type Paths struct {
	table map[int]Path
}

// NewPaths returns the player for the built-in transition table.
func NewPaths() *Paths {
	return &Paths{table: transitions}
}

// Transition returns the path with index k (1..TransitionCount).
func (p *Paths) Transition(k int) (Path, error) {
	path, ok := p.table[k]
	if !ok {
		return nil, &UnknownTransitionError{From: k - 1, To: k}
	}
	return path, nil
}

// Frames returns the walk from stall from to stall to. Only moves to the next
// stall are tabulated, and the wrap-around from the last stall to the first
// has no path.
func (p *Paths) Frames(from, to int) (Path, error) {
	if from < 0 || from >= StallCount || to != (from+1)%StallCount {
		return nil, &UnknownTransitionError{From: from, To: to}
	}
	path, ok := p.table[to]
	if !ok {
		return nil, &UnknownTransitionError{From: from, To: to}
	}
	return path, nil
}

// Indices returns the tabulated transition indices in ascending order.
func (p *Paths) Indices() []int {
	out := make([]int, 0, len(p.table))
	for k := 1; k <= StallCount; k++ {
		if _, ok := p.table[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
