package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Side identifies which face of an obstacle the character hit.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Result is the outcome of a collision test. Derived per tick, never stored.
type Result struct {
	Collided bool
	Side     Side
}

// supportTolerance is how close (in px) the character's feet must be to a
// surface top to count as standing on it.
const supportTolerance = 5

// Detect tests the character rect against an obstacle rect and classifies
// the contact side by minimum penetration depth. Minimum penetration
// approximates the most recent axis of contact in a discrete-step
// simulation; ties break in left, right, top, bottom order.
func Detect(char, obs core.Rect) Result {
	if !char.Intersects(obs) {
		return Result{}
	}

	overlapLeft := char.Right() - obs.X
	overlapRight := obs.Right() - char.X
	overlapTop := char.Bottom() - obs.Y
	overlapBottom := obs.Bottom() - char.Y

	side := SideLeft
	min := overlapLeft
	if overlapRight < min {
		min = overlapRight
		side = SideRight
	}
	if overlapTop < min {
		min = overlapTop
		side = SideTop
	}
	if overlapBottom < min {
		side = SideBottom
	}

	return Result{Collided: true, Side: side}
}

// Resolve pushes the character out of an obstacle along the given side and
// corrects velocity. Top is a solid standing surface; bottom is a head
// bump that kills upward velocity without landing.
func Resolve(c *Character, obs core.Rect, side Side) {
	switch side {
	case SideLeft:
		c.Pos.X = obs.X - c.W
	case SideRight:
		c.Pos.X = obs.Right()
	case SideTop:
		c.Pos.Y = obs.Y - c.H
		c.Land()
	case SideBottom:
		c.Pos.Y = obs.Bottom()
		c.VelY = 0
	}
}

// ResolveAll corrects the character against the ground plane and every
// obstacle, then re-checks support so walking off a ledge resumes gravity.
// Postcondition for valid generator output: the character overlaps nothing.
func ResolveAll(c *Character, level *Level, groundY float64) {
	// Ground plane is the degenerate case of the same algorithm: a level-wide
	// obstacle starting at groundY.
	ground := core.NewRect(0, groundY, level.Width, c.H*4)
	if res := Detect(c.Rect(), ground); res.Collided {
		Resolve(c, ground, res.Side)
	}

	for i := range level.Obstacles {
		obs := level.Obstacles[i].Rect
		if res := Detect(c.Rect(), obs); res.Collided {
			Resolve(c, obs, res.Side)
		}
	}

	// Edge-walk check: a grounded character with nothing under its feet
	// must start falling, otherwise it floats off ledges.
	if c.OnGround && !supported(c, level, groundY) {
		c.OnGround = false
		c.Jumping = true
	}
}

// supported reports whether the character is resting on the ground plane
// or atop any obstacle: its center-x within the surface's horizontal span
// and its feet within supportTolerance of the surface top.
func supported(c *Character, level *Level, groundY float64) bool {
	centerX := c.Rect().CenterX()
	feet := c.Rect().Bottom()

	if centerX >= 0 && centerX <= level.Width && feet >= groundY-supportTolerance && feet <= groundY+supportTolerance {
		return true
	}

	for i := range level.Obstacles {
		obs := level.Obstacles[i].Rect
		if centerX < obs.X || centerX > obs.Right() {
			continue
		}
		if feet >= obs.Y-supportTolerance && feet <= obs.Y+supportTolerance {
			return true
		}
	}
	return false
}
