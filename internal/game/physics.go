package game

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Character is the player entity. Created once per session and
// repositioned, not recreated, on level transitions.
type Character struct {
	Pos      core.Vec2 // Top-left corner
	W, H     float64
	VelY     float64 // Vertical velocity, px/s, positive = downward
	OnGround bool
	Jumping  bool
	Facing   int // -1 left, +1 right
	Tier     int // Current level index (0 = lobby)
}

// Rect returns the character's collision rectangle.
func (c *Character) Rect() core.Rect {
	return core.NewRect(c.Pos.X, c.Pos.Y, c.W, c.H)
}

// Land settles the character onto a surface. Called exclusively by the
// collision resolver, never by input handling.
func (c *Character) Land() {
	c.VelY = 0
	c.Jumping = false
	c.OnGround = true
}

// Kinematics integrates character motion under constant-acceleration
// gravity. It is a stateless service over the shared physics constants.
type Kinematics struct {
	cfg config.PhysicsConfig
}

// NewKinematics creates a kinematics service with the given constants.
func NewKinematics(cfg config.PhysicsConfig) Kinematics {
	return Kinematics{cfg: cfg}
}

// Jump sets the upward jump velocity if the character is grounded and not
// already mid-jump. Jumping while airborne is a designed no-op, not an
// error.
func (k Kinematics) Jump(c *Character) {
	if !c.OnGround || c.Jumping {
		return
	}
	c.VelY = k.cfg.JumpStrength
	c.Jumping = true
	c.OnGround = false
}

// ApplyGravity accelerates an airborne character downward, clamping at
// terminal velocity. Grounded characters are unaffected.
func (k Kinematics) ApplyGravity(c *Character, dt float64) {
	if !c.Jumping {
		return
	}
	c.VelY += k.cfg.Gravity * dt
	if c.VelY > k.cfg.TerminalVelocity {
		c.VelY = k.cfg.TerminalVelocity
	}
}

// Integrate advances the character's position. Horizontal movement is
// direct and unclamped here; boundary enforcement belongs to the resolver
// and the level envelope.
func (k Kinematics) Integrate(c *Character, dt float64, dir int) {
	if dir != 0 {
		c.Pos.X += float64(dir) * k.cfg.MoveSpeed * dt
		c.Facing = dir
	}
	c.Pos.Y += c.VelY * dt
}

// ValidDt reports whether dt is usable for a physics step. Zero, negative,
// NaN, or infinite deltas must skip the tick rather than corrupt state.
func ValidDt(dt float64) bool {
	return dt > 0 && !math.IsNaN(dt) && !math.IsInf(dt, 0)
}
