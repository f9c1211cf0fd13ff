package game

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Status is the progression state. Exactly one is active at a time:
// physics and collision run only while Playing at tier >= 1, the lobby
// countdown only while Playing at tier 0.
type Status int

const (
	StatusPlaying Status = iota
	StatusTransitioning
	StatusWon
	StatusLost
	StatusTimeoutAnimating
	StatusTimeoutGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusTransitioning:
		return "transitioning"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusTimeoutAnimating:
		return "timeout-animating"
	case StatusTimeoutGameOver:
		return "timeout-gameover"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the run until a restart.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusTimeoutGameOver
}

// maxDt caps a single physics step. The host already clamps frame deltas,
// this is the core's own guard against pathological jumps.
const maxDt = 0.1

// fallDepthMargin is how far below the ground plane the character may sink
// before the vertical envelope counts as left.
const fallDepthMargin = 50.0

// Game is the complete simulation state for one session. Single-threaded:
// the host drives it with Update once per frame and never shares it across
// sessions.
type Game struct {
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig

	char  Character
	kin   Kinematics
	gen   *Generator
	level *Level

	status  Status
	elapsed float64 // Simulation clock, seconds since Reset

	// Deferred level transition: due-at-elapsed value checked each tick,
	// so the tick loop never stalls. Negative means none pending.
	transitionDueAt float64

	// Falling sub-state: the envelope check triggers instantly, the loss
	// itself is confirmed only after the sink window. This asymmetry is
	// intentional.
	falling     bool
	fallElapsed float64

	countdown *Countdown
	sequence  *Sequencer

	stopped bool
}

// New creates a game session in the lobby.
func New(cfg config.PlatformerConfig, rt core.RuntimeConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(rt)
	return g
}

// Reset restarts the session from the tier-0 lobby: character, countdown,
// and cinematic cursor all return to initial values.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.kin = NewKinematics(g.cfg.Physics)
	if g.gen == nil {
		g.gen = NewGenerator(rt.Seed, g.cfg)
	} else {
		g.gen.Reseed(rt.Seed)
	}

	g.level = g.gen.Lobby()
	g.placeCharacter(0)

	g.status = StatusPlaying
	g.elapsed = 0
	g.transitionDueAt = -1
	g.falling = false
	g.fallElapsed = 0
	g.stopped = false

	g.countdown = NewCountdown(g.cfg.Lobby.Countdown)
	g.countdown.Start()
	if g.sequence == nil {
		g.sequence = NewTimeoutSequence()
	} else {
		g.sequence.Reset()
	}
}

// placeCharacter repositions (never recreates) the character at the start
// of the given tier.
func (g *Game) placeCharacter(tier int) {
	w := g.cfg.World
	g.char.Pos = core.Vec2{X: w.StartX, Y: w.GroundY - w.CharacterHeight}
	g.char.W = w.CharacterWidth
	g.char.H = w.CharacterHeight
	g.char.VelY = 0
	g.char.OnGround = true
	g.char.Jumping = false
	g.char.Facing = 1
	g.char.Tier = tier
}

// Stop halts tick consumption and cancels any pending transition so a
// stale deferred action cannot mutate a torn-down session.
func (g *Game) Stop() {
	g.stopped = true
	g.transitionDueAt = -1
}

// Status returns the active progression state.
func (g *Game) Status() Status {
	return g.status
}

// Tier returns the current level index (0 = lobby).
func (g *Game) Tier() int {
	return g.char.Tier
}

// Elapsed returns the simulation clock in seconds since the last Reset.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Update advances the simulation by dt seconds. Invalid deltas (zero,
// negative, NaN, Inf) skip the tick entirely; oversized ones are clamped.
// Input that would move the character is ignored outside Playing.
func (g *Game) Update(dt float64, in core.InputFrame) {
	if g.stopped {
		return
	}
	if !ValidDt(dt) {
		return
	}
	if dt > maxDt {
		dt = maxDt
	}
	g.elapsed += dt

	switch g.status {
	case StatusPlaying:
		if g.char.Tier == 0 {
			g.updateLobby(dt, in)
		} else {
			g.updateLevel(dt, in)
		}

	case StatusTransitioning:
		if g.transitionDueAt >= 0 && g.elapsed >= g.transitionDueAt {
			g.transitionDueAt = -1
			g.advanceTier()
		}

	case StatusTimeoutAnimating:
		g.sequence.Update(dt)
		if g.sequence.Complete() {
			g.status = StatusTimeoutGameOver
		}

	case StatusWon, StatusLost, StatusTimeoutGameOver:
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
	}
}

// updateLobby runs the tier-0 state: countdown plus horizontal-only
// movement with a canvas-edge clamp. No gravity, no obstacles.
func (g *Game) updateLobby(dt float64, in core.InputFrame) {
	if g.countdown.Update(dt) {
		g.sequence.Start()
		g.status = StatusTimeoutAnimating
		return
	}

	if dir := in.HorizontalDir(); dir != 0 {
		g.char.Pos.X += float64(dir) * g.cfg.Physics.MoveSpeed * dt
		g.char.Facing = dir
	}
	g.char.Pos.X = core.ClampF(g.char.Pos.X, 0, g.level.Width-g.char.W)

	// Reaching the lobby exit before the timeout stops the countdown and
	// enters the platformer proper.
	if g.level.Door != nil && g.level.Door.Active && g.char.Rect().Intersects(g.level.Door.Rect) {
		g.countdown.Stop()
		g.enterTier(1)
	}
}

// updateLevel runs one platformer tick: kinematics first, then collision
// resolution, then win/lose/door outcomes.
func (g *Game) updateLevel(dt float64, in core.InputFrame) {
	dir := 0
	if g.falling {
		// Sinking: input is ignored, gravity keeps pulling.
		g.fallElapsed += dt
	} else {
		dir = in.HorizontalDir()
		if in.Has(core.ActionJump) {
			g.kin.Jump(&g.char)
		}
	}

	g.kin.ApplyGravity(&g.char, dt)
	g.kin.Integrate(&g.char, dt, dir)

	if !g.falling {
		ResolveAll(&g.char, g.level, g.cfg.World.GroundY)
	}

	// Win beats lose when both would trigger in the same tick.
	if p := g.level.Prize; p != nil && !p.Collected && g.char.Rect().Intersects(p.Rect) {
		p.Collected = true
		g.status = StatusWon
		return
	}

	if !g.falling && g.leftEnvelope() {
		g.falling = true
		g.fallElapsed = 0
		g.char.OnGround = false
		g.char.Jumping = true
	}
	if g.falling && g.fallElapsed >= g.cfg.World.FallWindow {
		g.status = StatusLost
		return
	}

	if d := g.level.Door; d != nil && d.Active && in.Has(core.ActionConfirm) && g.char.Rect().Intersects(d.Rect) {
		g.status = StatusTransitioning
		g.transitionDueAt = g.elapsed + g.cfg.World.TransitionDelay
	}
}

// leftEnvelope reports whether the character left the playable area:
// past either platform edge or sunken below the ground plane.
func (g *Game) leftEnvelope() bool {
	r := g.char.Rect()
	if r.Right() < 0 || r.X > g.level.Width {
		return true
	}
	return r.Y > g.cfg.World.GroundY+fallDepthMargin
}

// advanceTier materializes the deferred transition: one tier forward,
// clamped, with a fresh level and the character back at the start.
func (g *Game) advanceTier() {
	g.enterTier(g.char.Tier + 1)
}

// enterTier regenerates the level for the given tier and resumes play.
func (g *Game) enterTier(tier int) {
	tier = core.Clamp(tier, 1, g.cfg.MaxTier())
	g.level = g.gen.Generate(tier)
	g.placeCharacter(tier)
	g.falling = false
	g.fallElapsed = 0
	g.status = StatusPlaying
}
