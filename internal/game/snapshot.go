package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Snapshot is the read-only view handed to the render collaborator after
// each Update. It uses plain values only; mutating it never touches the
// simulation.
type Snapshot struct {
	Status  Status
	Tier    int
	MaxTier int
	Elapsed float64

	Character CharacterView
	Obstacles []ObstacleView
	Door      *DoorView
	Prize     *PrizeView

	// World geometry for projection and the camera clamp.
	LevelWidth float64
	GroundY    float64

	// Countdown state; meaningful only in the lobby.
	CountdownRemaining float64
	CountdownActive    bool

	// Timeout cinematic view; meaningful only while timeout-animating
	// or timeout-gameover.
	Cinematic StageView

	Falling bool
}

// CharacterView is the render-facing character state.
type CharacterView struct {
	X, Y     float64
	W, H     float64
	VelY     float64
	OnGround bool
	Jumping  bool
	Facing   int
}

// ObstacleView is the render-facing obstacle state.
type ObstacleView struct {
	X, Y float64
	W, H float64
	Kind ObstacleKind
}

// DoorView is the render-facing door state.
type DoorView struct {
	X, Y   float64
	W, H   float64
	Active bool
}

// PrizeView is the render-facing chalice state.
type PrizeView struct {
	X, Y      float64
	Size      float64
	Collected bool
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Status:             g.status,
		Tier:               g.char.Tier,
		MaxTier:            g.cfg.MaxTier(),
		Elapsed:            g.elapsed,
		LevelWidth:         g.level.Width,
		GroundY:            g.cfg.World.GroundY,
		CountdownRemaining: g.countdown.Remaining(),
		CountdownActive:    g.countdown.Active(),
		Cinematic:          g.sequence.View(),
		Falling:            g.falling,
		Character: CharacterView{
			X:        g.char.Pos.X,
			Y:        g.char.Pos.Y,
			W:        g.char.W,
			H:        g.char.H,
			VelY:     g.char.VelY,
			OnGround: g.char.OnGround,
			Jumping:  g.char.Jumping,
			Facing:   g.char.Facing,
		},
	}

	s.Obstacles = make([]ObstacleView, len(g.level.Obstacles))
	for i, o := range g.level.Obstacles {
		s.Obstacles[i] = ObstacleView{
			X: o.Rect.X, Y: o.Rect.Y, W: o.Rect.W, H: o.Rect.H, Kind: o.Kind,
		}
	}
	if d := g.level.Door; d != nil {
		s.Door = &DoorView{X: d.Rect.X, Y: d.Rect.Y, W: d.Rect.W, H: d.Rect.H, Active: d.Active}
	}
	if p := g.level.Prize; p != nil {
		s.Prize = &PrizeView{X: p.Rect.X, Y: p.Rect.Y, Size: p.Rect.W, Collected: p.Collected}
	}
	return s
}

// CameraX returns the camera's left edge for a view of the given width:
// the character centered, clamped to the level bounds. This is the single
// camera formula the core owns; all other panning is the host's concern.
func (s Snapshot) CameraX(viewWidth float64) float64 {
	if viewWidth >= s.LevelWidth {
		return 0
	}
	want := s.Character.X + s.Character.W/2 - viewWidth/2
	return core.ClampF(want, 0, s.LevelWidth-viewWidth)
}
