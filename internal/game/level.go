// Package game implements the platformer simulation core: kinematics,
// collision resolution, procedural level generation, and the progression
// state machine. It is pure logic with no I/O; the platform layer drives
// it with Update(dt, input) and reads Snapshot() for rendering.
package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ObstacleKind tags an obstacle for rendering. It has no effect on
// collision behavior.
type ObstacleKind int

const (
	KindCrate ObstacleKind = iota
	KindRock
	KindBush
)

// String returns a human-readable name for the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindCrate:
		return "crate"
	case KindRock:
		return "rock"
	case KindBush:
		return "bush"
	default:
		return "unknown"
	}
}

// Obstacle is a solid block resting on the ground plane. Immutable once
// generated; replaced wholesale on level regeneration.
type Obstacle struct {
	Rect core.Rect
	Kind ObstacleKind
}

// Door is a level exit. Present on every tier except the final one.
type Door struct {
	Rect   core.Rect
	Active bool
}

// Prize is the chalice on the final tier. Collected is a terminal latch:
// it is never cleared except by a full restart, which regenerates the level.
type Prize struct {
	Rect      core.Rect
	Collected bool
}

// Level holds the obstacle layout for one tier. Owned by the Game and
// replaced on every transition.
type Level struct {
	Tier      int
	Width     float64 // Horizontal extent of the walkable platform
	Obstacles []Obstacle
	Door      *Door
	Prize     *Prize
}
