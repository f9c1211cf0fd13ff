package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// doorMargin is the distance from the platform's right edge to the exit
// door (or the chalice on the final tier).
const doorMargin = 200

// obstacleStartOffset keeps the first obstacle away from the spawn point.
const obstacleStartOffset = 140

// maxHeightDraws bounds the re-draw loop for unjumpable height candidates.
const maxHeightDraws = 8

// Generator produces validated obstacle layouts for each tier. Randomness
// is confined to one seeded source so tests can replay exact sequences.
type Generator struct {
	rng *rand.Rand
	cfg config.PlatformerConfig
}

// NewGenerator creates a generator with the given seed and configuration.
func NewGenerator(seed int64, cfg config.PlatformerConfig) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reseed resets the random source, replaying the same layouts for the
// same seed.
func (g *Generator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Lobby builds the tier-0 level: no obstacles, no physics, a single exit
// door, and the countdown running outside this package.
func (g *Generator) Lobby() *Level {
	w := g.cfg.World
	l := g.cfg.Lobby
	return &Level{
		Tier:  0,
		Width: l.Width,
		Door: &Door{
			Rect:   core.NewRect(l.ExitX, w.GroundY-w.DoorHeight, w.DoorWidth, w.DoorHeight),
			Active: true,
		},
	}
}

// Generate builds a level for the given tier. Out-of-range tiers are
// clamped into [1, MaxTier]. The returned level always satisfies:
//   - every obstacle rests on the ground inside the platform span
//   - consecutive obstacles are at least MinSpacing apart
//   - every obstacle height clears the fixed jump arc with a 20% margin
//   - no obstacle is within DoorClearance of the exit (or prize)
//
// When the requested count does not fit the available span, the level
// comes out sparser rather than invalid.
func (g *Generator) Generate(tier int) *Level {
	tier = core.Clamp(tier, 1, g.cfg.MaxTier())
	tc := g.cfg.Tier(tier)
	w := g.cfg.World

	level := &Level{
		Tier:  tier,
		Width: w.PlatformWidth,
	}

	final := tier == g.cfg.MaxTier()
	exitX := w.PlatformWidth - doorMargin
	if final {
		level.Prize = &Prize{
			Rect: core.NewRect(exitX, w.GroundY-w.PrizeSize, w.PrizeSize, w.PrizeSize),
		}
	} else {
		level.Door = &Door{
			Rect:   core.NewRect(exitX, w.GroundY-w.DoorHeight, w.DoorWidth, w.DoorHeight),
			Active: true,
		}
	}

	spanStart := w.StartX + obstacleStartOffset
	spanEnd := exitX - w.DoorClearance
	span := spanEnd - spanStart
	if span <= 0 || tc.ObstacleCount <= 0 {
		return level
	}

	// Even distribution: widen the configured spacing when the span allows.
	spacing := tc.MinSpacing
	if even := span / float64(tc.ObstacleCount+1); even > spacing {
		spacing = even
	}

	cursor := spanStart + spacing
	for i := 0; i < tc.ObstacleCount; i++ {
		width := g.uniform(tc.MinWidth, tc.MaxWidth)
		height := g.drawJumpableHeight(tc)

		// Skip candidates that no longer fit before the exit clearance.
		if cursor+width > spanEnd {
			break
		}

		level.Obstacles = append(level.Obstacles, Obstacle{
			Rect: core.NewRect(cursor, w.GroundY-height, width, height),
			Kind: ObstacleKind(g.rng.Intn(3)),
		})
		cursor += width + spacing
	}

	g.fixSpawnOverlap(level)
	return level
}

// drawJumpableHeight draws an obstacle height, re-drawing any candidate
// the fixed jump arc cannot clear. After maxHeightDraws the candidate is
// clamped instead, so generation always terminates.
func (g *Generator) drawJumpableHeight(tc config.TierConfig) float64 {
	maxH := g.cfg.Physics.MaxObstacleHeight()
	for i := 0; i < maxHeightDraws; i++ {
		h := g.uniform(tc.MinHeight, tc.MaxHeight)
		if h <= maxH {
			return h
		}
	}
	return maxH
}

// uniform draws from [min, max].
func (g *Generator) uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + g.rng.Float64()*(max-min)
}

// fixSpawnOverlap nudges any obstacle overlapping the character spawn rect
// to the right of it, preventing an unrecoverable stuck-at-spawn state.
func (g *Generator) fixSpawnOverlap(level *Level) {
	w := g.cfg.World
	spawn := core.NewRect(w.StartX, w.GroundY-w.CharacterHeight, w.CharacterWidth, w.CharacterHeight)
	for i := range level.Obstacles {
		if level.Obstacles[i].Rect.Intersects(spawn) {
			level.Obstacles[i].Rect.X = spawn.Right() + supportTolerance
		}
	}
}
