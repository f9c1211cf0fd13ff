package game

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Every tier, across many seeds, must produce a structurally valid level:
// obstacles on the ground inside the platform, spaced, jumpable, and clear
// of the exit.
func TestGeneratorValidity(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	maxH := cfg.Physics.MaxObstacleHeight()

	for seed := int64(1); seed <= 25; seed++ {
		gen := NewGenerator(seed, cfg)
		for tier := 1; tier <= cfg.MaxTier(); tier++ {
			level := gen.Generate(tier)
			tc := cfg.Tier(tier)

			if len(level.Obstacles) > tc.ObstacleCount {
				t.Errorf("seed %d tier %d: %d obstacles exceeds configured %d",
					seed, tier, len(level.Obstacles), tc.ObstacleCount)
			}

			var exitX float64
			if level.Prize != nil {
				exitX = level.Prize.Rect.X
			} else if level.Door != nil {
				exitX = level.Door.Rect.X
			}

			for i, o := range level.Obstacles {
				r := o.Rect
				if r.X < 0 || r.Right() > cfg.World.PlatformWidth {
					t.Errorf("seed %d tier %d obstacle %d: outside platform [%v, %v]",
						seed, tier, i, r.X, r.Right())
				}
				if r.Bottom() != cfg.World.GroundY {
					t.Errorf("seed %d tier %d obstacle %d: not resting on ground, bottom=%v",
						seed, tier, i, r.Bottom())
				}
				if r.H > maxH {
					t.Errorf("seed %d tier %d obstacle %d: height %v not jumpable (max %v)",
						seed, tier, i, r.H, maxH)
				}
				if i > 0 {
					gap := r.X - level.Obstacles[i-1].Rect.Right()
					if gap < tc.MinSpacing {
						t.Errorf("seed %d tier %d: gap %v between obstacles %d/%d below min %v",
							seed, tier, gap, i-1, i, tc.MinSpacing)
					}
				}
				if exitX-r.Right() < cfg.World.DoorClearance {
					t.Errorf("seed %d tier %d obstacle %d: within door clearance, right=%v exit=%v",
						seed, tier, i, r.Right(), exitX)
				}
				if level.Door != nil && r.Intersects(level.Door.Rect) {
					t.Errorf("seed %d tier %d obstacle %d: overlaps the exit door", seed, tier, i)
				}
			}
		}
	}
}

// Tier 1 with the default config (2 obstacles, 200 min spacing) must place
// exactly 2 obstacles on every run.
func TestGeneratorTierOneExactCount(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	for seed := int64(0); seed < 100; seed++ {
		gen := NewGenerator(seed, cfg)
		level := gen.Generate(1)

		if len(level.Obstacles) != 2 {
			t.Fatalf("seed %d: got %d obstacles, want 2", seed, len(level.Obstacles))
		}

		a, b := level.Obstacles[0].Rect, level.Obstacles[1].Rect
		if gap := b.X - a.Right(); gap < 200 {
			t.Errorf("seed %d: spacing %v below 200", seed, gap)
		}
		spanStart := cfg.World.StartX + obstacleStartOffset
		spanEnd := cfg.World.PlatformWidth - doorMargin - cfg.World.DoorClearance
		for i, o := range level.Obstacles {
			if o.Rect.X < spanStart || o.Rect.Right() > spanEnd {
				t.Errorf("seed %d obstacle %d: outside span [%v, %v]", seed, i, spanStart, spanEnd)
			}
		}
	}
}

// The static tier table is monotonic: counts never decrease, spacing never
// increases, size upper bounds never decrease.
func TestDifficultyMonotonicity(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	for i := 1; i < len(cfg.Tiers); i++ {
		prev, cur := cfg.Tiers[i-1], cfg.Tiers[i]
		if cur.ObstacleCount < prev.ObstacleCount {
			t.Errorf("tier %d: obstacle count %d < tier %d count %d",
				i+1, cur.ObstacleCount, i, prev.ObstacleCount)
		}
		if cur.MinSpacing > prev.MinSpacing {
			t.Errorf("tier %d: min spacing %v > tier %d spacing %v",
				i+1, cur.MinSpacing, i, prev.MinSpacing)
		}
		if cur.MaxWidth < prev.MaxWidth {
			t.Errorf("tier %d: max width %v < tier %d max width %v",
				i+1, cur.MaxWidth, i, prev.MaxWidth)
		}
		if cur.MaxHeight < prev.MaxHeight {
			t.Errorf("tier %d: max height %v < tier %d max height %v",
				i+1, cur.MaxHeight, i, prev.MaxHeight)
		}
	}
}

func TestGeneratorTierClamping(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	gen := NewGenerator(7, cfg)

	if level := gen.Generate(0); level.Tier != 1 {
		t.Errorf("tier 0 clamped to %d, want 1", level.Tier)
	}
	if level := gen.Generate(-3); level.Tier != 1 {
		t.Errorf("tier -3 clamped to %d, want 1", level.Tier)
	}
	if level := gen.Generate(99); level.Tier != cfg.MaxTier() {
		t.Errorf("tier 99 clamped to %d, want %d", level.Tier, cfg.MaxTier())
	}
}

// The chalice appears only on the final tier; the door on every other.
func TestPrizeOnlyOnFinalTier(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	gen := NewGenerator(3, cfg)

	for tier := 1; tier <= cfg.MaxTier(); tier++ {
		level := gen.Generate(tier)
		final := tier == cfg.MaxTier()

		if final {
			if level.Prize == nil {
				t.Errorf("tier %d: final tier missing prize", tier)
			}
			if level.Door != nil {
				t.Errorf("tier %d: final tier should have no door", tier)
			}
		} else {
			if level.Prize != nil {
				t.Errorf("tier %d: non-final tier has a prize", tier)
			}
			if level.Door == nil || !level.Door.Active {
				t.Errorf("tier %d: missing active exit door", tier)
			}
		}
	}
}

// Same seed must replay the same layout.
func TestGeneratorDeterminism(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	g1 := NewGenerator(42, cfg)
	g2 := NewGenerator(42, cfg)

	for tier := 1; tier <= cfg.MaxTier(); tier++ {
		l1 := g1.Generate(tier)
		l2 := g2.Generate(tier)

		if len(l1.Obstacles) != len(l2.Obstacles) {
			t.Fatalf("tier %d: obstacle count differs: %d vs %d", tier, len(l1.Obstacles), len(l2.Obstacles))
		}
		for i := range l1.Obstacles {
			if l1.Obstacles[i] != l2.Obstacles[i] {
				t.Errorf("tier %d obstacle %d differs: %+v vs %+v",
					tier, i, l1.Obstacles[i], l2.Obstacles[i])
			}
		}
	}
}

// An obstacle landing on the spawn rect would trap the character at the
// start of the level. The generator nudges such obstacles clear.
func TestSpawnOverlapNudgedClear(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	gen := NewGenerator(1, cfg)
	w := cfg.World
	spawn := core.NewRect(w.StartX, w.GroundY-w.CharacterHeight, w.CharacterWidth, w.CharacterHeight)

	level := &Level{
		Tier: 1,
		Obstacles: []Obstacle{
			{Rect: core.NewRect(w.StartX+10, w.GroundY-30, 30, 30), Kind: KindCrate},
			{Rect: core.NewRect(w.StartX+500, w.GroundY-30, 30, 30), Kind: KindRock},
		},
	}
	gen.fixSpawnOverlap(level)

	for i, o := range level.Obstacles {
		if o.Rect.Intersects(spawn) {
			t.Errorf("obstacle %d still overlaps spawn: %+v", i, o.Rect)
		}
	}
	if got, want := level.Obstacles[0].Rect.X, spawn.Right()+supportTolerance; got != want {
		t.Errorf("nudged obstacle x = %v, want %v", got, want)
	}
	if level.Obstacles[1].Rect.X != w.StartX+500 {
		t.Errorf("clear obstacle moved to x = %v", level.Obstacles[1].Rect.X)
	}
}

func TestLobbyLevel(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	gen := NewGenerator(1, cfg)

	lobby := gen.Lobby()
	if lobby.Tier != 0 {
		t.Errorf("lobby tier = %d, want 0", lobby.Tier)
	}
	if len(lobby.Obstacles) != 0 {
		t.Errorf("lobby has %d obstacles, want 0", len(lobby.Obstacles))
	}
	if lobby.Door == nil || !lobby.Door.Active {
		t.Error("lobby missing active exit door")
	}
	if lobby.Prize != nil {
		t.Error("lobby must not have a prize")
	}
}
