// Package config provides YAML-based configuration loading for the
// platformer: global physics constants, world geometry, the lobby
// countdown, and the per-tier level generation table.
package config

// PlatformerConfig contains all tunable parameters for the game.
type PlatformerConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	World   WorldConfig   `yaml:"world"`
	Lobby   LobbyConfig   `yaml:"lobby"`
	Tiers   []TierConfig  `yaml:"tiers"`
}

// PhysicsConfig defines the shared kinematics constants.
// All values are in scene units (pixels) and seconds.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // Downward acceleration, px/s^2
	JumpStrength     float64 `yaml:"jump_strength"`     // Initial jump velocity, negative = upward, px/s
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Max fall speed, px/s
	MoveSpeed        float64 `yaml:"move_speed"`        // Horizontal walk speed, px/s
}

// JumpApexHeight returns the maximum height of the jump arc in pixels,
// derived from the kinematics constants: v^2 / (2g).
func (p PhysicsConfig) JumpApexHeight() float64 {
	if p.Gravity <= 0 {
		return 0
	}
	return p.JumpStrength * p.JumpStrength / (2 * p.Gravity)
}

// MaxObstacleHeight returns the tallest obstacle the fixed jump arc can
// clear, with a 20% safety margin.
func (p PhysicsConfig) MaxObstacleHeight() float64 {
	return 0.8 * p.JumpApexHeight()
}

// WorldConfig defines the static level geometry.
type WorldConfig struct {
	GroundY         float64 `yaml:"ground_y"`         // Y of the ground plane
	PlatformWidth   float64 `yaml:"platform_width"`   // Horizontal extent of a level
	StartX          float64 `yaml:"start_x"`          // Character spawn x
	DoorClearance   float64 `yaml:"door_clearance"`   // Min gap between last obstacle and door
	CharacterWidth  float64 `yaml:"character_width"`  // Character collision width
	CharacterHeight float64 `yaml:"character_height"` // Character collision height
	DoorWidth       float64 `yaml:"door_width"`       // Exit door width
	DoorHeight      float64 `yaml:"door_height"`      // Exit door height
	PrizeSize       float64 `yaml:"prize_size"`       // Chalice square size
	TransitionDelay float64 `yaml:"transition_delay"` // Seconds between door confirm and next level
	FallWindow      float64 `yaml:"fall_window"`      // Seconds of sinking before the run is lost
}

// LobbyConfig defines the tier-0 lobby, where physics is off and the
// countdown runs.
type LobbyConfig struct {
	Countdown float64 `yaml:"countdown"` // Seconds before the timeout cinematic starts
	Width     float64 `yaml:"width"`     // Lobby horizontal extent
	ExitX     float64 `yaml:"exit_x"`    // X of the lobby exit door
}

// TierConfig defines the generation parameters for one difficulty tier.
// The static table must be monotonic: counts non-decreasing, spacing
// non-increasing, size upper bounds non-decreasing across tiers.
type TierConfig struct {
	ObstacleCount int     `yaml:"obstacle_count"`
	MinSpacing    float64 `yaml:"min_spacing"`
	MinWidth      float64 `yaml:"min_width"`
	MaxWidth      float64 `yaml:"max_width"`
	MinHeight     float64 `yaml:"min_height"`
	MaxHeight     float64 `yaml:"max_height"`
}

// MaxTier returns the highest tier index (tiers are 1-based; tier 0 is
// the lobby).
func (c PlatformerConfig) MaxTier() int {
	return len(c.Tiers)
}

// Tier returns the generation parameters for the given tier, clamping
// out-of-range indices into [1, MaxTier].
func (c PlatformerConfig) Tier(tier int) TierConfig {
	if len(c.Tiers) == 0 {
		return TierConfig{}
	}
	if tier < 1 {
		tier = 1
	}
	if tier > len(c.Tiers) {
		tier = len(c.Tiers)
	}
	return c.Tiers[tier-1]
}

// Validate re-establishes the invariants the game depends on, repairing
// user-supplied configs in place rather than refusing to play. Physics
// constants fall back to defaults when non-sensible, obstacle heights are
// capped by the jump arc, and the tier table is forced monotonic.
func (c *PlatformerConfig) Validate() {
	def := DefaultPlatformerConfig()

	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = def.Physics.Gravity
	}
	if c.Physics.JumpStrength >= 0 {
		c.Physics.JumpStrength = def.Physics.JumpStrength
	}
	if c.Physics.TerminalVelocity <= 0 {
		c.Physics.TerminalVelocity = def.Physics.TerminalVelocity
	}
	if c.Physics.MoveSpeed <= 0 {
		c.Physics.MoveSpeed = def.Physics.MoveSpeed
	}
	if c.World.GroundY <= 0 {
		c.World.GroundY = def.World.GroundY
	}
	if c.World.PlatformWidth <= 0 {
		c.World.PlatformWidth = def.World.PlatformWidth
	}
	if c.World.CharacterWidth <= 0 {
		c.World.CharacterWidth = def.World.CharacterWidth
	}
	if c.World.CharacterHeight <= 0 {
		c.World.CharacterHeight = def.World.CharacterHeight
	}
	if c.World.DoorWidth <= 0 {
		c.World.DoorWidth = def.World.DoorWidth
	}
	if c.World.DoorHeight <= 0 {
		c.World.DoorHeight = def.World.DoorHeight
	}
	if c.World.PrizeSize <= 0 {
		c.World.PrizeSize = def.World.PrizeSize
	}
	if c.World.DoorClearance <= 0 {
		c.World.DoorClearance = def.World.DoorClearance
	}
	if c.World.TransitionDelay <= 0 {
		c.World.TransitionDelay = def.World.TransitionDelay
	}
	if c.World.FallWindow <= 0 {
		c.World.FallWindow = def.World.FallWindow
	}
	if c.Lobby.Countdown <= 0 {
		c.Lobby.Countdown = def.Lobby.Countdown
	}
	if c.Lobby.Width <= 0 {
		c.Lobby.Width = def.Lobby.Width
	}
	if c.Lobby.ExitX <= 0 || c.Lobby.ExitX > c.Lobby.Width {
		c.Lobby.ExitX = def.Lobby.ExitX
	}

	if len(c.Tiers) == 0 {
		c.Tiers = def.Tiers
	}

	maxH := c.Physics.MaxObstacleHeight()
	for i := range c.Tiers {
		t := &c.Tiers[i]
		if t.ObstacleCount < 0 {
			t.ObstacleCount = 0
		}
		if t.MinWidth <= 0 {
			t.MinWidth = def.Tiers[0].MinWidth
		}
		if t.MaxWidth < t.MinWidth {
			t.MaxWidth = t.MinWidth
		}
		if t.MinHeight <= 0 {
			t.MinHeight = def.Tiers[0].MinHeight
		}
		// Heights above the jump arc would make the level unwinnable.
		if t.MinHeight > maxH {
			t.MinHeight = maxH
		}
		if t.MaxHeight < t.MinHeight {
			t.MaxHeight = t.MinHeight
		}
		if t.MaxHeight > maxH {
			t.MaxHeight = maxH
		}
		if t.MinSpacing < 0 {
			t.MinSpacing = 0
		}

		// Force monotonic difficulty across tiers.
		if i > 0 {
			prev := c.Tiers[i-1]
			if t.ObstacleCount < prev.ObstacleCount {
				t.ObstacleCount = prev.ObstacleCount
			}
			if t.MinSpacing > prev.MinSpacing {
				t.MinSpacing = prev.MinSpacing
			}
			if t.MaxWidth < prev.MaxWidth {
				t.MaxWidth = prev.MaxWidth
			}
			if t.MaxHeight < prev.MaxHeight {
				t.MaxHeight = prev.MaxHeight
			}
		}
	}
}
