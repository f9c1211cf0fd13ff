package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hardcoded default configuration.
// Used as the last-resort fallback if the embedded YAML cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:          800,
			JumpStrength:     -400,
			TerminalVelocity: 600,
			MoveSpeed:        220,
		},
		World: WorldConfig{
			GroundY:         400,
			PlatformWidth:   3000,
			StartX:          60,
			DoorClearance:   100,
			CharacterWidth:  40,
			CharacterHeight: 40,
			DoorWidth:       50,
			DoorHeight:      80,
			PrizeSize:       30,
			TransitionDelay: 0.8,
			FallWindow:      2.0,
		},
		Lobby: LobbyConfig{
			Countdown: 15,
			Width:     800,
			ExitX:     700,
		},
		Tiers: []TierConfig{
			{ObstacleCount: 2, MinSpacing: 200, MinWidth: 30, MaxWidth: 50, MinHeight: 30, MaxHeight: 50},
			{ObstacleCount: 3, MinSpacing: 180, MinWidth: 35, MaxWidth: 55, MinHeight: 35, MaxHeight: 55},
			{ObstacleCount: 4, MinSpacing: 160, MinWidth: 40, MaxWidth: 60, MinHeight: 40, MaxHeight: 60},
			{ObstacleCount: 5, MinSpacing: 140, MinWidth: 45, MaxWidth: 65, MinHeight: 45, MaxHeight: 65},
			{ObstacleCount: 6, MinSpacing: 120, MinWidth: 50, MaxWidth: 70, MinHeight: 50, MaxHeight: 70},
			{ObstacleCount: 7, MinSpacing: 100, MinWidth: 55, MaxWidth: 80, MinHeight: 55, MaxHeight: 75},
		},
	}
}
