package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// World-to-cell projection. Terminal cells are roughly twice as tall as
// wide, so the vertical scale is doubled to keep shapes square-ish.
const (
	cellPxX = 10.0
	cellPxY = 20.0

	hudRows = 2 // Reserved at the top for tier, clock, and countdown
)

// DrawWorld projects a simulation snapshot onto the screen buffer.
// The camera keeps the character centered, clamped to the level bounds.
func DrawWorld(s *core.Screen, snap game.Snapshot) {
	s.Clear()

	viewPxW := float64(s.Width()) * cellPxX
	camX := snap.CameraX(viewPxW)

	cinematic := snap.Status == game.StatusTimeoutAnimating || snap.Status == game.StatusTimeoutGameOver
	if cinematic {
		camX -= snap.Cinematic.Shake
	}

	drawGround(s, snap, camX)
	for _, o := range snap.Obstacles {
		drawObstacle(s, o, camX)
	}
	if snap.Door != nil {
		drawDoor(s, *snap.Door, camX)
	}
	if snap.Prize != nil && !snap.Prize.Collected {
		drawPrize(s, *snap.Prize, camX)
	}
	if cinematic {
		drawAntagonist(s, snap, camX)
	}
	drawCharacter(s, snap, camX, cinematic)

	drawHUD(s, snap)
	drawOverlay(s, snap)
}

// cellX converts a world x coordinate to a screen column.
func cellX(wx, camX float64) int {
	return int(math.Floor((wx - camX) / cellPxX))
}

// cellY converts a world y coordinate to a screen row.
func cellY(wy float64) int {
	return int(math.Floor(wy / cellPxY))
}

// drawGround fills the ground band below the platform surface. During the
// split stage a widening gap opens beneath the character.
func drawGround(s *core.Screen, snap game.Snapshot, camX float64) {
	top := cellY(snap.GroundY)
	left := cellX(0, camX)
	right := cellX(snap.LevelWidth, camX)
	if left < 0 {
		left = 0
	}
	if right > s.Width() {
		right = s.Width()
	}

	gapLeft, gapRight := -1, -1
	if snap.Cinematic.Split > 0 {
		center := snap.Character.X + snap.Character.W/2
		gapLeft = cellX(center-snap.Cinematic.Split/2, camX)
		gapRight = cellX(center+snap.Cinematic.Split/2, camX)
	}

	for x := left; x < right; x++ {
		if x >= gapLeft && x <= gapRight {
			continue
		}
		s.SetColor(x, top, '▀', core.ColorGreen)
		for y := top + 1; y < s.Height(); y++ {
			s.SetColor(x, y, '░', core.ColorGray)
		}
	}
}

// obstacleLook returns the fill rune and color for an obstacle kind.
func obstacleLook(kind game.ObstacleKind) (rune, core.Color) {
	switch kind {
	case game.KindCrate:
		return '▤', core.ColorYellow
	case game.KindRock:
		return '▓', core.ColorGray
	default:
		return '♣', core.ColorGreen
	}
}

func drawObstacle(s *core.Screen, o game.ObstacleView, camX float64) {
	r, c := obstacleLook(o.Kind)
	fillWorldRect(s, o.X, o.Y, o.W, o.H, camX, r, c)
}

func drawDoor(s *core.Screen, d game.DoorView, camX float64) {
	color := core.ColorCyan
	if !d.Active {
		color = core.ColorGray
	}
	fillWorldRect(s, d.X, d.Y, d.W, d.H, camX, '▐', color)

	// Knob on the facing side
	knobY := cellY(d.Y + d.H*0.55)
	s.SetColor(cellX(d.X, camX), knobY, '•', core.ColorBrightYellow)
}

func drawPrize(s *core.Screen, p game.PrizeView, camX float64) {
	x := cellX(p.X+p.Size/2, camX)
	y := cellY(p.Y + p.Size/2)
	s.SetColor(x, y-1, '♦', core.ColorBrightYellow)
	s.SetColor(x, y, 'U', core.ColorBrightYellow)
}

// drawCharacter renders the player block. During the cinematic the sink
// offset pushes it below the ground line.
func drawCharacter(s *core.Screen, snap game.Snapshot, camX float64, cinematic bool) {
	ch := snap.Character
	y := ch.Y
	if cinematic {
		y += snap.Cinematic.Sink
	}

	color := core.ColorBrightWhite
	if snap.Falling {
		color = core.ColorOrange
	}
	fillWorldRect(s, ch.X, y, ch.W, ch.H, camX, '█', color)

	// Eyes hint which way the character faces
	eyeRow := cellY(y + ch.H*0.25)
	eyeCol := cellX(ch.X+ch.W*0.7, camX)
	if ch.Facing < 0 {
		eyeCol = cellX(ch.X+ch.W*0.3, camX)
	}
	s.SetColor(eyeCol, eyeRow, '▪', core.ColorBlue)
}

// drawAntagonist renders the approaching figure of the timeout cinematic.
// It closes from the left edge of the view toward the character.
func drawAntagonist(s *core.Screen, snap game.Snapshot, camX float64) {
	ch := snap.Character
	startX := camX
	targetX := ch.X - ch.W*2
	wx := startX + (targetX-startX)*snap.Cinematic.Approach

	fillWorldRect(s, wx, snap.GroundY-ch.H*1.5, ch.W, ch.H*1.5, camX, '▒', core.ColorRed)
}

// fillWorldRect fills a world-space rectangle on screen, clipping to the
// HUD boundary so gameplay never overwrites the status rows.
func fillWorldRect(s *core.Screen, wx, wy, ww, wh, camX float64, r rune, c core.Color) {
	x0 := cellX(wx, camX)
	x1 := cellX(wx+ww, camX)
	y0 := cellY(wy)
	y1 := cellY(wy + wh)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		if y < hudRows {
			continue
		}
		for x := x0; x < x1; x++ {
			s.SetColor(x, y, r, c)
		}
	}
}

// drawHUD renders the top status rows.
func drawHUD(s *core.Screen, snap game.Snapshot) {
	if snap.Tier == 0 {
		s.DrawTextColor(1, 0, "LOBBY", core.ColorBrightCyan)
	} else {
		s.DrawTextColor(1, 0, fmt.Sprintf("TIER %d/%d", snap.Tier, snap.MaxTier), core.ColorBrightCyan)
	}
	s.DrawTextColor(1, 1, fmt.Sprintf("TIME %.1fs", snap.Elapsed), core.ColorGray)

	if snap.CountdownActive {
		color := core.ColorBrightYellow
		if snap.CountdownRemaining < 5 {
			color = core.ColorRed
		}
		text := fmt.Sprintf("ESCAPE IN %4.1fs", snap.CountdownRemaining)
		s.DrawTextColor(s.Width()-len(text)-1, 0, text, color)
	}

	if snap.Tier == 0 && snap.Status == game.StatusPlaying {
		s.DrawTextColor(1, s.Height()-1, "←/→ or a/d move  reach the door before time runs out", core.ColorGray)
	} else if snap.Status == game.StatusPlaying && !snap.Falling {
		s.DrawTextColor(1, s.Height()-1, "space jump  enter use door", core.ColorGray)
	}
}

// drawOverlay renders centered status banners.
func drawOverlay(s *core.Screen, snap game.Snapshot) {
	mid := s.Height() / 2

	switch snap.Status {
	case game.StatusTransitioning:
		s.DrawTextCentered(mid, fmt.Sprintf("ENTERING TIER %d...", snap.Tier+1))

	case game.StatusWon:
		s.DrawTextCentered(mid-1, "YOU CLAIMED THE CHALICE!")
		s.DrawTextCentered(mid+1, "r play again  q quit")

	case game.StatusLost:
		s.DrawTextCentered(mid-1, "YOU FELL OFF THE PLATFORM")
		s.DrawTextCentered(mid+1, "r try again  q quit")

	case game.StatusTimeoutGameOver:
		s.DrawTextCentered(mid-1, "TIME RAN OUT")
		s.DrawTextCentered(mid+1, "r try again  q quit")
	}
}
