package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jtfleetwood/Pong/internal/config"
	"github.com/jtfleetwood/Pong/internal/core"
	"github.com/jtfleetwood/Pong/internal/games/pong"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	PaddleChar   = '█'
	ObstacleChar = '▓'
)

// HUDRows is the number of terminal rows above the playfield.
// HelpRows is the number below it.
const (
	HUDRows  = 1
	HelpRows = 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// WorldSize converts a terminal size in cells to the simulated world in pixels.
// The playfield excludes the HUD and help rows.
func WorldSize(cols, rows int, term config.TerminalConfig) core.RuntimeConfig {
	playRows := core.Max(rows-HUDRows-HelpRows, 1)
	return core.RuntimeConfig{
		ScreenW: core.Max(cols, 1) * term.CellWidth,
		ScreenH: playRows * term.CellHeight,
	}
}

// DrawOptions controls optional parts of the frame.
type DrawOptions struct {
	Debug     bool // Show the measured frame rate
	Suspended bool // The frame loop is paused
	HighScore int  // All-time best shown in the HUD
}

// DrawSnapshot draws a frame into dst. The world is scaled to whatever size
// dst has, so a terminal resize never disturbs the simulation.
func DrawSnapshot(dst *core.Screen, snap pong.Snapshot, opts DrawOptions) {
	dst.Clear()

	drawHUD(dst, snap, opts)

	field := core.NewRect(0, HUDRows, dst.Width(), dst.Height()-HUDRows)
	if field.W <= 0 || field.H <= 0 || snap.ScreenW <= 0 || snap.ScreenH <= 0 {
		return
	}
	sx := float64(field.W) / float64(snap.ScreenW)
	sy := float64(field.H) / float64(snap.ScreenH)

	for _, o := range snap.Obstacles {
		dst.DrawRect(toCells(o, field, sx, sy), ObstacleChar, core.ColorYellow)
	}
	dst.DrawRect(toCells(snap.Paddle, field, sx, sy), PaddleChar, core.ColorCyan)
	ball := toCells(snap.Ball, field, sx, sy)
	dst.SetColored(ball.X, ball.Y, BallChar, core.ColorBrightWhite)

	switch {
	case opts.Suspended:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.Phase == pong.PhaseIdle && snap.LastScore > 0:
		drawCenteredMessage(dst, fmt.Sprintf("GAME OVER - %d", snap.LastScore), "Move or click to play again")
	case snap.Phase == pong.PhaseIdle:
		drawCenteredMessage(dst, "PONG", "Move or click to start")
	}
}

func drawHUD(dst *core.Screen, snap pong.Snapshot, opts DrawOptions) {
	best := core.Max(snap.Best, opts.HighScore)
	hud := fmt.Sprintf("Score: %d   Lives: %d   Best: %d", snap.Score, snap.Lives, best)
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	if opts.Debug {
		fps := fmt.Sprintf("FPS: %.0f", snap.FPS)
		dst.DrawTextColored(dst.Width()-len(fps)-1, 0, fps, core.ColorGray)
	}
}

// toCells maps a world rectangle into the field, covering every cell it touches.
// Anything visible takes at least one cell.
func toCells(r core.RectF, field core.Rect, sx, sy float64) core.Rect {
	x0 := int(math.Floor(r.Left * sx))
	y0 := int(math.Floor(r.Top * sy))
	x1 := core.Max(int(math.Ceil(r.Right*sx)), x0+1)
	y1 := core.Max(int(math.Ceil(r.Bottom*sy)), y0+1)

	// Keep the rectangle inside the field
	x0 = core.Clamp(x0, 0, field.W-1)
	y0 = core.Clamp(y0, 0, field.H-1)
	x1 = core.Clamp(x1, x0+1, field.W)
	y1 = core.Clamp(y1, y0+1, field.H)

	return core.NewRect(field.X+x0, field.Y+y0, x1-x0, y1-y0)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
