package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/float-runner/internal/core"
	"github.com/vovakirdan/float-runner/internal/runner"
)

// Glyphs used by the terminal renderer.
const (
	glyphPlayer   = '█'
	glyphObstacle = '▓'
	glyphCloud    = '░'
	glyphGround   = '▀'
	glyphSoil     = '▒'
	glyphSpark    = '*'
	glyphEmber    = '·'
)

// coinFrames animates a spinning coin, one frame per quarter turn.
var coinFrames = []rune{'O', '0', 'o', '0'}

// colorStyles caches one lipgloss style per core.Color.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorCoral; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

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

// ScreenRenderer draws scenes into a terminal cell buffer, scaling canvas
// pixels to cells.
type ScreenRenderer struct {
	screen *core.Screen
	sx, sy float64
}

// NewScreenRenderer creates a renderer that draws into screen.
func NewScreenRenderer(screen *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Screen returns the target buffer.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Draw renders one frame.
func (r *ScreenRenderer) Draw(sc runner.Scene) {
	s := r.screen
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 || sc.CanvasW <= 0 || sc.CanvasH <= 0 {
		return
	}
	r.sx = float64(s.Width()) / sc.CanvasW
	r.sy = float64(s.Height()) / sc.CanvasH

	for _, c := range sc.Clouds {
		x, y, w, h := r.cells(core.NewRect(c.X, c.Y, c.W, c.H))
		s.FillArea(x, y, w, h, glyphCloud, core.ColorSky)
	}

	groundRow := int(math.Floor(sc.GroundY * r.sy))
	s.DrawHLine(0, groundRow, s.Width(), glyphGround, core.ColorGrass)
	s.FillArea(0, groundRow+1, s.Width(), s.Height()-groundRow-1, glyphSoil, core.ColorBrown)

	for _, o := range sc.Obstacles {
		x, y, w, h := r.cells(o.Rect())
		s.FillArea(x, y, w, h, glyphObstacle, o.Color)
	}

	for _, c := range sc.Coins {
		x, y, w, h := r.cells(c.Rect())
		s.FillArea(x, y, w, h, coinGlyph(c.Rotation), core.ColorGold)
	}

	canvas := core.NewRect(0, 0, sc.CanvasW, sc.CanvasH)
	for _, p := range sc.Particles {
		if !canvas.Contains(p.X, p.Y) {
			continue
		}
		glyph := glyphEmber
		if p.Alpha() > 0.5 {
			glyph = glyphSpark
		}
		s.SetColor(int(p.X*r.sx), int(p.Y*r.sy), glyph, p.Color)
	}

	x, y, w, h := r.cells(sc.PlayerRect())
	s.FillArea(x, y, w, h, glyphPlayer, core.ColorCoral)

	r.drawHUD(sc.View)
	r.drawOverlay(sc.View)
}

// cells maps a canvas rectangle to a cell rectangle at least one cell in size.
func (r *ScreenRenderer) cells(rect core.Rect) (x, y, w, h int) {
	x = int(math.Floor(rect.X * r.sx))
	y = int(math.Floor(rect.Y * r.sy))
	w = max(int(math.Ceil(rect.Right()*r.sx))-x, 1)
	h = max(int(math.Ceil(rect.Bottom()*r.sy))-y, 1)
	return x, y, w, h
}

func (r *ScreenRenderer) drawHUD(v runner.ViewState) {
	if v.ShowMenu {
		return
	}
	r.screen.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", v.Score), core.ColorBrightWhite)
	best := fmt.Sprintf("Best: %d  [%s]", v.Best, v.Difficulty)
	r.screen.DrawTextColor(r.screen.Width()-len([]rune(best))-1, 0, best, core.ColorYellow)
}

func (r *ScreenRenderer) drawOverlay(v runner.ViewState) {
	switch {
	case v.ShowMenu:
		r.drawPanel(
			"F L O A T   R U N N E R",
			"",
			fmt.Sprintf("Difficulty: %s   Best: %d", strings.ToUpper(v.Difficulty), v.Best),
			"",
			"1/2/3  select difficulty",
			"Enter  start    Tab  scores",
			"Space/Up  float    Q  quit",
		)
	case v.ShowPauseOverlay:
		r.drawPanel(
			"PAUSED",
			"",
			"P  resume    R  restart",
		)
	case v.ShowGameOver:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", v.Score),
			fmt.Sprintf("Best:  %d", v.Best),
		}
		if v.NewBest {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "", "Enter  play again    1/2/3  difficulty")
		r.drawPanel(lines...)
	}
}

// drawPanel draws a boxed block of centred lines in the middle of the screen.
func (r *ScreenRenderer) drawPanel(lines ...string) {
	s := r.screen
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w := core.Clamp(width+4, 1, s.Width())
	h := core.Clamp(len(lines)+2, 1, s.Height())
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillArea(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h)
	for i, l := range lines {
		n := len([]rune(l))
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightWhite
		}
		s.DrawTextColor(x+(w-n)/2, y+1+i, l, color)
	}
}

func coinGlyph(rotation float64) rune {
	frame := int(math.Floor(rotation/(math.Pi/2))) % len(coinFrames)
	if frame < 0 {
		frame += len(coinFrames)
	}
	return coinFrames[frame]
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
