package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/game"
)

// colorStyles holds one lipgloss style per palette entry.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Colors() {
		st := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[c] = st
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
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

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Viewport maps world units onto the playfield cells below the HUD.
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

// NewViewport fits the world into a screen, leaving room for the HUD.
func NewViewport(s *core.Screen, worldW, worldH float64) Viewport {
	return Viewport{
		Cols:   s.Width(),
		Rows:   core.Max(s.Height()-hudRows, 1),
		WorldW: worldW,
		WorldH: worldH,
	}
}

// Cells converts a world rectangle to a cell rectangle. Anything visible
// covers at least one cell.
func (v Viewport) Cells(x, y, w, h float64) (cx, cy, cw, ch int) {
	sx := float64(v.Cols) / v.WorldW
	sy := float64(v.Rows) / v.WorldH
	x0 := int(math.Floor(x * sx))
	y0 := int(math.Floor(y * sy))
	x1 := int(math.Ceil((x + w) * sx))
	y1 := int(math.Ceil((y + h) * sy))
	return x0, y0 + hudRows, core.Max(x1-x0, 1), core.Max(y1-y0, 1)
}

// Renderer draws session frames into a screen buffer.
type Renderer struct {
	assets Assets
	stars  []core.Vec
}

// NewRenderer creates a renderer with a fixed star backdrop.
func NewRenderer(assets Assets) *Renderer {
	r := &Renderer{assets: assets}
	// Stars sit on a fixed lattice, independent of the session's rng.
	for i := range 40 {
		r.stars = append(r.stars, core.Vec{
			X: math.Mod(float64(i)*97.3, 1),
			Y: math.Mod(float64(i)*61.7, 1),
		})
	}
	return r
}

// Draw renders the playfield, HUD and phase overlay.
func (r *Renderer) Draw(s *core.Screen, f game.Frame) {
	s.Clear()
	v := NewViewport(s, f.Width, f.Height)

	for _, st := range r.stars {
		s.SetColored(int(st.X*float64(v.Cols)), hudRows+int(st.Y*float64(v.Rows)), r.assets.Star.Rune, r.assets.Star.Color)
	}
	for _, sp := range f.Sprites {
		g := r.assets.For(sp, f.ExplosionFrames)
		x, y, w, h := v.Cells(sp.X, sp.Y, sp.W, sp.H)
		fill(s, x, y, w, h, g)
	}
	if f.PlayerVisible {
		x, y, w, h := v.Cells(f.Player.X, f.Player.Y, f.Player.W, f.Player.H)
		fill(s, x, y, w, h, r.assets.Player)
		s.SetColored(x+w/2, y, r.assets.PlayerNose.Rune, r.assets.PlayerNose.Color)
	}

	drawHUD(s, f.HUD)

	switch f.Phase {
	case game.PhaseHighScoreEntry:
		drawNameEntry(s, f)
	case game.PhaseGameOver:
		drawGameOver(s, f)
	}
}

func fill(s *core.Screen, x0, y0, w, h int, g Glyph) {
	for y := y0; y < y0+h; y++ {
		if y < hudRows {
			continue
		}
		for x := x0; x < x0+w; x++ {
			s.SetColored(x, y, g.Rune, g.Color)
		}
	}
}

// healthBar renders health as a fixed-width bar.
func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 || width <= 0 {
		return ""
	}
	filled := core.Clamp(health*width/maxHealth, 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func drawHUD(s *core.Screen, h game.HUD) {
	for x := range s.Width() {
		s.Set(x, 0, ' ')
	}
	score := fmt.Sprintf("SCORE %d", h.Score)
	s.DrawTextColored(1, 0, score, core.ColorBrightWhite)

	x := 2 + len(score) + 2
	s.DrawTextColored(x, 0, strings.Repeat("♥", core.Max(h.Lives, 0)), core.ColorBrightRed)
	x += core.Max(h.Lives, 0) + 2

	barColor := core.ColorBrightGreen
	switch {
	case h.Health*4 <= h.MaxHealth:
		barColor = core.ColorBrightRed
	case h.Health*2 <= h.MaxHealth:
		barColor = core.ColorYellow
	}
	bar := healthBar(h.Health, h.MaxHealth, 10)
	s.DrawTextColored(x, 0, bar, barColor)
	x += 10 + 1
	s.DrawTextColored(x, 0, fmt.Sprintf("%3d", h.Health), core.ColorWhite)
	x += 3 + 2

	gun := strings.Repeat("▮", h.WeaponLevel) + strings.Repeat("▯", core.Max(h.MaxWeaponLevel-h.WeaponLevel, 0))
	s.DrawTextColored(x, 0, "GUN "+gun, core.ColorBrightMagenta)
}

// promptText returns the headline for name entry.
func promptText(f game.Frame) string {
	switch f.Prompt {
	case game.PromptEasterEgg:
		return fmt.Sprintf("%d! The answer to everything.", f.HUD.Score)
	case game.PromptNewRecord:
		return "NEW HIGH SCORE!"
	case game.PromptTiedRecord:
		if !f.HasHighScore {
			return "GAME OVER"
		}
		return "You tied the high score!"
	default:
		if f.HasHighScore {
			return fmt.Sprintf("High score: %s %d", f.HighScore.Name, f.HighScore.Score)
		}
		return "GAME OVER"
	}
}

func drawNameEntry(s *core.Screen, f game.Frame) {
	w := core.Min(s.Width()-2, 40)
	h := 7
	x0 := (s.Width() - w) / 2
	y0 := core.Max((s.Height()-h)/2, hudRows)
	clearBox(s, x0, y0, w, h)
	s.DrawBox(x0, y0, w, h, core.ColorBrightCyan)

	s.DrawTextCentered(y0+1, promptText(f), core.ColorBrightYellow)
	s.DrawTextCentered(y0+2, fmt.Sprintf("Score: %d", f.HUD.Score), core.ColorWhite)
	s.DrawTextCentered(y0+3, "Enter your name:", core.ColorGray)

	field := f.Name + "_" + strings.Repeat(" ", core.Max(f.NameMax-len([]rune(f.Name)), 0))
	s.DrawTextCentered(y0+4, "["+field+"]", core.ColorBrightWhite)
	s.DrawTextCentered(y0+5, "enter: save   esc: skip", core.ColorGray)
}

func drawGameOver(s *core.Screen, f game.Frame) {
	w := core.Min(s.Width()-2, 32)
	h := 5
	x0 := (s.Width() - w) / 2
	y0 := core.Max((s.Height()-h)/2, hudRows)
	clearBox(s, x0, y0, w, h)
	s.DrawBox(x0, y0, w, h, core.ColorBrightRed)

	s.DrawTextCentered(y0+1, "GAME OVER", core.ColorBrightRed)
	s.DrawTextCentered(y0+2, fmt.Sprintf("Final score: %d", f.HUD.Score), core.ColorWhite)
	if f.CanRestart {
		s.DrawTextCentered(y0+3, "Press any key to play again", core.ColorGray)
	}
}

func clearBox(s *core.Screen, x0, y0, w, h int) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			s.Set(x, y, ' ')
		}
	}
}
