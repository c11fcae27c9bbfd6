package core

import "strconv"

// Color is the foreground color of a screen cell.
type Color uint8

// Palette used by the playfield and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

var ansiCodes = [colorCount]int{
	ColorDefault:       -1,
	ColorRed:           1,
	ColorYellow:        3,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
}

// Colors returns every palette entry.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= colorCount || ansiCodes[c] < 0 {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
