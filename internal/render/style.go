// internal/render/style.go
package render

import (
	"fmt"
	"strings"
)

// ANSI control sequence introducer.
const csi = "\x1b["

// EraseLine clears from the cursor to the end of the line, extending a
// background color across the full terminal width.
const EraseLine = csi + "K"

// sgr builds a Select Graphic Rendition sequence from the given codes.
func sgr(codes ...int) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return csi + strings.Join(parts, ";") + "m"
}

// xterm-256 palette addressing: fg/bg introducers followed by a palette
// index.
const (
	fg256 = 38
	bg256 = 48
	ext   = 5
)

// rgb6 indexes the 6x6x6 color cube region of the 256-color palette.
func rgb6(r, g, b int) int {
	return ((r*6)+g)*6 + b + 16
}

// gray26 indexes a 26-step ramp: black, the 24 grayscale entries, white.
func gray26(n int) int {
	switch n {
	case 0:
		return 16 // black
	case 25:
		return 231 // white
	}
	return 231 + n
}

// Reset returns the terminal to its default rendition.
var Reset = sgr()

var (
	styleFile    = sgr(bg256, ext, rgb6(1, 0, 1))
	styleMode    = sgr(bg256, ext, rgb6(0, 3, 4))
	styleHunk    = sgr(bg256, ext, rgb6(0, 1, 2))
	styleRem     = sgr(fg256, ext, rgb6(5, 0, 0))
	styleAdd     = sgr(fg256, ext, rgb6(0, 5, 0))
	styleRemWS   = sgr(bg256, ext, rgb6(1, 0, 0))
	styleAddWS   = sgr(bg256, ext, rgb6(0, 1, 0))
	styleRemMove = sgr(fg256, ext, rgb6(2, 0, 0))
	styleAddMove = sgr(fg256, ext, rgb6(0, 2, 0))
	styleSnippet = sgr(fg256, ext, gray26(17), bg256, ext, gray26(4))
	styleDropped = sgr(fg256, ext, gray26(10))

	// Token emphasis: the side's foreground over its whitespace tint.
	// Whole-line whitespace styling stays distinct because it covers the
	// entire line (plus erase-to-EOL when empty), never a token span.
	styleRemEmph = sgr(fg256, ext, rgb6(5, 0, 0), bg256, ext, rgb6(1, 0, 0))
	styleAddEmph = sgr(fg256, ext, rgb6(0, 5, 0), bg256, ext, rgb6(0, 1, 0))
)
