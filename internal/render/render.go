// internal/render/render.go

// Package render turns annotated diff lines back into terminal text:
// per-kind coloring, moved and whitespace-only sub-styles, token-level
// emphasis, and the dropped-line accommodation for interactive callers.
package render

import (
	"io"
	"strings"

	"difftint/internal/diff"
)

// Renderer emits the styled form of processed blocks. Interactive keeps
// one output line per input line (git's interactive mode slices the
// rendered diff by absolute line offsets); Syntax, when non-nil,
// highlights context-line bodies.
type Renderer struct {
	Interactive bool
	Syntax      *Highlighter
}

// Block writes the rendered form of a processed block to w. The caller
// is responsible for routing skip blocks to Raw instead.
func (r *Renderer) Block(w io.Writer, b *diff.Block) error {
	for _, ln := range b.Lines {
		text, emit := r.line(ln, b)
		if !emit {
			continue
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Raw writes each line's original text untouched, used for blocks that
// are not real file diffs (merge graphs, commit prologue).
func (r *Renderer) Raw(w io.Writer, lines []*diff.Line) error {
	for _, ln := range lines {
		if _, err := io.WriteString(w, ln.Raw+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) line(ln *diff.Line, b *diff.Block) (string, bool) {
	switch ln.Kind {
	case diff.KindContext:
		if r.Syntax != nil {
			return r.Syntax.Line(ln.Body, b.Path), true
		}
		return ln.Body, true
	case diff.KindRemoved:
		return changedLine(ln, b.OldMoved(ln.OldNum), styleRem, styleRemWS, styleRemMove, styleRemEmph), true
	case diff.KindAdded:
		return changedLine(ln, b.NewMoved(ln.NewNum), styleAdd, styleAddWS, styleAddMove, styleAddEmph), true
	case diff.KindHunk:
		var sb strings.Builder
		sb.WriteString(styleHunk)
		sb.WriteString(b.Path)
		sb.WriteString(":")
		sb.WriteString(ln.NewStartRaw)
		sb.WriteString(":")
		if ln.Snippet != "" {
			sb.WriteString(Reset)
			sb.WriteString(" ")
			sb.WriteString(styleSnippet)
			sb.WriteString(ln.Snippet)
		}
		sb.WriteString(Reset)
		return sb.String(), true
	case diff.KindFileHeader:
		msg := ln.NewPath
		if ln.OldPath != ln.NewPath {
			msg = ln.OldPath + " -> " + ln.NewPath
		}
		return styleFile + msg + EraseLine + Reset, true
	case diff.KindMeta:
		return styleMode + b.Path + ":" + Reset + " " + ln.Raw, true
	case diff.KindIndex, diff.KindOldPath, diff.KindNewPath:
		// Dropped by default; interactive callers need the line slot.
		if r.Interactive {
			return styleDropped + ln.Plain + Reset, true
		}
		return "", false
	default:
		// empty, commit, author, date, other: pass through untouched.
		return ln.Raw, true
	}
}

// changedLine renders one removed or added line. Whitespace-only bodies
// take the background tint (with erase-to-EOL when empty, so the tint is
// visible at all), moved lines take the dimmer moved foreground, and
// token-diffed lines interleave plain and emphasized spans.
func changedLine(ln *diff.Line, moved bool, plain, ws, move, emph string) string {
	body := ln.Body
	switch {
	case body == "":
		return ws + EraseLine + Reset
	case strings.TrimSpace(body) == "":
		return ws + body + Reset
	case moved:
		return move + body + Reset
	case ln.Spans != nil:
		var sb strings.Builder
		for _, span := range ln.Spans {
			if span.Changed {
				sb.WriteString(emph)
			} else {
				sb.WriteString(plain)
			}
			sb.WriteString(span.Text)
		}
		sb.WriteString(Reset)
		return sb.String()
	}
	return plain + body + Reset
}
