// internal/render/syntax.go
package render

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter applies chroma syntax highlighting to context-line bodies,
// choosing the lexer from the block's display path. Lexer lookup is
// cached per path since a block's lines all share one file.
type Highlighter struct {
	path  string
	lexer chroma.Lexer
}

// NewHighlighter returns a ready Highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

// Line returns the highlighted form of one line's text, or the text
// unchanged if no lexer matches the path or tokenizing fails.
func (h *Highlighter) Line(text, path string) string {
	if text == "" || path == "" {
		return text
	}
	lexer := h.lexerFor(path)
	if lexer == nil {
		return text
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	// Use monokai - readable on dark terminals, tolerable on light ones.
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	var sb strings.Builder
	if err := formatter.Format(&sb, style, iterator); err != nil {
		return text
	}
	// chroma appends a trailing newline; the renderer owns line endings.
	return strings.TrimSuffix(sb.String(), "\n")
}

func (h *Highlighter) lexerFor(path string) chroma.Lexer {
	if path == h.path {
		return h.lexer
	}
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Match(filepath.Base(path))
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	h.path = path
	h.lexer = lexer
	return lexer
}
