// internal/render/render_test.go
package render

import (
	"bytes"
	"strings"
	"testing"

	"difftint/internal/diff"
)

func processed(t *testing.T, lines ...string) *diff.Block {
	t.Helper()
	var classified []*diff.Line
	for _, line := range lines {
		ln := diff.Classify(line)
		ln.Raw = line
		classified = append(classified, ln)
	}
	b := diff.NewBlock(classified)
	if err := b.Process(); err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	return b
}

func renderLines(t *testing.T, r *Renderer, b *diff.Block) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Block(&buf, b); err != nil {
		t.Fatalf("Block render failed: %v", err)
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestRenderFileHeaderRename(t *testing.T) {
	b := processed(t,
		"diff --git a/x.txt b/y.txt",
		"--- a/x.txt",
		"+++ b/y.txt",
	)
	lines := renderLines(t, &Renderer{}, b)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 rendered line, got %d: %q", len(lines), lines)
	}
	if want := styleFile + "x.txt -> y.txt" + EraseLine + Reset; lines[0] != want {
		t.Errorf("Expected %q, got %q", want, lines[0])
	}
}

func TestRenderFileHeaderSamePath(t *testing.T) {
	b := processed(t, "diff --git a/dir/f.go b/dir/f.go")
	lines := renderLines(t, &Renderer{}, b)
	if want := styleFile + "dir/f.go" + EraseLine + Reset; lines[0] != want {
		t.Errorf("Expected %q, got %q", want, lines[0])
	}
}

func TestRenderHunkHeader(t *testing.T) {
	b := processed(t,
		"diff --git a/pkg/y.go b/pkg/y.go",
		"@@ -4,3 +9,3 @@ func helper() {",
		" ctx",
	)
	lines := renderLines(t, &Renderer{}, b)
	want := styleHunk + "pkg/y.go:9:" + Reset + " " + styleSnippet + "func helper() {" + Reset
	if lines[1] != want {
		t.Errorf("Expected %q, got %q", want, lines[1])
	}
}

func TestRenderHunkHeaderNoSnippet(t *testing.T) {
	b := processed(t,
		"diff --git a/pkg/y.go b/pkg/y.go",
		"@@ -4,3 +9,3 @@",
	)
	lines := renderLines(t, &Renderer{}, b)
	if want := styleHunk + "pkg/y.go:9:" + Reset; lines[1] != want {
		t.Errorf("Expected %q, got %q", want, lines[1])
	}
}

func TestRenderWhitespaceOnlyBodies(t *testing.T) {
	b := processed(t,
		"diff --git a/x.go b/x.go",
		"@@ -1,2 +1,2 @@",
		"+ ",
		"-",
	)
	lines := renderLines(t, &Renderer{}, b)

	// Scenario: a one-space added body takes the whitespace tint, never
	// plain-add styling.
	if want := styleAddWS + " " + Reset; lines[2] != want {
		t.Errorf("Expected %q, got %q", want, lines[2])
	}
	// An empty removed body also erases to EOL so the tint shows.
	if want := styleRemWS + EraseLine + Reset; lines[3] != want {
		t.Errorf("Expected %q, got %q", want, lines[3])
	}
}

func TestRenderContextPlain(t *testing.T) {
	b := processed(t,
		"diff --git a/x.go b/x.go",
		"@@ -1,1 +1,1 @@",
		" plain body",
	)
	lines := renderLines(t, &Renderer{}, b)
	if lines[2] != "plain body" {
		t.Errorf("Expected bare body, got %q", lines[2])
	}
}

func TestRenderMeta(t *testing.T) {
	b := processed(t,
		"diff --git a/x.go b/x.go",
		"old mode 100644",
	)
	lines := renderLines(t, &Renderer{}, b)
	want := styleMode + "./x.go:" + Reset + " old mode 100644"
	if lines[1] != want {
		t.Errorf("Expected %q, got %q", want, lines[1])
	}
}

func TestRenderDroppedKinds(t *testing.T) {
	b := processed(t,
		"diff --git a/x.go b/x.go",
		"index 61cb52e..a68b055 100644",
		"--- a/x.go",
		"+++ b/x.go",
	)
	if lines := renderLines(t, &Renderer{}, b); len(lines) != 1 {
		t.Errorf("Expected index/---/+++ suppressed, got %d lines: %q", len(lines), lines)
	}

	// Interactive mode keeps the line slots, dimmed.
	b = processed(t,
		"diff --git a/x.go b/x.go",
		"index 61cb52e..a68b055 100644",
		"--- a/x.go",
		"+++ b/x.go",
	)
	lines := renderLines(t, &Renderer{Interactive: true}, b)
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines in interactive mode, got %d", len(lines))
	}
	if want := styleDropped + "index 61cb52e..a68b055 100644" + Reset; lines[1] != want {
		t.Errorf("Expected %q, got %q", want, lines[1])
	}
}

func TestRenderMovedStyleWinsOverSpans(t *testing.T) {
	b := processed(t,
		"diff --git a/x.go b/x.go",
		"@@ -1,2 +1,1 @@",
		"-moved body",
		"-edited body",
		"+tweaked body",
		"@@ -10,1 +10,2 @@",
		" tail",
		"+moved body",
	)
	lines := renderLines(t, &Renderer{}, b)

	// The moved removal renders with the moved foreground and no token
	// emphasis even though its chunk went through the token differ.
	if want := styleRemMove + "moved body" + Reset; lines[2] != want {
		t.Errorf("Expected moved style, got %q", lines[2])
	}
	// Its non-moved neighbor does carry emphasis.
	if !strings.Contains(lines[3], styleRemEmph) {
		t.Errorf("Expected emphasis on edited neighbor, got %q", lines[3])
	}
	if want := styleAddMove + "moved body" + Reset; lines[len(lines)-1] != want {
		t.Errorf("Expected moved style on added end, got %q", lines[len(lines)-1])
	}
}

func TestRenderTokenEmphasis(t *testing.T) {
	b := processed(t,
		"diff --git a/x.txt b/x.txt",
		"@@ -1,2 +1,2 @@",
		"-foo bar",
		"+foo baz",
	)
	lines := renderLines(t, &Renderer{}, b)

	wantRem := styleRem + "foo " + styleRemEmph + "bar" + Reset
	if lines[2] != wantRem {
		t.Errorf("Expected %q, got %q", wantRem, lines[2])
	}
	wantAdd := styleAdd + "foo " + styleAddEmph + "baz" + Reset
	if lines[3] != wantAdd {
		t.Errorf("Expected %q, got %q", wantAdd, lines[3])
	}
}

func TestRenderRawPreservesColors(t *testing.T) {
	raw := "\x1b[33m* deadbee (HEAD) subject\x1b[m"
	ln := diff.Classify("* deadbee (HEAD) subject")
	ln.Raw = raw
	var buf bytes.Buffer
	if err := (&Renderer{}).Raw(&buf, []*diff.Line{ln}); err != nil {
		t.Fatalf("Raw render failed: %v", err)
	}
	if buf.String() != raw+"\n" {
		t.Errorf("Expected raw line preserved, got %q", buf.String())
	}
}

func TestPaletteValues(t *testing.T) {
	// The palette is an external contract: exact xterm-256 sequences.
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"reset", Reset, "\x1b[m"},
		{"file", styleFile, "\x1b[48;5;53m"},
		{"removed", styleRem, "\x1b[38;5;196m"},
		{"added", styleAdd, "\x1b[38;5;46m"},
		{"removed ws", styleRemWS, "\x1b[48;5;52m"},
		{"added ws", styleAddWS, "\x1b[48;5;22m"},
		{"removed moved", styleRemMove, "\x1b[38;5;88m"},
		{"added moved", styleAddMove, "\x1b[38;5;28m"},
		{"snippet", styleSnippet, "\x1b[38;5;248;48;5;235m"},
		{"dropped", styleDropped, "\x1b[38;5;241m"},
		{"erase", EraseLine, "\x1b[K"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.got, tc.want)
		}
	}
}
