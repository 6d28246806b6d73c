// internal/diff/block.go
package diff

import (
	"fmt"
	"strings"
)

// PathPlaceholder is the display path for blocks seen before any file
// header (e.g. input that opens with a bare hunk).
const PathPlaceholder = "<PATH>"

// Block is the lines of one file's diff: everything from a file header
// (or the start of input) up to the next file header. Exactly one block
// is alive at a time; processing never retains a completed block.
type Block struct {
	Lines []*Line
	Path  string // display path, the b-side of the file header

	oldLines map[int]*Line // old line number -> ctx/rem line
	newLines map[int]*Line // new line number -> ctx/add line
	oldCtx   map[int]bool  // old numbers held by context lines
	newCtx   map[int]bool  // new numbers held by context lines

	oldUnique map[string]int // trimmed rem body -> old number, -1 if repeated
	newUnique map[string]int // trimmed add body -> new number, -1 if repeated

	oldMoved map[int]bool
	newMoved map[int]bool
}

// NewBlock wraps accumulated lines, deriving the display path from the
// first file header. Single-segment paths get a ./ prefix so renderings
// look like paths rather than bare names.
func NewBlock(lines []*Line) *Block {
	b := &Block{Lines: lines, Path: PathPlaceholder}
	for _, ln := range lines {
		if ln.Kind == KindFileHeader {
			b.Path = ln.NewPath
			if !strings.Contains(b.Path, "/") {
				b.Path = "./" + b.Path
			}
			break
		}
	}
	return b
}

// graphPrefix reports whether the line opens with commit-graph drawing
// characters, marking `git log --graph` output that must pass through
// untouched.
func graphPrefix(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case ' ', '*', '|', '\\', '/':
		return true
	}
	return false
}

// Skip reports whether the block is not a real file diff and must be
// passed through verbatim: it does not open with a file or hunk header,
// or it opens with merge-graph drawing.
func (b *Block) Skip() bool {
	if len(b.Lines) == 0 {
		return true
	}
	first := b.Lines[0]
	if first.Kind != KindFileHeader && first.Kind != KindHunk {
		return true
	}
	return graphPrefix(first.Plain)
}

// Reconstruct assigns 1-indexed old/new line numbers to context, removed
// and added lines, resynchronizing at hunk headers, and builds the
// per-side indexes later stages read. A hunk header declaring a positive
// start that does not exceed the current counter, or a duplicate number
// assignment, means the input's hunk structure cannot be trusted; the
// whole run aborts rather than emitting an inconsistent render.
func (b *Block) Reconstruct() error {
	b.oldLines = make(map[int]*Line)
	b.newLines = make(map[int]*Line)
	b.oldCtx = make(map[int]bool)
	b.newCtx = make(map[int]bool)
	b.oldUnique = make(map[string]int)
	b.newUnique = make(map[string]int)

	oldNum, newNum := 0, 0
	for _, ln := range b.Lines {
		switch ln.Kind {
		case KindHunk:
			// A declared start of 0 marks an empty side (new or
			// deleted file) and leaves the counter alone.
			if ln.OldStart > 0 {
				if ln.OldStart <= oldNum {
					return fmt.Errorf("hunk header out of order: old start %d after line %d (%q)", ln.OldStart, oldNum, ln.Plain)
				}
				oldNum = ln.OldStart
			}
			if ln.NewStart > 0 {
				if ln.NewStart <= newNum {
					return fmt.Errorf("hunk header out of order: new start %d after line %d (%q)", ln.NewStart, newNum, ln.Plain)
				}
				newNum = ln.NewStart
			}
			continue
		case KindRemoved:
			insertUnique(b.oldUnique, ln.Body, oldNum)
		case KindAdded:
			insertUnique(b.newUnique, ln.Body, newNum)
		case KindContext:
		default:
			continue
		}
		if ln.Kind == KindContext || ln.Kind == KindRemoved {
			if b.oldLines[oldNum] != nil {
				return fmt.Errorf("old line %d assigned twice (%q)", oldNum, ln.Plain)
			}
			ln.OldNum = oldNum
			b.oldLines[oldNum] = ln
			if ln.Kind == KindContext {
				b.oldCtx[oldNum] = true
			}
			oldNum++
		}
		if ln.Kind == KindContext || ln.Kind == KindAdded {
			if b.newLines[newNum] != nil {
				return fmt.Errorf("new line %d assigned twice (%q)", newNum, ln.Plain)
			}
			ln.NewNum = newNum
			b.newLines[newNum] = ln
			if ln.Kind == KindContext {
				b.newCtx[newNum] = true
			}
			newNum++
		}
	}
	return nil
}

// insertUnique records a line body's number the first time it is seen on
// a side and poisons it on any repeat. Repeated bodies (blank lines,
// closing braces) must never seed a move.
func insertUnique(m map[string]int, body string, num int) {
	key := strings.TrimSpace(body)
	if _, seen := m[key]; seen {
		m[key] = -1
	} else {
		m[key] = num
	}
}

// OldMoved reports whether the given old line number was flagged as part
// of a move.
func (b *Block) OldMoved(num int) bool { return b.oldMoved[num] }

// NewMoved reports whether the given new line number was flagged as part
// of a move.
func (b *Block) NewMoved(num int) bool { return b.newMoved[num] }

// Process runs the full annotation pipeline on one block: numbering,
// move detection, chunking and token highlighting. Skip blocks must not
// be processed.
func (b *Block) Process() error {
	if err := b.Reconstruct(); err != nil {
		return err
	}
	b.DetectMoves()
	for _, g := range b.ChunkGroups() {
		if !g.Moved {
			highlightGroup(g)
		}
	}
	return nil
}
