// internal/diff/highlight.go
package diff

import "difftint/internal/textmatch"

// highlightGroup computes token-level change spans for one non-moved
// chunk group. Each side's lines are tokenized and flattened into a
// single stream with LineBreak sentinels, the two streams are matched,
// the gaps between matching blocks are marked changed, and the streams
// are split back into per-line spans. Every token comes out exactly
// once, so the spans reconstruct each line's body byte for byte.
//
// One-sided groups (pure insertions or deletions) are left alone: with
// nothing on the other side to compare against, whole-line coloring
// already says everything.
func highlightGroup(g *ChunkGroup) {
	if len(g.Removed) == 0 || len(g.Added) == 0 {
		return
	}

	remStream := flatten(g.Removed)
	addStream := flatten(g.Added)

	m := textmatch.NewMatcher(remStream, addStream, isJunkToken)
	blocks := m.MatchingBlocks()

	remChanged := gapFlags(len(remStream), blocks, func(b textmatch.Block) (int, int) { return b.A, b.A + b.Size })
	addChanged := gapFlags(len(addStream), blocks, func(b textmatch.Block) (int, int) { return b.B, b.B + b.Size })

	split(g.Removed, remStream, remChanged)
	split(g.Added, addStream, addChanged)
}

// flatten concatenates the per-line token runs of one side, inserting a
// LineBreak between consecutive lines.
func flatten(lines []*Line) []string {
	var stream []string
	for i, ln := range lines {
		if i > 0 {
			stream = append(stream, LineBreak)
		}
		stream = append(stream, Tokenize(ln.Body)...)
	}
	return stream
}

// gapFlags marks every stream position outside the matching blocks as
// changed. The sentinel block at the end of the list closes the final
// gap.
func gapFlags(n int, blocks []textmatch.Block, span func(textmatch.Block) (int, int)) []bool {
	changed := make([]bool, n)
	for i := range changed {
		changed[i] = true
	}
	for _, b := range blocks {
		lo, hi := span(b)
		for i := lo; i < hi; i++ {
			changed[i] = false
		}
	}
	return changed
}

// split re-partitions the annotated stream on LineBreak tokens, writing
// each line's spans back onto its Line. Adjacent tokens with the same
// flag coalesce into one span.
func split(lines []*Line, stream []string, changed []bool) {
	li := 0
	var spans []Span
	flush := func() {
		lines[li].Spans = spans
		if spans == nil {
			// An empty body still gets a non-nil marker so the renderer
			// can tell "diffed, nothing changed" from "never diffed".
			lines[li].Spans = []Span{}
		}
		spans = nil
		li++
	}
	for i, tok := range stream {
		if tok == LineBreak {
			flush()
			continue
		}
		if n := len(spans); n > 0 && spans[n-1].Changed == changed[i] {
			spans[n-1].Text += tok
		} else {
			spans = append(spans, Span{Text: tok, Changed: changed[i]})
		}
	}
	flush()
}
