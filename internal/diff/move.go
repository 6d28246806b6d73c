// internal/diff/move.go
package diff

import "strings"

// DetectMoves flags lines whose trimmed body is unique among removals
// and unique among additions, then grows each such seed into the longest
// contiguous run of pairwise-matching removed/added lines around it.
// Membership is decided here once per block and never revised. Requires
// Reconstruct to have run.
func (b *Block) DetectMoves() {
	b.oldMoved = make(map[int]bool)
	b.newMoved = make(map[int]bool)

	for body, newIdx := range b.newUnique {
		if newIdx < 0 {
			continue
		}
		oldIdx, ok := b.oldUnique[body]
		if !ok || oldIdx < 0 {
			continue
		}
		// Expand around the seed. Each position is visited at most a
		// bounded number of times across all seeds, so detection stays
		// linear in the block size.
		po, pn := oldIdx, newIdx
		for b.pairMatches(po-1, pn-1) {
			po--
			pn--
		}
		eo, en := oldIdx+1, newIdx+1
		for b.pairMatches(eo, en) {
			eo++
			en++
		}
		for o := po; o < eo; o++ {
			b.oldMoved[o] = true
		}
		for n := pn; n < en; n++ {
			b.newMoved[n] = true
		}
	}
}

// pairMatches reports whether old position o and new position n hold a
// removed and an added line with equal trimmed bodies. Context lines
// never pair: a context line is by definition not part of a move.
func (b *Block) pairMatches(o, n int) bool {
	if b.oldCtx[o] || b.newCtx[n] {
		return false
	}
	ol := b.oldLines[o]
	nl := b.newLines[n]
	if ol == nil || nl == nil {
		return false
	}
	return strings.TrimSpace(ol.Body) == strings.TrimSpace(nl.Body)
}
