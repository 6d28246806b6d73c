// internal/textmatch/matcher.go

// Package textmatch finds the matching blocks shared by two token
// sequences, in the manner of Python difflib's SequenceMatcher: the
// longest contiguous junk-free match is found first and the same idea is
// applied recursively to the pieces on either side. The result tends to
// "look right" to people rather than being a minimal edit script, which
// is what a highlighter wants.
package textmatch

import "sort"

// Block describes a run of Size tokens identical between the two
// sequences, starting at A in the first and B in the second.
type Block struct {
	A    int
	B    int
	Size int
}

// Matcher compares a pair of token sequences. IsJunk marks tokens that
// must not anchor a match (they are still swallowed at the edges of
// adjacent real matches). Tokens occurring disproportionately often in
// the second sequence are degraded the same way, so that pathological
// inputs (hundreds of identical blank tokens) do not go quadratic or
// anchor spurious matches.
type Matcher struct {
	a, b   []string
	b2j    map[string][]int
	isJunk func(string) bool
	junkB  map[string]bool
}

// autojunk thresholds, as difflib uses them: only kick in for sequences
// of at least 200 tokens, degrading tokens that fill more than 1% of
// the second sequence.
const autojunkMin = 200

// NewMatcher prepares a matcher over the two sequences. isJunk may be
// nil.
func NewMatcher(a, b []string, isJunk func(string) bool) *Matcher {
	m := &Matcher{a: a, b: b, isJunk: isJunk}
	m.index()
	return m
}

// index builds the token -> positions map for the second sequence, then
// purges junk and over-popular tokens so they cannot anchor matches.
func (m *Matcher) index() {
	m.b2j = make(map[string][]int)
	for j, tok := range m.b {
		m.b2j[tok] = append(m.b2j[tok], j)
	}

	m.junkB = make(map[string]bool)
	if m.isJunk != nil {
		for tok := range m.b2j {
			if m.isJunk(tok) {
				m.junkB[tok] = true
			}
		}
		for tok := range m.junkB {
			delete(m.b2j, tok)
		}
	}

	if n := len(m.b); n >= autojunkMin {
		thresh := n/100 + 1
		for tok, positions := range m.b2j {
			if len(positions) > thresh {
				m.junkB[tok] = true
				delete(m.b2j, tok)
			}
		}
	}
}

// longestMatch finds the longest run of tokens with a[i:i+k] equal to
// b[j:j+k] inside the given windows, containing no junk token. Ties go
// to the run starting earliest in a, then earliest in b. The run is then
// widened over identical junk on both ends, so junk adjacent to a real
// match still renders as unchanged.
func (m *Matcher) longestMatch(alo, ahi, blo, bhi int) Block {
	besti, bestj, bestsize := alo, blo, 0

	// j2len[j] is the length of the longest junk-free match ending at
	// a[i-1], b[j].
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	for besti > alo && bestj > blo && !m.junkB[m.b[bestj-1]] &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		!m.junkB[m.b[bestj+bestsize]] &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	for besti > alo && bestj > blo && m.junkB[m.b[bestj-1]] &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		m.junkB[m.b[bestj+bestsize]] &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	return Block{A: besti, B: bestj, Size: bestsize}
}

// MatchingBlocks returns the matching runs, monotonically increasing in
// both A and B, with adjacent runs merged. The final element is always
// the sentinel (len(a), len(b), 0), the only block with Size 0, so
// callers can walk the gap after the last real match without a special
// case.
func (m *Matcher) MatchingBlocks() []Block {
	// Iterative divide and conquer over remaining windows.
	type window struct{ alo, ahi, blo, bhi int }
	stack := []window{{0, len(m.a), 0, len(m.b)}}
	var found []Block
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		match := m.longestMatch(w.alo, w.ahi, w.blo, w.bhi)
		if match.Size == 0 {
			continue
		}
		found = append(found, match)
		if w.alo < match.A && w.blo < match.B {
			stack = append(stack, window{w.alo, match.A, w.blo, match.B})
		}
		if match.A+match.Size < w.ahi && match.B+match.Size < w.bhi {
			stack = append(stack, window{match.A + match.Size, w.ahi, match.B + match.Size, w.bhi})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].A != found[j].A {
			return found[i].A < found[j].A
		}
		return found[i].B < found[j].B
	})

	// Collapse adjacent blocks.
	var merged []Block
	for _, blk := range found {
		if n := len(merged); n > 0 &&
			merged[n-1].A+merged[n-1].Size == blk.A &&
			merged[n-1].B+merged[n-1].Size == blk.B {
			merged[n-1].Size += blk.Size
			continue
		}
		merged = append(merged, blk)
	}
	merged = append(merged, Block{A: len(m.a), B: len(m.b), Size: 0})
	return merged
}
