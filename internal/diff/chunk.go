// internal/diff/chunk.go
package diff

// ChunkGroup is one maximal contiguous run of removed/added lines,
// separated into the removed and added sides in original order. Moved is
// true when every line of the run is covered by the block's move sets;
// such runs are relocations, not edits, and skip token highlighting.
type ChunkGroup struct {
	ID      int
	Removed []*Line
	Added   []*Line
	Moved   bool
}

// ChunkGroups assigns chunk ids (a fresh id whenever a removed/added
// line follows anything that is not part of the same run, id 0 for
// everything else) and returns the runs in order of appearance.
// Requires DetectMoves to have run.
func (b *Block) ChunkGroups() []*ChunkGroup {
	var groups []*ChunkGroup
	var cur *ChunkGroup
	id := 0
	for _, ln := range b.Lines {
		if ln.Kind != KindRemoved && ln.Kind != KindAdded {
			cur = nil
			continue
		}
		if cur == nil {
			id++
			cur = &ChunkGroup{ID: id, Moved: true}
			groups = append(groups, cur)
		}
		ln.ChunkID = id
		if ln.Kind == KindRemoved {
			cur.Removed = append(cur.Removed, ln)
			if !b.OldMoved(ln.OldNum) {
				cur.Moved = false
			}
		} else {
			cur.Added = append(cur.Added, ln)
			if !b.NewMoved(ln.NewNum) {
				cur.Moved = false
			}
		}
	}
	return groups
}
