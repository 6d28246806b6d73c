// internal/diff/line.go
package diff

// Kind classifies one input line of a diff stream.
type Kind int

const (
	KindEmpty Kind = iota
	KindCommit
	KindAuthor
	KindDate
	KindFileHeader // diff --git a/x b/y
	KindIndex
	KindOldPath // --- a/x
	KindNewPath // +++ b/y
	KindHunk    // @@ -o,l +n,l @@ snippet
	KindContext
	KindRemoved
	KindAdded
	KindMeta // mode / rename / copy / similarity lines
	KindOther
)

var kindNames = map[Kind]string{
	KindEmpty:      "empty",
	KindCommit:     "commit",
	KindAuthor:     "author",
	KindDate:       "date",
	KindFileHeader: "diff",
	KindIndex:      "idx",
	KindOldPath:    "old",
	KindNewPath:    "new",
	KindHunk:       "loc",
	KindContext:    "ctx",
	KindRemoved:    "rem",
	KindAdded:      "add",
	KindMeta:       "meta",
	KindOther:      "other",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "other"
}

// Span is a run of characters within a line body, flagged when the token
// differ marked it as changed relative to the opposite side of its chunk.
type Span struct {
	Text    string
	Changed bool
}

// Line is one classified input line. It is created by Classify and
// enriched in place as a block moves through the pipeline: numbering
// fills OldNum/NewNum, chunking fills ChunkID, the token differ fills
// Spans. Raw keeps the original text (colors included); later stages
// only ever look at the kind-specific fields.
type Line struct {
	Kind  Kind
	Raw   string // original line, possibly carrying color escapes
	Plain string // color-stripped line, basis for classification
	Body  string // text after the marker for ctx/rem/add lines

	// File header captures.
	OldPath string
	NewPath string

	// Hunk header captures.
	OldStart    int
	NewStart    int
	NewStartRaw string // declared new start, as written
	Snippet     string

	OldNum  int // 1-indexed old-file line number, 0 if not applicable
	NewNum  int // 1-indexed new-file line number, 0 if not applicable
	ChunkID int // nonzero only inside a removed/added run

	Spans []Span // token-differ output, nil when not computed
}
