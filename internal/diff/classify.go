// internal/diff/classify.go
package diff

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	commitRe = regexp.MustCompile(`^commit [0-9a-z]{40}`)
	// The a/ and b/ prefixes are eaten even for --no-index diffs, which
	// emit plain paths.
	fileRe = regexp.MustCompile(`^diff --git (?:a/)?(.+) (?:b/)?(.+)$`)
	hunkRe = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@ ?(.*)$`)
	metaRe = regexp.MustCompile(`^(?:old mode|new mode|deleted file mode|new file mode|copy from|copy to|rename from|rename to|similarity index|dissimilarity index)`)
)

// Classify tags one color-stripped line with its kind and captures the
// kind-specific fields. The grammar is evaluated in fixed priority order,
// first match wins; the catch-all keeps classification total, so every
// line gets exactly one kind.
func Classify(plain string) *Line {
	ln := &Line{Plain: plain}
	switch {
	case plain == "":
		ln.Kind = KindEmpty
	case commitRe.MatchString(plain):
		ln.Kind = KindCommit
	case strings.HasPrefix(plain, "Author:"):
		ln.Kind = KindAuthor
	case strings.HasPrefix(plain, "Date:"):
		ln.Kind = KindDate
	case strings.HasPrefix(plain, "diff --git "):
		if m := fileRe.FindStringSubmatch(plain); m != nil {
			ln.Kind = KindFileHeader
			ln.OldPath = m[1]
			ln.NewPath = m[2]
		} else {
			ln.Kind = KindOther
		}
	case strings.HasPrefix(plain, "index"):
		ln.Kind = KindIndex
	case strings.HasPrefix(plain, "---"):
		ln.Kind = KindOldPath
		ln.OldPath = strings.TrimPrefix(strings.TrimPrefix(plain, "--- "), "a/")
	case strings.HasPrefix(plain, "+++"):
		ln.Kind = KindNewPath
		ln.NewPath = strings.TrimPrefix(strings.TrimPrefix(plain, "+++ "), "b/")
	case strings.HasPrefix(plain, "@@"):
		if m := hunkRe.FindStringSubmatch(plain); m != nil {
			ln.Kind = KindHunk
			ln.OldStart, _ = strconv.Atoi(m[1])
			ln.NewStart, _ = strconv.Atoi(m[2])
			ln.NewStartRaw = m[2]
			ln.Snippet = m[3]
		} else {
			ln.Kind = KindOther
		}
	case strings.HasPrefix(plain, " "):
		ln.Kind = KindContext
		ln.Body = plain[1:]
	case strings.HasPrefix(plain, "-"):
		ln.Kind = KindRemoved
		ln.Body = plain[1:]
	case strings.HasPrefix(plain, "+"):
		ln.Kind = KindAdded
		ln.Body = plain[1:]
	case metaRe.MatchString(plain):
		ln.Kind = KindMeta
	default:
		ln.Kind = KindOther
	}
	return ln
}
