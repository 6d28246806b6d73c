// internal/diff/token.go
package diff

import "unicode"

// LineBreak is the synthetic token inserted between the token runs of
// consecutive lines when a chunk side is flattened into one stream. It
// can never appear inside a tokenized line (newlines are stripped before
// classification), so re-splitting on it is always safe.
const LineBreak = "\n"

// Tokenize splits a line body into lexical units for fine-grained
// highlighting: identifier runs, digit runs, whitespace runs, and any
// remaining rune by itself. Concatenating the tokens reproduces the
// input exactly.
func Tokenize(s string) []string {
	var tokens []string
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		j := i + 1
		switch {
		case isWord(r):
			for j < len(runes) && isWord(runes[j]) {
				j++
			}
		case unicode.IsDigit(r):
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
		case unicode.IsSpace(r):
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
		}
		tokens = append(tokens, string(runes[i:j]))
		i = j
	}
	return tokens
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isJunkToken marks tokens that must not anchor token matches:
// whitespace runs, but never the line-break sentinel (dropping a break
// would merge lines).
func isJunkToken(tok string) bool {
	if tok == LineBreak {
		return false
	}
	for _, r := range tok {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(tok) > 0
}
