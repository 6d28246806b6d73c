// internal/cli/run.go
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"difftint/internal/diff"
	"difftint/internal/render"

	"github.com/charmbracelet/x/ansi"
)

// Options is the filter's whole configuration surface, read once at
// startup and never mutated.
type Options struct {
	Interactive bool // keep one output line per input line
	Syntax      bool // chroma-highlight context lines
	PassThrough bool // copy stdin to stdout verbatim
	Debug       bool // print each line's classified kind
}

// runFilter drives the whole pipeline from r to w. A broken pipe on the
// output side means the consumer (usually a pager) quit; that is an
// expected way for a run to end, not an error.
func runFilter(r io.Reader, w io.Writer, opts Options) error {
	out := bufio.NewWriter(w)
	err := filter(r, out, opts)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return err
}

func filter(r io.Reader, out *bufio.Writer, opts Options) error {
	if opts.PassThrough {
		_, err := io.Copy(out, r)
		return err
	}

	rend := &render.Renderer{Interactive: opts.Interactive}
	if opts.Syntax {
		rend.Syntax = render.NewHighlighter()
	}

	var block []*diff.Line
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		b := diff.NewBlock(block)
		block = nil
		if b.Skip() {
			return rend.Raw(out, b.Lines)
		}
		if err := b.Process(); err != nil {
			return err
		}
		return rend.Block(out, b)
	}

	in := bufio.NewReader(r)
	for {
		raw, readErr := in.ReadString('\n')
		if raw != "" || readErr == nil {
			raw = strings.TrimSuffix(raw, "\n")
			// Git can emit byte sequences that are not valid UTF-8;
			// replace rather than fail.
			raw = strings.ToValidUTF8(raw, "�")
			plain := ansi.Strip(raw)
			ln := diff.Classify(plain)
			ln.Raw = raw
			if opts.Debug {
				if _, err := fmt.Fprintf(out, "%s : %q\n", ln.Kind, plain); err != nil {
					return err
				}
			} else {
				if ln.Kind == diff.KindFileHeader {
					if err := flush(); err != nil {
						return err
					}
				}
				block = append(block, ln)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return fmt.Errorf("read input: %w", readErr)
		}
	}
	return flush()
}
