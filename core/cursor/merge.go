package cursor

import (
	"io"
	"strings"

	"github.com/FocuswithJustin/lineage/core/line"
)

// Part is one continuation line: CONC or CONT with its value.
type Part struct {
	Tag   string
	Value string
}

// Conc returns a CONC part.
func Conc(v string) Part { return Part{Tag: line.TagConc, Value: v} }

// Cont returns a CONT part.
func Cont(v string) Part { return Part{Tag: line.TagCont, Value: v} }

// Merge folds parts onto initial left to right. CONC appends its value
// verbatim, CONT appends a newline and then its value. Parts with any other
// tag are ignored.
func Merge(initial string, parts ...Part) string {
	if len(parts) == 0 {
		return initial
	}
	n := len(initial)
	for _, p := range parts {
		n += len(p.Value) + 1
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteString(initial)
	for _, p := range parts {
		switch p.Tag {
		case line.TagConc:
			b.WriteString(p.Value)
		case line.TagCont:
			b.WriteByte('\n')
			b.WriteString(p.Value)
		}
	}
	return b.String()
}

// Continue consumes every following CONC/CONT line at exactly level+1 and
// returns initial with them merged. The cursor is left on the first line
// that is not such a continuation.
func (c *Cursor) Continue(level uint8, initial string) (string, error) {
	var parts []Part
	for {
		tok, err := c.Peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if tok.Level != level+1 || !line.IsContinuation(tok.Tag) {
			break
		}
		if _, err := c.Consume(); err != nil {
			return "", err
		}
		parts = append(parts, Part{Tag: tok.Tag, Value: tok.Value})
	}
	return Merge(initial, parts...), nil
}
