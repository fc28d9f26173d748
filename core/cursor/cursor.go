// Package cursor provides the forward-only peek/consume view over normalized
// GEDCOM text that every builder is written against.
package cursor

import (
	"io"
	"strings"

	"github.com/FocuswithJustin/lineage/core/errors"
	"github.com/FocuswithJustin/lineage/core/line"
)

// bom is U+FEFF as it appears in decoded text. Some exporters prepend it to
// every line, not only the first.
const bom = "\ufeff"

// excerptLen bounds the line text quoted in a ParseError.
const excerptLen = 40

// Cursor is a position in normalized text. The zero value is an exhausted
// cursor.
type Cursor struct {
	text string
	off  int // offset of the next unconsumed byte
	line int // physical line number at off

	// peek cache, valid while peeked is true
	peeked   bool
	tok      line.Token
	err      error
	tokLine  int
	next     int
	nextLine int
}

// New returns a cursor at the start of text, numbering lines from 1.
func New(text string) *Cursor {
	return NewAt(text, 1)
}

// NewAt returns a cursor over text whose first line is physical line
// firstLine of the enclosing input. Record-local cursors use it so errors
// report file line numbers.
func NewAt(text string, firstLine int) *Cursor {
	if firstLine < 1 {
		firstLine = 1
	}
	return &Cursor{text: text, line: firstLine}
}

// Peek tokenizes the next non-blank line without consuming it. Repeated
// calls return the same token until Consume. It returns io.EOF when the text
// is exhausted and a *errors.ParseError when the line cannot be tokenized.
func (c *Cursor) Peek() (line.Token, error) {
	if c.peeked {
		return c.tok, c.err
	}

	off, num := c.off, c.line
	for off < len(c.text) {
		raw, next := ScanLine(c.text, off)
		if Blank(raw) {
			off, num = next, num+1
			continue
		}
		tok, err := line.Tokenize(raw)
		if err != nil {
			c.cache(line.Token{}, errors.NewParse(num, excerpt(raw), "cannot tokenize line", err), num, off, num)
			return c.tok, c.err
		}
		c.cache(tok, nil, num, next, num+1)
		return c.tok, nil
	}
	c.cache(line.Token{}, io.EOF, num, off, num)
	return c.tok, c.err
}

// Consume returns the next token and advances past its line. A failed
// tokenization does not advance.
func (c *Cursor) Consume() (line.Token, error) {
	tok, err := c.Peek()
	if err != nil {
		return tok, err
	}
	c.off, c.line = c.next, c.nextLine
	c.peeked = false
	return tok, nil
}

// Done reports whether no tokens remain.
func (c *Cursor) Done() bool {
	_, err := c.Peek()
	return err == io.EOF
}

// Line returns the physical line number of the line Peek would return, or
// of the next unread line if nothing has been peeked.
func (c *Cursor) Line() int {
	if c.peeked {
		return c.tokLine
	}
	return c.line
}

// Offset returns the byte offset of the next unconsumed line.
func (c *Cursor) Offset() int {
	return c.off
}

// Rest returns the unconsumed text.
func (c *Cursor) Rest() string {
	return c.text[c.off:]
}

func (c *Cursor) cache(tok line.Token, err error, tokLine, next, nextLine int) {
	c.peeked = true
	c.tok, c.err = tok, err
	c.tokLine = tokLine
	c.next, c.nextLine = next, nextLine
}

// ScanLine returns the physical line starting at off without its terminator
// or a leading byte-order mark, and the offset of the following line. CR,
// LF and CRLF all terminate a line.
func ScanLine(text string, off int) (string, int) {
	rest := text[off:]
	end := strings.IndexAny(rest, "\r\n")
	next := off + len(rest)
	if end >= 0 {
		next = off + end + 1
		if rest[end] == '\r' && end+1 < len(rest) && rest[end+1] == '\n' {
			next++
		}
		rest = rest[:end]
	}
	return strings.TrimPrefix(rest, bom), next
}

// Blank reports whether a physical line holds only spaces and tabs.
func Blank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

func excerpt(s string) string {
	if len(s) <= excerptLen {
		return s
	}
	return s[:excerptLen] + "..."
}
