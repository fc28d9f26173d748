// Package builder implements the level-driven recursive descent shared by
// every GEDCOM structure.
//
// A structure is described by a Table mapping child tags to Handlers. Build
// walks the lines below a header, dispatching each direct child to its
// handler and skipping the subtree of any tag the table does not know.
// Handlers are always given a peeked, unconsumed token and must consume it
// together with everything nested beneath it.
package builder

import (
	"io"

	"github.com/FocuswithJustin/lineage/core/cursor"
	"github.com/FocuswithJustin/lineage/core/errors"
	"github.com/FocuswithJustin/lineage/core/line"
)

// Handler consumes the line tok and its subtree, storing what it keeps in
// dst.
type Handler[T any] func(c *cursor.Cursor, tok line.Token, dst *T) error

// Table maps child tags to handlers.
type Table[T any] map[string]Handler[T]

// Build dispatches every line deeper than ownLevel to the handler for its
// tag. It returns with the cursor on the first line at or above ownLevel,
// or at end of input.
//
// A line more than one level deeper than its parent is still treated as a
// direct child.
func Build[T any](c *cursor.Cursor, ownLevel uint8, t Table[T], dst *T) error {
	for {
		tok, err := c.Peek()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tok.Level <= ownLevel {
			return nil
		}

		h, ok := t[tok.Tag]
		if !ok {
			h = Skip[T]()
		}
		if err := h(c, tok, dst); err != nil {
			return annotate(err, tok.Tag)
		}
	}
}

// Record consumes a header line and builds its children. It is the entry
// point for level-0 records and returns the header token.
func Record[T any](c *cursor.Cursor, t Table[T], dst *T) (line.Token, error) {
	tok, err := c.Consume()
	if err != nil {
		return tok, err
	}
	return tok, Build(c, tok.Level, t, dst)
}

// SkipTree consumes the next line and every line nested beneath it.
func SkipTree(c *cursor.Cursor) error {
	tok, err := c.Consume()
	if err != nil {
		return err
	}
	return SkipChildren(c, tok.Level)
}

// SkipChildren consumes every line deeper than level.
func SkipChildren(c *cursor.Cursor, level uint8) error {
	for {
		tok, err := c.Peek()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tok.Level <= level {
			return nil
		}
		if _, err := c.Consume(); err != nil {
			return err
		}
	}
}

func annotate(err error, field string) error {
	var pe *errors.ParseError
	if errors.As(err, &pe) && pe.Field == "" {
		pe.Field = field
	}
	return err
}
