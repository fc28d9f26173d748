package builder

import (
	"github.com/FocuswithJustin/lineage/core/cursor"
	"github.com/FocuswithJustin/lineage/core/line"
)

// Scalar stores the line value in a string field. Children of the line are
// skipped.
func Scalar[T any](field func(*T) *string) Handler[T] {
	return func(c *cursor.Cursor, tok line.Token, dst *T) error {
		if _, err := c.Consume(); err != nil {
			return err
		}
		*field(dst) = tok.Value
		return SkipChildren(c, tok.Level)
	}
}

// Text stores the line value merged with its CONC/CONT continuations.
func Text[T any](field func(*T) *string) Handler[T] {
	return func(c *cursor.Cursor, tok line.Token, dst *T) error {
		v, err := consumeText(c, tok)
		if err != nil {
			return err
		}
		*field(dst) = v
		return SkipChildren(c, tok.Level)
	}
}

// Append adds the line value to a string slice so repeated siblings are all
// kept.
func Append[T any](field func(*T) *[]string) Handler[T] {
	return func(c *cursor.Cursor, tok line.Token, dst *T) error {
		if _, err := c.Consume(); err != nil {
			return err
		}
		s := field(dst)
		*s = append(*s, tok.Value)
		return SkipChildren(c, tok.Level)
	}
}

// AppendText is Append for long text values.
func AppendText[T any](field func(*T) *[]string) Handler[T] {
	return func(c *cursor.Cursor, tok line.Token, dst *T) error {
		v, err := consumeText(c, tok)
		if err != nil {
			return err
		}
		s := field(dst)
		*s = append(*s, v)
		return SkipChildren(c, tok.Level)
	}
}

// Pointer stores the xref named by an @X@ value. A value that is not a
// pointer is stored as is.
func Pointer[T any](field func(*T) *string) Handler[T] {
	return func(c *cursor.Cursor, tok line.Token, dst *T) error {
		if _, err := c.Consume(); err != nil {
			return err
		}
		*field(dst) = pointerValue(tok)
		return SkipChildren(c, tok.Level)
	}
}

// AppendPointer adds the xref named by the line value to a slice.
func AppendPointer[T any](field func(*T) *[]string) Handler[T] {
	return func(c *cursor.Cursor, tok line.Token, dst *T) error {
		if _, err := c.Consume(); err != nil {
			return err
		}
		s := field(dst)
		*s = append(*s, pointerValue(tok))
		return SkipChildren(c, tok.Level)
	}
}

// Nested builds a child structure from the line's subtree and stores it in
// a pointer field. init, if non-nil, receives the header token before the
// children are built, so a header that carries both a value and children
// keeps both.
func Nested[T, C any](field func(*T) **C, init func(*C, line.Token), sub Table[C]) Handler[T] {
	return nested(false, func(dst *T, child *C) { *field(dst) = child }, init, sub)
}

// NestedText is Nested for a header whose value is long text; init sees
// the value with continuations already merged.
func NestedText[T, C any](field func(*T) **C, init func(*C, line.Token), sub Table[C]) Handler[T] {
	return nested(true, func(dst *T, child *C) { *field(dst) = child }, init, sub)
}

// AppendNested builds a child structure and appends it to a slice.
func AppendNested[T, C any](field func(*T) *[]C, init func(*C, line.Token), sub Table[C]) Handler[T] {
	return nested(false, func(dst *T, child *C) {
		s := field(dst)
		*s = append(*s, *child)
	}, init, sub)
}

// AppendNestedText is AppendNested with continuation merging on the header
// value.
func AppendNestedText[T, C any](field func(*T) *[]C, init func(*C, line.Token), sub Table[C]) Handler[T] {
	return nested(true, func(dst *T, child *C) {
		s := field(dst)
		*s = append(*s, *child)
	}, init, sub)
}

// Skip consumes the line and its subtree without storing anything.
func Skip[T any]() Handler[T] {
	return func(c *cursor.Cursor, _ line.Token, _ *T) error {
		return SkipTree(c)
	}
}

func nested[T, C any](text bool, attach func(*T, *C), init func(*C, line.Token), sub Table[C]) Handler[T] {
	return func(c *cursor.Cursor, tok line.Token, dst *T) error {
		if text {
			v, err := consumeText(c, tok)
			if err != nil {
				return err
			}
			tok.Value = v
		} else if _, err := c.Consume(); err != nil {
			return err
		}

		child := new(C)
		if init != nil {
			init(child, tok)
		}
		if err := Build(c, tok.Level, sub, child); err != nil {
			return err
		}
		attach(dst, child)
		return nil
	}
}

func consumeText(c *cursor.Cursor, tok line.Token) (string, error) {
	if _, err := c.Consume(); err != nil {
		return "", err
	}
	return c.Continue(tok.Level, tok.Value)
}

func pointerValue(tok line.Token) string {
	if x, ok := tok.Pointer(); ok {
		return x
	}
	return tok.Value
}
