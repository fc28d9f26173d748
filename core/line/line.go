// Package line tokenizes a single physical GEDCOM line into its level, xref,
// tag and value.
//
// A line has the shape
//
//	level SP* [@xref@] SP* tag [SP* value]
//
// Tokenize never copies: every string in the returned Token is a substring of
// its input.
package line

import (
	"errors"
	"strconv"
	"strings"
)

// MaxTagLength is the longest tag the grammar accepts.
const MaxTagLength = 31

// Continuation tags.
const (
	TagConc = "CONC"
	TagCont = "CONT"
)

// Tokenizer failures. They are returned bare; callers that know the line
// number wrap them in an errors.ParseError.
var (
	ErrMalformedLevel = errors.New("malformed level")
	ErrMissingTag     = errors.New("missing tag")
	ErrTagTooLong     = errors.New("tag too long")
)

// Token is one tokenized line. It is ephemeral: builders copy out what they
// keep.
type Token struct {
	Level uint8
	Xref  string // without the surrounding @ delimiters
	Tag   string
	Value string
}

// Tokenize parses s, which must not contain a line terminator other than an
// optional trailing CR.
func Tokenize(s string) (Token, error) {
	var tok Token

	s = strings.TrimSuffix(s, "\r")
	i := skipDelim(s, 0)

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start || (i < len(s) && !isDelim(s[i])) {
		return Token{}, ErrMalformedLevel
	}
	level, err := strconv.ParseUint(s[start:i], 10, 8)
	if err != nil {
		return Token{}, ErrMalformedLevel
	}
	tok.Level = uint8(level)

	i = skipDelim(s, i)
	if i < len(s) && s[i] == '@' {
		if k := strings.IndexByte(s[i+1:], '@'); k > 0 && closesXref(s, i+2+k) {
			tok.Xref = s[i+1 : i+1+k]
			i = skipDelim(s, i+2+k)
		} else {
			// Unterminated: the xref runs to the next delimiter.
			j := i + 1
			for j < len(s) && s[j] != '@' && !isDelim(s[j]) {
				j++
			}
			tok.Xref = s[i+1 : j]
			if j < len(s) && s[j] == '@' {
				j++
			}
			i = skipDelim(s, j)
		}
	}

	start = i
	if i < len(s) && s[i] == '_' {
		i++
	}
	for i < len(s) && isTagChar(s[i]) {
		i++
	}
	tok.Tag = s[start:i]
	switch {
	case tok.Tag == "" || tok.Tag == "_":
		return Token{}, ErrMissingTag
	case len(tok.Tag) > MaxTagLength:
		return Token{}, ErrTagTooLong
	}

	i = skipDelim(s, i)
	tok.Value = s[i:]
	return tok, nil
}

// IsContinuation reports whether tag is CONC or CONT.
func IsContinuation(tag string) bool {
	return tag == TagConc || tag == TagCont
}

// IsPointer reports whether the value has the form @X@.
func (t Token) IsPointer() bool {
	_, ok := t.Pointer()
	return ok
}

// Pointer returns the xref named by an @X@ value.
func (t Token) Pointer() (string, bool) {
	return ParsePointer(t.Value)
}

// ParsePointer returns the xref named by v when v is exactly @X@. X may
// contain spaces but not another @.
func ParsePointer(v string) (string, bool) {
	if len(v) < 3 || v[0] != '@' || v[len(v)-1] != '@' {
		return "", false
	}
	inner := v[1 : len(v)-1]
	if strings.IndexByte(inner, '@') >= 0 {
		return "", false
	}
	return inner, true
}

// closesXref reports whether the @ before s[end] ends an xref, that is,
// whether end is the end of the line or a delimiter.
func closesXref(s string, end int) bool {
	return end == len(s) || isDelim(s[end])
}

// String renders the token in canonical line form.
func (t Token) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(t.Level)))
	if t.Xref != "" {
		b.WriteString(" @")
		b.WriteString(t.Xref)
		b.WriteByte('@')
	}
	b.WriteByte(' ')
	b.WriteString(t.Tag)
	if t.Value != "" {
		b.WriteByte(' ')
		b.WriteString(t.Value)
	}
	return b.String()
}

// LevelZero reports whether s starts a level-0 line without fully
// tokenizing it.
func LevelZero(s string) bool {
	i := skipDelim(s, 0)
	if i >= len(s) || s[i] != '0' {
		return false
	}
	for i < len(s) && s[i] == '0' {
		i++
	}
	return i == len(s) || isDelim(s[i]) || s[i] == '\r'
}

func skipDelim(s string, i int) int {
	for i < len(s) && isDelim(s[i]) {
		i++
	}
	return i
}

func isDelim(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isTagChar(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}
