package encoding

import (
	"bytes"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/FocuswithJustin/lineage/core/errors"
)

const bom = "\ufeff"

var utf8BOM = []byte(bom)

// Info describes how the input was decoded.
type Info struct {
	Declared     string `json:"declared,omitempty" yaml:"declared,omitempty"`
	Effective    string `json:"effective" yaml:"effective"`
	Approximated bool   `json:"approximated,omitempty" yaml:"approximated,omitempty"` // ANSEL read as Windows-1252
	Fallback     bool   `json:"fallback,omitempty" yaml:"fallback,omitempty"`         // unrecognized name
	Mismatch     bool   `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`         // UNICODE declared on 8-bit content
	Invalid      bool   `json:"invalid,omitempty" yaml:"invalid,omitempty"`           // bytes replaced with U+FFFD
}

// Result is the normalized text together with its Info.
type Result struct {
	Info
	Text string
}

// Warnings returns one *errors.EncodingError per condition that made the
// decoded text differ from what was declared. A valid UTF-8 file declaring
// UTF-8, or declaring nothing, has none.
func (i Info) Warnings() []error {
	var out []error
	switch {
	case i.Approximated:
		out = append(out, errors.NewEncoding(i.Declared, i.Effective, "ANSEL is approximated"))
	case i.Fallback:
		out = append(out, errors.NewEncoding(i.Declared, i.Effective, "unrecognized encoding name"))
	case i.Mismatch:
		out = append(out, errors.NewEncoding(i.Declared, i.Effective, "content is not UTF-16"))
	}
	if i.Invalid {
		out = append(out, errors.NewEncoding(i.Declared, i.Effective, "invalid byte sequences replaced with U+FFFD"))
	}
	return out
}

// Decode detects the declared encoding of raw and decodes all of it to
// UTF-8. Undecodable bytes are replaced and flagged in Info.Invalid rather
// than failing. A leading byte-order mark is removed.
func Decode(raw []byte) (*Result, error) {
	d := Detect(raw)
	info := choose(d)

	var (
		text string
		err  error
	)
	switch info.Effective {
	case UTF8:
		info.Invalid = !utf8.Valid(raw)
		text, err = apply(unicode.UTF8.NewDecoder(), raw)
	case UTF16LE, UTF16BE:
		info.Invalid = !validUTF16(raw, info.Effective == UTF16BE)
		text, err = apply(utf16Encoding(info.Effective == UTF16BE).NewDecoder(), raw)
	default:
		// Windows-1252 would turn a UTF-8 byte-order mark into "ï»¿".
		text, err = apply(charmap.Windows1252.NewDecoder(), bytes.TrimPrefix(raw, utf8BOM))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", info.Effective)
	}

	return &Result{Info: info, Text: strings.TrimPrefix(text, bom)}, nil
}

// choose maps a declaration onto a decoder.
func choose(d Declaration) Info {
	info := Info{Declared: d.Name}
	utf16Name := UTF16LE
	if d.BigEndian {
		utf16Name = UTF16BE
	}

	if !d.Found {
		info.Effective = UTF8
		if d.UTF16 {
			info.Effective = utf16Name
		}
		return info
	}

	switch d.Name {
	case NameUTF8, NameUTF8Alt, NameASCII:
		info.Effective = UTF8
		if d.UTF16 {
			info.Effective = utf16Name
		}
	case NameUnicode:
		if d.UTF16 {
			info.Effective = utf16Name
		} else {
			info.Effective = UTF8
			info.Mismatch = true
		}
	case NameANSI:
		info.Effective = Windows1252
	case NameANSEL:
		info.Effective = Windows1252
		info.Approximated = true
	default:
		info.Effective = Windows1252
		info.Fallback = true
	}
	return info
}

func utf16Encoding(bigEndian bool) encoding.Encoding {
	if bigEndian {
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
}

func apply(t transform.Transformer, raw []byte) (string, error) {
	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// validUTF16 reports whether b is an even number of bytes forming well
// paired surrogates.
func validUTF16(b []byte, bigEndian bool) bool {
	if len(b)%2 != 0 {
		return false
	}
	pending := false
	for i := 0; i+1 < len(b); i += 2 {
		var u uint16
		if bigEndian {
			u = uint16(b[i])<<8 | uint16(b[i+1])
		} else {
			u = uint16(b[i+1])<<8 | uint16(b[i])
		}
		r := rune(u)
		if !utf16.IsSurrogate(r) {
			if pending {
				return false
			}
			continue
		}
		high := r < 0xDC00
		if high == pending {
			return false
		}
		pending = high
	}
	return !pending
}
