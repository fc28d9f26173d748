// Package encoding detects the character set a GEDCOM file declares and
// normalizes the raw bytes to UTF-8 text.
package encoding

import (
	"bytes"
)

// ScanLimit is how much of the input Detect examines. The CHAR line always
// sits near the top of the header.
const ScanLimit = 4096

// Declared character set names, matched case-sensitively.
const (
	NameUTF8    = "UTF-8"
	NameUTF8Alt = "UTF8"
	NameASCII   = "ASCII"
	NameANSEL   = "ANSEL"
	NameANSI    = "ANSI"
	NameUnicode = "UNICODE"
)

// Effective decoder names.
const (
	UTF8        = "UTF-8"
	UTF16LE     = "UTF-16LE"
	UTF16BE     = "UTF-16BE"
	Windows1252 = "Windows-1252"
)

var charTag = []byte("1 CHAR")

// Declaration is what Detect learned from the head of the input.
type Declaration struct {
	Name      string // declared name, empty if none was found
	Found     bool
	UTF16     bool // the bytes look like UTF-16 (BOM or NUL interleaving)
	BigEndian bool
}

// Detect scans the first ScanLimit bytes of raw for a "1 CHAR name" line.
// For UTF-16 input the scan runs over the bytes with NULs removed, which
// is enough to read an ASCII declaration.
func Detect(raw []byte) Declaration {
	prefix := raw
	if len(prefix) > ScanLimit {
		prefix = prefix[:ScanLimit]
	}

	var d Declaration
	d.UTF16, d.BigEndian = sniffUTF16(prefix)
	if d.UTF16 {
		prefix = bytes.ReplaceAll(prefix, []byte{0}, nil)
	}
	d.Name, d.Found = findChar(prefix)
	return d
}

func sniffUTF16(b []byte) (utf16, bigEndian bool) {
	if len(b) < 2 {
		return false, false
	}
	switch {
	case b[0] == 0xFF && b[1] == 0xFE:
		return true, false
	case b[0] == 0xFE && b[1] == 0xFF:
		return true, true
	case b[0] == 0 && b[1] != 0:
		return true, true
	case b[0] != 0 && b[1] == 0:
		return true, false
	}
	return false, false
}

// findChar locates "1 CHAR" at the start of a line followed by a space or
// tab, and returns the trimmed rest of that line.
func findChar(b []byte) (string, bool) {
	for off := 0; off < len(b); {
		i := bytes.Index(b[off:], charTag)
		if i < 0 {
			return "", false
		}
		i += off
		off = i + len(charTag)

		if i > 0 && b[i-1] != '\n' && b[i-1] != '\r' && !isBOMTail(b, i) {
			continue
		}
		if off >= len(b) || (b[off] != ' ' && b[off] != '\t') {
			continue
		}
		rest := b[off:]
		if end := bytes.IndexAny(rest, "\r\n"); end >= 0 {
			rest = rest[:end]
		}
		return string(bytes.TrimSpace(rest)), true
	}
	return "", false
}

// isBOMTail reports whether a UTF-8 byte-order mark ends right before i.
func isBOMTail(b []byte, i int) bool {
	return i >= 3 && b[i-3] == 0xEF && b[i-2] == 0xBB && b[i-1] == 0xBF
}
