package encoding

import (
	"errors"
	"strings"
	"testing"

	gerrors "github.com/FocuswithJustin/lineage/core/errors"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		wantName  string
		wantFound bool
		wantUTF16 bool
		wantBE    bool
	}{
		{"utf-8", []byte("0 HEAD\n1 CHAR UTF-8\n0 TRLR\n"), "UTF-8", true, false, false},
		{"tab delimiter", []byte("0 HEAD\n1 CHAR\tANSEL\n"), "ANSEL", true, false, false},
		{"crlf and trailing space", []byte("0 HEAD\r\n1 CHAR ANSI  \r\n"), "ANSI", true, false, false},
		{"utf-8 bom", []byte("\xEF\xBB\xBF1 CHAR UTF8\n"), "UTF8", true, false, false},
		{"no declaration", []byte("0 HEAD\n1 GEDC\n2 VERS 5.5.1\n"), "", false, false, false},
		{"nested CHAR ignored", []byte("0 HEAD\n2 CHAR X\n"), "", false, false, false},
		{"CHARSET not a match", []byte("0 HEAD\n1 CHARSET X\n"), "", false, false, false},
		{"empty", nil, "", false, false, false},
		{"utf-16le bom", utf16le("\ufeff0 HEAD\n1 CHAR UNICODE\n"), "UNICODE", true, true, false},
		{"utf-16be bom", utf16be("\ufeff0 HEAD\n1 CHAR UNICODE\n"), "UNICODE", true, true, true},
		{"utf-16le no bom", utf16le("0 HEAD\n1 CHAR UNICODE\n"), "UNICODE", true, true, false},
		{"utf-16be no bom", utf16be("0 HEAD\n1 CHAR UNICODE\n"), "UNICODE", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Detect(tt.input)
			if d.Name != tt.wantName || d.Found != tt.wantFound {
				t.Errorf("Detect() name = %q found = %v, want %q %v", d.Name, d.Found, tt.wantName, tt.wantFound)
			}
			if d.UTF16 != tt.wantUTF16 || d.BigEndian != tt.wantBE {
				t.Errorf("Detect() utf16 = %v be = %v, want %v %v", d.UTF16, d.BigEndian, tt.wantUTF16, tt.wantBE)
			}
		})
	}
}

func TestDetectScanLimit(t *testing.T) {
	padding := strings.Repeat("1 NOTE padding\n", ScanLimit/15+1)
	d := Detect([]byte("0 HEAD\n" + padding + "1 CHAR ANSEL\n"))
	if d.Found {
		t.Errorf("Detect() found %q beyond the scan limit", d.Name)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name         string
		input        []byte
		wantText     string
		wantEff      string
		wantWarnings int
	}{
		{
			name:     "valid utf-8",
			input:    []byte("0 HEAD\n1 CHAR UTF-8\n1 NOTE José\n"),
			wantText: "0 HEAD\n1 CHAR UTF-8\n1 NOTE José\n",
			wantEff:  UTF8,
		},
		{
			name:     "no declaration defaults to utf-8",
			input:    []byte("0 HEAD\n0 TRLR\n"),
			wantText: "0 HEAD\n0 TRLR\n",
			wantEff:  UTF8,
		},
		{
			name:     "ascii",
			input:    []byte("0 HEAD\n1 CHAR ASCII\n"),
			wantText: "0 HEAD\n1 CHAR ASCII\n",
			wantEff:  UTF8,
		},
		{
			name:     "bom stripped",
			input:    []byte("\xEF\xBB\xBF0 HEAD\n1 CHAR UTF-8\n"),
			wantText: "0 HEAD\n1 CHAR UTF-8\n",
			wantEff:  UTF8,
		},
		{
			name:         "bom before ansel",
			input:        []byte("\xEF\xBB\xBF0 HEAD\n1 CHAR ANSEL\n"),
			wantText:     "0 HEAD\n1 CHAR ANSEL\n",
			wantEff:      Windows1252,
			wantWarnings: 1,
		},
		{
			name:     "bom before ansi",
			input:    []byte("\xEF\xBB\xBF0 HEAD\n1 CHAR ANSI\n1 NOTE Jos\xE9\n"),
			wantText: "0 HEAD\n1 CHAR ANSI\n1 NOTE José\n",
			wantEff:  Windows1252,
		},
		{
			name:     "ansi",
			input:    []byte("0 HEAD\n1 CHAR ANSI\n1 NOTE Jos\xE9\n"),
			wantText: "0 HEAD\n1 CHAR ANSI\n1 NOTE José\n",
			wantEff:  Windows1252,
		},
		{
			name:         "ansel approximated",
			input:        []byte("0 HEAD\n1 CHAR ANSEL\n1 NOTE Jos\xE9\n"),
			wantText:     "0 HEAD\n1 CHAR ANSEL\n1 NOTE José\n",
			wantEff:      Windows1252,
			wantWarnings: 1,
		},
		{
			name:         "unrecognized name falls back",
			input:        []byte("0 HEAD\n1 CHAR IBMPC\n1 NOTE \x80\n"),
			wantText:     "0 HEAD\n1 CHAR IBMPC\n1 NOTE €\n",
			wantEff:      Windows1252,
			wantWarnings: 1,
		},
		{
			name:         "lower-case name is unrecognized",
			input:        []byte("0 HEAD\n1 CHAR utf-8\n"),
			wantText:     "0 HEAD\n1 CHAR utf-8\n",
			wantEff:      Windows1252,
			wantWarnings: 1,
		},
		{
			name:         "invalid utf-8",
			input:        []byte("0 HEAD\n1 CHAR UTF-8\n1 NOTE a\xFFb\n"),
			wantText:     "0 HEAD\n1 CHAR UTF-8\n1 NOTE a\ufffdb\n",
			wantEff:      UTF8,
			wantWarnings: 1,
		},
		{
			name:     "utf-16le",
			input:    utf16le("\ufeff0 HEAD\n1 CHAR UNICODE\n1 NOTE Zoë\n"),
			wantText: "0 HEAD\n1 CHAR UNICODE\n1 NOTE Zoë\n",
			wantEff:  UTF16LE,
		},
		{
			name:     "utf-16be",
			input:    utf16be("\ufeff0 HEAD\n1 CHAR UNICODE\n"),
			wantText: "0 HEAD\n1 CHAR UNICODE\n",
			wantEff:  UTF16BE,
		},
		{
			name:         "unicode declared on 8-bit content",
			input:        []byte("0 HEAD\n1 CHAR UNICODE\n"),
			wantText:     "0 HEAD\n1 CHAR UNICODE\n",
			wantEff:      UTF8,
			wantWarnings: 1,
		},
		{
			name:    "empty",
			input:   nil,
			wantEff: UTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if res.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", res.Text, tt.wantText)
			}
			if res.Effective != tt.wantEff {
				t.Errorf("Effective = %q, want %q", res.Effective, tt.wantEff)
			}
			warnings := res.Warnings()
			if len(warnings) != tt.wantWarnings {
				t.Errorf("Warnings() = %v, want %d entries", warnings, tt.wantWarnings)
			}
			for _, w := range warnings {
				if !errors.Is(w, gerrors.ErrEncoding) {
					t.Errorf("warning %v does not wrap ErrEncoding", w)
				}
			}
		})
	}
}

func TestANSELWarningNamesDeclared(t *testing.T) {
	res, err := Decode([]byte("0 HEAD\n1 CHAR ANSEL\n0 TRLR\n"))
	if err != nil {
		t.Fatal(err)
	}
	warnings := res.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("Warnings() = %v, want 1", warnings)
	}
	var ee *gerrors.EncodingError
	if !errors.As(warnings[0], &ee) {
		t.Fatalf("warning type %T, want *EncodingError", warnings[0])
	}
	if ee.Declared != "ANSEL" || ee.Effective != Windows1252 {
		t.Errorf("EncodingError = %+v", ee)
	}
}

func TestValidUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want bool
	}{
		{"empty", nil, true},
		{"odd length", []byte{0x41, 0x00, 0x42}, false},
		{"pair", []byte{0x3D, 0xD8, 0x00, 0xDE}, true},
		{"lone high", []byte{0x3D, 0xD8, 0x41, 0x00}, false},
		{"lone low", []byte{0x00, 0xDE}, false},
		{"trailing high", []byte{0x41, 0x00, 0x3D, 0xD8}, false},
	}
	for _, tt := range tests {
		if got := validUTF16(tt.in, false); got != tt.want {
			t.Errorf("%s: validUTF16() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func utf16le(s string) []byte {
	var b []byte
	for _, u := range encodeUTF16(s) {
		b = append(b, byte(u), byte(u>>8))
	}
	return b
}

func utf16be(s string) []byte {
	var b []byte
	for _, u := range encodeUTF16(s) {
		b = append(b, byte(u>>8), byte(u))
	}
	return b
}

func encodeUTF16(s string) []uint16 {
	var out []uint16
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			out = append(out, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
			continue
		}
		out = append(out, uint16(r))
	}
	return out
}
