package line

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Token
	}{
		{"header", "0 HEAD", Token{Level: 0, Tag: "HEAD"}},
		{"value", "1 CHAR UTF-8", Token{Level: 1, Tag: "CHAR", Value: "UTF-8"}},
		{"value with spaces", "1 SOUR Ancestry.com Family Trees", Token{Level: 1, Tag: "SOUR", Value: "Ancestry.com Family Trees"}},
		{"pointer value", "1 SUBM @U1@", Token{Level: 1, Tag: "SUBM", Value: "@U1@"}},
		{"record xref", "0 @U1@ SUBM", Token{Level: 0, Xref: "U1", Tag: "SUBM"}},
		{"xref and value", "0 @N1@ NOTE This is a note", Token{Level: 0, Xref: "N1", Tag: "NOTE", Value: "This is a note"}},
		{"deep level", "15 DATA Deep nested", Token{Level: 15, Tag: "DATA", Value: "Deep nested"}},
		{"extension tag", "1 _MYID 12345", Token{Level: 1, Tag: "_MYID", Value: "12345"}},
		{"underscore inside tag", "1 UNKNOWN_TAG Some value", Token{Level: 1, Tag: "UNKNOWN_TAG", Value: "Some value"}},
		{"tabs", "1\tNAME\tTest", Token{Level: 1, Tag: "NAME", Value: "Test"}},
		{"trailing space kept in value", "1 NOTE Hello ", Token{Level: 1, Tag: "NOTE", Value: "Hello "}},
		{"trailing space after tag", "0 HEAD   ", Token{Level: 0, Tag: "HEAD"}},
		{"trailing CR", "1 NAME Test\r", Token{Level: 1, Tag: "NAME", Value: "Test"}},
		{"multiple spaces inside value", "1 NAME Test    With    Spaces", Token{Level: 1, Tag: "NAME", Value: "Test    With    Spaces"}},
		{"value containing at signs", "1 NOTE Line with @special@ characters!", Token{Level: 1, Tag: "NOTE", Value: "Line with @special@ characters!"}},
		{"unterminated xref", "0 @INVALID INDI", Token{Level: 0, Xref: "INVALID", Tag: "INDI"}},
		{"xref with space", "0 @I 1@ INDI", Token{Level: 0, Xref: "I 1", Tag: "INDI"}},
		{"xref with space and value", "0 @N 1@ NOTE text", Token{Level: 0, Xref: "N 1", Tag: "NOTE", Value: "text"}},
		{"unterminated xref before pointer", "0 @INVALID SOUR @S1@", Token{Level: 0, Xref: "INVALID", Tag: "SOUR", Value: "@S1@"}},
		{"leading whitespace", "  2 DATE 1 JAN 1900", Token{Level: 2, Tag: "DATE", Value: "1 JAN 1900"}},
		{"unicode value", "1 NAME José María /García/", Token{Level: 1, Tag: "NAME", Value: "José María /García/"}},
		{"max tag length", "1 " + strings.Repeat("A", MaxTagLength), Token{Level: 1, Tag: strings.Repeat("A", MaxTagLength)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrMalformedLevel},
		{"no level", "HEAD", ErrMalformedLevel},
		{"level glued to tag", "0HEAD", ErrMalformedLevel},
		{"level overflow", "256 NAME x", ErrMalformedLevel},
		{"level only", "1", ErrMissingTag},
		{"level and space", "1 ", ErrMissingTag},
		{"bare underscore", "1 _ value", ErrMissingTag},
		{"punctuation tag", "1 /Doe/", ErrMissingTag},
		{"tag too long", "1 " + strings.Repeat("B", MaxTagLength+1), ErrTagTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Tokenize(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	inputs := []string{
		"0 HEAD",
		"0 @I1@ INDI",
		"2 CONC World",
		"3 _CUSTOM value with  spaces ",
		"1 SUBM @U1@",
	}
	for _, in := range inputs {
		first, err1 := Tokenize(in)
		second, err2 := Tokenize(in)
		if first != second || err1 != err2 {
			t.Errorf("Tokenize(%q) not deterministic: %+v/%v vs %+v/%v", in, first, err1, second, err2)
		}
	}
}

func TestTokenizeAllocationFree(t *testing.T) {
	in := "0 @I1@ INDI some value"
	allocs := testing.AllocsPerRun(100, func() {
		if _, err := Tokenize(in); err != nil {
			t.Fatal(err)
		}
	})
	if allocs != 0 {
		t.Errorf("Tokenize allocated %.0f times per run, want 0", allocs)
	}
}

func TestPointer(t *testing.T) {
	tests := []struct {
		value string
		want  string
		ok    bool
	}{
		{"@I1@", "I1", true},
		{"@F23@", "F23", true},
		{"I1", "", false},
		{"@@", "", false},
		{"@I1", "", false},
		{"@a@ and @b@", "", false},
		{"@I 1@", "I 1", true},
		{"@I@1@", "", false},
	}
	for _, tt := range tests {
		got, ok := Token{Value: tt.value}.Pointer()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Pointer(%q) = %q, %v; want %q, %v", tt.value, got, ok, tt.want, tt.ok)
		}
		if (Token{Value: tt.value}).IsPointer() != tt.ok {
			t.Errorf("IsPointer(%q) = %v, want %v", tt.value, !tt.ok, tt.ok)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Level: 0, Tag: "HEAD"}, "0 HEAD"},
		{Token{Level: 0, Xref: "I1", Tag: "INDI"}, "0 @I1@ INDI"},
		{Token{Level: 2, Tag: "CONT", Value: "Bye"}, "2 CONT Bye"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		back, err := Tokenize(tt.want)
		if err != nil || back != tt.tok {
			t.Errorf("Tokenize(String()) = %+v, %v; want %+v", back, err, tt.tok)
		}
	}
}

func TestLevelZero(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0 HEAD", true},
		{"0\t@I1@ INDI", true},
		{"0", true},
		{"00 TRLR", true},
		{"0 TRLR\r", true},
		{"1 NAME x", false},
		{"10 NAME x", false},
		{"0HEAD", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := LevelZero(tt.in); got != tt.want {
			t.Errorf("LevelZero(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsContinuation(t *testing.T) {
	for tag, want := range map[string]bool{"CONC": true, "CONT": true, "NOTE": false, "conc": false} {
		if got := IsContinuation(tag); got != want {
			t.Errorf("IsContinuation(%q) = %v, want %v", tag, got, want)
		}
	}
}
