package date

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  *Value
	}{
		{
			input: "1 JAN 1900",
			want:  &Value{Kind: Exact, Calendar: Gregorian, Start: &Date{Day: 1, Month: "JAN", Year: 1900}},
		},
		{
			input: "JAN 1900",
			want:  &Value{Kind: Exact, Calendar: Gregorian, Start: &Date{Month: "JAN", Year: 1900}},
		},
		{
			input: "1900",
			want:  &Value{Kind: Exact, Calendar: Gregorian, Start: &Date{Year: 1900}},
		},
		{
			input: "11 FEB 1699/00",
			want:  &Value{Kind: Exact, Calendar: Gregorian, Start: &Date{Day: 11, Month: "FEB", Year: 1699, DualYear: "00"}},
		},
		{
			input: "44 B.C.",
			want:  &Value{Kind: Exact, Calendar: Gregorian, Start: &Date{Year: 44, BC: true}},
		},
		{
			input: "@#DJULIAN@ 25 DEC 1066",
			want:  &Value{Kind: Exact, Calendar: "JULIAN", Start: &Date{Day: 25, Month: "DEC", Year: 1066}},
		},
		{
			input: "@#DFRENCH R@ 1 VEND 2",
			want:  &Value{Kind: Exact, Calendar: "FRENCH R", Start: &Date{Day: 1, Month: "VEND", Year: 2}},
		},
		{
			input: "ABT 1850",
			want:  &Value{Kind: About, Calendar: Gregorian, Start: &Date{Year: 1850}},
		},
		{
			input: "CAL 1850",
			want:  &Value{Kind: Calculated, Calendar: Gregorian, Start: &Date{Year: 1850}},
		},
		{
			input: "EST MAR 1850",
			want:  &Value{Kind: Estimated, Calendar: Gregorian, Start: &Date{Month: "MAR", Year: 1850}},
		},
		{
			input: "BEF 1900",
			want:  &Value{Kind: Before, Calendar: Gregorian, Start: &Date{Year: 1900}},
		},
		{
			input: "AFT 2 MAY 1900",
			want:  &Value{Kind: After, Calendar: Gregorian, Start: &Date{Day: 2, Month: "MAY", Year: 1900}},
		},
		{
			input: "BET 1900 AND 1910",
			want:  &Value{Kind: Between, Calendar: Gregorian, Start: &Date{Year: 1900}, End: &Date{Year: 1910}},
		},
		{
			input: "FROM 1900",
			want:  &Value{Kind: From, Calendar: Gregorian, Start: &Date{Year: 1900}},
		},
		{
			input: "TO 1910",
			want:  &Value{Kind: To, Calendar: Gregorian, End: &Date{Year: 1910}},
		},
		{
			input: "FROM 1 JAN 1900 TO 31 DEC 1910",
			want: &Value{Kind: Period, Calendar: Gregorian,
				Start: &Date{Day: 1, Month: "JAN", Year: 1900}, End: &Date{Day: 31, Month: "DEC", Year: 1910}},
		},
		{
			input: "INT 1900 (about the turn of the century)",
			want: &Value{Kind: Interpreted, Calendar: Gregorian, Start: &Date{Year: 1900},
				Phrase: "about the turn of the century"},
		},
		{
			input: "(Stillborn)",
			want:  &Value{Kind: Phrase, Phrase: "Stillborn"},
		},
		{
			input: "1 Jan 1900",
			want:  &Value{Kind: Exact, Calendar: Gregorian, Start: &Date{Day: 1, Month: "JAN", Year: 1900}},
		},
		{
			input: "abt dec 1850",
			want:  &Value{Kind: About, Calendar: Gregorian, Start: &Date{Month: "DEC", Year: 1850}},
		},
		{
			input: "Bet 1900 and 1905",
			want:  &Value{Kind: Between, Calendar: Gregorian, Start: &Date{Year: 1900}, End: &Date{Year: 1905}},
		},
		{
			input: "44 b.c.",
			want:  &Value{Kind: Exact, Calendar: Gregorian, Start: &Date{Year: 44, BC: true}},
		},
		{
			input: "  1900  ",
			want:  &Value{Kind: Exact, Calendar: Gregorian, Start: &Date{Year: 1900}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			tt.want.Raw = tt.input
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"sometime",
		"JAN",
		"BET 1900",
		"1900 extra",
		"ABT",
	} {
		if v, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) = %+v, want error", in, v)
		}
	}
}

func TestValueString(t *testing.T) {
	for _, in := range []string{
		"1 JAN 1900",
		"ABT 1850",
		"BET 1900 AND 1910",
		"FROM 1 JAN 1900 TO 31 DEC 1910",
		"TO 1910",
		"INT 1900 (circa)",
		"(Stillborn)",
		"@#DJULIAN@ 25 DEC 1066",
		"11 FEB 1699/00",
		"44 B.C.",
	} {
		v, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", in, err)
		}
		if got := v.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}

func TestValueYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1 JAN 1900", 1900},
		{"TO 1910", 1910},
		{"BET 1900 AND 1910", 1900},
		{"44 B.C.", -44},
		{"(unknown)", 0},
	}
	for _, tt := range tests {
		v, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.input, err)
		}
		if got := v.Year(); got != tt.want {
			t.Errorf("Year(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := Between.String(); got != "between" {
		t.Errorf("Between.String() = %q", got)
	}
	if got := Kind(99).String(); got != "unknown" {
		t.Errorf("Kind(99).String() = %q", got)
	}
}
