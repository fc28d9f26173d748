// Package date parses GEDCOM date values: exact dates, approximations,
// ranges, periods, interpreted dates and free-text phrases.
package date

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Kind classifies a date value.
type Kind int

const (
	Exact Kind = iota
	About
	Calculated
	Estimated
	Before
	After
	Between
	From
	To
	Period
	Interpreted
	Phrase
)

var kindNames = [...]string{
	Exact:       "exact",
	About:       "about",
	Calculated:  "calculated",
	Estimated:   "estimated",
	Before:      "before",
	After:       "after",
	Between:     "between",
	From:        "from",
	To:          "to",
	Period:      "period",
	Interpreted: "interpreted",
	Phrase:      "phrase",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText lets reports print kinds by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Gregorian is the calendar assumed when no escape is given.
const Gregorian = "GREGORIAN"

// Date is a single calendar date. Day and Month are zero/empty when the
// date is less precise.
type Date struct {
	Day      int    `json:"day,omitempty" yaml:"day,omitempty"`
	Month    string `json:"month,omitempty" yaml:"month,omitempty"`
	Year     int    `json:"year" yaml:"year"`
	DualYear string `json:"dual_year,omitempty" yaml:"dual_year,omitempty"`
	BC       bool   `json:"bc,omitempty" yaml:"bc,omitempty"`
}

func (d Date) String() string {
	var b strings.Builder
	if d.Day > 0 {
		b.WriteString(strconv.Itoa(d.Day))
		b.WriteByte(' ')
	}
	if d.Month != "" {
		b.WriteString(d.Month)
		b.WriteByte(' ')
	}
	b.WriteString(strconv.Itoa(d.Year))
	if d.DualYear != "" {
		b.WriteByte('/')
		b.WriteString(d.DualYear)
	}
	if d.BC {
		b.WriteString(" B.C.")
	}
	return b.String()
}

// Value is a parsed DATE line.
//
// Start holds the date for Exact, About, Calculated, Estimated, Before,
// After, From and Interpreted values and the first bound of Between and
// Period. End holds the second bound of Between and Period and the date of
// a bare To.
type Value struct {
	Kind     Kind   `json:"kind" yaml:"kind"`
	Calendar string `json:"calendar,omitempty" yaml:"calendar,omitempty"`
	Start    *Date  `json:"start,omitempty" yaml:"start,omitempty"`
	End      *Date  `json:"end,omitempty" yaml:"end,omitempty"`
	Phrase   string `json:"phrase,omitempty" yaml:"phrase,omitempty"`
	Raw      string `json:"raw" yaml:"raw"`
}

// Year returns a year suitable for sorting, negative for B.C. dates and 0
// when the value carries no date.
func (v *Value) Year() int {
	d := v.Start
	if d == nil {
		d = v.End
	}
	if d == nil {
		return 0
	}
	if d.BC {
		return -d.Year
	}
	return d.Year
}

// String renders the value in canonical GEDCOM form.
func (v *Value) String() string {
	cal := ""
	if v.Calendar != "" && v.Calendar != Gregorian {
		cal = "@#D" + v.Calendar + "@ "
	}
	start, end := "", ""
	if v.Start != nil {
		start = cal + v.Start.String()
	}
	if v.End != nil {
		end = cal + v.End.String()
	}

	switch v.Kind {
	case About:
		return "ABT " + start
	case Calculated:
		return "CAL " + start
	case Estimated:
		return "EST " + start
	case Before:
		return "BEF " + start
	case After:
		return "AFT " + start
	case Between:
		return "BET " + start + " AND " + end
	case From:
		return "FROM " + start
	case To:
		return "TO " + end
	case Period:
		return "FROM " + start + " TO " + end
	case Interpreted:
		if v.Phrase == "" {
			return "INT " + start
		}
		return "INT " + start + " (" + v.Phrase + ")"
	case Phrase:
		return "(" + v.Phrase + ")"
	}
	return start
}

var dateLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escape", Pattern: `@#D[A-Z ]+@`},
	{Name: "Phrase", Pattern: `\([^)]*\)`},
	{Name: "Era", Pattern: `(?i:B\.C\.|BC\b)`},
	{Name: "Month", Pattern: `(?i:JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC|VEND|BRUM|FRIM|NIVO|PLUV|VENT|GERM|FLOR|PRAI|MESS|THER|FRUC|COMP|TSH|CSH|KSL|TVT|SHV|ADR|ADS|NSN|IYR|SVN|TMZ|AAV|ELL)\b`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Whitespace", Pattern: `\s+`},
})

//nolint:govet // participle grammar tags are not standard struct tags
type grammar struct {
	Phrase    *string      `  @Phrase`
	Interp    *interpreted `| "INT" @@`
	Between   *between     `| "BET" @@`
	Period    *period      `| "FROM" @@`
	To        *calDate     `| "TO" @@`
	Qualified *qualified   `| @@`
	Exact     *calDate     `| @@`
}

//nolint:govet
type interpreted struct {
	Date   *calDate `@@`
	Phrase *string  `@Phrase?`
}

//nolint:govet
type between struct {
	Start *calDate `@@`
	End   *calDate `"AND" @@`
}

//nolint:govet
type period struct {
	Start *calDate `@@`
	End   *calDate `( "TO" @@ )?`
}

//nolint:govet
type qualified struct {
	Qualifier string   `@("ABT" | "CAL" | "EST" | "BEF" | "AFT")`
	Date      *calDate `@@`
}

//nolint:govet
type calDate struct {
	Calendar string    `@Escape?`
	DayMonth *dayMonth `@@?`
	Year     int       `@Int`
	Dual     string    `( "/" @Int )?`
	Era      string    `@Era?`
}

//nolint:govet
type dayMonth struct {
	Day   int    `@Int?`
	Month string `@Month`
}

var dateParser = participle.MustBuild[grammar](
	participle.Lexer(dateLexer),
	participle.Elide("Whitespace"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(3),
)

var qualifierKinds = map[string]Kind{
	"ABT": About,
	"CAL": Calculated,
	"EST": Estimated,
	"BEF": Before,
	"AFT": After,
}

// Parse parses a DATE value. Surrounding whitespace is ignored; Raw keeps
// the input as given.
func Parse(s string) (*Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("empty date")
	}

	g, err := dateParser.ParseString("", trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}

	v := &Value{Raw: s}
	switch {
	case g.Phrase != nil:
		v.Kind = Phrase
		v.Phrase = unparen(*g.Phrase)
	case g.Interp != nil:
		v.Kind = Interpreted
		v.Start = v.take(g.Interp.Date)
		if g.Interp.Phrase != nil {
			v.Phrase = unparen(*g.Interp.Phrase)
		}
	case g.Between != nil:
		v.Kind = Between
		v.Start = v.take(g.Between.Start)
		v.End = v.take(g.Between.End)
	case g.Period != nil:
		v.Kind = From
		v.Start = v.take(g.Period.Start)
		if g.Period.End != nil {
			v.Kind = Period
			v.End = v.take(g.Period.End)
		}
	case g.To != nil:
		v.Kind = To
		v.End = v.take(g.To)
	case g.Qualified != nil:
		v.Kind = qualifierKinds[strings.ToUpper(g.Qualified.Qualifier)]
		v.Start = v.take(g.Qualified.Date)
	default:
		v.Kind = Exact
		v.Start = v.take(g.Exact)
	}
	if v.Calendar == "" && v.Kind != Phrase {
		v.Calendar = Gregorian
	}
	return v, nil
}

// take converts a grammar date, recording the first calendar escape seen.
func (v *Value) take(c *calDate) *Date {
	if c == nil {
		return nil
	}
	if c.Calendar != "" && v.Calendar == "" {
		v.Calendar = strings.TrimSuffix(strings.TrimPrefix(c.Calendar, "@#D"), "@")
	}
	d := &Date{Year: c.Year, DualYear: c.Dual, BC: c.Era != ""}
	if c.DayMonth != nil {
		d.Day = c.DayMonth.Day
		d.Month = strings.ToUpper(c.DayMonth.Month)
	}
	return d
}

func unparen(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
}
