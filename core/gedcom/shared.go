package gedcom

import (
	"github.com/FocuswithJustin/lineage/core/builder"
	"github.com/FocuswithJustin/lineage/core/cursor"
	"github.com/FocuswithJustin/lineage/core/line"
)

// Dispatch tables for the substructures shared between records.

var addressTable = builder.Table[Address]{
	"ADR1": builder.Scalar(func(a *Address) *string { return &a.Line1 }),
	"ADR2": builder.Scalar(func(a *Address) *string { return &a.Line2 }),
	"ADR3": builder.Scalar(func(a *Address) *string { return &a.Line3 }),
	"CITY": builder.Scalar(func(a *Address) *string { return &a.City }),
	"STAE": builder.Scalar(func(a *Address) *string { return &a.State }),
	"POST": builder.Scalar(func(a *Address) *string { return &a.PostalCode }),
	"CTRY": builder.Scalar(func(a *Address) *string { return &a.Country }),
}

func initAddress(a *Address, tok line.Token) { a.Text = tok.Value }

// withContact adds the ADDR, PHON, EMAIL, FAX and WWW handlers to t.
func withContact[T any](t builder.Table[T], get func(*T) *Contact) builder.Table[T] {
	t["ADDR"] = builder.NestedText(func(v *T) **Address { return &get(v).Address }, initAddress, addressTable)
	t["PHON"] = builder.Append(func(v *T) *[]string { return &get(v).Phones })
	t["EMAIL"] = builder.Append(func(v *T) *[]string { return &get(v).Emails })
	t["FAX"] = builder.Append(func(v *T) *[]string { return &get(v).Faxes })
	t["WWW"] = builder.Append(func(v *T) *[]string { return &get(v).Websites })
	return t
}

var dateTimeTable = builder.Table[DateTime]{
	"TIME": builder.Scalar(func(d *DateTime) *string { return &d.Time }),
}

func initDateTime(d *DateTime, tok line.Token) { d.Value = tok.Value }

// noteTable is empty: an inline note has only continuation lines, which
// NestedText merges before the table is consulted.
var noteTable = builder.Table[NoteStructure]{}

func initNote(n *NoteStructure, tok line.Token) {
	if x, ok := ParsePointer(tok.Value); ok {
		n.Xref = x
		return
	}
	n.Text = tok.Value
}

func notes[T any](field func(*T) *[]NoteStructure) builder.Handler[T] {
	return builder.AppendNestedText(field, initNote, noteTable)
}

var changeDateTable = builder.Table[ChangeDate]{
	"DATE": builder.Nested(func(c *ChangeDate) **DateTime { return &c.Date }, initDateTime, dateTimeTable),
	"NOTE": notes(func(c *ChangeDate) *[]NoteStructure { return &c.Notes }),
}

var referenceTable = builder.Table[UserReference]{
	"TYPE": builder.Scalar(func(r *UserReference) *string { return &r.Type }),
}

func initReference(r *UserReference, tok line.Token) { r.Number = tok.Value }

// withRecordInfo adds the REFN, RIN and CHAN handlers to t.
func withRecordInfo[T any](t builder.Table[T], get func(*T) *RecordInfo) builder.Table[T] {
	t["REFN"] = builder.AppendNested(func(v *T) *[]UserReference { return &get(v).References }, initReference, referenceTable)
	t["RIN"] = builder.Scalar(func(v *T) *string { return &get(v).RIN })
	t["CHAN"] = builder.Nested(func(v *T) **ChangeDate { return &get(v).Changed }, nil, changeDateTable)
	return t
}

var mediaFormatTable = builder.Table[MediaFormat]{
	"TYPE": builder.Scalar(func(f *MediaFormat) *string { return &f.Type }),
	"MEDI": builder.Scalar(func(f *MediaFormat) *string { return &f.Type }),
}

var mediaFileTable = builder.Table[MediaFile]{
	"FORM": builder.Nested(func(f *MediaFile) **MediaFormat { return &f.Format },
		func(f *MediaFormat, tok line.Token) { f.Name = tok.Value }, mediaFormatTable),
	"TITL": builder.Scalar(func(f *MediaFile) *string { return &f.Title }),
}

func initMediaFile(f *MediaFile, tok line.Token) { f.Path = tok.Value }

var mediaLinkTable = builder.Table[MediaLink]{
	"FILE": builder.AppendNested(func(m *MediaLink) *[]MediaFile { return &m.Files }, initMediaFile, mediaFileTable),
	"FORM": builder.Scalar(func(m *MediaLink) *string { return &m.Format }),
	"TITL": builder.Scalar(func(m *MediaLink) *string { return &m.Title }),
}

func initMediaLink(m *MediaLink, tok line.Token) {
	if x, ok := ParsePointer(tok.Value); ok {
		m.Xref = x
	}
}

func media[T any](field func(*T) *[]MediaLink) builder.Handler[T] {
	return builder.AppendNested(field, initMediaLink, mediaLinkTable)
}

var citedEventTable = builder.Table[CitedEvent]{
	"ROLE": builder.Scalar(func(e *CitedEvent) *string { return &e.Role }),
}

var citationDataTable = builder.Table[CitationData]{
	"DATE": builder.Scalar(func(d *CitationData) *string { return &d.Date }),
	"TEXT": builder.AppendText(func(d *CitationData) *[]string { return &d.Texts }),
}

var citationTable = builder.Table[Citation]{
	"PAGE": builder.Text(func(c *Citation) *string { return &c.Page }),
	"EVEN": builder.Nested(func(c *Citation) **CitedEvent { return &c.Event },
		func(e *CitedEvent, tok line.Token) { e.Type = tok.Value }, citedEventTable),
	"DATA": builder.Nested(func(c *Citation) **CitationData { return &c.Data }, nil, citationDataTable),
	"QUAY": builder.Scalar(func(c *Citation) *string { return &c.Quality }),
	"TEXT": builder.AppendText(func(c *Citation) *[]string { return &c.Texts }),
	"NOTE": notes(func(c *Citation) *[]NoteStructure { return &c.Notes }),
	"OBJE": media(func(c *Citation) *[]MediaLink { return &c.Media }),
}

func initCitation(c *Citation, tok line.Token) {
	if x, ok := ParsePointer(tok.Value); ok {
		c.Xref = x
		return
	}
	c.Description = tok.Value
}

func citations[T any](field func(*T) *[]Citation) builder.Handler[T] {
	return builder.AppendNestedText(field, initCitation, citationTable)
}

// eventDate stores the raw DATE value and, when it parses, the structured
// date. An unparseable date is kept raw without a warning.
func eventDate(c *cursor.Cursor, tok line.Token, e *Event) error {
	if _, err := c.Consume(); err != nil {
		return err
	}
	e.Date = tok.Value
	e.ParsedDate = parseDate(tok.Value)
	return builder.SkipChildren(c, tok.Level)
}
