package gedcom

import (
	"github.com/FocuswithJustin/lineage/core/builder"
	"github.com/FocuswithJustin/lineage/core/cursor"
	"github.com/FocuswithJustin/lineage/core/line"
)

var sourceEventTable = builder.Table[SourceEvent]{
	"DATE": builder.Scalar(func(e *SourceEvent) *string { return &e.Date }),
	"PLAC": builder.Scalar(func(e *SourceEvent) *string { return &e.Place }),
}

var sourceDataTable = builder.Table[SourceData]{
	"EVEN": builder.AppendNested(func(d *SourceData) *[]SourceEvent { return &d.Events },
		func(e *SourceEvent, tok line.Token) { e.Types = tok.Value }, sourceEventTable),
	"AGNC": builder.Scalar(func(d *SourceData) *string { return &d.Agency }),
	"NOTE": notes(func(d *SourceData) *[]NoteStructure { return &d.Notes }),
}

var callNumberTable = builder.Table[CallNumber]{
	"MEDI": builder.Scalar(func(n *CallNumber) *string { return &n.Media }),
}

var repositoryCitationTable = builder.Table[RepositoryCitation]{
	"CALN": builder.AppendNested(func(r *RepositoryCitation) *[]CallNumber { return &r.CallNumbers },
		func(n *CallNumber, tok line.Token) { n.Number = tok.Value }, callNumberTable),
	"NOTE": notes(func(r *RepositoryCitation) *[]NoteStructure { return &r.Notes }),
}

var sourceTable = withRecordInfo(builder.Table[SourceRecord]{
	"DATA": builder.Nested(func(s *SourceRecord) **SourceData { return &s.Data }, nil, sourceDataTable),
	"AUTH": builder.Text(func(s *SourceRecord) *string { return &s.Author }),
	"TITL": builder.Text(func(s *SourceRecord) *string { return &s.Title }),
	"ABBR": builder.Text(func(s *SourceRecord) *string { return &s.Abbreviation }),
	"PUBL": builder.Text(func(s *SourceRecord) *string { return &s.Publication }),
	"TEXT": builder.Text(func(s *SourceRecord) *string { return &s.Text }),
	"REPO": builder.AppendNested(func(s *SourceRecord) *[]RepositoryCitation { return &s.Repositories },
		func(r *RepositoryCitation, tok line.Token) { r.Xref, _ = ParsePointer(tok.Value) }, repositoryCitationTable),
	"NOTE": notes(func(s *SourceRecord) *[]NoteStructure { return &s.Notes }),
	"OBJE": media(func(s *SourceRecord) *[]MediaLink { return &s.Media }),
}, func(s *SourceRecord) *RecordInfo { return &s.RecordInfo })

var repositoryTable = withRecordInfo(withContact(builder.Table[Repository]{
	"NAME": builder.Scalar(func(r *Repository) *string { return &r.Name }),
	"NOTE": notes(func(r *Repository) *[]NoteStructure { return &r.Notes }),
}, func(r *Repository) *Contact { return &r.Contact }),
	func(r *Repository) *RecordInfo { return &r.RecordInfo })

// noteRecordTable covers the children of a NOTE record after its text and
// continuation lines have been merged.
var noteRecordTable = withRecordInfo(builder.Table[NoteRecord]{
	"SOUR": citations(func(n *NoteRecord) *[]Citation { return &n.Citations }),
}, func(n *NoteRecord) *RecordInfo { return &n.RecordInfo })

var multimediaTable = withRecordInfo(builder.Table[Multimedia]{
	"FILE": builder.AppendNested(func(m *Multimedia) *[]MediaFile { return &m.Files }, initMediaFile, mediaFileTable),
	"NOTE": notes(func(m *Multimedia) *[]NoteStructure { return &m.Notes }),
	"SOUR": citations(func(m *Multimedia) *[]Citation { return &m.Citations }),
}, func(m *Multimedia) *RecordInfo { return &m.RecordInfo })

var submitterTable = withRecordInfo(withContact(builder.Table[Submitter]{
	"NAME": builder.Scalar(func(s *Submitter) *string { return &s.Name }),
	"OBJE": media(func(s *Submitter) *[]MediaLink { return &s.Media }),
	"LANG": builder.Append(func(s *Submitter) *[]string { return &s.Languages }),
	"RFN":  builder.Scalar(func(s *Submitter) *string { return &s.RecordFileNumber }),
	"NOTE": notes(func(s *Submitter) *[]NoteStructure { return &s.Notes }),
}, func(s *Submitter) *Contact { return &s.Contact }),
	func(s *Submitter) *RecordInfo { return &s.RecordInfo })

var submissionTable = withRecordInfo(builder.Table[Submission]{
	"SUBM": builder.Pointer(func(s *Submission) *string { return &s.Submitter }),
	"FAMF": builder.Scalar(func(s *Submission) *string { return &s.FamilyFile }),
	"TEMP": builder.Scalar(func(s *Submission) *string { return &s.Temple }),
	"ANCE": builder.Scalar(func(s *Submission) *string { return &s.Ancestors }),
	"DESC": builder.Scalar(func(s *Submission) *string { return &s.Descendants }),
	"ORDI": builder.Scalar(func(s *Submission) *string { return &s.OrdinanceProcess }),
	"NOTE": notes(func(s *Submission) *[]NoteStructure { return &s.Notes }),
}, func(s *Submission) *RecordInfo { return &s.RecordInfo })

var corporationTable = withContact(builder.Table[Corporation]{},
	func(c *Corporation) *Contact { return &c.Contact })

var headerSourceDataTable = builder.Table[HeaderSourceData]{
	"DATE": builder.Scalar(func(d *HeaderSourceData) *string { return &d.Date }),
	"COPR": builder.Text(func(d *HeaderSourceData) *string { return &d.Copyright }),
}

var headerSourceTable = builder.Table[HeaderSource]{
	"VERS": builder.Scalar(func(s *HeaderSource) *string { return &s.Version }),
	"NAME": builder.Scalar(func(s *HeaderSource) *string { return &s.Name }),
	"CORP": builder.Nested(func(s *HeaderSource) **Corporation { return &s.Corporation },
		func(c *Corporation, tok line.Token) { c.Name = tok.Value }, corporationTable),
	"DATA": builder.Nested(func(s *HeaderSource) **HeaderSourceData { return &s.Data },
		func(d *HeaderSourceData, tok line.Token) { d.Name = tok.Value }, headerSourceDataTable),
}

var formTable = builder.Table[Form]{
	"VERS": builder.Scalar(func(f *Form) *string { return &f.Version }),
}

var gedcomInfoTable = builder.Table[GedcomInfo]{
	"VERS": builder.Scalar(func(g *GedcomInfo) *string { return &g.Version }),
	"FORM": builder.Nested(func(g *GedcomInfo) **Form { return &g.Form },
		func(f *Form, tok line.Token) { f.Name = tok.Value }, formTable),
}

var charSetTable = builder.Table[CharSet]{
	"VERS": builder.Scalar(func(c *CharSet) *string { return &c.Version }),
}

type placeForm struct{ Form string }

var placeFormTable = builder.Table[placeForm]{
	"FORM": builder.Scalar(func(p *placeForm) *string { return &p.Form }),
}

var headerTable = builder.Table[Header]{
	"SOUR": builder.Nested(func(h *Header) **HeaderSource { return &h.Source },
		func(s *HeaderSource, tok line.Token) { s.ID = tok.Value }, headerSourceTable),
	"DEST": builder.Scalar(func(h *Header) *string { return &h.Destination }),
	"DATE": builder.Nested(func(h *Header) **DateTime { return &h.Date }, initDateTime, dateTimeTable),
	"SUBM": builder.Pointer(func(h *Header) *string { return &h.SubmitterXref }),
	"SUBN": builder.Pointer(func(h *Header) *string { return &h.SubmissionXref }),
	"FILE": builder.Scalar(func(h *Header) *string { return &h.File }),
	"COPR": builder.Text(func(h *Header) *string { return &h.Copyright }),
	"GEDC": builder.Nested(func(h *Header) **GedcomInfo { return &h.Gedcom }, nil, gedcomInfoTable),
	"CHAR": builder.Nested(func(h *Header) **CharSet { return &h.CharSet },
		func(c *CharSet, tok line.Token) { c.Name = tok.Value }, charSetTable),
	"LANG": builder.Scalar(func(h *Header) *string { return &h.Language }),
	"PLAC": func(c *cursor.Cursor, tok line.Token, h *Header) error {
		if _, err := c.Consume(); err != nil {
			return err
		}
		var p placeForm
		if err := builder.Build(c, tok.Level, placeFormTable, &p); err != nil {
			return err
		}
		h.PlaceForm = p.Form
		return nil
	},
	"NOTE": builder.Text(func(h *Header) *string { return &h.Note }),
}
