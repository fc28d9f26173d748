package gedcom

import (
	"github.com/FocuswithJustin/lineage/core/builder"
	"github.com/FocuswithJustin/lineage/core/cursor"
	"github.com/FocuswithJustin/lineage/core/date"
	"github.com/FocuswithJustin/lineage/core/line"
)

// Individual and family event tags. EVEN is the generic event in both.
var (
	individualEventTags = []string{
		"BIRT", "CHR", "DEAT", "BURI", "CREM", "ADOP", "BAPM", "BARM", "BASM",
		"BLES", "CHRA", "CONF", "FCOM", "ORDN", "NATU", "EMIG", "IMMI", "CENS",
		"PROB", "WILL", "GRAD", "RETI", "EVEN",
	}
	individualAttributeTags = []string{
		"CAST", "DSCR", "EDUC", "IDNO", "NATI", "NCHI", "NMR", "OCCU", "PROP",
		"RELI", "RESI", "SSN", "TITL", "FACT",
	}
	familyEventTags = []string{
		"ANUL", "CENS", "DIV", "DIVF", "ENGA", "MARB", "MARC", "MARR", "MARL",
		"MARS", "RESI", "EVEN",
	}
)

func parseDate(s string) *date.Value {
	v, err := date.Parse(s)
	if err != nil {
		return nil
	}
	return v
}

var coordinatesTable = builder.Table[Coordinates]{
	"LATI": builder.Scalar(func(m *Coordinates) *string { return &m.Latitude }),
	"LONG": builder.Scalar(func(m *Coordinates) *string { return &m.Longitude }),
}

var placeTable = builder.Table[Place]{
	"FORM": builder.Scalar(func(p *Place) *string { return &p.Form }),
	"FONE": builder.Append(func(p *Place) *[]string { return &p.Phonetic }),
	"ROMN": builder.Append(func(p *Place) *[]string { return &p.Romanized }),
	"MAP":  builder.Nested(func(p *Place) **Coordinates { return &p.Map }, nil, coordinatesTable),
	"NOTE": notes(func(p *Place) *[]NoteStructure { return &p.Notes }),
}

var eventFamilyTable = builder.Table[EventFamily]{
	"ADOP": builder.Scalar(func(f *EventFamily) *string { return &f.AdoptedBy }),
}

type spouseAge struct{ Age string }

var spouseAgeTable = builder.Table[spouseAge]{
	"AGE": builder.Scalar(func(a *spouseAge) *string { return &a.Age }),
}

// ageOf reads the AGE child of a family event's HUSB or WIFE line.
func ageOf(field func(*Event) *string) builder.Handler[Event] {
	return func(c *cursor.Cursor, tok line.Token, e *Event) error {
		if _, err := c.Consume(); err != nil {
			return err
		}
		var a spouseAge
		if err := builder.Build(c, tok.Level, spouseAgeTable, &a); err != nil {
			return err
		}
		*field(e) = a.Age
		return nil
	}
}

var eventTable = withContact(builder.Table[Event]{
	"TYPE": builder.Scalar(func(e *Event) *string { return &e.Type }),
	"DATE": eventDate,
	"PLAC": builder.Nested(func(e *Event) **Place { return &e.Place },
		func(p *Place, tok line.Token) { p.Name = tok.Value }, placeTable),
	"AGNC": builder.Scalar(func(e *Event) *string { return &e.Agency }),
	"RELI": builder.Scalar(func(e *Event) *string { return &e.Religion }),
	"CAUS": builder.Scalar(func(e *Event) *string { return &e.Cause }),
	"RESN": builder.Scalar(func(e *Event) *string { return &e.Restriction }),
	"AGE":  builder.Scalar(func(e *Event) *string { return &e.Age }),
	"HUSB": ageOf(func(e *Event) *string { return &e.HusbandAge }),
	"WIFE": ageOf(func(e *Event) *string { return &e.WifeAge }),
	"FAMC": builder.Nested(func(e *Event) **EventFamily { return &e.Family },
		func(f *EventFamily, tok line.Token) { f.Xref, _ = ParsePointer(tok.Value) }, eventFamilyTable),
	"NOTE": notes(func(e *Event) *[]NoteStructure { return &e.Notes }),
	"SOUR": citations(func(e *Event) *[]Citation { return &e.Citations }),
	"OBJE": media(func(e *Event) *[]MediaLink { return &e.Media }),
}, func(e *Event) *Contact { return &e.Contact })

func initEvent(e *Event, tok line.Token) {
	e.Tag = tok.Tag
	e.Value = tok.Value
}

// withNamePieces adds the name part handlers to t.
func withNamePieces[T any](t builder.Table[T], get func(*T) *NamePieces) builder.Table[T] {
	t["NPFX"] = builder.Scalar(func(v *T) *string { return &get(v).Prefix })
	t["GIVN"] = builder.Scalar(func(v *T) *string { return &get(v).Given })
	t["NICK"] = builder.Scalar(func(v *T) *string { return &get(v).Nickname })
	t["SPFX"] = builder.Scalar(func(v *T) *string { return &get(v).SurnamePrefix })
	t["SURN"] = builder.Scalar(func(v *T) *string { return &get(v).Surname })
	t["NSFX"] = builder.Scalar(func(v *T) *string { return &get(v).Suffix })
	return t
}

var nameVariationTable = withNamePieces(builder.Table[NameVariation]{
	"TYPE": builder.Scalar(func(n *NameVariation) *string { return &n.Type }),
}, func(n *NameVariation) *NamePieces { return &n.NamePieces })

func initNameVariation(n *NameVariation, tok line.Token) { n.Value = tok.Value }

var personalNameTable = withNamePieces(builder.Table[PersonalName]{
	"TYPE": builder.Scalar(func(n *PersonalName) *string { return &n.Type }),
	"FONE": builder.AppendNested(func(n *PersonalName) *[]NameVariation { return &n.Phonetic }, initNameVariation, nameVariationTable),
	"ROMN": builder.AppendNested(func(n *PersonalName) *[]NameVariation { return &n.Romanized }, initNameVariation, nameVariationTable),
	"NOTE": notes(func(n *PersonalName) *[]NoteStructure { return &n.Notes }),
	"SOUR": citations(func(n *PersonalName) *[]Citation { return &n.Citations }),
}, func(n *PersonalName) *NamePieces { return &n.NamePieces })

var familyLinkTable = builder.Table[FamilyLink]{
	"PEDI": builder.Scalar(func(f *FamilyLink) *string { return &f.Pedigree }),
	"STAT": builder.Scalar(func(f *FamilyLink) *string { return &f.Status }),
	"NOTE": notes(func(f *FamilyLink) *[]NoteStructure { return &f.Notes }),
}

func initFamilyLink(f *FamilyLink, tok line.Token) { f.Xref, _ = ParsePointer(tok.Value) }

var associationTable = builder.Table[Association]{
	"RELA": builder.Scalar(func(a *Association) *string { return &a.Relation }),
	"NOTE": notes(func(a *Association) *[]NoteStructure { return &a.Notes }),
	"SOUR": citations(func(a *Association) *[]Citation { return &a.Citations }),
}

func initAssociation(a *Association, tok line.Token) { a.Xref, _ = ParsePointer(tok.Value) }

var individualTable = newIndividualTable()

func newIndividualTable() builder.Table[Individual] {
	t := builder.Table[Individual]{
		"RESN": builder.Scalar(func(i *Individual) *string { return &i.Restriction }),
		"NAME": builder.AppendNested(func(i *Individual) *[]PersonalName { return &i.Names },
			func(n *PersonalName, tok line.Token) { n.Value = tok.Value }, personalNameTable),
		"SEX":  builder.Scalar(func(i *Individual) *string { return &i.Sex }),
		"FAMC": builder.AppendNested(func(i *Individual) *[]FamilyLink { return &i.ChildOf }, initFamilyLink, familyLinkTable),
		"FAMS": builder.AppendNested(func(i *Individual) *[]FamilyLink { return &i.SpouseOf }, initFamilyLink, familyLinkTable),
		"SUBM": builder.AppendPointer(func(i *Individual) *[]string { return &i.Submitters }),
		"ASSO": builder.AppendNested(func(i *Individual) *[]Association { return &i.Associations }, initAssociation, associationTable),
		"ALIA": builder.AppendPointer(func(i *Individual) *[]string { return &i.Aliases }),
		"ANCI": builder.AppendPointer(func(i *Individual) *[]string { return &i.AncestorInterest }),
		"DESI": builder.AppendPointer(func(i *Individual) *[]string { return &i.DescendantInterest }),
		"RFN":  builder.Scalar(func(i *Individual) *string { return &i.RecordFileNumber }),
		"AFN":  builder.Scalar(func(i *Individual) *string { return &i.AncestralFileNumber }),
		"NOTE": notes(func(i *Individual) *[]NoteStructure { return &i.Notes }),
		"SOUR": citations(func(i *Individual) *[]Citation { return &i.Citations }),
		"OBJE": media(func(i *Individual) *[]MediaLink { return &i.Media }),
	}
	for _, tag := range individualEventTags {
		t[tag] = builder.AppendNested(func(i *Individual) *[]Event { return &i.Events }, initEvent, eventTable)
	}
	for _, tag := range individualAttributeTags {
		t[tag] = builder.AppendNestedText(func(i *Individual) *[]Event { return &i.Attributes }, initEvent, eventTable)
	}
	return withRecordInfo(t, func(i *Individual) *RecordInfo { return &i.RecordInfo })
}

var familyTable = newFamilyTable()

func newFamilyTable() builder.Table[Family] {
	t := builder.Table[Family]{
		"RESN": builder.Scalar(func(f *Family) *string { return &f.Restriction }),
		"HUSB": builder.Pointer(func(f *Family) *string { return &f.Husband }),
		"WIFE": builder.Pointer(func(f *Family) *string { return &f.Wife }),
		"CHIL": builder.AppendPointer(func(f *Family) *[]string { return &f.Children }),
		"NCHI": builder.Scalar(func(f *Family) *string { return &f.ChildCount }),
		"SUBM": builder.AppendPointer(func(f *Family) *[]string { return &f.Submitters }),
		"NOTE": notes(func(f *Family) *[]NoteStructure { return &f.Notes }),
		"SOUR": citations(func(f *Family) *[]Citation { return &f.Citations }),
		"OBJE": media(func(f *Family) *[]MediaLink { return &f.Media }),
	}
	for _, tag := range familyEventTags {
		t[tag] = builder.AppendNested(func(f *Family) *[]Event { return &f.Events }, initEvent, eventTable)
	}
	return withRecordInfo(t, func(f *Family) *RecordInfo { return &f.RecordInfo })
}
