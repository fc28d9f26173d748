package gedcom

import (
	"github.com/FocuswithJustin/lineage/core/date"
	"github.com/FocuswithJustin/lineage/core/line"
)

// Xref is a record identifier without its @ delimiters.
type Xref = string

// ParsePointer returns the xref named by an @X@ value.
func ParsePointer(v string) (Xref, bool) {
	return line.ParsePointer(v)
}

// RecordInfo holds the bookkeeping fields most records share.
type RecordInfo struct {
	References []UserReference `json:"references,omitempty" yaml:"references,omitempty"`
	RIN        string          `json:"rin,omitempty" yaml:"rin,omitempty"`
	Changed    *ChangeDate     `json:"changed,omitempty" yaml:"changed,omitempty"`
}

// UserReference is a REFN with its optional TYPE.
type UserReference struct {
	Number string `json:"number" yaml:"number"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ChangeDate is a CHAN structure.
type ChangeDate struct {
	Date  *DateTime       `json:"date,omitempty" yaml:"date,omitempty"`
	Notes []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// DateTime is a DATE line with an optional TIME child.
type DateTime struct {
	Value string `json:"value" yaml:"value"`
	Time  string `json:"time,omitempty" yaml:"time,omitempty"`
}

// Address is an ADDR structure. Text is the free-form value with its
// continuation lines merged.
type Address struct {
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
	Line1      string `json:"line1,omitempty" yaml:"line1,omitempty"`
	Line2      string `json:"line2,omitempty" yaml:"line2,omitempty"`
	Line3      string `json:"line3,omitempty" yaml:"line3,omitempty"`
	City       string `json:"city,omitempty" yaml:"city,omitempty"`
	State      string `json:"state,omitempty" yaml:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Country    string `json:"country,omitempty" yaml:"country,omitempty"`
}

// Contact groups an address with the PHON, EMAIL, FAX and WWW lines that
// sit beside it.
type Contact struct {
	Address  *Address `json:"address,omitempty" yaml:"address,omitempty"`
	Phones   []string `json:"phones,omitempty" yaml:"phones,omitempty"`
	Emails   []string `json:"emails,omitempty" yaml:"emails,omitempty"`
	Faxes    []string `json:"faxes,omitempty" yaml:"faxes,omitempty"`
	Websites []string `json:"websites,omitempty" yaml:"websites,omitempty"`
}

// NoteStructure is either a pointer to a NOTE record or inline text.
type NoteStructure struct {
	Xref Xref   `json:"xref,omitempty" yaml:"xref,omitempty"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Citation is a SOUR structure inside another record: a pointer to a
// source record or an inline description.
type Citation struct {
	Xref        Xref            `json:"xref,omitempty" yaml:"xref,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Page        string          `json:"page,omitempty" yaml:"page,omitempty"`
	Event       *CitedEvent     `json:"event,omitempty" yaml:"event,omitempty"`
	Data        *CitationData   `json:"data,omitempty" yaml:"data,omitempty"`
	Quality     string          `json:"quality,omitempty" yaml:"quality,omitempty"`
	Texts       []string        `json:"texts,omitempty" yaml:"texts,omitempty"`
	Notes       []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	Media       []MediaLink     `json:"media,omitempty" yaml:"media,omitempty"`
}

// CitedEvent is the EVEN line of a citation.
type CitedEvent struct {
	Type string `json:"type" yaml:"type"`
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
}

// CitationData is the DATA block of a citation.
type CitationData struct {
	Date  string   `json:"date,omitempty" yaml:"date,omitempty"`
	Texts []string `json:"texts,omitempty" yaml:"texts,omitempty"`
}

// MediaLink is an OBJE structure inside another record: a pointer to a
// multimedia record or an embedded file reference.
type MediaLink struct {
	Xref   Xref        `json:"xref,omitempty" yaml:"xref,omitempty"`
	Files  []MediaFile `json:"files,omitempty" yaml:"files,omitempty"`
	Format string      `json:"format,omitempty" yaml:"format,omitempty"`
	Title  string      `json:"title,omitempty" yaml:"title,omitempty"`
}

// MediaFile is a FILE reference with its format and title.
type MediaFile struct {
	Path   string       `json:"path" yaml:"path"`
	Format *MediaFormat `json:"format,omitempty" yaml:"format,omitempty"`
	Title  string       `json:"title,omitempty" yaml:"title,omitempty"`
}

// MediaFormat is a FORM line with its TYPE or MEDI child.
type MediaFormat struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Place is a PLAC structure.
type Place struct {
	Name      string          `json:"name" yaml:"name"`
	Form      string          `json:"form,omitempty" yaml:"form,omitempty"`
	Phonetic  []string        `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Romanized []string        `json:"romanized,omitempty" yaml:"romanized,omitempty"`
	Map       *Coordinates    `json:"map,omitempty" yaml:"map,omitempty"`
	Notes     []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Coordinates is a MAP structure.
type Coordinates struct {
	Latitude  string `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// Event is an individual or family event, or an individual attribute.
// Tag names the kind (BIRT, MARR, OCCU, ...); Value is the line value,
// such as "Y" for a bare event or the occupation for OCCU.
type Event struct {
	Tag         string      `json:"tag" yaml:"tag"`
	Value       string      `json:"value,omitempty" yaml:"value,omitempty"`
	Type        string      `json:"type,omitempty" yaml:"type,omitempty"`
	Date        string      `json:"date,omitempty" yaml:"date,omitempty"`
	ParsedDate  *date.Value `json:"parsed_date,omitempty" yaml:"parsed_date,omitempty"`
	Place       *Place      `json:"place,omitempty" yaml:"place,omitempty"`
	Contact     `yaml:",inline"`
	Agency      string          `json:"agency,omitempty" yaml:"agency,omitempty"`
	Religion    string          `json:"religion,omitempty" yaml:"religion,omitempty"`
	Cause       string          `json:"cause,omitempty" yaml:"cause,omitempty"`
	Restriction string          `json:"restriction,omitempty" yaml:"restriction,omitempty"`
	Age         string          `json:"age,omitempty" yaml:"age,omitempty"`
	HusbandAge  string          `json:"husband_age,omitempty" yaml:"husband_age,omitempty"`
	WifeAge     string          `json:"wife_age,omitempty" yaml:"wife_age,omitempty"`
	Family      *EventFamily    `json:"family,omitempty" yaml:"family,omitempty"`
	Notes       []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations   []Citation      `json:"citations,omitempty" yaml:"citations,omitempty"`
	Media       []MediaLink     `json:"media,omitempty" yaml:"media,omitempty"`
}

// Year returns the sort year of the event date, or 0.
func (e *Event) Year() int {
	if e == nil || e.ParsedDate == nil {
		return 0
	}
	return e.ParsedDate.Year()
}

// EventFamily is the FAMC line of a birth, christening or adoption event.
type EventFamily struct {
	Xref      Xref   `json:"xref" yaml:"xref"`
	AdoptedBy string `json:"adopted_by,omitempty" yaml:"adopted_by,omitempty"`
}

// NamePieces are the name parts shared by a personal name and its
// phonetic and romanized variations.
type NamePieces struct {
	Prefix        string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Given         string `json:"given,omitempty" yaml:"given,omitempty"`
	Nickname      string `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	SurnamePrefix string `json:"surname_prefix,omitempty" yaml:"surname_prefix,omitempty"`
	Surname       string `json:"surname,omitempty" yaml:"surname,omitempty"`
	Suffix        string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
}

// PersonalName is a NAME structure. Value is the raw line value, with the
// surname between slashes.
type PersonalName struct {
	Value      string `json:"value" yaml:"value"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	NamePieces `yaml:",inline"`
	Phonetic   []NameVariation `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Romanized  []NameVariation `json:"romanized,omitempty" yaml:"romanized,omitempty"`
	Notes      []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations  []Citation      `json:"citations,omitempty" yaml:"citations,omitempty"`
}

// NameVariation is a FONE or ROMN variation of a name.
type NameVariation struct {
	Value      string `json:"value" yaml:"value"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	NamePieces `yaml:",inline"`
}

// FamilyLink is a FAMC or FAMS line.
type FamilyLink struct {
	Xref     Xref            `json:"xref" yaml:"xref"`
	Pedigree string          `json:"pedigree,omitempty" yaml:"pedigree,omitempty"`
	Status   string          `json:"status,omitempty" yaml:"status,omitempty"`
	Notes    []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Association is an ASSO structure.
type Association struct {
	Xref      Xref            `json:"xref" yaml:"xref"`
	Relation  string          `json:"relation,omitempty" yaml:"relation,omitempty"`
	Notes     []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations []Citation      `json:"citations,omitempty" yaml:"citations,omitempty"`
}

// Individual is an INDI record.
type Individual struct {
	Xref                Xref           `json:"xref,omitempty" yaml:"xref,omitempty"`
	Restriction         string         `json:"restriction,omitempty" yaml:"restriction,omitempty"`
	Names               []PersonalName `json:"names,omitempty" yaml:"names,omitempty"`
	Sex                 string         `json:"sex,omitempty" yaml:"sex,omitempty"`
	Events              []Event        `json:"events,omitempty" yaml:"events,omitempty"`
	Attributes          []Event        `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	ChildOf             []FamilyLink   `json:"child_of,omitempty" yaml:"child_of,omitempty"`
	SpouseOf            []FamilyLink   `json:"spouse_of,omitempty" yaml:"spouse_of,omitempty"`
	Submitters          []Xref         `json:"submitters,omitempty" yaml:"submitters,omitempty"`
	Associations        []Association  `json:"associations,omitempty" yaml:"associations,omitempty"`
	Aliases             []Xref         `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	AncestorInterest    []Xref         `json:"ancestor_interest,omitempty" yaml:"ancestor_interest,omitempty"`
	DescendantInterest  []Xref         `json:"descendant_interest,omitempty" yaml:"descendant_interest,omitempty"`
	RecordFileNumber    string         `json:"rfn,omitempty" yaml:"rfn,omitempty"`
	AncestralFileNumber string         `json:"afn,omitempty" yaml:"afn,omitempty"`
	RecordInfo          `yaml:",inline"`
	Notes               []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations           []Citation      `json:"citations,omitempty" yaml:"citations,omitempty"`
	Media               []MediaLink     `json:"media,omitempty" yaml:"media,omitempty"`
}

// Name returns the value of the first NAME line, or "".
func (i *Individual) Name() string {
	if len(i.Names) == 0 {
		return ""
	}
	return i.Names[0].Value
}

// Event returns the first event with the given tag, or nil.
func (i *Individual) Event(tag string) *Event {
	for k := range i.Events {
		if i.Events[k].Tag == tag {
			return &i.Events[k]
		}
	}
	return nil
}

// Family is a FAM record.
type Family struct {
	Xref        Xref    `json:"xref,omitempty" yaml:"xref,omitempty"`
	Restriction string  `json:"restriction,omitempty" yaml:"restriction,omitempty"`
	Events      []Event `json:"events,omitempty" yaml:"events,omitempty"`
	Husband     Xref    `json:"husband,omitempty" yaml:"husband,omitempty"`
	Wife        Xref    `json:"wife,omitempty" yaml:"wife,omitempty"`
	Children    []Xref  `json:"children,omitempty" yaml:"children,omitempty"`
	ChildCount  string  `json:"child_count,omitempty" yaml:"child_count,omitempty"`
	Submitters  []Xref  `json:"submitters,omitempty" yaml:"submitters,omitempty"`
	RecordInfo  `yaml:",inline"`
	Notes       []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations   []Citation      `json:"citations,omitempty" yaml:"citations,omitempty"`
	Media       []MediaLink     `json:"media,omitempty" yaml:"media,omitempty"`
}

// Event returns the first event with the given tag, or nil.
func (f *Family) Event(tag string) *Event {
	for k := range f.Events {
		if f.Events[k].Tag == tag {
			return &f.Events[k]
		}
	}
	return nil
}

// SourceRecord is a SOUR record.
type SourceRecord struct {
	Xref         Xref                 `json:"xref,omitempty" yaml:"xref,omitempty"`
	Data         *SourceData          `json:"data,omitempty" yaml:"data,omitempty"`
	Author       string               `json:"author,omitempty" yaml:"author,omitempty"`
	Title        string               `json:"title,omitempty" yaml:"title,omitempty"`
	Abbreviation string               `json:"abbreviation,omitempty" yaml:"abbreviation,omitempty"`
	Publication  string               `json:"publication,omitempty" yaml:"publication,omitempty"`
	Text         string               `json:"text,omitempty" yaml:"text,omitempty"`
	Repositories []RepositoryCitation `json:"repositories,omitempty" yaml:"repositories,omitempty"`
	RecordInfo   `yaml:",inline"`
	Notes        []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	Media        []MediaLink     `json:"media,omitempty" yaml:"media,omitempty"`
}

// SourceData is the DATA block of a source record.
type SourceData struct {
	Events []SourceEvent   `json:"events,omitempty" yaml:"events,omitempty"`
	Agency string          `json:"agency,omitempty" yaml:"agency,omitempty"`
	Notes  []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// SourceEvent is an EVEN line of source data: the event types recorded and
// the period and place they cover.
type SourceEvent struct {
	Types string `json:"types" yaml:"types"`
	Date  string `json:"date,omitempty" yaml:"date,omitempty"`
	Place string `json:"place,omitempty" yaml:"place,omitempty"`
}

// RepositoryCitation is a REPO line inside a source record.
type RepositoryCitation struct {
	Xref        Xref            `json:"xref,omitempty" yaml:"xref,omitempty"`
	CallNumbers []CallNumber    `json:"call_numbers,omitempty" yaml:"call_numbers,omitempty"`
	Notes       []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// CallNumber is a CALN line with its MEDI child.
type CallNumber struct {
	Number string `json:"number" yaml:"number"`
	Media  string `json:"media,omitempty" yaml:"media,omitempty"`
}

// Repository is a REPO record.
type Repository struct {
	Xref       Xref   `json:"xref,omitempty" yaml:"xref,omitempty"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Contact    `yaml:",inline"`
	Notes      []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	RecordInfo `yaml:",inline"`
}

// NoteRecord is a NOTE record.
type NoteRecord struct {
	Xref       Xref       `json:"xref,omitempty" yaml:"xref,omitempty"`
	Text       string     `json:"text" yaml:"text"`
	Citations  []Citation `json:"citations,omitempty" yaml:"citations,omitempty"`
	RecordInfo `yaml:",inline"`
}

// Multimedia is an OBJE record.
type Multimedia struct {
	Xref       Xref            `json:"xref,omitempty" yaml:"xref,omitempty"`
	Files      []MediaFile     `json:"files,omitempty" yaml:"files,omitempty"`
	Notes      []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	Citations  []Citation      `json:"citations,omitempty" yaml:"citations,omitempty"`
	RecordInfo `yaml:",inline"`
}

// Submitter is a SUBM record.
type Submitter struct {
	Xref             Xref   `json:"xref,omitempty" yaml:"xref,omitempty"`
	Name             string `json:"name,omitempty" yaml:"name,omitempty"`
	Contact          `yaml:",inline"`
	Media            []MediaLink     `json:"media,omitempty" yaml:"media,omitempty"`
	Languages        []string        `json:"languages,omitempty" yaml:"languages,omitempty"`
	RecordFileNumber string          `json:"rfn,omitempty" yaml:"rfn,omitempty"`
	Notes            []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	RecordInfo       `yaml:",inline"`
}

// Submission is a SUBN record.
type Submission struct {
	Xref             Xref            `json:"xref,omitempty" yaml:"xref,omitempty"`
	Submitter        Xref            `json:"submitter,omitempty" yaml:"submitter,omitempty"`
	FamilyFile       string          `json:"family_file,omitempty" yaml:"family_file,omitempty"`
	Temple           string          `json:"temple,omitempty" yaml:"temple,omitempty"`
	Ancestors        string          `json:"ancestors,omitempty" yaml:"ancestors,omitempty"`
	Descendants      string          `json:"descendants,omitempty" yaml:"descendants,omitempty"`
	OrdinanceProcess string          `json:"ordinance_process,omitempty" yaml:"ordinance_process,omitempty"`
	Notes            []NoteStructure `json:"notes,omitempty" yaml:"notes,omitempty"`
	RecordInfo       `yaml:",inline"`
}

// Header is the HEAD record.
type Header struct {
	Source         *HeaderSource `json:"source,omitempty" yaml:"source,omitempty"`
	Destination    string        `json:"destination,omitempty" yaml:"destination,omitempty"`
	Date           *DateTime     `json:"date,omitempty" yaml:"date,omitempty"`
	SubmitterXref  Xref          `json:"submitter,omitempty" yaml:"submitter,omitempty"`
	SubmissionXref Xref          `json:"submission,omitempty" yaml:"submission,omitempty"`
	File           string        `json:"file,omitempty" yaml:"file,omitempty"`
	Copyright      string        `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Gedcom         *GedcomInfo   `json:"gedcom,omitempty" yaml:"gedcom,omitempty"`
	CharSet        *CharSet      `json:"charset,omitempty" yaml:"charset,omitempty"`
	Language       string        `json:"language,omitempty" yaml:"language,omitempty"`
	PlaceForm      string        `json:"place_form,omitempty" yaml:"place_form,omitempty"`
	Note           string        `json:"note,omitempty" yaml:"note,omitempty"`

	// Filled in by the resolution phase; nil when the pointer is absent or
	// dangling.
	Submitter  *Submitter  `json:"-" yaml:"-"`
	Submission *Submission `json:"-" yaml:"-"`
}

// HeaderSource is the SOUR block of the header: the producing system.
type HeaderSource struct {
	ID          string            `json:"id" yaml:"id"`
	Version     string            `json:"version,omitempty" yaml:"version,omitempty"`
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Corporation *Corporation      `json:"corporation,omitempty" yaml:"corporation,omitempty"`
	Data        *HeaderSourceData `json:"data,omitempty" yaml:"data,omitempty"`
}

// Corporation is the CORP block of the header source.
type Corporation struct {
	Name    string `json:"name" yaml:"name"`
	Contact `yaml:",inline"`
}

// HeaderSourceData is the DATA block of the header source.
type HeaderSourceData struct {
	Name      string `json:"name" yaml:"name"`
	Date      string `json:"date,omitempty" yaml:"date,omitempty"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
}

// GedcomInfo is the GEDC block of the header.
type GedcomInfo struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Form    *Form  `json:"form,omitempty" yaml:"form,omitempty"`
}

// Form is a FORM line with its VERS child.
type Form struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// CharSet is the CHAR line of the header.
type CharSet struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}
