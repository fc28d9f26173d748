// Package gedcom assembles GEDCOM text into a Document.
//
// Parsing runs in three phases over a single decoded buffer: dispatch splits
// the text at level-0 lines and builds each record from its dispatch table
// while indexing records by xref, resolution links the header to its
// submitter and submission through that index, and validation records
// non-fatal problems on Document.Warnings.
package gedcom

import (
	"github.com/FocuswithJustin/lineage/core/encoding"
)

// Kind identifies the collection a record was stored in.
type Kind string

// Record kinds, named by their level-0 tag.
const (
	KindHeader     Kind = "HEAD"
	KindIndividual Kind = "INDI"
	KindFamily     Kind = "FAM"
	KindSource     Kind = "SOUR"
	KindRepository Kind = "REPO"
	KindNote       Kind = "NOTE"
	KindMultimedia Kind = "OBJE"
	KindSubmitter  Kind = "SUBM"
	KindSubmission Kind = "SUBN"
)

// Entry locates a record in its Document collection.
type Entry struct {
	Kind  Kind
	Index int
}

// Document is a parsed GEDCOM file. Records of one kind keep their input
// order.
type Document struct {
	Header       Header         `json:"header" yaml:"header"`
	Individuals  []Individual   `json:"individuals,omitempty" yaml:"individuals,omitempty"`
	Families     []Family       `json:"families,omitempty" yaml:"families,omitempty"`
	Sources      []SourceRecord `json:"sources,omitempty" yaml:"sources,omitempty"`
	Repositories []Repository   `json:"repositories,omitempty" yaml:"repositories,omitempty"`
	Notes        []NoteRecord   `json:"notes,omitempty" yaml:"notes,omitempty"`
	Multimedia   []Multimedia   `json:"multimedia,omitempty" yaml:"multimedia,omitempty"`
	Submitters   []Submitter    `json:"submitters,omitempty" yaml:"submitters,omitempty"`
	Submissions  []Submission   `json:"submissions,omitempty" yaml:"submissions,omitempty"`

	// Warnings holds every non-fatal problem met while parsing, in the
	// order it was found.
	Warnings []error `json:"-" yaml:"-"`

	Encoding   encoding.Info `json:"encoding" yaml:"encoding"`
	SourceHash string        `json:"source_hash,omitempty" yaml:"source_hash,omitempty"`

	index map[Xref]Entry
}

// RecordCount returns the number of records stored, excluding the header.
func (d *Document) RecordCount() int {
	return len(d.Individuals) + len(d.Families) + len(d.Sources) +
		len(d.Repositories) + len(d.Notes) + len(d.Multimedia) +
		len(d.Submitters) + len(d.Submissions)
}

// Lookup returns where the record with the given xref is stored. When
// several records share an xref the first one wins.
func (d *Document) Lookup(xref Xref) (Entry, bool) {
	e, ok := d.index[xref]
	return e, ok
}

// Individual returns the INDI record with the given xref, or nil.
func (d *Document) Individual(xref Xref) *Individual {
	if e, ok := d.index[xref]; ok && e.Kind == KindIndividual {
		return &d.Individuals[e.Index]
	}
	return nil
}

// Family returns the FAM record with the given xref, or nil.
func (d *Document) Family(xref Xref) *Family {
	if e, ok := d.index[xref]; ok && e.Kind == KindFamily {
		return &d.Families[e.Index]
	}
	return nil
}

// Source returns the SOUR record with the given xref, or nil.
func (d *Document) Source(xref Xref) *SourceRecord {
	if e, ok := d.index[xref]; ok && e.Kind == KindSource {
		return &d.Sources[e.Index]
	}
	return nil
}

// Submitter returns the SUBM record with the given xref, or nil.
func (d *Document) Submitter(xref Xref) *Submitter {
	if e, ok := d.index[xref]; ok && e.Kind == KindSubmitter {
		return &d.Submitters[e.Index]
	}
	return nil
}

// Submission returns the SUBN record with the given xref, or nil.
func (d *Document) Submission(xref Xref) *Submission {
	if e, ok := d.index[xref]; ok && e.Kind == KindSubmission {
		return &d.Submissions[e.Index]
	}
	return nil
}

// Note returns the NOTE record with the given xref, or nil.
func (d *Document) Note(xref Xref) *NoteRecord {
	if e, ok := d.index[xref]; ok && e.Kind == KindNote {
		return &d.Notes[e.Index]
	}
	return nil
}

func (d *Document) register(xref Xref, kind Kind, n int) {
	if xref == "" {
		return
	}
	if d.index == nil {
		d.index = make(map[Xref]Entry)
	}
	if _, dup := d.index[xref]; dup {
		return
	}
	d.index[xref] = Entry{Kind: kind, Index: n}
}
