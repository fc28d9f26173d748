package gedcom

import (
	"io"
	"log/slog"

	"github.com/FocuswithJustin/lineage/core/builder"
	"github.com/FocuswithJustin/lineage/core/cursor"
	"github.com/FocuswithJustin/lineage/core/errors"
	"github.com/FocuswithJustin/lineage/core/line"
	"github.com/FocuswithJustin/lineage/internal/logging"
)

const tagTrailer = "TRLR"

type dispatcher struct {
	doc     *Document
	log     *slog.Logger
	verbose bool

	records    int // level-0 records seen, TRLR excluded
	haveHeader bool
}

// dispatch splits text at level-0 lines and builds every record it knows.
// Records are substrings of text; nothing is copied.
func (d *dispatcher) dispatch(text string) error {
	var (
		off, num  = 0, 1
		start     = -1
		startLine int
	)
	for off < len(text) {
		raw, next := cursor.ScanLine(text, off)
		if !cursor.Blank(raw) && line.LevelZero(raw) {
			if start < 0 {
				if err := d.preamble(text[:off]); err != nil {
					return err
				}
			} else {
				done, err := d.record(text[start:off], startLine)
				if err != nil || done {
					return err
				}
			}
			start, startLine = off, num
		}
		off, num = next, num+1
	}

	if start < 0 {
		return d.preamble(text)
	}
	_, err := d.record(text[start:], startLine)
	return err
}

// preamble checks the lines ahead of the first record. They must still
// tokenize; if any exist they are reported once and otherwise ignored.
func (d *dispatcher) preamble(text string) error {
	c := cursor.New(text)
	n := 0
	for {
		_, err := c.Consume()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		n++
	}
	if n > 0 {
		d.warn(errors.NewStructure("", "", "", "lines before the first record are ignored"))
	}
	return nil
}

// record builds one level-0 record. It reports done when the record is the
// trailer.
func (d *dispatcher) record(text string, firstLine int) (done bool, err error) {
	c := cursor.NewAt(text, firstLine)
	tok, err := c.Peek()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if tok.Tag == tagTrailer {
		return true, nil
	}

	if d.records == 0 && tok.Tag != string(KindHeader) {
		d.warn(errors.NewStructure(tok.Tag, tok.Xref, string(KindHeader), "first record is not a header"))
	}
	d.records++

	if err := d.build(c, tok); err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) && pe.RecordTag == "" {
			pe.RecordTag, pe.RecordXref = tok.Tag, tok.Xref
		}
		return false, err
	}
	return false, nil
}

func (d *dispatcher) build(c *cursor.Cursor, tok line.Token) error {
	doc := d.doc
	switch Kind(tok.Tag) {
	case KindHeader:
		if d.haveHeader {
			d.warn(errors.NewStructure(tok.Tag, tok.Xref, "", "duplicate header ignored"))
			return builder.SkipTree(c)
		}
		d.haveHeader = true
		_, err := builder.Record(c, headerTable, &doc.Header)
		return err
	case KindIndividual:
		return add(c, doc, KindIndividual, individualTable, &doc.Individuals, func(r *Individual) *Xref { return &r.Xref })
	case KindFamily:
		return add(c, doc, KindFamily, familyTable, &doc.Families, func(r *Family) *Xref { return &r.Xref })
	case KindSource:
		return add(c, doc, KindSource, sourceTable, &doc.Sources, func(r *SourceRecord) *Xref { return &r.Xref })
	case KindRepository:
		return add(c, doc, KindRepository, repositoryTable, &doc.Repositories, func(r *Repository) *Xref { return &r.Xref })
	case KindMultimedia:
		return add(c, doc, KindMultimedia, multimediaTable, &doc.Multimedia, func(r *Multimedia) *Xref { return &r.Xref })
	case KindSubmitter:
		return add(c, doc, KindSubmitter, submitterTable, &doc.Submitters, func(r *Submitter) *Xref { return &r.Xref })
	case KindSubmission:
		return add(c, doc, KindSubmission, submissionTable, &doc.Submissions, func(r *Submission) *Xref { return &r.Xref })
	case KindNote:
		return d.note(c)
	}

	if d.verbose {
		logging.RecordSkipped(d.log, tok.Tag, tok.Xref, c.Line())
	}
	return builder.SkipTree(c)
}

// note builds a NOTE record, whose level-0 value is the start of its text.
func (d *dispatcher) note(c *cursor.Cursor) error {
	tok, err := c.Consume()
	if err != nil {
		return err
	}
	n := NoteRecord{Xref: tok.Xref}
	if n.Text, err = c.Continue(tok.Level, tok.Value); err != nil {
		return err
	}
	if err := builder.Build(c, tok.Level, noteRecordTable, &n); err != nil {
		return err
	}
	d.doc.register(n.Xref, KindNote, len(d.doc.Notes))
	d.doc.Notes = append(d.doc.Notes, n)
	return nil
}

// add builds a record of one kind and appends it to its collection,
// indexing it by xref.
func add[T any](c *cursor.Cursor, doc *Document, kind Kind, t builder.Table[T], list *[]T, xref func(*T) *Xref) error {
	var rec T
	tok, err := builder.Record(c, t, &rec)
	if err != nil {
		return err
	}
	*xref(&rec) = tok.Xref
	doc.register(tok.Xref, kind, len(*list))
	*list = append(*list, rec)
	return nil
}

func (d *dispatcher) warn(err error) {
	d.doc.Warnings = append(d.doc.Warnings, err)
}
