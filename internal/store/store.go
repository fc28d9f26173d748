// Package store exports a parsed GEDCOM document to a SQLite database.
//
// Build modes:
//   - Default (CGO_ENABLED=0): Uses pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): Uses mattn/go-sqlite3
//
// Every export replaces the previous contents of the tables in a single
// transaction.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/FocuswithJustin/lineage/core/errors"
	"github.com/FocuswithJustin/lineage/core/gedcom"
)

// Tables lists the exported tables in creation order.
var Tables = []string{
	"individuals",
	"families",
	"family_children",
	"sources",
	"notes",
	"repositories",
	"multimedia",
	"submitters",
	"submissions",
	"warnings",
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS individuals (
		id INTEGER PRIMARY KEY,
		xref TEXT,
		name TEXT,
		sex TEXT,
		birth_date TEXT,
		death_date TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS families (
		id INTEGER PRIMARY KEY,
		xref TEXT,
		husband TEXT,
		wife TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS family_children (
		family TEXT,
		child TEXT,
		position INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS sources (
		id INTEGER PRIMARY KEY,
		xref TEXT,
		title TEXT,
		author TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY,
		xref TEXT,
		text TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS repositories (
		id INTEGER PRIMARY KEY,
		xref TEXT,
		name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS multimedia (
		id INTEGER PRIMARY KEY,
		xref TEXT,
		path TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS submitters (
		id INTEGER PRIMARY KEY,
		xref TEXT,
		name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS submissions (
		id INTEGER PRIMARY KEY,
		xref TEXT,
		submitter TEXT,
		family_file TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS warnings (
		id INTEGER PRIMARY KEY,
		kind TEXT,
		message TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_individuals_xref ON individuals(xref)`,
	`CREATE INDEX IF NOT EXISTS idx_family_children_family ON family_children(family)`,
}

// DriverName returns the SQL driver name in use.
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3, "purego" for
// modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// DriverPackage returns the import path of the SQLite driver.
func DriverPackage() string {
	return driverPackage
}

// Store is an open export database.
type Store struct {
	db   *sql.DB
	path string
}

// Stats counts the rows written per table.
type Stats map[string]int

// Total returns the number of rows written.
func (s Stats) Total() int {
	n := 0
	for _, v := range s {
		n += v
	}
	return n
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, errors.NewIO("open database", path, err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, errors.NewIO("create schema", path, err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database path.
func (s *Store) Path() string {
	return s.path
}

// Export replaces the database contents with doc.
func (s *Store) Export(ctx context.Context, doc *gedcom.Document) (Stats, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin export: %w", err)
	}
	defer tx.Rollback()

	for _, table := range Tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	w := &writer{ctx: ctx, tx: tx, stats: Stats{}}
	for _, ind := range doc.Individuals {
		w.insert("individuals", "INSERT INTO individuals (xref, name, sex, birth_date, death_date) VALUES (?, ?, ?, ?, ?)",
			ind.Xref, ind.Name(), ind.Sex, eventDate(ind.Event("BIRT")), eventDate(ind.Event("DEAT")))
	}
	for _, fam := range doc.Families {
		w.insert("families", "INSERT INTO families (xref, husband, wife) VALUES (?, ?, ?)",
			fam.Xref, fam.Husband, fam.Wife)
		for i, child := range fam.Children {
			w.insert("family_children", "INSERT INTO family_children (family, child, position) VALUES (?, ?, ?)",
				fam.Xref, child, i)
		}
	}
	for _, src := range doc.Sources {
		w.insert("sources", "INSERT INTO sources (xref, title, author) VALUES (?, ?, ?)",
			src.Xref, src.Title, src.Author)
	}
	for _, n := range doc.Notes {
		w.insert("notes", "INSERT INTO notes (xref, text) VALUES (?, ?)", n.Xref, n.Text)
	}
	for _, r := range doc.Repositories {
		w.insert("repositories", "INSERT INTO repositories (xref, name) VALUES (?, ?)", r.Xref, r.Name)
	}
	for _, m := range doc.Multimedia {
		path := ""
		if len(m.Files) > 0 {
			path = m.Files[0].Path
		}
		w.insert("multimedia", "INSERT INTO multimedia (xref, path) VALUES (?, ?)", m.Xref, path)
	}
	for _, sub := range doc.Submitters {
		w.insert("submitters", "INSERT INTO submitters (xref, name) VALUES (?, ?)", sub.Xref, sub.Name)
	}
	for _, sub := range doc.Submissions {
		w.insert("submissions", "INSERT INTO submissions (xref, submitter, family_file) VALUES (?, ?, ?)",
			sub.Xref, sub.Submitter, sub.FamilyFile)
	}
	for _, warn := range doc.Warnings {
		w.insert("warnings", "INSERT INTO warnings (kind, message) VALUES (?, ?)", WarningKind(warn), warn.Error())
	}
	if w.err != nil {
		return nil, w.err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit export: %w", err)
	}
	return w.stats, nil
}

// Counts returns the number of rows in every exported table.
func (s *Store) Counts(ctx context.Context) (Stats, error) {
	out := Stats{}
	for _, table := range Tables {
		var n int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		out[table] = n
	}
	return out, nil
}

// WarningKind names the class of a document warning.
func WarningKind(err error) string {
	var (
		ee *errors.EncodingError
		se *errors.StructureError
		ve *errors.ValidationError
		mf *errors.MissingFieldError
	)
	switch {
	case errors.As(err, &ee):
		return "encoding"
	case errors.As(err, &se):
		return "structure"
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &mf):
		return "missing_field"
	}
	return "other"
}

// writer stops at the first failed insert and remembers the error.
type writer struct {
	ctx   context.Context
	tx    *sql.Tx
	stats Stats
	err   error
}

func (w *writer) insert(table, query string, args ...any) {
	if w.err != nil {
		return
	}
	if _, err := w.tx.ExecContext(w.ctx, query, args...); err != nil {
		w.err = fmt.Errorf("failed to insert into %s: %w", table, err)
		return
	}
	w.stats[table]++
}

func eventDate(e *gedcom.Event) string {
	if e == nil {
		return ""
	}
	return e.Date
}
