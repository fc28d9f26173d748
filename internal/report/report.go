// Package report renders summaries and dumps of parsed documents.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/lineage/core/encoding"
	"github.com/FocuswithJustin/lineage/core/gedcom"
)

// Summary is the short description printed by "lineage parse".
type Summary struct {
	Source     string        `json:"source,omitempty" yaml:"source,omitempty"`
	Version    string        `json:"version,omitempty" yaml:"version,omitempty"`
	Producer   string        `json:"producer,omitempty" yaml:"producer,omitempty"`
	Language   string        `json:"language,omitempty" yaml:"language,omitempty"`
	Submitter  string        `json:"submitter,omitempty" yaml:"submitter,omitempty"`
	Encoding   encoding.Info `json:"encoding" yaml:"encoding"`
	SourceHash string        `json:"source_hash,omitempty" yaml:"source_hash,omitempty"`
	Counts     []Count       `json:"counts" yaml:"counts"`
	Records    int           `json:"records" yaml:"records"`
	Warnings   []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Count is the number of records of one kind.
type Count struct {
	Kind  string `json:"kind" yaml:"kind"`
	Count int    `json:"count" yaml:"count"`
}

// Summarize collects header details, per-kind counts and warnings from doc.
// source names the input and may be empty.
func Summarize(source string, doc *gedcom.Document) Summary {
	h := doc.Header
	s := Summary{
		Source:     source,
		Language:   h.Language,
		Encoding:   doc.Encoding,
		SourceHash: doc.SourceHash,
		Records:    doc.RecordCount(),
		Counts: []Count{
			{"individuals", len(doc.Individuals)},
			{"families", len(doc.Families)},
			{"sources", len(doc.Sources)},
			{"repositories", len(doc.Repositories)},
			{"notes", len(doc.Notes)},
			{"multimedia", len(doc.Multimedia)},
			{"submitters", len(doc.Submitters)},
			{"submissions", len(doc.Submissions)},
		},
	}
	if h.Gedcom != nil {
		s.Version = h.Gedcom.Version
	}
	if h.Source != nil {
		s.Producer = h.Source.ID
		if h.Source.Version != "" {
			s.Producer += " " + h.Source.Version
		}
	}
	if h.Submitter != nil {
		s.Submitter = h.Submitter.Name
	}
	for _, w := range doc.Warnings {
		s.Warnings = append(s.Warnings, w.Error())
	}
	return s
}

// WriteText prints s as aligned columns. Warnings are listed one per line
// when verbose is set, otherwise only counted.
func WriteText(w io.Writer, s Summary, verbose bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if s.Source != "" {
		fmt.Fprintf(tw, "File:\t%s\n", s.Source)
	}
	if s.Version != "" {
		fmt.Fprintf(tw, "GEDCOM:\t%s\n", s.Version)
	}
	if s.Producer != "" {
		fmt.Fprintf(tw, "Producer:\t%s\n", s.Producer)
	}
	if s.Submitter != "" {
		fmt.Fprintf(tw, "Submitter:\t%s\n", s.Submitter)
	}
	enc := s.Encoding.Effective
	if s.Encoding.Declared != "" && s.Encoding.Declared != enc {
		enc = fmt.Sprintf("%s (declared %s)", enc, s.Encoding.Declared)
	}
	fmt.Fprintf(tw, "Encoding:\t%s\n", enc)
	for _, c := range s.Counts {
		if c.Count > 0 {
			fmt.Fprintf(tw, "%s:\t%d\n", c.Kind, c.Count)
		}
	}
	fmt.Fprintf(tw, "Records:\t%d\n", s.Records)
	fmt.Fprintf(tw, "Warnings:\t%d\n", len(s.Warnings))
	if err := tw.Flush(); err != nil {
		return err
	}

	if verbose {
		for _, msg := range s.Warnings {
			if _, err := fmt.Fprintf(w, "  warning: %s\n", msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML writes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
