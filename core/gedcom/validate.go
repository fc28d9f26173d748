package gedcom

import (
	"github.com/FocuswithJustin/lineage/core/errors"
)

// validate appends a warning for every record missing a conventionally
// mandatory field. Records are checked kind by kind in input order.
func (d *Document) validate() {
	for _, i := range d.Individuals {
		if len(i.Names) == 0 {
			d.Warnings = append(d.Warnings,
				errors.NewValidation(string(KindIndividual), i.Xref, "NAME", "individual has no name"))
		}
	}
	for _, f := range d.Families {
		if f.Husband == "" && f.Wife == "" && len(f.Children) == 0 {
			d.Warnings = append(d.Warnings,
				errors.NewValidation(string(KindFamily), f.Xref, "HUSB/WIFE/CHIL", "family has no members"))
		}
	}
	for _, s := range d.Submitters {
		if s.Name == "" {
			d.Warnings = append(d.Warnings, errors.NewMissingField(string(KindSubmitter), s.Xref, "NAME"))
		}
	}
}
