package gedcom

// resolve links header pointers to the records they name. It runs after
// dispatch so records declared after the header are found. Dangling
// pointers leave the target nil.
func (d *Document) resolve() {
	h := &d.Header
	h.Submitter = nil
	h.Submission = nil
	if h.SubmitterXref != "" {
		h.Submitter = d.Submitter(h.SubmitterXref)
	}
	if h.SubmissionXref != "" {
		h.Submission = d.Submission(h.SubmissionXref)
	}
}
