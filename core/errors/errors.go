// Package errors provides the error taxonomy shared by the lineage parsing engine.
//
// Fatal conditions (I/O, missing file, a line that cannot be tokenized) are
// returned from the parse call. Everything else is a warning collected on the
// parsed document.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidStructure indicates a nested block is absent or malformed
	ErrInvalidStructure = errors.New("invalid structure")
	// ErrMissingField indicates a conventionally mandatory field is absent
	ErrMissingField = errors.New("missing required field")
	// ErrEncoding indicates the declared character set could not be honored exactly
	ErrEncoding = errors.New("encoding error")
)

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "file", "record")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "open")
	Path      string // File path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a physical line cannot be decomposed into
// level, xref, tag and value. Record and field context is filled in by the
// layers that know it.
type ParseError struct {
	Line       int    // 1-based physical line number, 0 if unknown
	RecordTag  string // Tag of the enclosing level-0 record, if known
	RecordXref string // Xref of the enclosing record, if any
	Field      string // Tag of the structure being built when the failure happened
	Excerpt    string // Short excerpt of the offending line
	Message    string // Error details
	Err        error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.RecordTag != "" {
		b.WriteString(" in ")
		b.WriteString(e.RecordTag)
		if e.RecordXref != "" {
			fmt.Fprintf(&b, " @%s@", e.RecordXref)
		}
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (%s)", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Excerpt != "" {
		fmt.Fprintf(&b, ": %q", e.Excerpt)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Is lets errors.Is match ErrInvalidInput even when Err holds a more
// specific tokenizer error.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// StructureError reports a nested structure that is absent or malformed
// relative to the grammar.
type StructureError struct {
	RecordTag  string
	RecordXref string
	Field      string
	Message    string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid structure in %s: %s", recordLabel(e.RecordTag, e.RecordXref, e.Field), e.Message)
}

func (e *StructureError) Unwrap() error {
	return ErrInvalidStructure
}

// ValidationError is a non-fatal semantic issue in an otherwise parseable
// record, e.g. an individual without a name.
type ValidationError struct {
	RecordType string // Record tag, e.g. "INDI"
	Xref       string // Record xref, if any
	Field      string // Field name that failed validation
	Message    string // Human-readable error message
	Err        error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", recordLabel(e.RecordType, e.Xref, e.Field), e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// MissingFieldError records a conventionally mandatory field that is absent.
// It is kept distinct from ValidationError but is equally non-fatal.
type MissingFieldError struct {
	RecordType string
	Xref       string
	Field      string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s in %s", e.Field, recordLabel(e.RecordType, e.Xref, ""))
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// EncodingError records that the declared character set was approximated,
// unrecognized, or could not decode every byte.
type EncodingError struct {
	Declared  string // Name found in the header, empty if none
	Effective string // Name of the decoder actually used
	Reason    string
}

func (e *EncodingError) Error() string {
	declared := e.Declared
	if declared == "" {
		declared = "(none)"
	}
	if e.Effective != "" && e.Effective != e.Declared {
		return fmt.Sprintf("encoding %s decoded as %s: %s", declared, e.Effective, e.Reason)
	}
	return fmt.Sprintf("encoding %s: %s", declared, e.Reason)
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}

func recordLabel(tag, xref, field string) string {
	label := tag
	if xref != "" {
		label += " @" + xref + "@"
	}
	if field != "" {
		label += "." + field
	}
	return label
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError for the given line.
func NewParse(line int, excerpt, message string, err error) *ParseError {
	return &ParseError{
		Line:    line,
		Excerpt: excerpt,
		Message: message,
		Err:     err,
	}
}

// NewStructure creates a StructureError
func NewStructure(recordTag, recordXref, field, message string) *StructureError {
	return &StructureError{
		RecordTag:  recordTag,
		RecordXref: recordXref,
		Field:      field,
		Message:    message,
	}
}

// NewValidation creates a ValidationError
func NewValidation(recordType, xref, field, message string) *ValidationError {
	return &ValidationError{
		RecordType: recordType,
		Xref:       xref,
		Field:      field,
		Message:    message,
	}
}

// NewMissingField creates a MissingFieldError
func NewMissingField(recordType, xref, field string) *MissingFieldError {
	return &MissingFieldError{
		RecordType: recordType,
		Xref:       xref,
		Field:      field,
	}
}

// NewEncoding creates an EncodingError
func NewEncoding(declared, effective, reason string) *EncodingError {
	return &EncodingError{
		Declared:  declared,
		Effective: effective,
		Reason:    reason,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
