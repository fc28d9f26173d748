// Package validation checks paths and inputs handed to the lineage CLI
// before any parsing or export work starts.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxPathLength is the maximum allowed path length.
const MaxPathLength = 4096

// Common validation errors.
var (
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrIsDirectory      = errors.New("path is a directory")
	ErrNotGEDCOM        = errors.New("not a GEDCOM file")
)

// ValidatePath checks a user-supplied path for length limits and invalid
// characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// ValidateOutputPath checks a path the CLI will create or overwrite.
func ValidateOutputPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return nil
}

// InputType is the container format of an input file.
type InputType string

const (
	InputGEDCOM InputType = "gedcom"
	InputGzip   InputType = "gzip"
	InputXZ     InputType = "xz"
	InputZip    InputType = "zip"
	InputSQLite InputType = "sqlite"
)

var magicBytes = []struct {
	inputType InputType
	magic     []byte
}{
	{InputGzip, []byte{0x1f, 0x8b}},
	{InputXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{InputZip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{InputSQLite, []byte("SQLite format 3")},
}

// ValidateInput reads the head of an input and reports its container
// format. Formats the parser cannot read, and compressed extensions whose
// content does not match, are rejected.
func ValidateInput(r io.Reader, filename string) (InputType, error) {
	buf := make([]byte, 64)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read file header: %w", err)
	}
	buf = buf[:n]

	detected := InputGEDCOM
	for _, sig := range magicBytes {
		if bytes.HasPrefix(buf, sig.magic) {
			detected = sig.inputType
			break
		}
	}

	switch detected {
	case InputZip, InputSQLite:
		return detected, fmt.Errorf("%w: content is %s", ErrNotGEDCOM, detected)
	}

	expected := expectedType(filename)
	if expected != InputGEDCOM && expected != detected {
		return detected, fmt.Errorf("%w: extension suggests %s but content is %s", ErrNotGEDCOM, expected, detected)
	}
	return detected, nil
}

// ValidateInputFile opens path and runs ValidateInput on it.
func ValidateInputFile(path string) (InputType, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		// Left to the parser, which reports missing files precisely.
		return "", nil
	}
	defer f.Close()
	return ValidateInput(f, filepath.Base(path))
}

func expectedType(filename string) InputType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		return InputGzip
	case ".xz":
		return InputXZ
	}
	return InputGEDCOM
}
