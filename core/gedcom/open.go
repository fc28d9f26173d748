package gedcom

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/lineage/core/errors"
)

// MaxFileSize bounds the bytes read from one input, after decompression.
const MaxFileSize = 256 << 20

// ErrTooLarge is wrapped by the IOError returned for inputs over
// MaxFileSize.
var ErrTooLarge = fmt.Errorf("input exceeds %d bytes", MaxFileSize)

// Compression is the container format of an input file.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionXZ   Compression = "xz"
	CompressionGzip Compression = "gzip"
)

// DetectCompression identifies xz and gzip data by magic bytes, falling
// back to the file extension.
func DetectCompression(path string, data []byte) Compression {
	switch {
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		return CompressionGzip
	case len(data) >= 6 && bytes.Equal(data[:6], []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}):
		return CompressionXZ
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return CompressionXZ
	case ".gz":
		return CompressionGzip
	}
	return CompressionNone
}

// readFile loads path into memory, decompressing it when needed. A missing
// file is reported as *errors.NotFoundError before any read is attempted.
func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("file", path)
		}
		return nil, errors.NewIO("stat", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.NewIO("read", path, fmt.Errorf("not a regular file"))
	}
	if info.Size() > MaxFileSize {
		return nil, errors.NewIO("read", path, ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	switch DetectCompression(path, data) {
	case CompressionXZ:
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		return readLimited(r, path)
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		defer r.Close()
		return readLimited(r, path)
	}
	return data, nil
}

func readLimited(r io.Reader, path string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	if len(data) > MaxFileSize {
		return nil, errors.NewIO("read", path, ErrTooLarge)
	}
	return data, nil
}
