package gedcom

import (
	"encoding/hex"
	"io"
	"log/slog"
	"time"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/lineage/core/encoding"
	"github.com/FocuswithJustin/lineage/core/errors"
	"github.com/FocuswithJustin/lineage/internal/logging"
)

// Config controls a parse.
type Config struct {
	// Verbose logs encoding decisions, skipped records and a completion
	// summary on Logger.
	Verbose bool
	// Logger receives verbose diagnostics. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a quiet configuration.
func DefaultConfig() Config {
	return Config{Logger: logging.Discard()}
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

// Parse reads, decodes and parses the GEDCOM file at path. Compressed
// .xz and .gz files are decompressed first.
//
// Only I/O failures, a missing file and lines that cannot be tokenized are
// returned as errors; every other problem is collected on
// Document.Warnings.
func Parse(path string, cfg Config) (*Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, path, cfg)
}

// ParseReader parses GEDCOM data read from r.
func ParseReader(r io.Reader, cfg Config) (*Document, error) {
	data, err := readLimited(r, "")
	if err != nil {
		return nil, err
	}
	return parse(data, "", cfg)
}

// ParseBytes parses GEDCOM data held in memory.
func ParseBytes(data []byte, cfg Config) (*Document, error) {
	return parse(data, "", cfg)
}

func parse(data []byte, source string, cfg Config) (*Document, error) {
	start := time.Now()
	log := cfg.logger()

	res, err := encoding.Decode(data)
	if err != nil {
		return nil, errors.NewIO("decode", source, err)
	}

	sum := blake3.Sum256(data)
	doc := &Document{
		Encoding:   res.Info,
		SourceHash: hex.EncodeToString(sum[:]),
	}
	doc.Warnings = append(doc.Warnings, res.Warnings()...)
	if cfg.Verbose {
		logEncoding(log, res.Info)
	}

	d := &dispatcher{doc: doc, log: log, verbose: cfg.Verbose}
	if err := d.dispatch(res.Text); err != nil {
		return nil, err
	}
	doc.resolve()
	doc.validate()

	if cfg.Verbose {
		logging.ParseComplete(log, source, doc.RecordCount(), len(doc.Warnings), time.Since(start),
			"source_hash", doc.SourceHash)
	}
	return doc, nil
}

func logEncoding(log *slog.Logger, info encoding.Info) {
	logging.EncodingDetected(log, info.Declared, info.Effective)
	for _, w := range info.Warnings() {
		var ee *errors.EncodingError
		if errors.As(w, &ee) {
			logging.EncodingFallback(log, ee.Declared, ee.Effective, ee.Reason)
		}
	}
}
