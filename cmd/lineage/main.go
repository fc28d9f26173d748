// Command lineage parses GEDCOM files and reports, dumps or exports them.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/lineage/core/gedcom"
	"github.com/FocuswithJustin/lineage/internal/config"
	"github.com/FocuswithJustin/lineage/internal/logging"
	"github.com/FocuswithJustin/lineage/internal/report"
	"github.com/FocuswithJustin/lineage/internal/store"
	"github.com/FocuswithJustin/lineage/internal/validation"
)

const version = "0.1.0"

// CLI defines the command-line interface for lineage.
type CLI struct {
	// Global flags
	Config    string `name:"config" short:"c" help:"Config file (default: $LINEAGE_CONFIG or ~/.config/lineage/config.toml)" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat string `name:"log-format" help:"Log format: text or json"`

	Parse   ParseCmd   `cmd:"" help:"Parse a GEDCOM file and print a summary"`
	Dump    DumpCmd    `cmd:"" help:"Dump the parsed document as YAML or JSON"`
	Export  ExportCmd  `cmd:"" help:"Export a GEDCOM file to SQLite"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// App carries what every command needs once flags and config are resolved.
type App struct {
	Ctx    context.Context
	Out    io.Writer
	Config *config.Config
	Logger *slog.Logger
}

func (a *App) parse(path string, verbose bool) (*gedcom.Document, error) {
	cfg := gedcom.Config{
		Verbose: verbose || a.Config.Parse.Verbose,
		Logger:  a.Logger,
	}
	if _, err := validation.ValidateInputFile(path); err != nil {
		return nil, fmt.Errorf("invalid input %s: %w", path, err)
	}
	doc, err := gedcom.Parse(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// ParseCmd parses a file and prints its summary.
type ParseCmd struct {
	Path    string `arg:"" help:"GEDCOM file (.ged, .ged.gz, .ged.xz)" type:"path"`
	Verbose bool   `short:"v" help:"Log encoding and skipped-record diagnostics and list warnings"`
	JSON    bool   `name:"json" help:"Print the summary as JSON"`
}

func (c *ParseCmd) Run(app *App) error {
	doc, err := app.parse(c.Path, c.Verbose)
	if err != nil {
		return err
	}
	s := report.Summarize(c.Path, doc)
	if c.JSON {
		return report.WriteJSON(app.Out, s)
	}
	return report.WriteText(app.Out, s, c.Verbose || app.Config.Parse.Verbose)
}

// DumpCmd writes the whole parsed document.
type DumpCmd struct {
	Path   string `arg:"" help:"GEDCOM file" type:"path"`
	Format string `short:"f" help:"Output format" enum:"yaml,json" default:"yaml"`
}

func (c *DumpCmd) Run(app *App) error {
	doc, err := app.parse(c.Path, false)
	if err != nil {
		return err
	}
	if c.Format == "json" {
		return report.WriteJSON(app.Out, doc)
	}
	return report.WriteYAML(app.Out, doc)
}

// ExportCmd writes the parsed document to a SQLite database.
type ExportCmd struct {
	Path string `arg:"" help:"GEDCOM file" type:"path"`
	DB   string `name:"db" help:"Database path (default from config)" type:"path"`
}

func (c *ExportCmd) Run(app *App) error {
	doc, err := app.parse(c.Path, false)
	if err != nil {
		return err
	}

	dbPath := c.DB
	if dbPath == "" {
		dbPath = app.Config.Store.Path
	}
	if err := validation.ValidateOutputPath(dbPath); err != nil {
		return fmt.Errorf("invalid database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(app.Ctx, app.Config.Store.Timeout.Duration)
	defer cancel()

	stats, err := s.Export(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", c.Path, err)
	}
	logging.ExportComplete(app.Logger, dbPath, store.DriverType(), stats.Total())
	fmt.Fprintf(app.Out, "Exported %d records (%d rows) to %s\n", doc.RecordCount(), stats.Total(), dbPath)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(app *App) error {
	fmt.Fprintf(app.Out, "lineage version %s (sqlite: %s)\n", version, store.DriverType())
	return nil
}

// setup resolves configuration and logging for one invocation. Flags take
// precedence over the config file.
func setup(cli *CLI, stdout, stderr io.Writer) (*App, error) {
	var (
		cfg *config.Config
		err error
	)
	if cli.Config != "" {
		cfg, err = config.Load(cli.Config)
	} else {
		cfg, err = config.Discover()
	}
	if err != nil {
		return nil, err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.Log.Format = cli.LogFormat
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logging.SetLogger(logging.NewLogger(level, format, stderr))

	ctx := logging.WithRunID(context.Background(), uuid.NewString())
	return &App{
		Ctx:    ctx,
		Out:    stdout,
		Config: cfg,
		Logger: logging.LoggerFromContext(ctx),
	}, nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("lineage"),
		kong.Description("Lineage - GEDCOM parsing engine"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, options...)
	return kong.New(cli, options...)
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli, kong.Writers(stdout, stderr))
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	start := time.Now()
	app, err := setup(&cli, stdout, stderr)
	if err != nil {
		return err
	}
	err = kctx.Run(app)
	app.Logger.Debug("command finished", "command", kctx.Command(), "duration_ms", time.Since(start).Milliseconds())
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "lineage: %v\n", err)
		os.Exit(1)
	}
}
