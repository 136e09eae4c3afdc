package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/lextrie/pkg/config"
	"github.com/khalid-nowaf/lextrie/pkg/dictionary"
	"github.com/khalid-nowaf/lextrie/pkg/log"
	"go.uber.org/zap"
)

// Globals are the flags shared by every command.
// When set, they override the values of the config file.
type Globals struct {
	Config      string `help:"Path to a config file (yaml, json or toml)" type:"existingfile"`
	LogLevel    string `help:"Log level: debug, info, warn or error"`
	KeyColumn   string `help:"Column holding the words"`
	ValueColumn string `help:"Column holding the translations"`
	InputFormat string `help:"Input format, auto detects it from the file extension" enum:"auto,csv,tsv,json" default:"auto"`
}

// CLI is the command line of lextrie.
type CLI struct {
	Globals

	Print  PrintCmd  `cmd:"" help:"Print the dictionary as an indented tree"`
	List   ListCmd   `cmd:"" help:"List the entries in word order"`
	Lookup LookupCmd `cmd:"" help:"Look up the translation of words"`
	Erase  EraseCmd  `cmd:"" help:"Erase words and write the remaining entries"`
	Serve  ServeCmd  `cmd:"" help:"Serve the dictionary over HTTP"`
}

// Context is passed to the Run method of every command.
type Context struct {
	Config *config.Config
	Logger *zap.Logger
	Out    io.Writer
	Stats  *Stats
}

// NewContext loads the configuration, applies the global flags and builds the logger.
func (g *Globals) NewContext(out io.Writer) (*Context, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.KeyColumn != "" {
		cfg.Input.KeyColumn = g.KeyColumn
	}
	if g.ValueColumn != "" {
		cfg.Input.ValueColumn = g.ValueColumn
	}
	if g.InputFormat != "" && g.InputFormat != "auto" {
		cfg.Input.Format = g.InputFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := log.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}
	return &Context{Config: cfg, Logger: logger, Out: out, Stats: &Stats{}}, nil
}

// Run parses args and runs the selected command, writing its output to out.
func Run(args []string, out io.Writer, options ...kong.Option) error {
	var cli CLI
	options = append([]kong.Option{
		kong.Name("lextrie"),
		kong.Description("An ordered prefix tree dictionary."),
		kong.UsageOnError(),
		kong.Writers(out, os.Stderr),
	}, options...)

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx, err := cli.Globals.NewContext(out)
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Logger.Sync() }()

	return kctx.Run(ctx)
}

// columns returns the configured input columns.
func (ctx *Context) columns() Columns {
	return Columns{Key: ctx.Config.Input.KeyColumn, Value: ctx.Config.Input.ValueColumn}
}

// loadDictionary parses every file and inserts its records into a new dictionary.
func (ctx *Context) loadDictionary(files []string) (*dictionary.Dictionary, error) {
	dict := dictionary.New(dictionary.WithLogger(ctx.Logger))
	columns := ctx.columns()

	for _, file := range files {
		format, err := detectFormat(file, ctx.Config.Input.Format)
		if err != nil {
			return nil, err
		}
		ctx.Logger.Info("loading file", zap.String("file", file), zap.String("format", format))

		err = parseFile(file, format, func(record Record) error {
			word, metadata, err := toEntry(record, columns)
			if err != nil {
				return err
			}
			if _, err := dict.InsertMetadata(word, metadata); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			ctx.Stats.Input++
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	ctx.Logger.Info("dictionary loaded",
		zap.Int("records", ctx.Stats.Input),
		zap.Int("words", dict.Len()),
		zap.Stringer("stats", dict.Stats()))
	return dict, nil
}
