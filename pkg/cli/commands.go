package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/khalid-nowaf/lextrie/pkg/dictionary"
	"github.com/khalid-nowaf/lextrie/pkg/server"
	"go.uber.org/zap"
)

// Input is the list of dictionary files a command loads.
type Input struct {
	Files []string `arg:"" type:"existingfile" help:"Input files containing words and translations in CSV, TSV or JSON format"`
}

// Output selects where and how entries are written.
type Output struct {
	Format string `help:"Output format" enum:"csv,tsv,json,tree" default:"csv"`
	Output string `help:"Output file, - for stdout" default:"-" short:"o"`
}

func (o *Output) write(ctx *Context, dict *dictionary.Dictionary) error {
	writer, err := newWriter(o.Format, ctx.columns(), ctx.Stats)
	if err != nil {
		return err
	}

	var out io.Writer = ctx.Out
	if o.Output != "-" {
		file, err := os.Create(o.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	if err := writer.Write(dict, out); err != nil {
		return fmt.Errorf("failed to write entries: %w", err)
	}
	ctx.Logger.Info("writing complete", zap.String("output", o.Output), zap.Int("entries", ctx.Stats.Output))
	return nil
}

type PrintCmd struct {
	Input
}

// Run prints the tree layout of the loaded dictionary.
func (cmd *PrintCmd) Run(ctx *Context) error {
	dict, err := ctx.loadDictionary(cmd.Files)
	if err != nil {
		return err
	}
	return TreeWriter{Stats: ctx.Stats}.Write(dict, ctx.Out)
}

type ListCmd struct {
	Input
	Output
}

// Run writes every entry in word order.
func (cmd *ListCmd) Run(ctx *Context) error {
	dict, err := ctx.loadDictionary(cmd.Files)
	if err != nil {
		return err
	}
	return cmd.Output.write(ctx, dict)
}

type LookupCmd struct {
	Input
	Words []string `help:"Word to look up, can be repeated" name:"word" short:"w" required:""`
}

// Run prints "word: translation" for each word, or "word: not found".
func (cmd *LookupCmd) Run(ctx *Context) error {
	dict, err := ctx.loadDictionary(cmd.Files)
	if err != nil {
		return err
	}
	for _, word := range cmd.Words {
		translation, found := dict.Lookup(word)
		if !found {
			translation = "not found"
		}
		if _, err := fmt.Fprintf(ctx.Out, "%s: %s\n", word, translation); err != nil {
			return err
		}
	}
	return nil
}

type EraseCmd struct {
	Input
	Output
	Words []string `help:"Word to erase, can be repeated" name:"word" short:"w" required:""`
}

// Run erases the words then writes the remaining entries.
func (cmd *EraseCmd) Run(ctx *Context) error {
	dict, err := ctx.loadDictionary(cmd.Files)
	if err != nil {
		return err
	}
	for _, word := range cmd.Words {
		if !dict.Remove(word) {
			ctx.Logger.Warn("word not in dictionary", zap.String("word", word))
		}
	}
	return cmd.Output.write(ctx, dict)
}

type ServeCmd struct {
	Input
	Addr string `help:"Address to listen on, defaults to server.host:server.port of the config"`
}

// Run serves the loaded dictionary until interrupted.
func (cmd *ServeCmd) Run(ctx *Context) error {
	dict, err := ctx.loadDictionary(cmd.Files)
	if err != nil {
		return err
	}
	addr := cmd.Addr
	if addr == "" {
		addr = ctx.Config.Server.Addr()
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(dict, ctx.Logger).ListenAndServe(signalCtx, addr)
}
