// Command mtmeld melds the source, reference, and multiple hypotheses
// of MT outputs into one entry per sentence.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/mtmeld/core/detok"
	"github.com/FocuswithJustin/mtmeld/core/errors"
	"github.com/FocuswithJustin/mtmeld/core/meld"
	"github.com/FocuswithJustin/mtmeld/core/normalize"
	"github.com/FocuswithJustin/mtmeld/core/truecase"
	"github.com/FocuswithJustin/mtmeld/internal/gtranslate"
	"github.com/FocuswithJustin/mtmeld/internal/logging"
	"github.com/FocuswithJustin/mtmeld/internal/textio"
)

const version = "0.4.0"

// CLI defines the command-line interface for mtmeld.
var CLI RootCmd

// RootCmd is the single meld command; mtmeld has no subcommands.
type RootCmd struct {
	Src      string   `name:"src" short:"s" help:"Source text file" type:"path"`
	Ref      string   `name:"ref" short:"r" help:"Reference text file" type:"path"`
	Hyps     []string `name:"hyps" help:"Hypotheses text file(s)" type:"path"`
	DelBPE   bool     `name:"del_bpe" help:"Delete BPE symbols"`
	LC       bool     `name:"lc" help:"Lowercase all input"`
	Truecase string   `name:"truecase" help:"Truecase output, using specified Moses-truecaser model file" type:"path"`
	Detok    string   `name:"detok" help:"Detokenize output. Argument is target language code (en, fr, it, nl)"`
	Head     *int     `name:"head" help:"Only show first n lines"`
	Google   string   `name:"google" help:"Also translate source with Google Translate. Argument is target language code"`
	Verbose  bool     `name:"verbose" short:"v" help:"Enable debug logging"`

	Version kong.VersionFlag `name:"version" help:"Print version information"`

	// out is the meld destination; stdout unless a test overrides it.
	out io.Writer
}

// Run wires the collaborators and streams and drives the meld loop.
func (c *RootCmd) Run() error {
	if c.Verbose {
		logging.InitLogger(logging.LevelDebug, logging.FormatText)
	}

	if c.Src == "" {
		return errors.NewConfig("--src", "You need to supply a source file.  Add --src <FILE>")
	}
	if info, err := os.Stat(c.Src); err != nil || !info.Mode().IsRegular() {
		return errors.NewConfig("--src", "You need to supply a source file.  Add --src <FILE>")
	}

	var model truecase.Model
	if c.Truecase != "" {
		m, err := truecase.LoadFile(c.Truecase)
		if err != nil {
			return err
		}
		model = m
	}

	// collaborators are validated before the first line is read
	var detokenizer *detok.Detokenizer
	if c.Detok != "" {
		d, err := detok.New(c.Detok)
		if err != nil {
			return err
		}
		detokenizer = d
	}

	ctx := context.Background()

	var translator meld.Translator
	if c.Google != "" {
		client, err := gtranslate.New(ctx, c.Google)
		if err != nil {
			return err
		}
		defer client.Close()
		translator = client
	}

	src, err := textio.Open(c.Src)
	if err != nil {
		return err
	}

	var ref *textio.Source
	if c.Ref != "" {
		ref, err = textio.Open(c.Ref)
		if err != nil {
			src.Close()
			return err
		}
	}

	// a hypothesis that cannot be opened is dropped, not fatal
	var hyps []*textio.Source
	for _, path := range c.Hyps {
		hyp, err := textio.Open(path)
		if err != nil {
			logging.StreamSkipped(path, err)
			continue
		}
		hyps = append(hyps, hyp)
	}

	reader := meld.NewReader(meld.Config{
		Source:     src,
		Reference:  ref,
		Hypotheses: hyps,
		Norm: &normalize.Normalizer{
			Lowercase:   c.LC,
			Model:       model,
			StripBPE:    c.DelBPE,
			Detokenizer: detokenizer,
		},
		Translator: translator,
	})
	defer reader.Close()

	var out io.Writer = os.Stdout
	if c.out != nil {
		out = c.out
	}
	printer := &meld.Printer{Out: out, ShowRef: ref != nil}

	head := -1 // unbounded
	if c.Head != nil {
		head = *c.Head
	}
	return meld.Run(ctx, reader, printer, head)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("mtmeld"),
		kong.Description("Melds the source, reference, and multiple hypotheses of MT outputs into one entry"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": version},
	)
	if err := ctx.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
