// Package meld aligns a source stream, an optional reference stream
// and any number of hypothesis streams line by line, and renders one
// comparison block per sentence.
package meld

import (
	"context"
	"io"

	"github.com/FocuswithJustin/mtmeld/core/normalize"
	"github.com/FocuswithJustin/mtmeld/internal/textio"
)

// Translator produces a translation of one line of text. Implemented
// by the online translation collaborator.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Group holds the aligned, normalized lines for one source sentence.
// A Group lives for one iteration and is discarded after rendering.
type Group struct {
	// Index is the 1-based sentence number.
	Index int
	// Source is the normalized source line.
	Source string
	// Reference is the normalized reference line. It is "" when no
	// reference is configured or the reference ran out early; empty
	// is a legitimate value either way.
	Reference string
	// Hypotheses carries one normalized line per opened hypothesis
	// stream, in configured order. Exhausted streams contribute "".
	Hypotheses []string
	// Translated is the normalized online translation of Source,
	// present only when a Translator is configured.
	Translated *string
}

// Config wires the streams and collaborators of a Reader.
type Config struct {
	Source     *textio.Source
	Reference  *textio.Source // optional
	Hypotheses []*textio.Source
	Norm       *normalize.Normalizer
	Translator Translator // optional
}

// Reader walks all configured streams in lockstep, one Group per
// source line. It is single-pass; once the source is exhausted the
// Reader is done.
type Reader struct {
	src        *textio.Source
	ref        *textio.Source
	hyps       []*textio.Source
	norm       *normalize.Normalizer
	transNorm  *normalize.Normalizer
	translator Translator
	index      int
}

// NewReader builds a Reader over the configured streams.
func NewReader(cfg Config) *Reader {
	norm := cfg.Norm
	if norm == nil {
		norm = &normalize.Normalizer{}
	}
	return &Reader{
		src:  cfg.Source,
		ref:  cfg.Reference,
		hyps: cfg.Hypotheses,
		norm: norm,
		// online translations keep the casing they arrive with
		transNorm:  norm.WithoutTruecase(),
		translator: cfg.Translator,
	}
}

// Next reads one line from every stream and returns the aligned
// group. It returns io.EOF once the source stream is exhausted;
// exhausted companion streams yield empty lines instead of ending
// the run. Any other error aborts the run.
func (r *Reader) Next(ctx context.Context) (*Group, error) {
	srcLine, err := r.src.ReadLine()
	if err != nil {
		return nil, err
	}
	r.index++

	g := &Group{
		Index:  r.index,
		Source: r.norm.Normalize(srcLine),
	}

	if r.ref != nil {
		line, err := r.ref.ReadLine()
		if err == io.EOF {
			line = ""
		} else if err != nil {
			return nil, err
		}
		g.Reference = r.norm.Normalize(line)
	}

	for _, hyp := range r.hyps {
		line, err := hyp.ReadLine()
		if err == io.EOF {
			line = ""
		} else if err != nil {
			return nil, err
		}
		g.Hypotheses = append(g.Hypotheses, r.norm.Normalize(line))
	}

	if r.translator != nil {
		translated, err := r.translator.Translate(ctx, g.Source)
		if err != nil {
			return nil, err
		}
		line := r.transNorm.Normalize(translated)
		g.Translated = &line
	}

	return g, nil
}

// Close closes every stream. It is called on every exit path and is
// safe to call more than once.
func (r *Reader) Close() error {
	var errs []error
	if r.src != nil {
		if err := r.src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.ref != nil {
		if err := r.ref.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, hyp := range r.hyps {
		if err := hyp.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
