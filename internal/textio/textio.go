// Package textio provides line-oriented access to meld inputs.
// It reads plain text, gzip- and xz-compressed text, and SGML/XML
// evaluation sets, yielding one segment per line.
package textio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/mtmeld/core/errors"
	"github.com/FocuswithJustin/mtmeld/internal/logging"
)

// segExpr selects every segment element of an evaluation set in
// document order.
const segExpr = "//seg"

// maxLineLen caps a single input line. Corpus lines can run far past
// bufio's default token limit.
const maxLineLen = 16 * 1024 * 1024

// Source yields the lines of one meld input in order. It is
// single-pass and forward-only.
type Source struct {
	path         string
	file         *os.File
	decompressor io.Closer
	scanner      *bufio.Scanner
	segs         []string
	next         int
	segMode      bool
}

// Open opens a text input for line-by-line reading.
// It automatically detects and handles .gz and .xz compression, and
// extracts <seg> contents from .sgm, .sgml and .xml evaluation sets.
// Compression may wrap markup (for example corpus.sgm.gz).
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStream(path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.NewStream(path, err)
	}
	if info.IsDir() {
		// directories open fine but cannot be line-read
		f.Close()
		return nil, errors.NewStream(path, errors.ErrUnsupportedInput)
	}

	src := &Source{path: path, file: f}
	var reader io.Reader = f
	kind := "text"
	inner := path

	switch {
	case strings.HasSuffix(inner, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.NewStream(path, fmt.Errorf("xz reader: %w", err))
		}
		reader = xzr
		// xz reader doesn't need closing
		kind = "xz"
		inner = strings.TrimSuffix(inner, ".xz")
	case strings.HasSuffix(inner, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.NewStream(path, fmt.Errorf("gzip reader: %w", err))
		}
		reader = gzr
		src.decompressor = gzr
		kind = "gzip"
		inner = strings.TrimSuffix(inner, ".gz")
	}

	if isEvalSet(inner) {
		segs, err := extractSegs(reader)
		// the whole stream is consumed during parsing, so the
		// handle can go before the first ReadLine
		if cerr := src.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, errors.NewStream(path, err)
		}
		logging.StreamOpened(path, "sgml", "segments", len(segs))
		return &Source{path: path, segs: segs, segMode: true}, nil
	}

	src.scanner = bufio.NewScanner(reader)
	src.scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	logging.StreamOpened(path, kind)
	return src, nil
}

// Path returns the path the source was opened from.
func (s *Source) Path() string {
	return s.path
}

// ReadLine returns the next line without its terminator. It returns
// io.EOF when the input is exhausted.
func (s *Source) ReadLine() (string, error) {
	if s.segMode {
		if s.next >= len(s.segs) {
			return "", io.EOF
		}
		line := s.segs[s.next]
		s.next++
		return line, nil
	}
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", errors.NewStream(s.path, err)
	}
	return "", io.EOF
}

// Close closes the source and any underlying decompressor. It is safe
// to call more than once.
func (s *Source) Close() error {
	var errs []error
	if s.decompressor != nil {
		if err := s.decompressor.Close(); err != nil {
			errs = append(errs, err)
		}
		s.decompressor = nil
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			errs = append(errs, err)
		}
		s.file = nil
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// isEvalSet reports whether the path (compression suffix already
// stripped) names an SGML/XML evaluation set.
func isEvalSet(path string) bool {
	return strings.HasSuffix(path, ".sgm") ||
		strings.HasSuffix(path, ".sgml") ||
		strings.HasSuffix(path, ".xml")
}

// extractSegs parses an evaluation set and returns the text of every
// <seg> element in document order.
func extractSegs(r io.Reader) ([]string, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	// Compile the expression to check for errors
	if _, err := xpath.Compile(segExpr); err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	nodes, err := xmlquery.QueryAll(root, segExpr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}

	segs := make([]string, 0, len(nodes))
	for _, n := range nodes {
		segs = append(segs, strings.TrimSpace(n.InnerText()))
	}
	return segs, nil
}
