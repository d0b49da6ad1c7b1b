// Package truecase restores canonical word casing using the textual
// model format of Moses' truecaser.
package truecase

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/FocuswithJustin/mtmeld/core/errors"
)

// Model maps the lowercase form of a word to its preferred-case form.
// A Model is built once and read-only afterward; the zero-value (nil)
// model leaves every token unchanged.
type Model map[string]string

// Load reads a truecaser model. Records are whitespace-delimited, one
// per line, and only the first token of each line is significant;
// Moses models carry count annotations and alternate forms after it,
// which are ignored. Blank lines are skipped and later lines win on
// key collision.
func Load(r io.Reader) (Model, error) {
	model := make(Model)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		model[strings.ToLower(fields[0])] = fields[0]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return model, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStream(path, err)
	}
	defer f.Close()
	return Load(f)
}

// Apply restores casing in a line of text. Every whitespace-separated
// token whose lowercase form is in the model is replaced by the
// canonical form; unknown tokens pass through. Tokens are rejoined
// with single spaces.
func (m Model) Apply(line string) string {
	tokens := strings.Fields(line)
	for i, tok := range tokens {
		if canon, ok := m[strings.ToLower(tok)]; ok {
			tokens[i] = canon
		}
	}
	return strings.Join(tokens, " ")
}
