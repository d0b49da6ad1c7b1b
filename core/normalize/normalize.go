// Package normalize applies the per-line transform chain shared by
// every meld input.
package normalize

import (
	"strings"
	"unicode"

	"github.com/FocuswithJustin/mtmeld/core/detok"
	"github.com/FocuswithJustin/mtmeld/core/truecase"
)

// bpeMarker is the BPE continuation symbol together with the space
// that follows it. Deleting the pair rejoins the subword pieces.
const bpeMarker = "@@ "

// Normalizer applies an ordered chain of optional transforms to one
// line. The zero value only trims trailing whitespace and repairs
// escaped apostrophes.
type Normalizer struct {
	// Lowercase folds the whole line. It wins over Model when both
	// are set.
	Lowercase bool
	// Model restores canonical casing when non-nil.
	Model truecase.Model
	// StripBPE deletes BPE continuation symbols.
	StripBPE bool
	// Detokenizer rejoins tokenized punctuation when non-nil.
	Detokenizer *detok.Detokenizer
}

// Normalize runs the enabled steps in their fixed order and returns
// the transformed line.
func (n *Normalizer) Normalize(line string) string {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if n.Lowercase {
		line = strings.ToLower(line)
	} else if n.Model != nil {
		line = n.Model.Apply(line)
	}
	if n.StripBPE {
		line = strings.ReplaceAll(line, bpeMarker, "")
	}
	if n.Detokenizer != nil {
		line = n.Detokenizer.Detokenize(strings.Fields(line))
	}
	// Moses scripts escape apostrophes on the way through
	return strings.ReplaceAll(line, "&apos;", "'")
}

// WithoutTruecase returns a copy of the normalizer that skips case
// restoration. Online translations are normalized with the copy, so
// their casing is left as delivered.
func (n *Normalizer) WithoutTruecase() *Normalizer {
	c := *n
	c.Model = nil
	return &c
}
