// Package detok rejoins Moses-style tokenized text into naturally
// punctuated text for a target language.
package detok

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/FocuswithJustin/mtmeld/core/errors"
	"github.com/FocuswithJustin/mtmeld/internal/logging"
)

const (
	// closers attach to the token on their left.
	closers = ".,:;!?%)]}"
	// openers attach to the token on their right.
	openers = "([{"
	// singles and doubles alternate sides as quote pairs open and close.
	singles = "'`’‘‚"
	doubles = `"”„“`
)

var (
	rePunctRun = regexp.MustCompile(`^[.!?]+$`)
	reElision  = regexp.MustCompile(`^\p{L}+['’]$`)
)

// Detokenizer rejoins token sequences for one target language. The
// supported rule sets are en, fr, it and nl.
type Detokenizer struct {
	lang string
}

// New builds a Detokenizer for a target language code. An
// unparseable code means the collaborator cannot be configured; a
// parseable code outside the supported rule sets fails with
// ErrLanguageData.
func New(lang string) (*Detokenizer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, errors.NewCollaborator(errors.CollaboratorDetok,
			fmt.Sprintf("unrecognized language code %q", lang), err)
	}

	base, _ := tag.Base()
	code := base.String()
	switch code {
	case "en", "fr", "it", "nl":
	default:
		return nil, errors.NewCollaborator(errors.CollaboratorDetok,
			fmt.Sprintf("no detokenization data for language %q", code), errors.ErrLanguageData)
	}

	logging.CollaboratorReady("detokenizer", code)
	return &Detokenizer{lang: code}, nil
}

// Lang returns the resolved base language code.
func (d *Detokenizer) Lang() string {
	return d.lang
}

// Detokenize joins tokens into one line, attaching punctuation to its
// neighbors. Tokens are first marked for joining, then the marks are
// collapsed in a single pass over the joined string.
func (d *Detokenizer) Detokenize(tokens []string) string {
	words := make([]string, len(tokens))
	copy(words, tokens)

	singleOpen := false
	doubleOpen := false
	for i, word := range words {
		if utf8.RuneCountInString(word) == 1 {
			if strings.Contains(closers, word) {
				words[i] = "\a" + word
				continue
			}
			if strings.Contains(openers, word) {
				words[i] = word + "\a"
				continue
			}
			if strings.Contains("\\/", word) {
				words[i] = "\a" + word + "\a"
				continue
			}
			if strings.Contains(singles, word) {
				if singleOpen {
					words[i] = "\a" + word
				} else {
					words[i] = word + "\a"
				}
				singleOpen = !singleOpen
				continue
			}
			if strings.Contains(doubles, word) {
				if doubleOpen {
					words[i] = "\a" + word
				} else {
					words[i] = word + "\a"
				}
				doubleOpen = !doubleOpen
				continue
			}
		}
		// en contractions are split off leftward by the tokenizer
		// ("do n't", "it 's"); undo that here
		if d.lang == "en" && (word == "n't" || strings.HasPrefix(word, "'") || strings.HasPrefix(word, "’")) {
			words[i] = "\a" + word
			continue
		}
		// fr/it elided articles ("l' homme", "un' ora") rejoin rightward
		if (d.lang == "fr" || d.lang == "it") && reElision.MatchString(word) {
			words[i] = word + "\a"
			continue
		}
		if rePunctRun.MatchString(word) {
			words[i] = "\a" + word
			continue
		}
	}

	s := strings.Join(words, " ")
	s = strings.ReplaceAll(s, " \a", "")
	s = strings.ReplaceAll(s, "\a ", "")
	s = strings.ReplaceAll(s, "\a", "")
	return s
}
