package normalize

import (
	"testing"

	"github.com/FocuswithJustin/mtmeld/core/detok"
	"github.com/FocuswithJustin/mtmeld/core/truecase"
)

func TestNormalizeZeroValue(t *testing.T) {
	var n Normalizer

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "trailing newline trimmed",
			line: "plain line\n",
			want: "plain line",
		},
		{
			name: "trailing tabs and spaces trimmed",
			line: "plain line \t \r\n",
			want: "plain line",
		},
		{
			name: "leading whitespace kept",
			line: "  indented\n",
			want: "  indented",
		},
		{
			name: "escaped apostrophe repaired",
			line: "it &apos;s fine\n",
			want: "it 's fine",
		},
		{
			name: "whitespace-only line",
			line: " \t\n",
			want: "",
		},
		{
			name: "empty line",
			line: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.line)
			if got != tt.want {
				t.Errorf("Normalize(%q): expected %q, got %q", tt.line, tt.want, got)
			}
		})
	}
}

func TestNormalizeLowercase(t *testing.T) {
	n := Normalizer{Lowercase: true}

	got := n.Normalize("The Wall in BERLIN\n")
	want := "the wall in berlin"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalizeTruecase(t *testing.T) {
	model := truecase.Model{"berlin": "Berlin", "the": "the"}
	n := Normalizer{Model: model}

	got := n.Normalize("THE wall in berlin\n")
	want := "the wall in Berlin"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalizeLowercaseWinsOverTruecase(t *testing.T) {
	// both flags set: folding wins, the model is not consulted
	model := truecase.Model{"berlin": "Berlin"}
	n := Normalizer{Lowercase: true, Model: model}

	got := n.Normalize("berlin\n")
	want := "berlin"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalizeStripBPE(t *testing.T) {
	n := Normalizer{StripBPE: true}

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "subword pieces rejoined",
			line: "unfathom@@ able words\n",
			want: "unfathomable words",
		},
		{
			name: "several markers",
			line: "le@@ ft ri@@ ght@@ most\n",
			want: "left rightmost",
		},
		{
			name: "marker without following space kept",
			line: "dangling@@\n",
			want: "dangling@@",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.line)
			if got != tt.want {
				t.Errorf("Normalize(%q): expected %q, got %q", tt.line, tt.want, got)
			}
		})
	}
}

func TestNormalizeDetokenize(t *testing.T) {
	d, err := detok.New("en")
	if err != nil {
		t.Fatalf("detok.New: %v", err)
	}
	n := Normalizer{Detokenizer: d}

	got := n.Normalize("the cat sat .\n")
	want := "the cat sat."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalizeFullChain(t *testing.T) {
	d, err := detok.New("en")
	if err != nil {
		t.Fatalf("detok.New: %v", err)
	}
	model := truecase.Model{"london": "London"}
	n := Normalizer{Model: model, StripBPE: true, Detokenizer: d}

	// truecase, then BPE rejoin, then detokenize, then apostrophe fix
	got := n.Normalize("london &apos;s unfathom@@ able fog .\n")
	want := "London 's unfathomable fog."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWithoutTruecase(t *testing.T) {
	model := truecase.Model{"berlin": "Berlin"}
	n := Normalizer{Model: model, StripBPE: true}

	plain := n.WithoutTruecase()
	if plain.Model != nil {
		t.Error("expected copy to drop the model")
	}
	if !plain.StripBPE {
		t.Error("expected copy to keep remaining steps")
	}

	// the original normalizer is not touched
	if n.Model == nil {
		t.Error("expected original to keep its model")
	}

	got := plain.Normalize("berlin\n")
	if got != "berlin" {
		t.Errorf("expected %q, got %q", "berlin", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// A second pass over already normalized text must change nothing:
	// the apostrophe fix never reintroduces the escape it replaces.
	norms := []struct {
		name string
		n    Normalizer
	}{
		{
			name: "zero value",
			n:    Normalizer{},
		},
		{
			name: "truecase and bpe",
			n:    Normalizer{Model: truecase.Model{"fine": "Fine"}, StripBPE: true},
		},
	}

	lines := []string{
		"it &apos;s fine\n",
		"l&apos;&apos;homme\n",
		"bo@@ &apos;ne piece\n",
		"&apo&apos;s;\n",
	}

	for _, nt := range norms {
		t.Run(nt.name, func(t *testing.T) {
			for _, line := range lines {
				once := nt.n.Normalize(line)
				twice := nt.n.Normalize(once)
				if twice != once {
					t.Errorf("Normalize(%q) = %q, but a second pass gives %q", line, once, twice)
				}
			}
		})
	}
}
