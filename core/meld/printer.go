package meld

import (
	"fmt"
	"io"
)

// matchMarker flags a hypothesis that equals the reference exactly;
// missMarker keeps non-matching lines in the same column. Both are
// four characters so every text column starts at offset nine.
const (
	matchMarker = ":-) "
	missMarker  = "    "
)

// Printer renders comparison blocks to Out.
type Printer struct {
	Out io.Writer
	// ShowRef controls the Ref line. The reference is still compared
	// against hypotheses when it is off (as the empty string).
	ShowRef bool
}

// Render writes one comparison block: the source, the reference when
// configured, and every hypothesis with its 1-based ordinal. The
// online translation renders as the next ordinal after the real
// hypotheses. A blank line closes the block.
func (p *Printer) Render(g *Group) {
	fmt.Fprintf(p.Out, "Src:     %s\n", g.Source)
	if p.ShowRef {
		fmt.Fprintf(p.Out, "Ref:     %s\n", g.Reference)
	}

	num := 1
	for _, hyp := range g.Hypotheses {
		p.renderHyp(num, g.Reference, hyp)
		num++
	}
	if g.Translated != nil {
		p.renderHyp(num, g.Reference, *g.Translated)
	}

	fmt.Fprintln(p.Out)
}

// renderHyp writes one hypothesis line. A hypothesis that matches the
// reference exactly gets a smiley.
func (p *Printer) renderHyp(num int, ref, hyp string) {
	marker := missMarker
	if hyp == ref {
		marker = matchMarker
	}
	fmt.Fprintf(p.Out, "MT%d: %s%s\n", num, marker, hyp)
}
