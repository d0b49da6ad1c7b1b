package meld

import (
	"context"
	"io"
)

// Run drains the reader and renders every group. A non-negative head
// caps the number of groups, zero included; a negative head means
// unbounded. The reader's streams stay open; closing them is the
// caller's job.
func Run(ctx context.Context, r *Reader, p *Printer, head int) error {
	for count := 0; head < 0 || count < head; count++ {
		g, err := r.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		p.Render(g)
	}
	return nil
}
