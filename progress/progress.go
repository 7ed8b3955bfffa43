// Package progress draws terminal progress bars on stderr.
// A disabled Bar accepts every call and draws nothing.
package progress

import (
	"os"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar is one progress bar, or a no-op when disabled.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New starts a bar counting up to total. When enabled is false the
// returned Bar is a no-op.
func New(name string, total int, enabled bool) *Bar {
	if !enabled {
		return &Bar{}
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Bar{p: p, bar: bar}
}

// Increment advances the bar by one.
func (b *Bar) Increment() {
	if b != nil && b.bar != nil {
		b.bar.Increment()
	}
}

// Done completes the bar at its current count and waits for the last render.
func (b *Bar) Done() {
	if b == nil || b.bar == nil {
		return
	}
	b.bar.SetTotal(-1, true)
	b.p.Wait()
}
