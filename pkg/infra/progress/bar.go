package progress

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Bar reports extraction progress as a terminal progress bar
type Bar struct {
	w           io.Writer
	description string
	bar         *progressbar.ProgressBar
}

// NewBar creates a Bar writing to w
func NewBar(w io.Writer, description string) *Bar {
	return &Bar{
		w:           w,
		description: description,
	}
}

// Start creates the underlying bar with total steps
func (b *Bar) Start(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription(b.description),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("file"),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer: "█", SaucerHead: "█", SaucerPadding: "░",
			BarStart: "[", BarEnd: "]",
		}),
	)
}

// Advance moves the bar by one entry
func (b *Bar) Advance(name string) {
	if b.bar == nil {
		return
	}
	_ = b.bar.Add(1)
}

// Finish completes the bar and terminates its line
func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
	_, _ = io.WriteString(b.w, "\n")
}
