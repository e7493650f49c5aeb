package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Progress renders a progress bar over the total number of units expected to
// run, with live passed/failed counts in the description. Layer it next to a
// Console via Multi.
type Progress struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

// NewProgress creates a progress bar expecting count unit results.
func NewProgress(count int) *Progress {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Running units: ")+
				color.GreenString("[passed: 0")+
				" | "+
				color.RedString("failed: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Progress{bar: bar}
}

func (p *Progress) ContextStarted(string, int) {}

// UnitResult advances the bar and refreshes the pass/fail counters.
func (p *Progress) UnitResult(r UnitResult) {
	if r.Passed {
		p.passed++
	} else {
		p.failed++
	}
	p.bar.Set(p.passed + p.failed)
	p.bar.Describe(
		color.CyanString("Running units: ") +
			color.GreenString("[passed: %d", p.passed) +
			" | " +
			color.RedString("failed: %d]", p.failed),
	)
}

func (p *Progress) ContextFinished(string, bool) {}

func (p *Progress) ContextNotFound(string) {}

// Finish completes the bar. Call it once the run is over; units skipped by a
// must-pass failure leave the bar short of its total.
func (p *Progress) Finish() {
	p.bar.Finish()
}
