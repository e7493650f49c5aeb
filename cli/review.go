package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"utest/report"
)

// Reviewer displays the failures of a run in an interactive TUI: the failed
// units on the left, the selected unit's diagnostics on the right.
type Reviewer struct{}

// NewReviewer creates a new Reviewer.
func NewReviewer() *Reviewer {
	return &Reviewer{}
}

// View opens the viewer over the given failures. Returns immediately when
// there is nothing to show.
func (rv *Reviewer) View(failures []report.UnitResult) error {
	if len(failures) == 0 {
		color.Green("✓ No failures to review!")
		return nil
	}

	app := tview.NewApplication()

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle(" Diagnostics ")

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Failures (%d) ", len(failures)))
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	showDetails := func(index int) {
		if index < 0 || index >= len(failures) {
			return
		}
		f := failures[index]
		var b strings.Builder
		fmt.Fprintf(&b, "[yellow]%s[white] / %s\n\n", f.Context, report.Humanize(f.Unit))
		fmt.Fprintf(&b, "asserts evaluated: %d\n", f.Asserts)
		if f.MustPass {
			fmt.Fprintf(&b, "[red]must-pass: the remaining units of this context were skipped[white]\n")
		}
		if len(f.Diagnostics) == 0 {
			fmt.Fprintf(&b, "\n(no diagnostics recorded)\n")
		}
		for _, d := range f.Diagnostics {
			fmt.Fprintf(&b, "\n[red]%s[white]", tview.Escape(d))
		}
		details.SetText(b.String())
		details.ScrollToBeginning()
	}

	for i, f := range failures {
		list.AddItem(
			fmt.Sprintf("[yellow]%d.[white] %s", i+1, report.Humanize(f.Unit)),
			fmt.Sprintf("   %s", f.Context),
			0, nil,
		)
		if i == 0 {
			showDetails(0)
		}
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetails(index)
	})

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape || event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Key() == tcell.KeyTab:
			if list.HasFocus() {
				app.SetFocus(details)
			} else {
				app.SetFocus(list)
			}
			return nil
		case event.Rune() == 'j':
			return tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
		case event.Rune() == 'k':
			return tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
		}
		return event
	})

	if err := app.SetRoot(flex, true).Run(); err != nil {
		return fmt.Errorf("failure viewer: %w", err)
	}
	return nil
}
