package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ctr/internal/domain"
	"ctr/internal/storage"
)

// ErrorViewer displays failed fixtures in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
	out     io.Writer
}

var _ Viewer = (*ErrorViewer)(nil)

// NewErrorViewer creates a new ErrorViewer. Resolved marks are written
// back through st; out receives the message shown when nothing failed.
func NewErrorViewer(st storage.Storage, out io.Writer) *ErrorViewer {
	return &ErrorViewer{
		storage: st,
		out:     out,
	}
}

// View displays the failures of a report in an interactive TUI
func (ev *ErrorViewer) View(report *domain.Report) error {
	if len(report.Failures) == 0 {
		passColor.Fprintln(ev.out, "✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i := range report.Failures {
		list.AddItem(listItemText(report.Failures[i], i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// list on the left (1/3), details on the right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" %s: %d failed, %d unresolved | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
			tview.Escape(report.Meta.Suite), len(report.Failures), countUnresolved(report.Failures),
		))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(report.Failures) {
			failure := report.Failures[index]
			statsView.SetText(formatFailureStats(failure))
			detailsView.SetText(formatFailureDetails(failure)).ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(report.Failures) {
					report.Failures[index].Resolved = !report.Failures[index].Resolved
					list.SetItemText(index, listItemText(report.Failures[index], index), "")
					updateHeader()
					// the viewer stays usable even if the mark cannot be persisted
					_ = ev.storage.Save(report)
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func countUnresolved(failures []domain.Failure) int {
	count := 0
	for _, f := range failures {
		if !f.Resolved {
			count++
		}
	}
	return count
}

func listItemText(failure domain.Failure, index int) string {
	name := tview.Escape(failure.Name)
	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
}

// formatFailureStats formats the one-line header above the details pane
func formatFailureStats(failure domain.Failure) string {
	return fmt.Sprintf("[cyan]fixture:[white] [yellow]%s[white]  [cyan]kind:[white] %s  [cyan]reason:[white] [red]%s[white]  [cyan]exit:[white] %d\n",
		tview.Escape(failure.Path), failure.Kind, failure.Reason, failure.ExitCode)
}

// formatFailureDetails formats a failure using tview color tags. Captured
// text is escaped so brackets in compiler output are not read as tags.
func formatFailureDetails(failure domain.Failure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", tview.Escape(failure.Name))
	fmt.Fprintf(&b, "[cyan]Golden file: %s[white]\n\n", tview.Escape(failure.Expected))

	if len(failure.Message) > 0 {
		b.WriteString("[yellow]Message:[white]\n")
		for _, line := range failure.Message {
			fmt.Fprintf(&b, "  %s\n", tview.Escape(line))
		}
		b.WriteString("\n")
	}

	if len(failure.Diff) > 0 {
		b.WriteString("[yellow]Differences:[white]\n")
		for _, line := range failure.Diff {
			tag := "white"
			switch {
			case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			case strings.HasPrefix(line, "@@"):
				tag = "cyan"
			case strings.HasPrefix(line, "+"):
				tag = "green"
			case strings.HasPrefix(line, "-"):
				tag = "red"
			}
			fmt.Fprintf(&b, "  [%s]%s[white]\n", tag, tview.Escape(line))
		}
		b.WriteString("\n")
	}

	if failure.Stderr != "" && failure.Reason != domain.ReasonUnexpectedStderr && failure.Reason != domain.ReasonErrorLine {
		fmt.Fprintf(&b, "[yellow]Stderr:[white]\n%s\n", tview.Escape(failure.Stderr))
	}

	return b.String()
}
