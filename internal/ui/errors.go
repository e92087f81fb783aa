package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/rivo/tview"

	"ath/internal/domain"
	"ath/internal/storage"
)

// FailureViewer displays run failures in an interactive TUI
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer; resolved toggles are saved through st
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays failures in an interactive TUI
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No failures in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range results.Details {
		list.AddItem(listItemText(results.Details[i], i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, [yellow]Q[white] quit ",
			len(results.Details), countUnresolved(results.Details)))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			detailsView.SetText(formatFailureDetails(results.Details[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.Stop()
				return nil
			case 'r', 'R':
				index := list.GetCurrentItem()
				if index < 0 || index >= len(results.Details) {
					return nil
				}
				results.Details[index].Resolved = !results.Details[index].Resolved
				list.SetItemText(index, listItemText(results.Details[index], index), "")
				updateHeader()
				updateDetails()
				if err := fv.storage.SaveOutput(results); err != nil {
					glog.Warningf("save resolved status: %v", err)
				}
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func listItemText(failure domain.CaseFailure, index int) string {
	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, failure.Suite)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, failure.Suite)
}

func countUnresolved(failures []domain.CaseFailure) int {
	count := 0
	for _, f := range failures {
		if !f.Resolved {
			count++
		}
	}
	return count
}

// formatFailureDetails formats a failure using tview color tags
func formatFailureDetails(failure domain.CaseFailure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Suite: %s[white]\n\n", failure.Suite)
	fmt.Fprintf(&b, "[cyan]Subject: %s[white]\n", failure.Subject)
	if failure.CaseIndex >= 0 {
		fmt.Fprintf(&b, "[yellow]Case:[white] %d\n", failure.CaseIndex)
		fmt.Fprintf(&b, "[yellow]Operands:[white] %d, %d\n", failure.A, failure.B)
		fmt.Fprintf(&b, "[yellow]Expected:[white] %d\n", failure.Expected)
		fmt.Fprintf(&b, "[yellow]Actual:[white] %d\n", failure.Actual)
	}
	if failure.Message != "" {
		fmt.Fprintf(&b, "\n[yellow]Message:[white]\n%s\n", tview.Escape(failure.Message))
	}
	if failure.Resolved {
		b.WriteString("\n[gray](resolved)[white]\n")
	}
	return b.String()
}

// PlainViewer prints failures as text, for non-interactive terminals
type PlainViewer struct {
	formatter *Formatter
}

// NewPlainViewer creates a PlainViewer
func NewPlainViewer(formatter *Formatter) *PlainViewer {
	return &PlainViewer{formatter: formatter}
}

// View prints every failure on its own line
func (pv *PlainViewer) View(results *domain.RunOutput) error {
	pv.formatter.PrintFailures(results)
	return nil
}
