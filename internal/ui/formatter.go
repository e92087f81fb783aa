package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"ath/internal/domain"
	"ath/internal/mutation"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a Formatter writing to color.Output (stdout)
func NewFormatter() *Formatter {
	return NewFormatterWithWriter(color.Output)
}

// NewFormatterWithWriter creates a Formatter writing to w
func NewFormatterWithWriter(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

// PrintRunStats displays meta statistics and the failure tree of a run
func (f *Formatter) PrintRunStats(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Suite Execution Statistics                 ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Total Suites", white, fmt.Sprint(meta.TotalSuites))
	f.separator()
	f.row("Passed Suites", green, fmt.Sprint(meta.PassedSuites))
	f.separator()
	f.row("Failed Suites", red, fmt.Sprint(meta.FailedSuites))
	f.separator()
	f.row("Cases Evaluated", white, fmt.Sprint(meta.TotalCases))
	f.separator()
	f.row("Duration", white, fmt.Sprintf("%.4fs", meta.DurationSeconds))
	f.separator()
	f.row("Workers", white, fmt.Sprint(meta.Workers))
	f.separator()
	f.row("Timestamp", white, meta.Timestamp)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if meta.FailedSuites == 0 {
		green.Fprintln(f.out, "✓ All suites passed!")
		return
	}
	red.Fprintf(f.out, "✗ %d suite(s) failed\n", meta.FailedSuites)
	fmt.Fprintln(f.out)
	f.printFailureTree(output.Details)
}

func (f *Formatter) row(label string, c *color.Color, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s", value)
	fmt.Fprintln(f.out, " │")
}

func (f *Formatter) separator() {
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
}

// printFailureTree groups failures under their subject, then suite
func (f *Formatter) printFailureTree(failures []domain.CaseFailure) {
	bySubject := make(map[string][]domain.CaseFailure)
	for _, failure := range failures {
		bySubject[failure.Subject] = append(bySubject[failure.Subject], failure)
	}

	subjects := make([]string, 0, len(bySubject))
	for s := range bySubject {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	for i, subject := range subjects {
		lastSubject := i == len(subjects)-1
		branch, indent := "├── ", "│   "
		if lastSubject {
			branch, indent = "└── ", "    "
		}
		cyan.Fprintf(f.out, "%s%s\n", branch, subject)

		group := bySubject[subject]
		for j, failure := range group {
			leaf := "├── "
			if j == len(group)-1 {
				leaf = "└── "
			}
			fmt.Fprint(f.out, indent+leaf)
			yellow.Fprint(f.out, failure.Suite)
			fmt.Fprint(f.out, " ")
			red.Fprintln(f.out, Describe(failure))
		}
	}
}

// Describe renders a failure as a single line, e.g. "case 0: add(1, 2) = 3, expected 4"
func Describe(failure domain.CaseFailure) string {
	if failure.CaseIndex < 0 {
		return failure.Message
	}
	return fmt.Sprintf("case %d: %s(%d, %d) = %d, expected %d",
		failure.CaseIndex, failure.Subject, failure.A, failure.B, failure.Actual, failure.Expected)
}

// PrintSuiteList prints registered suites, optionally with their cases.
// Suites named in failed (from the last run) are marked with [F].
func (f *Formatter) PrintSuiteList(suites []domain.Suite, showCases bool, failed map[string]struct{}) {
	green.Fprintf(f.out, "Found %d suite(s):\n\n", len(suites))

	for i, suite := range suites {
		isLast := i == len(suites)-1
		branch, indent := "├── ", "│   "
		if isLast {
			branch, indent = "└── ", "    "
		}

		marker := ""
		if _, ok := failed[suite.Name]; ok {
			marker = " " + red.Sprint("[F]")
		}
		cyan.Fprintf(f.out, "%s%s (%s)", branch, suite.Name, suite.Subject)
		fmt.Fprintln(f.out, marker)

		if !showCases {
			continue
		}
		for j, c := range suite.Cases {
			leaf := "├── "
			if j == len(suite.Cases)-1 {
				leaf = "└── "
			}
			fmt.Fprint(f.out, indent+leaf)
			yellow.Fprintf(f.out, "%s(%d, %d) == %d\n", suite.Subject, c.A, c.B, c.Expected)
		}
	}
}

// PrintFailures lists failures from a run without the interactive viewer
func (f *Formatter) PrintFailures(output *domain.RunOutput) {
	if len(output.Details) == 0 {
		green.Fprintln(f.out, "✓ No failures in the last run!")
		return
	}
	for i, failure := range output.Details {
		status := ""
		if failure.Resolved {
			status = " (resolved)"
		}
		yellow.Fprintf(f.out, "%d. ", i+1)
		fmt.Fprintf(f.out, "%s: ", failure.Suite)
		red.Fprint(f.out, Describe(failure))
		fmt.Fprintln(f.out, status)
	}
}

// PrintMutationReport prints the mutation summary and per-mutant results
func (f *Formatter) PrintMutationReport(report *mutation.Report) {
	fmt.Fprintln(f.out, "\nMutation Testing Report:")
	fmt.Fprintln(f.out, "+----------------+---------+")
	fmt.Fprintln(f.out, "| Result         | Count   |")
	fmt.Fprintln(f.out, "+----------------+---------+")
	fmt.Fprintf(f.out, "| Total mutants  | %-7d |\n", report.Total)
	fmt.Fprintf(f.out, "| Killed         | %-7d |\n", report.Killed)
	fmt.Fprintf(f.out, "| Survived       | %-7d |\n", report.Survived)
	fmt.Fprintln(f.out, "+----------------+---------+")
	if score, ok := report.Score(); ok {
		fmt.Fprintf(f.out, "| Mutation Score | %6.1f%% |\n", score)
	} else {
		fmt.Fprintln(f.out, "| Mutation Score |   N/A   |")
	}
	fmt.Fprintln(f.out, "+----------------+---------+")

	if len(report.Results) == 0 {
		return
	}

	fmt.Fprintln(f.out, "\nDetailed Mutant Results:")
	fmt.Fprintln(f.out, "+-----+--------------+------------------+----------+")
	fmt.Fprintln(f.out, "| No. | Suite        | Mutant           | Result   |")
	fmt.Fprintln(f.out, "+-----+--------------+------------------+----------+")
	for i, r := range report.Results {
		fmt.Fprintf(f.out, "| %-3d | %-12s | %-16s | ", i+1, r.Mutant.Suite.Name, mutation.Name(r.Mutant))
		c := green
		if r.Status == domain.MutantSurvived {
			c = red
		}
		c.Fprintf(f.out, "%-8s", r.Status)
		fmt.Fprintln(f.out, " |")
	}
	fmt.Fprintln(f.out, "+-----+--------------+------------------+----------+")
}
