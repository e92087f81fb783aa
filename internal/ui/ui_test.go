package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"ath/internal/domain"
	"ath/internal/mutation"
)

func newTestFormatter(t *testing.T) (*Formatter, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	return NewFormatterWithWriter(&buf), &buf
}

func failedRun() *domain.RunOutput {
	return &domain.RunOutput{
		Meta: domain.RunMeta{TotalSuites: 3, PassedSuites: 2, FailedSuites: 1, TotalCases: 5, Workers: 1},
		Details: []domain.CaseFailure{
			{Suite: "add", Subject: "add", CaseIndex: 0, A: 1, B: 2, Expected: 4, Actual: 3},
		},
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "case 0: add(1, 2) = 3, expected 4", Describe(failedRun().Details[0]))
	assert.Equal(t, "boom", Describe(domain.CaseFailure{CaseIndex: -1, Message: "boom"}))
}

func TestFormatter_PrintRunStats(t *testing.T) {
	t.Run("all passed", func(t *testing.T) {
		f, buf := newTestFormatter(t)
		f.PrintRunStats(&domain.RunOutput{Meta: domain.RunMeta{TotalSuites: 3, PassedSuites: 3}})
		assert.Contains(t, buf.String(), "All suites passed")
	})

	t.Run("with failure", func(t *testing.T) {
		f, buf := newTestFormatter(t)
		f.PrintRunStats(failedRun())
		out := buf.String()
		assert.Contains(t, out, "1 suite(s) failed")
		assert.Contains(t, out, "└── add")
		assert.Contains(t, out, "case 0: add(1, 2) = 3, expected 4")
	})
}

func TestFormatter_PrintSuiteList(t *testing.T) {
	suites := []domain.Suite{
		{Name: "add", Subject: "add", Cases: []domain.TestCase{{A: 1, B: 2, Expected: 3}}},
		{Name: "div", Subject: "div", Cases: []domain.TestCase{{A: 0, B: 0, Expected: -1}}},
	}

	f, buf := newTestFormatter(t)
	f.PrintSuiteList(suites, true, map[string]struct{}{"div": {}})
	out := buf.String()

	assert.Contains(t, out, "Found 2 suite(s)")
	assert.Contains(t, out, "├── add (add)\n")
	assert.Contains(t, out, "└── div (div) [F]")
	assert.Contains(t, out, "div(0, 0) == -1")
}

func TestFormatter_PrintMutationReport(t *testing.T) {
	t.Run("no mutants", func(t *testing.T) {
		f, buf := newTestFormatter(t)
		f.PrintMutationReport(&mutation.Report{})
		assert.Contains(t, buf.String(), "N/A")
		assert.NotContains(t, buf.String(), "Detailed")
	})

	t.Run("with results", func(t *testing.T) {
		f, buf := newTestFormatter(t)
		f.PrintMutationReport(&mutation.Report{
			Total: 2, Killed: 1, Survived: 1,
			Results: []domain.MutantResult{
				{Mutant: domain.Mutant{Suite: domain.Suite{Name: "add"}, Original: "+", Replacement: "-"}, Status: domain.MutantKilled},
				{Mutant: domain.Mutant{Suite: domain.Suite{Name: "mul"}, Original: "*", Replacement: "/"}, Status: domain.MutantSurvived},
			},
		})
		out := buf.String()
		assert.Contains(t, out, "|   50.0% |")
		assert.Contains(t, out, "add[+→-]")
		assert.Contains(t, out, "survived")
	})
}

func TestPlainViewer_View(t *testing.T) {
	f, buf := newTestFormatter(t)
	run := failedRun()
	run.Details[0].Resolved = true

	assert.NoError(t, NewPlainViewer(f).View(run))
	assert.True(t, strings.HasSuffix(buf.String(), "(resolved)\n"))
}

func TestFormatFailureDetails(t *testing.T) {
	out := formatFailureDetails(failedRun().Details[0])
	assert.Contains(t, out, "[yellow]Expected:[white] 4")
	assert.Contains(t, out, "[yellow]Actual:[white] 3")
	assert.Equal(t, 1, countUnresolved(failedRun().Details))
}
