package harness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ath/internal/arith"
	"ath/internal/domain"
)

var (
	addCases = []domain.TestCase{{A: 1, B: 2, Expected: 3}, {A: -5, B: 5, Expected: 0}}
	mulCases = []domain.TestCase{{A: 5, B: 2, Expected: 10}, {A: 0, B: 0, Expected: 0}}
	divCases = []domain.TestCase{{A: 6, B: 3, Expected: 2}, {A: 0, B: 0, Expected: -1}}
)

func TestRunCases_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		subject arith.Func
		cases   []domain.TestCase
	}{
		{name: "add", subject: arith.Add, cases: addCases},
		{name: "mul", subject: arith.Mul, cases: mulCases},
		{name: "div with zero divisor sentinel", subject: arith.Div, cases: divCases},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := RunCases(tt.subject, tt.cases)
			require.NoError(t, err)
			assert.Equal(t, Pass, outcome)
		})
	}
}

func TestRunCases_MutatedExpectation(t *testing.T) {
	cases := []domain.TestCase{{A: 1, B: 2, Expected: 4}, {A: -5, B: 5, Expected: 0}}

	outcome, err := RunCases(arith.Add, cases)
	assert.Equal(t, Fail, outcome)

	af, ok := AsAssertionFailure(err)
	require.True(t, ok, "expected *AssertionFailure, got %v", err)
	assert.Equal(t, 0, af.Index)
	assert.Equal(t, 4, af.Expected)
	assert.Equal(t, 3, af.Actual)
}

func TestRunCases_LiteralNegativeOneForAddFails(t *testing.T) {
	cases := []domain.TestCase{{A: 1, B: 2, Expected: 3}, {A: -5, B: 5, Expected: -1}}

	outcome, err := RunCases(arith.Add, cases)
	assert.Equal(t, Fail, outcome)

	af, ok := AsAssertionFailure(err)
	require.True(t, ok)
	assert.Equal(t, 1, af.Index)
	assert.Equal(t, -1, af.Expected)
	assert.Equal(t, 0, af.Actual)
}

func TestRunCases_FailFast(t *testing.T) {
	cases := []domain.TestCase{
		{A: 1, B: 1, Expected: 2},
		{A: 2, B: 2, Expected: 5},
		{A: 3, B: 3, Expected: 6},
		{A: 4, B: 4, Expected: 0},
	}

	var calls []int
	subject := func(a, b int) int {
		calls = append(calls, a)
		return a + b
	}

	_, err := RunCases(subject, cases)
	af, ok := AsAssertionFailure(err)
	require.True(t, ok)
	assert.Equal(t, 1, af.Index)
	assert.Equal(t, []int{1, 2}, calls, "cases after the first failure must not be evaluated")
}

func TestRunCases_Idempotent(t *testing.T) {
	bad := []domain.TestCase{{A: 2, B: 2, Expected: 5}}

	for _, cases := range [][]domain.TestCase{addCases, bad} {
		o1, err1 := RunCases(arith.Add, cases)
		o2, err2 := RunCases(arith.Add, cases)
		assert.Equal(t, o1, o2)
		assert.Equal(t, err1, err2)
	}
}

func TestRunCases_PassIffAddition(t *testing.T) {
	pairs := [][2]int{{0, 0}, {1, -1}, {100, 23}, {-7, -8}, {1 << 20, 1 << 20}}
	for _, p := range pairs {
		cases := []domain.TestCase{{A: p[0], B: p[1], Expected: p[0] + p[1]}}
		outcome, err := RunCases(arith.Add, cases)
		assert.NoError(t, err)
		assert.Equal(t, Pass, outcome)

		outcome, err = RunCases(arith.Sub, cases)
		if p[1] == 0 {
			assert.Equal(t, Pass, outcome, "a-0 equals a+0")
			continue
		}
		assert.Equal(t, Fail, outcome)
		assert.Error(t, err)
	}
}

func TestRunCases_InvalidInput(t *testing.T) {
	t.Run("no cases", func(t *testing.T) {
		outcome, err := RunCases(arith.Add, nil)
		assert.Equal(t, Fail, outcome)
		assert.ErrorIs(t, err, ErrNoCases)
	})

	t.Run("nil subject", func(t *testing.T) {
		outcome, err := RunCases(nil, addCases)
		assert.Equal(t, Fail, outcome)
		assert.ErrorIs(t, err, ErrNilSubject)
	})
}

func TestRunSuite(t *testing.T) {
	t.Run("resolves subject by name", func(t *testing.T) {
		outcome, err := RunSuite(domain.Suite{Name: "div", Subject: "div", Cases: divCases})
		require.NoError(t, err)
		assert.Equal(t, Pass, outcome)
	})

	t.Run("unknown subject is not an assertion failure", func(t *testing.T) {
		_, err := RunSuite(domain.Suite{Name: "mod", Subject: "mod", Cases: addCases})
		assert.ErrorIs(t, err, ErrUnknownSubject)
		_, ok := AsAssertionFailure(err)
		assert.False(t, ok)
	})
}

func TestAssertionFailure_Error(t *testing.T) {
	err := error(&AssertionFailure{Index: 0, A: 1, B: 2, Expected: 4, Actual: 3})
	assert.Equal(t, "assertion failed at case 0: subject(1, 2) = 3, expected 4", err.Error())

	wrapped := errors.Join(errors.New("suite add"), err)
	af, ok := AsAssertionFailure(wrapped)
	require.True(t, ok)
	assert.Equal(t, 4, af.Expected)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "PASS", Pass.String())
	assert.Equal(t, "FAIL", Fail.String())
}
