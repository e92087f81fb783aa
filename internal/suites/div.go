package suites

import (
	"ath/internal/arith"
	"ath/internal/domain"
)

// Div checks division and the zero divisor sentinel.
var Div = domain.Suite{
	Name:    "div",
	Subject: "div",
	Cases: []domain.TestCase{
		{A: 6, B: 3, Expected: 2},
		{A: 0, B: 0, Expected: arith.DivByZero},
	},
}
