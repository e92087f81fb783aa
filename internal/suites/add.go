package suites

import "ath/internal/domain"

// Add checks addition, including operands that cancel out.
var Add = domain.Suite{
	Name:    "add",
	Subject: "add",
	Cases: []domain.TestCase{
		{A: 1, B: 2, Expected: 3},
		{A: -5, B: 5, Expected: 0},
	},
}
