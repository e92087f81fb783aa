package suites

import "ath/internal/domain"

// Mul checks multiplication, including a zero product.
var Mul = domain.Suite{
	Name:    "mul",
	Subject: "mul",
	Cases: []domain.TestCase{
		{A: 5, B: 2, Expected: 10},
		{A: 0, B: 0, Expected: 0},
	},
}
