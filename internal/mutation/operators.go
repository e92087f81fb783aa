package mutation

// swaps maps an operator to the operator that replaces it in a mutant
var swaps = map[string]string{
	"+": "-",
	"-": "+",
	"*": "/",
	"/": "*",
}

// Replacement returns the operator swapped in for op
func Replacement(op string) (string, bool) {
	r, ok := swaps[op]
	return r, ok
}
