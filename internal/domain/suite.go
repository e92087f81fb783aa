package domain

// TestCase is one fixed input/expected-output tuple
type TestCase struct {
	A        int `json:"a"`
	B        int `json:"b"`
	Expected int `json:"expected"`
}

// Suite pairs a subject function name with the ordered cases asserted against it
type Suite struct {
	Name    string     // Suite name, unique within a registry
	Subject string     // Name of the arith operation under test
	Cases   []TestCase // Ordered, evaluated first to last
}

// WithExpected returns a copy of the suite with case i expecting want.
// The receiver is left untouched.
func (s Suite) WithExpected(i int, want int) Suite {
	cases := make([]TestCase, len(s.Cases))
	copy(cases, s.Cases)
	if i >= 0 && i < len(cases) {
		cases[i].Expected = want
	}
	s.Cases = cases
	return s
}
