package harness

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCases is returned when a run is given no cases to assert
	ErrNoCases = errors.New("no test cases")
	// ErrNilSubject is returned when there is no subject function to invoke
	ErrNilSubject = errors.New("nil subject function")
	// ErrUnknownSubject is returned when a suite names a subject that does not exist
	ErrUnknownSubject = errors.New("unknown subject")
)

// AssertionFailure reports the first case whose result differed from its expectation
type AssertionFailure struct {
	Index    int // 0-based position of the failing case
	A        int
	B        int
	Expected int
	Actual   int
}

func (e *AssertionFailure) Error() string {
	return fmt.Sprintf("assertion failed at case %d: subject(%d, %d) = %d, expected %d",
		e.Index, e.A, e.B, e.Actual, e.Expected)
}

// AsAssertionFailure unwraps err into an AssertionFailure if it holds one
func AsAssertionFailure(err error) (*AssertionFailure, bool) {
	var af *AssertionFailure
	if errors.As(err, &af) {
		return af, true
	}
	return nil, false
}
