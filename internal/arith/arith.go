// Package arith provides the integer subject functions exercised by the harness.
package arith

import (
	"fmt"
	"sort"
)

// Func is a pure binary integer operation
type Func func(a, b int) int

// DivByZero is what Div returns for any zero divisor.
const DivByZero = -1

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Sub returns a - b.
func Sub(a, b int) int {
	return a - b
}

// Mul returns a * b.
func Mul(a, b int) int {
	return a * b
}

// Div returns a / b truncated toward zero, or DivByZero when b is 0.
// Div(0, 0) is therefore -1, not an error.
func Div(a, b int) int {
	if b == 0 {
		return DivByZero
	}
	return a / b
}

// Operation names a subject function and the operator it implements
type Operation struct {
	Name   string
	Symbol string
	Func   Func
}

var operations = []Operation{
	{Name: "add", Symbol: "+", Func: Add},
	{Name: "sub", Symbol: "-", Func: Sub},
	{Name: "mul", Symbol: "*", Func: Mul},
	{Name: "div", Symbol: "/", Func: Div},
}

// Lookup finds an operation by name or by operator symbol
func Lookup(key string) (Operation, error) {
	for _, op := range operations {
		if op.Name == key || op.Symbol == key {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("unknown operation %q", key)
}

// Names returns all operation names sorted alphabetically
func Names() []string {
	names := make([]string, 0, len(operations))
	for _, op := range operations {
		names = append(names, op.Name)
	}
	sort.Strings(names)
	return names
}
