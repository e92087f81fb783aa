// Package suites registers the built-in arithmetic suites with registry.Default.
// Import it for its side effects.
package suites

import "ath/internal/registry"

func init() {
	registry.MustRegister(Add)
	registry.MustRegister(Mul)
	registry.MustRegister(Div)
}
