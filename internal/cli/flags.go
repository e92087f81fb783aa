package cli

import "ath/internal/config"

// Flags holds command-line flags
type Flags struct {
	Processors int
	NameFilter string
	FailFast   bool
	NoSave     bool
	TestCases  bool
	Plain      bool
	Verbose    int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors: f.Processors,
		NameFilter: f.NameFilter,
		FailFast:   f.FailFast,
		NoSave:     f.NoSave,
		TestCases:  f.TestCases,
		Plain:      f.Plain,
	}
}
