package cli

import "addtest/internal/config"

// Flags holds command-line flags
type Flags struct {
	OutputDir string
	DryRun    bool
	Quiet     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		OutputDir: f.OutputDir,
		DryRun:    f.DryRun,
		Quiet:     f.Quiet,
	}
}
