package main

import (
	"errors"
	"os"

	"addtest/internal/cli/commands"
	"addtest/internal/domain"
	"addtest/internal/ui"
)

var version = "dev"

func main() {
	// Create root command with the generator registered on it
	rootCmd := commands.NewRootCommand(version)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status
func exitCode(err error) int {
	if errors.Is(err, domain.ErrMissingArguments) {
		return 2
	}
	return 1
}
