package commands

import (
	"addtest/internal/cli"
	"addtest/internal/config"
	"addtest/internal/storage"
	"addtest/internal/template"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	renderer := template.NewRenderer()
	fileStorage := storage.NewFileStorage(cfg)

	return &Commands{
		Generate: NewGenerateCommand(cfg, renderer, fileStorage),
	}
}

// Register wires the generator into the root command.
// The root command takes the class and test names directly.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Use = "addtest <ClassName> <FirstTestName>"
	rootCmd.Args = c.Generate.ValidateArgs
	rootCmd.RunE = c.Generate.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Environment first, then flags on top
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}
	// Errors are reported once by main
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", "", "Directory to write the test file to (default: current directory, or $"+config.EnvOutputDir+")")
	rootCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Print the generated file to stdout instead of writing it")
	rootCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Do not report the created file")
}

// NewRootCommand builds a fully registered root command
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Short: "Generate a CppUnit test fixture skeleton",
		Long: `Generate Test<ClassName>.cpp, a CppUnit test fixture for <ClassName> with one empty test method named test<FirstTestName>. An existing file of the same name is overwritten.

The file starts directly with the #include line. Unlike the old AddTestFile.py script, no blank first line is emitted.`,
		Version: version,
	}

	cfg := config.New()
	var flags cli.Flags

	NewCommands(cfg).Register(rootCmd, &flags, cfg)
	return rootCmd
}
