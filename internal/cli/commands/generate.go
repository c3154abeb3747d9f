package commands

import (
	"fmt"

	"addtest/internal/config"
	"addtest/internal/domain"
	"addtest/internal/storage"
	"addtest/internal/template"
	"addtest/internal/ui"

	"github.com/spf13/cobra"
)

// GenerateCommand writes a CppUnit fixture for a class
type GenerateCommand struct {
	config   *config.Config
	renderer *template.Renderer
	storage  storage.Storage
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, renderer *template.Renderer, st storage.Storage) *GenerateCommand {
	return &GenerateCommand{
		config:   cfg,
		renderer: renderer,
		storage:  st,
	}
}

// ValidateArgs rejects invocations without both names and prints the usage line
func (gc *GenerateCommand) ValidateArgs(cmd *cobra.Command, args []string) error {
	if _, err := domain.NewFixture(args); err != nil {
		gc.formatter(cmd).PrintUsage()
		return err
	}
	return nil
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	fixture, err := domain.NewFixture(args)
	if err != nil {
		return err
	}

	formatter := gc.formatter(cmd)
	if !template.IsIdentifier(fixture.ClassName) {
		formatter.PrintWarning("class name %q is not a valid C++ identifier", fixture.ClassName)
	}
	if !template.IsIdentifier(fixture.TestName) {
		formatter.PrintWarning("test name %q is not a valid C++ identifier", fixture.TestName)
	}

	content := gc.renderer.Render(fixture)

	if gc.config.Flags.DryRun {
		formatter.PrintContent(content)
		return nil
	}

	path, err := gc.storage.Save(template.FileName(fixture.ClassName), []byte(content))
	if err != nil {
		return fmt.Errorf("generate test for %s: %w", fixture.ClassName, err)
	}

	formatter.PrintCreated(path)
	return nil
}

func (gc *GenerateCommand) formatter(cmd *cobra.Command) *ui.Formatter {
	return ui.NewFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr(), gc.config.Flags.Quiet)
}
