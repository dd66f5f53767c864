package cli

import (
	"fmt"

	"github.com/fishrambeta/symcas/internal/app" // For app.Config and app.LatexProvider
	"github.com/spf13/cobra"
)

// Adapter implements the app.LatexProvider interface using Cobra flags.
type Adapter struct {
	cmd *cobra.Command
}

// NewAdapter creates a new CLI adapter instance.
func NewAdapter(cmd *cobra.Command) *Adapter {
	// Ensure the necessary flags are defined on the command passed in.
	// This relies on the main.go setup.
	for _, name := range []string{"input", "output", "mode", "var", "around", "degree", "implicit-mul", "overrides"} {
		if cmd.Flag(name) == nil {
			// This is a programming error check
			panic(fmt.Sprintf("CLI Adapter requires command with a %q flag defined", name))
		}
	}
	return &Adapter{cmd: cmd}
}

// GetLatexInput retrieves the LaTeX string and configuration from Cobra flags.
func (a *Adapter) GetLatexInput() (latex string, config app.Config, err error) {
	latex, err = a.cmd.Flags().GetString("input")
	if err != nil {
		// This error is unlikely if the flag is correctly defined
		return "", app.Config{}, fmt.Errorf("failed to get 'input' flag: %w", err)
	}
	if latex == "" {
		// This check is technically redundant with main.go's check, but good for safety
		return "", app.Config{}, fmt.Errorf("input LaTeX string cannot be empty")
	}

	outputFile, _ := a.cmd.Flags().GetString("output") // Errors checked during flag parsing by Cobra
	mode, _ := a.cmd.Flags().GetString("mode")
	v, _ := a.cmd.Flags().GetString("var")
	around, _ := a.cmd.Flags().GetString("around")
	degree, _ := a.cmd.Flags().GetInt("degree")
	implicitMul, _ := a.cmd.Flags().GetBool("implicit-mul")
	overrides, _ := a.cmd.Flags().GetString("overrides")

	config = app.Config{
		OutputFile:  outputFile,
		Mode:        mode,
		Var:         v,
		Around:      around,
		Degree:      degree,
		ImplicitMul: implicitMul,
		Overrides:   overrides,
	}

	return latex, config, nil
}
