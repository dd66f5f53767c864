package main

import (
	"fmt"
	"log" // Use log for fatal errors
	"os"

	// Application core
	"github.com/fishrambeta/symcas/internal/app"

	// Adapters
	"github.com/fishrambeta/symcas/internal/adapters/cli"
	"github.com/fishrambeta/symcas/internal/adapters/output"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "symcas",
	Short: "symcas is a symbolic math engine driven by LaTeX input",
	Long: `symcas takes a LaTeX mathematical equation (or, for --mode solve, a
semicolon-separated system of equations) and simplifies, differentiates,
evaluates, Taylor-expands, solves, or factors it, printing the result back
as LaTeX.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Retrieve flag values needed for adapter creation
		outputFilePath, _ := cmd.Flags().GetString("output") // Error checked by Cobra

		// --- Dependency Injection ---
		// Input adapter uses the command itself to access flags
		inputAdapter := cli.NewAdapter(cmd)
		// Output adapter uses the factory based on the output path flag
		outputAdapter := output.NewWriterAdapter(outputFilePath)

		appService := app.NewDefaultApplicationService(inputAdapter, outputAdapter)

		// --- Execute Application Logic ---
		err := appService.Run()
		if err != nil {
			// Log the error to stderr and exit
			log.Fatalf("Error: %v\n", err)
		}
	},
}

func init() {
	rootCmd.Flags().StringP("input", "i", "", "LaTeX equation string, or semicolon-separated system for --mode solve (required)")
	rootCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().String("mode", "simplify", "Operation to perform: simplify, differentiate, eval, taylor, solve, factor")
	rootCmd.Flags().String("var", "", "Variable name for differentiate/taylor/factor, or comma-separated variable list for solve")
	rootCmd.Flags().String("around", "0", "Expansion point for --mode taylor (integer, decimal, or p/q rational)")
	rootCmd.Flags().Int("degree", 1, "Expansion degree for --mode taylor")
	rootCmd.Flags().Bool("implicit-mul", false, "Treat adjacent letters like \"xy\" as a product of single-letter variables")
	rootCmd.Flags().String("overrides", "", "Comma-separated var=value substitutions for --mode eval, e.g. \"x=2,y=3.5\"")

	// Mark input as required
	if err := rootCmd.MarkFlagRequired("input"); err != nil {
		// This error handling is for programming errors during setup
		fmt.Fprintf(os.Stderr, "Error marking flag required: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra handles reporting the error to stderr here
		os.Exit(1)
	}
}
