package output

import (
	"fmt"
	"os"

	"github.com/fishrambeta/symcas/internal/app" // For app.ResultWriter
)

// --- Stdout Adapter ---

// StdoutAdapter implements the app.ResultWriter interface for stdout.
type StdoutAdapter struct{}

// NewStdoutAdapter creates a new adapter for writing to standard output.
func NewStdoutAdapter() *StdoutAdapter {
	return &StdoutAdapter{}
}

// WriteResult prints the rendered result string to standard output.
func (a *StdoutAdapter) WriteResult(result string) error {
	_, err := fmt.Println(result) // fmt.Println writes to os.Stdout
	if err != nil {
		return fmt.Errorf("failed to write result to stdout: %w", err)
	}
	return nil
}

// --- File Adapter ---

// FileAdapter implements the app.ResultWriter interface for file output.
type FileAdapter struct {
	filePath string
}

// NewFileAdapter creates a new adapter for writing to a specific file.
func NewFileAdapter(filePath string) *FileAdapter {
	if filePath == "" {
		// This should ideally be prevented by logic choosing the adapter,
		// but added as a safeguard.
		panic("FileAdapter requires a non-empty file path")
	}
	return &FileAdapter{filePath: filePath}
}

// WriteResult writes the rendered result string to the specified file.
// It will overwrite the file if it exists.
func (a *FileAdapter) WriteResult(result string) error {
	// Use os.WriteFile which handles creating/truncating the file.
	// Use 0644 permissions as a standard default for new files.
	err := os.WriteFile(a.filePath, []byte(result), 0644)
	if err != nil {
		return fmt.Errorf("failed to write result to file '%s': %w", a.filePath, err)
	}
	return nil
}

// --- Factory Function ---

// NewWriterAdapter creates the appropriate ResultWriter based on the output file path.
// If outputPath is empty, it returns a StdoutAdapter. Otherwise, it returns a FileAdapter.
func NewWriterAdapter(outputPath string) app.ResultWriter {
	if outputPath == "" {
		return NewStdoutAdapter()
	}
	return NewFileAdapter(outputPath)
}
