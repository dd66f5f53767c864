package output_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fishrambeta/symcas/internal/adapters/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to capture stdout
func captureStdout(f func() error) (string, error) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), err
}

func TestStdoutAdapter_WriteResult(t *testing.T) {
	// Arrange
	adapter := output.NewStdoutAdapter()
	expectedResult := "2\\cdot x"

	// Act
	outputStr, err := captureStdout(func() error {
		return adapter.WriteResult(expectedResult)
	})

	// Assert
	require.NoError(t, err)
	// fmt.Println adds a newline, so we expect the result + newline
	assert.Equal(t, expectedResult+"\n", outputStr)
}

func TestFileAdapter_WriteResult_NewFile(t *testing.T) {
	// Arrange
	tempDir := t.TempDir() // Creates a temporary directory cleaned up automatically
	testFilePath := filepath.Join(tempDir, "test_output.tex")
	expectedResult := "x^{2}+y^{2}"

	adapter := output.NewFileAdapter(testFilePath)

	// Act
	err := adapter.WriteResult(expectedResult)

	// Assert
	require.NoError(t, err)

	// Verify file content
	contentBytes, readErr := os.ReadFile(testFilePath)
	require.NoError(t, readErr)
	assert.Equal(t, expectedResult, string(contentBytes))
}

func TestFileAdapter_WriteResult_OverwriteFile(t *testing.T) {
	// Arrange
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "test_output_overwrite.tex")
	initialContent := "initial content"
	expectedResult := "3"

	// Create initial file
	require.NoError(t, os.WriteFile(testFilePath, []byte(initialContent), 0644))

	adapter := output.NewFileAdapter(testFilePath)

	// Act
	err := adapter.WriteResult(expectedResult)

	// Assert
	require.NoError(t, err)

	// Verify file content is overwritten
	contentBytes, readErr := os.ReadFile(testFilePath)
	require.NoError(t, readErr)
	assert.Equal(t, expectedResult, string(contentBytes))
}

func TestFileAdapter_WriteResult_InvalidPath(t *testing.T) {
	// Arrange
	// Let's try writing to a directory as if it were a file.
	tempDir := t.TempDir()
	adapter := output.NewFileAdapter(tempDir) // Path is a directory
	expectedResult := "fail"

	// Act
	err := adapter.WriteResult(expectedResult)

	// Assert
	require.Error(t, err)
	// The exact error might vary by OS, but it should indicate a write failure
	assert.ErrorContains(t, err, "failed to write result to file")
	fmt.Println("Expected error writing to directory:", err) // Log for debugging if needed
}

func TestNewFileAdapter_PanicEmptyPath(t *testing.T) {
	// Arrange, Act & Assert
	assert.PanicsWithValue(t,
		"FileAdapter requires a non-empty file path",
		func() { output.NewFileAdapter("") },
		"Should panic if file path is empty",
	)
}

func TestNewWriterAdapter_Factory(t *testing.T) {
	t.Run("Empty Path returns StdoutAdapter", func(t *testing.T) {
		adapter := output.NewWriterAdapter("")
		assert.IsType(t, &output.StdoutAdapter{}, adapter)
	})

	t.Run("Non-Empty Path returns FileAdapter", func(t *testing.T) {
		adapter := output.NewWriterAdapter("some/path.tex")
		assert.IsType(t, &output.FileAdapter{}, adapter)
	})
}
