package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fishrambeta/symcas/internal/app"
	app_mocks "github.com/fishrambeta/symcas/internal/app/mocks"
	"github.com/fishrambeta/symcas/internal/domain/expr"
)

func TestApplicationService_Run_Success(t *testing.T) {
	// Arrange
	mockProvider := app_mocks.NewMockLatexProvider(t)
	mockWriter := app_mocks.NewMockResultWriter(t)
	mockParser := app_mocks.NewMockParser(t)
	mockSolver := app_mocks.NewMockSolver(t)

	inputLatex := "a+b"
	inputConfig := app.Config{Mode: "simplify"}
	parsedExprs := []expr.Expr{
		expr.Add{Terms: []expr.Expr{expr.LetterExpr("a"), expr.LetterExpr("b")}},
	}
	expectedResult := "a+b"

	// Setup mock expectations
	mockProvider.On("GetLatexInput").Return(inputLatex, inputConfig, nil).Once()
	mockParser.On("Parse", inputLatex, false).Return(parsedExprs, nil).Once()
	mockSolver.On("Solve", "simplify", parsedExprs, mock.Anything, mock.Anything).Return(expectedResult, nil).Once()
	mockWriter.On("WriteResult", expectedResult).Return(nil).Once()

	service := app.NewApplicationService(mockProvider, mockWriter, mockParser, mockSolver)

	// Act
	err := service.Run()

	// Assert
	require.NoError(t, err)
	// AssertExpectations(t) is called automatically by testify's cleanup
}

func TestApplicationService_Run_GetInputError(t *testing.T) {
	// Arrange
	mockProvider := app_mocks.NewMockLatexProvider(t)
	mockWriter := app_mocks.NewMockResultWriter(t)
	mockParser := app_mocks.NewMockParser(t)
	mockSolver := app_mocks.NewMockSolver(t)

	expectedError := errors.New("failed to get input")
	mockProvider.On("GetLatexInput").Return("", app.Config{}, expectedError).Once()

	service := app.NewApplicationService(mockProvider, mockWriter, mockParser, mockSolver)

	// Act
	err := service.Run()

	// Assert
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to get latex input")
	assert.ErrorIs(t, err, expectedError)
}

func TestApplicationService_Run_ParseError(t *testing.T) {
	// Arrange
	mockProvider := app_mocks.NewMockLatexProvider(t)
	mockWriter := app_mocks.NewMockResultWriter(t)
	mockParser := app_mocks.NewMockParser(t)
	mockSolver := app_mocks.NewMockSolver(t)

	inputLatex := "\\int{x}"
	inputConfig := app.Config{Mode: "simplify"}
	expectedError := errors.New("parsing failed")

	mockProvider.On("GetLatexInput").Return(inputLatex, inputConfig, nil).Once()
	mockParser.On("Parse", inputLatex, false).Return(nil, expectedError).Once()

	service := app.NewApplicationService(mockProvider, mockWriter, mockParser, mockSolver)

	// Act
	err := service.Run()

	// Assert
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse latex")
	assert.ErrorIs(t, err, expectedError)
}

func TestApplicationService_Run_SolveError(t *testing.T) {
	// Arrange
	mockProvider := app_mocks.NewMockLatexProvider(t)
	mockWriter := app_mocks.NewMockResultWriter(t)
	mockParser := app_mocks.NewMockParser(t)
	mockSolver := app_mocks.NewMockSolver(t)

	inputLatex := "x/0"
	inputConfig := app.Config{Mode: "eval"}
	parsedExprs := []expr.Expr{expr.LetterExpr("x")}
	expectedError := errors.New("division by zero")

	mockProvider.On("GetLatexInput").Return(inputLatex, inputConfig, nil).Once()
	mockParser.On("Parse", inputLatex, false).Return(parsedExprs, nil).Once()
	mockSolver.On("Solve", "eval", parsedExprs, mock.Anything, mock.Anything).Return("", expectedError).Once()

	service := app.NewApplicationService(mockProvider, mockWriter, mockParser, mockSolver)

	// Act
	err := service.Run()

	// Assert
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to evaluate")
	assert.ErrorIs(t, err, expectedError)
}

func TestApplicationService_Run_WriteError(t *testing.T) {
	// Arrange
	mockProvider := app_mocks.NewMockLatexProvider(t)
	mockWriter := app_mocks.NewMockResultWriter(t)
	mockParser := app_mocks.NewMockParser(t)
	mockSolver := app_mocks.NewMockSolver(t)

	inputLatex := "x"
	inputConfig := app.Config{Mode: "simplify"}
	parsedExprs := []expr.Expr{expr.LetterExpr("x")}
	generatedResult := "x"
	expectedError := errors.New("write failed")

	mockProvider.On("GetLatexInput").Return(inputLatex, inputConfig, nil).Once()
	mockParser.On("Parse", inputLatex, false).Return(parsedExprs, nil).Once()
	mockSolver.On("Solve", "simplify", parsedExprs, mock.Anything, mock.Anything).Return(generatedResult, nil).Once()
	mockWriter.On("WriteResult", generatedResult).Return(expectedError).Once()

	service := app.NewApplicationService(mockProvider, mockWriter, mockParser, mockSolver)

	// Act
	err := service.Run()

	// Assert
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to write result")
	assert.ErrorIs(t, err, expectedError)
}
