package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/kibenian/internal/numeral"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid          bool      `json:"valid"`
	Input          string    `json:"input"`
	Representation string    `json:"representation,omitempty"`
	Decimal        int       `json:"decimal,omitempty"`
	Canonical      string    `json:"canonical,omitempty"`
	Error          *CLIError `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check whether a value is a valid decimal or Kibenian numeral",
		Long: `Classify a value and run every check a conversion would run,
including Kibenian subgroup order and subgroup limits.

Exit codes:
  0 - Valid
  1 - Invalid`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	result, err := Validate(input)
	formatter.VerboseLog("validated %q: valid=%t", input, result.Valid)

	if opts.Format == "json" {
		if err == nil {
			return formatter.Success(result)
		}
		response := CLIResponse{
			Status:  "error",
			Data:    result,
			Error:   result.Error,
			TraceID: formatter.TraceID,
		}
		if encErr := json.NewEncoder(formatter.Writer).Encode(response); encErr != nil {
			return encErr
		}
		return WrapExitError(ExitFailure, fmt.Sprintf("%s: validation failed", result.Error.Code), err)
	}

	if err != nil {
		fmt.Fprintf(formatter.Writer, "✗ %q is not valid\n", input)
		fmt.Fprintf(formatter.Writer, "  %s: %s\n", result.Error.Code, result.Error.Message)
		return WrapExitError(ExitFailure, fmt.Sprintf("%s: validation failed", result.Error.Code), err)
	}

	fmt.Fprintf(formatter.Writer, "✓ %s is a valid %s value (%d, canonical %s)\n",
		input, result.Representation, result.Decimal, result.Canonical)
	return nil
}

// Validate classifies and fully decodes input.
// The returned result is populated in both the valid and invalid case.
func Validate(input string) (ValidationResult, error) {
	result := ValidationResult{Input: input}

	c, err := numeral.New(input)
	if err != nil {
		result.Error = &CLIError{Code: errorCode(err), Message: err.Error()}
		return result, err
	}
	result.Representation = string(c.Representation())

	dec, err := c.ToDecimal()
	if err != nil {
		result.Error = &CLIError{Code: errorCode(err), Message: err.Error()}
		return result, err
	}
	canonical, err := c.Canonical()
	if err != nil {
		result.Error = &CLIError{Code: errorCode(err), Message: err.Error()}
		return result, err
	}

	result.Valid = true
	result.Decimal = dec
	result.Canonical = canonical
	return result, nil
}
