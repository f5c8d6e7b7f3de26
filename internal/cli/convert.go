package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/kibenian/internal/numeral"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Canonical bool // print the canonical Kibenian form instead
}

// ConvertResult is the JSON payload of a successful conversion.
type ConvertResult struct {
	Input          string `json:"input"`
	Representation string `json:"representation"`
	Decimal        int    `json:"decimal"`
	Kibenian       string `json:"kibenian"`
	Canonical      string `json:"canonical"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value to the other notation",
		Long: `Convert a decimal number to a Kibenian numeral or a Kibenian numeral
to a decimal number. The notation is detected from the input.

Exit codes:
  0 - Converted
  1 - Input is malformed or out of range

Examples:
  kibenian convert 76            # I_XVI
  kibenian convert I_XVI         # 76
  kibenian convert _II --canonical
  kibenian convert -- -10        # negative values need --`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Canonical, "canonical", false, "print the canonical Kibenian numeral")

	return cmd
}

func runConvert(opts *ConvertOptions, input string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	c, err := numeral.New(input)
	if err != nil {
		logger.Debug("classification failed", "input", input, "error", err)
		return formatter.ConversionFailure(input, err)
	}
	logger.Debug("input classified", "input", input, "representation", c.Representation())

	result, err := convertAll(c)
	if err != nil {
		logger.Debug("conversion failed", "input", input, "error", err)
		return formatter.ConversionFailure(input, err)
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}

	switch {
	case opts.Canonical:
		return formatter.Success(result.Canonical)
	case c.Representation() == numeral.Decimal:
		return formatter.Success(result.Kibenian)
	default:
		return formatter.Success(result.Decimal)
	}
}

// convertAll computes every view of the converter's value.
func convertAll(c *numeral.Converter) (ConvertResult, error) {
	dec, err := c.ToDecimal()
	if err != nil {
		return ConvertResult{}, err
	}
	kib, err := c.ToKibenian()
	if err != nil {
		return ConvertResult{}, err
	}
	canonical, err := c.Canonical()
	if err != nil {
		return ConvertResult{}, err
	}
	return ConvertResult{
		Input:          c.Input(),
		Representation: string(c.Representation()),
		Decimal:        dec,
		Kibenian:       kib,
		Canonical:      canonical,
	}, nil
}
