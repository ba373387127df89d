package cli

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/errors"
	pkgio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// exampleCommand creates the example command that prints the reference plan.
func (c *CLI) exampleCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the built-in reference plan",
		Long: `Print the built-in reference plan.

The reference plan is a 50 x 30 plot with three bedrooms, a kitchen, a living
room, a dining room, an inset bathroom, two doors and one window. Use it as a
starting point for your own plans.`,
		Example: `  floorplan example > house.toml
  floorplan example -f yaml -o house.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExample(cmd.Context(), cmd.OutOrStdout(), format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(plan.FormatTOML), "plan encoding: toml, yaml, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}

// runExample encodes the reference plan and writes it to w or output.
func (c *CLI) runExample(ctx context.Context, w io.Writer, format, output string) error {
	f, err := parsePlanFormat(format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := plan.Encode(&buf, plan.Reference(), f); err != nil {
		return err
	}

	if output == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}
	if err := pkgio.WriteFileAtomic(output, buf.Bytes(), pkgio.DefaultFileMode); err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("wrote example plan", "path", output, "bytes", buf.Len())
	printSuccess("Example plan written")
	printFile(output)
	printNextStep("Generate", appName+" generate "+output)
	return nil
}

func parsePlanFormat(s string) (plan.Format, error) {
	switch f := plan.Format(strings.ToLower(s)); f {
	case plan.FormatTOML, plan.FormatYAML, plan.FormatJSON:
		return f, nil
	case "yml":
		return plan.FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid plan format: %q (must be one of: toml, yaml, json)", s)
}
