// Package cli implements the floorplan command-line interface.
//
// This package provides commands for laying out a plan file, exporting the
// result to drawing formats and printing the built-in example plan. The CLI
// is built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - generate: Lay out a plan and write SVG, DXF, JSON, PDF, PNG and more
//   - layout: Print the placed rooms of a plan as a table or JSON
//   - example: Print the built-in reference plan as TOML, YAML or JSON
//
// # Configuration
//
// Flag defaults for generate may come from the environment, optionally read
// from a .env file: FLOORPLAN_FORMATS (comma separated) and FLOORPLAN_OUTPUT.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to the commands.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// appName is the application name used for display.
const appName = "floorplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Floorplan generates parametric floor plans",
		Long:         `Floorplan places rooms on a fixed plot in a left column / corridor / right column arrangement, derives walls, doors and windows, and exports the drawing to vector formats.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// loadPlan reads the plan file at path, or returns the built-in reference
// plan when path is empty.
func loadPlan(path string) (plan.Plan, error) {
	if path == "" {
		printInfo("No plan file given, using the built-in reference plan")
		return plan.Reference(), nil
	}
	return plan.Load(path)
}

func planArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
