package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/layout"
	"github.com/matzehuels/floorplan/pkg/render/sink"
)

// layoutCommand creates the layout command for inspecting room placement.
func (c *CLI) layoutCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout [plan.toml]",
		Short: "Print the placed rooms of a plan",
		Long: `Print the placed rooms of a plan.

Runs the layout engine without writing any files and prints the column
partition, the scale factors and one row per room. With --json the full
drawing document (the same as 'generate -f json') is printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), planArg(args), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the drawing as JSON")

	return cmd
}

// runLayout computes the layout and prints it to w.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, input string, asJSON bool) error {
	p, err := loadPlan(input)
	if err != nil {
		return err
	}
	p = p.WithDefaults()

	runner := c.newRunner()
	l, err := runner.Layout(ctx, p)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	if asJSON {
		d, err := runner.Project(ctx, p, l)
		if err != nil {
			return fmt.Errorf("project drawing: %w", err)
		}
		data, err := sink.RenderJSON(d, sink.WithLayout(l))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	printKeyValue(w, "plan", p.Name)
	printKeyValue(w, "plot", fmt.Sprintf("%s x %s", num(l.Plot.Width), num(l.Plot.Height)))
	printKeyValue(w, "left", num(l.LeftColumnWidth))
	printKeyValue(w, "right", num(l.RightColumnWidth))
	printKeyValue(w, "corridor", rectString(l.Corridor.X, l.Corridor.Y, l.Corridor.W, l.Corridor.H))
	printKeyValue(w, "scale", fmt.Sprintf("left %s, right %s", num(l.LeftScale), num(l.RightScale)))
	printKeyValue(w, "coverage", formatCoverage(l.Coverage()))
	fmt.Fprintln(w, roomTable(l).Render())

	for _, o := range l.Overlaps {
		printWarning("%s overlaps %s", o.Room, o.Other)
	}
	return nil
}

// roomTable renders one row per placed room in layout order.
func roomTable(l layout.Layout) *table.Table {
	rows := make([][]string, 0, len(l.Rooms))
	for _, r := range l.Rooms {
		rows = append(rows, []string{
			r.Name,
			string(r.Category),
			string(r.Role),
			num(r.X), num(r.Y), num(r.W), num(r.H),
			num(r.Area()),
		})
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	numeric := cell.Align(lipgloss.Right)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("ROOM", "CATEGORY", "ROLE", "X", "Y", "W", "H", "AREA").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col >= 3:
				return numeric
			}
			return cell
		})
}

func rectString(x, y, w, h float64) string {
	return fmt.Sprintf("(%s, %s) %s x %s", num(x), num(y), num(w), num(h))
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
