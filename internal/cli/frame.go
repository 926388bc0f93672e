package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framegraph/pkg/frame"
)

// frameCommand creates the frame management command.
func (c *CLI) frameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Add, rename, move, remove and inspect frames",
	}

	cmd.AddCommand(c.frameAddCommand())
	cmd.AddCommand(c.frameRenameCommand())
	cmd.AddCommand(c.frameRemoveCommand())
	cmd.AddCommand(c.frameMoveCommand())
	cmd.AddCommand(c.frameListCommand())
	cmd.AddCommand(c.frameShowCommand())

	return cmd
}

func (c *CLI) frameAddCommand() *cobra.Command {
	var x, y int
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a frame at a canvas position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.editModel(func(g *frame.Graph) error {
				_, err := g.AddFrame(args[0], frame.Position{X: x, Y: y})
				return err
			})
			if err != nil {
				return err
			}
			c.printSuccess("Added frame %s at (%d, %d)", StyleHighlight.Render(args[0]), x, y)
			return nil
		},
	}
	cmd.Flags().IntVar(&x, "x", 0, "canvas x coordinate")
	cmd.Flags().IntVar(&y, "y", 0, "canvas y coordinate")
	return cmd
}

func (c *CLI) frameRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "rename OLD NEW",
		Short:             "Rename a frame and re-key every reference to it",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeFrames(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var referrers int
			err := c.editModel(func(g *frame.Graph) error {
				referrers = countReferrers(g, args[0])
				return g.RenameFrame(args[0], args[1])
			})
			if err != nil {
				return err
			}
			c.printSuccess("Renamed frame %s %s %s", args[0], iconArrow, StyleHighlight.Render(args[1]))
			if referrers > 0 {
				c.printDetail("updated %d reference slot(s)", referrers)
			}
			return nil
		},
	}
}

func (c *CLI) frameRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "rm NAME",
		Aliases:           []string{"remove"},
		Short:             "Remove a frame and every reference to it",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeFrames(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var referrers int
			err := c.editModel(func(g *frame.Graph) error {
				referrers = countReferrers(g, args[0])
				return g.EraseFrame(args[0])
			})
			if err != nil {
				return err
			}
			c.printSuccess("Removed frame %s", StyleHighlight.Render(args[0]))
			if referrers > 0 {
				c.printDetail("removed %d reference slot(s)", referrers)
			}
			return nil
		},
	}
}

func (c *CLI) frameMoveCommand() *cobra.Command {
	var x, y int
	cmd := &cobra.Command{
		Use:               "move NAME",
		Short:             "Change a frame's canvas position",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeFrames(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var px, py *int
			if cmd.Flags().Changed("x") {
				px = &x
			}
			if cmd.Flags().Changed("y") {
				py = &y
			}
			if px == nil && py == nil {
				return fmt.Errorf("nothing to do: pass --x and/or --y")
			}

			var pos frame.Position
			err := c.editModel(func(g *frame.Graph) error {
				if err := g.ReplacePosition(args[0], px, py); err != nil {
					return err
				}
				pos, _ = g.Position(args[0])
				return nil
			})
			if err != nil {
				return err
			}
			c.printSuccess("Moved frame %s to (%d, %d)", StyleHighlight.Render(args[0]), pos.X, pos.Y)
			return nil
		},
	}
	cmd.Flags().IntVar(&x, "x", 0, "new canvas x coordinate")
	cmd.Flags().IntVar(&y, "y", 0, "new canvas y coordinate")
	return cmd
}

func (c *CLI) frameListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List frames",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.readModel()
			if err != nil {
				return err
			}
			if g.IsEmpty() {
				c.printInfo("No frames in %s", c.modelPath())
				return nil
			}
			c.printLine(frameTable(g))
			return nil
		},
	}
}

func (c *CLI) frameShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show NAME",
		Short:             "Show a frame and its slots",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeFrames(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.readModel()
			if err != nil {
				return err
			}
			f, err := g.At(args[0])
			if err != nil {
				return err
			}
			pos, _ := g.Position(args[0])

			c.printLine(StyleTitle.Render(f.DisplayLabel()))
			c.printKeyValue("Position", fmt.Sprintf("(%d, %d)", pos.X, pos.Y))
			c.printKeyValue("Slots", strconv.Itoa(f.Len()))
			if longest := f.LongestSlotLabel(); longest != "" {
				c.printKeyValue("Longest", longest)
			}
			for _, s := range f.Slots() {
				c.printLine("  " + renderSlot(s))
			}
			return nil
		},
	}
}

// renderSlot styles a slot line, highlighting references.
func renderSlot(s frame.Slot) string {
	if s.Value.IsReference() {
		return StyleReference.Render(frame.FormatSlot(s))
	}
	return StyleValue.Render(frame.FormatSlot(s))
}

// frameTable renders every frame as one table row.
func frameTable(g *frame.Graph) string {
	var rows [][]string
	for _, p := range g.Frames() {
		refs := 0
		for _, s := range p.Frame.Slots() {
			if s.Value.IsReference() {
				refs++
			}
		}
		rows = append(rows, []string{
			p.Frame.Name(),
			fmt.Sprintf("(%d, %d)", p.Position.X, p.Position.Y),
			strconv.Itoa(p.Frame.Len() - refs),
			strconv.Itoa(refs),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Frame", "Position", "Literals", "References").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle.Foreground(colorCyan)
			default:
				return cellStyle.Foreground(colorWhite)
			}
		}).
		Render()
}

// countReferrers returns how many reference slots in other frames point at
// the frame called name.
func countReferrers(g *frame.Graph, name string) int {
	target, err := g.At(name)
	if err != nil {
		return 0
	}
	n := 0
	for _, p := range g.Frames() {
		if v, ok := p.Frame.Slot(name); ok && v.IsReference() && v.Target() == target.ID() {
			n++
		}
	}
	return n
}

// completeFrames completes frame names for the first n positional arguments.
func (c *CLI) completeFrames(n int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= n {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		g, err := c.readModel()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return g.Names(), cobra.ShellCompDirectiveNoFileComp
	}
}
