package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/framegraph/pkg/frame"
)

// slotCommand creates the slot management command.
func (c *CLI) slotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Add, rename, change and remove slots",
		Long: `Slots hold either a literal value or a reference to another frame.

A reference slot is always named after its target frame. Renaming the target
renames the slot, and removing the target removes the slot.`,
	}

	cmd.AddCommand(c.slotAddCommand())
	cmd.AddCommand(c.slotRefCommand())
	cmd.AddCommand(c.slotRenameCommand())
	cmd.AddCommand(c.slotSetCommand())
	cmd.AddCommand(c.slotRemoveCommand())

	return cmd
}

// optionalValue returns args[i] or "" so the model substitutes its default.
func optionalValue(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}

func (c *CLI) slotAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "add FRAME NAME [VALUE]",
		Short:             "Add a literal slot (empty values become \"" + frame.DefaultValue + "\")",
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: c.completeFrames(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var line string
			err := c.editModel(func(g *frame.Graph) error {
				f, err := g.At(args[0])
				if err != nil {
					return err
				}
				if err := f.AddLiteral(args[1], optionalValue(args, 2)); err != nil {
					return err
				}
				line, err = f.FormattedSlotText(args[1])
				return err
			})
			if err != nil {
				return err
			}
			c.printSuccess("Added %s to %s", StyleValue.Render(line), StyleHighlight.Render(args[0]))
			return nil
		},
	}
}

func (c *CLI) slotRefCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "ref FRAME TARGET",
		Short:             "Add a reference from FRAME to TARGET",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeFrames(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.editModel(func(g *frame.Graph) error {
				f, err := g.At(args[0])
				if err != nil {
					return err
				}
				target, err := g.At(args[1])
				if err != nil {
					return err
				}
				return f.AddReference(target)
			})
			if err != nil {
				return err
			}
			c.printSuccess("Linked %s %s %s", StyleHighlight.Render(args[0]), iconArrow, StyleReference.Render(args[1]))
			return nil
		},
	}
}

func (c *CLI) slotRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "rename FRAME OLD NEW",
		Short:             "Rename a literal slot",
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: c.completeFrames(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.editModel(func(g *frame.Graph) error {
				f, err := g.At(args[0])
				if err != nil {
					return err
				}
				return f.ReplaceSlotName(args[1], args[2])
			})
			if err != nil {
				return err
			}
			c.printSuccess("Renamed slot %s %s %s in %s", args[1], iconArrow, StyleValue.Render(args[2]), StyleHighlight.Render(args[0]))
			return nil
		},
	}
}

func (c *CLI) slotSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "set FRAME NAME [VALUE]",
		Short:             "Replace a literal slot's value",
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: c.completeFrames(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var line string
			err := c.editModel(func(g *frame.Graph) error {
				f, err := g.At(args[0])
				if err != nil {
					return err
				}
				if err := f.ReplaceSlotValue(args[1], optionalValue(args, 2)); err != nil {
					return err
				}
				line, err = f.FormattedSlotText(args[1])
				return err
			})
			if err != nil {
				return err
			}
			c.printSuccess("Set %s in %s", StyleValue.Render(line), StyleHighlight.Render(args[0]))
			return nil
		},
	}
}

func (c *CLI) slotRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "rm FRAME NAME",
		Aliases:           []string{"remove"},
		Short:             "Remove a slot (literal or reference)",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeFrames(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.editModel(func(g *frame.Graph) error {
				f, err := g.At(args[0])
				if err != nil {
					return err
				}
				return f.EraseSlot(args[1])
			})
			if err != nil {
				return err
			}
			c.printSuccess("Removed slot %s from %s", args[1], StyleHighlight.Render(args[0]))
			return nil
		},
	}
}
