package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/framegraph/pkg/io"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the model to FILE (.json for JSON, flat text otherwise)",
		Example: `  framegraph export model.json
  framegraph -m model.json export frame_model.fm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))
			g, err := c.readModel()
			if err != nil {
				return err
			}
			if err := pkgio.Export(g, args[0]); err != nil {
				return err
			}
			prog.done("exported model", "path", args[0])
			c.printSuccess("Exported %d frames", g.Len())
			c.printFile(args[0])
			return nil
		},
	}
}

// importCommand creates the import command.
func (c *CLI) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the model with the contents of FILE",
		Long: `Replace the model with the contents of FILE.

FILE is read as JSON when it ends in .json and as flat text otherwise. The
whole file is validated before the model is overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))
			g, err := pkgio.Import(args[0])
			if err != nil {
				return err
			}
			path := c.modelPath()
			replaced := 0
			if old, err := loadModel(path); err == nil {
				replaced = old.Len()
			}
			if err := saveModel(g, path); err != nil {
				return err
			}
			prog.done("imported model", "path", args[0], "frames", g.Len())

			c.printSuccess("Imported %d frames from %s", g.Len(), args[0])
			if replaced > 0 {
				c.printWarning("Replaced %d existing frames", replaced)
			}
			c.printFile(path)
			return nil
		},
	}
}
