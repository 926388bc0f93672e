package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framegraph/pkg/buildinfo"
	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
	"github.com/matzehuels/framegraph/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the persistent pre-run loads the config file,
// applies --verbose and attaches the logger to the command context. With
// --verbose, pipeline, cache and HTTP events are logged through
// observability hooks.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "framegraph edits frame/slot knowledge models",
		Long:          `framegraph is a CLI tool for editing frame/slot knowledge models: named frames holding literal slots and references to other frames, with search, diagram rendering and a read-only web viewer.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(c.configFlag)
			if err != nil {
				return err
			}
			c.Config = cfg

			if c.verbose {
				c.SetLogLevel(LogDebug)
				hooks := observability.NewLogHooks(c.Logger)
				observability.SetPipelineHooks(hooks)
				observability.SetCacheHooks(hooks)
				observability.SetHTTPHooks(hooks)
			}
			if path != "" {
				c.Logger.Debug("loaded config", "path", path)
			}

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)

	pf := root.PersistentFlags()
	pf.StringVarP(&c.modelFlag, "model", "m", "", "model file (default from config, then "+defaultModelPath+")")
	pf.StringVar(&c.configFlag, "config", "", "config file (default ./"+configFileName+", then $XDG_CONFIG_HOME/"+appName+"/config.toml)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.frameCommand())
	root.AddCommand(c.slotCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// ReportError prints err for the user: the message without its code, or the
// full error chain in verbose mode.
func ReportError(w io.Writer, err error, verbose bool) {
	msg := fgerrors.UserMessage(err)
	if verbose {
		msg = err.Error()
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// Verbose reports whether --verbose was given.
func (c *CLI) Verbose() bool { return c.verbose }

// stderr is where warnings go when stdout carries command output.
var stderr io.Writer = os.Stderr
