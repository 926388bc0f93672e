package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framegraph/pkg/pipeline"
)

// renderFlags holds the render flags. Only flags the user set override the
// config file.
type renderFlags struct {
	output      string
	formats     string
	vizType     string
	measurer    string
	fill        string
	scale       float64
	interactive bool
	embedFont   bool
	detailed    bool
	pinned      bool
	noCache     bool
	refresh     bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the model as a diagram",
		Long: `Render the model as a diagram.

The frames view (-t frames, default) draws every frame as a box at its canvas
position with routed reference connectors. The nodelink view (-t nodelink)
lets Graphviz lay out the frames instead.

Formats: svg (default), dot, json, png, pdf. With several formats, -o names
a base path and each file gets its format's extension. Use -o - to write a
single format to stdout.

Artifacts are cached by model content, so re-rendering an unchanged model is
instant.`,
		Example: `  framegraph render
  framegraph render -f svg,png -o diagrams/car
  framegraph render -t nodelink --detailed -f dot -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.renderOptions(cmd, f)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), dot, json, png, pdf (comma-separated)")
	fs.StringVarP(&f.vizType, "type", "t", "", "visualization type: frames (default), nodelink")
	fs.StringVar(&f.measurer, "measurer", "", "text measurer for box widths: font (default), heuristic")
	fs.StringVar(&f.fill, "fill", "", "frame box fill color (default "+pipeline.DefaultFill+")")
	fs.Float64Var(&f.scale, "scale", 0, "PNG scale factor (default 2)")
	fs.BoolVar(&f.interactive, "interactive", false, "highlight a frame's connectors on hover (svg)")
	fs.BoolVar(&f.embedFont, "embed-font", false, "embed the label font in the SVG")
	fs.BoolVar(&f.detailed, "detailed", false, "list slots in node labels (dot, nodelink)")
	fs.BoolVar(&f.pinned, "pinned", false, "keep canvas positions in the DOT layout (dot, nodelink)")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	fs.BoolVar(&f.refresh, "refresh", false, "ignore cached artifacts and re-render")

	return cmd
}

// renderOptions merges config defaults with the flags that were set.
func (c *CLI) renderOptions(cmd *cobra.Command, f renderFlags) (pipeline.Options, error) {
	opts, err := c.pipelineOptions()
	if err != nil {
		return opts, err
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if changed("type") {
		opts.VizType = f.vizType
	}
	if changed("measurer") {
		opts.Measurer = f.measurer
	}
	if changed("fill") {
		opts.Fill = f.fill
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	opts.Interactive = f.interactive
	opts.EmbedFont = f.embedFont
	opts.Detailed = f.detailed
	opts.Pinned = f.pinned
	opts.Refresh = f.refresh

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	if f.output == "-" && len(opts.Formats) > 1 {
		return opts, fmt.Errorf("-o - needs exactly one format, got %s", strings.Join(opts.Formats, ","))
	}
	return opts, nil
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, f renderFlags) error {
	model, path, err := c.readModelBytes()
	if err != nil {
		return err
	}
	opts.Source = path

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	result, err := runner.Render(ctx, model, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if f.output == "-" {
		_, err := c.out.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths := outputPaths(f.output, path, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeArtifact(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	c.printSuccess("Rendered %s", StyleHighlight.Render(opts.VizType))
	for _, format := range opts.Formats {
		c.printFile(paths[format])
	}
	c.printStats(result.Stats.Frames, result.Stats.References, result.CacheInfo.RenderHit)
	return nil
}

// outputPaths maps each format to its output file. A single format writes to
// output as given; several formats share output as a base path.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, format := range formats {
		paths[format] = base + "." + format
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
