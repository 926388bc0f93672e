// Package pipeline provides the load → layout → render pipeline for frame
// models.
//
// The same pipeline backs the render command and the HTTP viewer, so both
// produce identical artifacts and share one cache.
//
// # Architecture
//
//  1. Load: Parse the model bytes (flat-text or JSON) into a frame graph
//  2. Layout: Measure every frame box and route every reference connector
//  3. Render: Emit the requested formats (SVG, DOT, JSON, PNG, PDF)
//
// Each artifact is cached under a key derived from the model's content hash,
// the format and the options that affect that format.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Render(ctx, model, pipeline.Options{
//	    Formats: []string{"svg", "dot"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
	"github.com/matzehuels/framegraph/pkg/layout"
	"github.com/matzehuels/framegraph/pkg/render/diagram"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// TTLArtifact is how long rendered artifacts stay cached. Keys include
	// the model hash, so a stale entry can only be served for identical input.
	TTLArtifact = 7 * 24 * time.Hour
)

// DefaultMeasurer is the text measurer used for box widths.
const DefaultMeasurer = layout.MeasurerFont

// DefaultFill is the frame box fill color.
const DefaultFill = diagram.DefaultFill

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// Visualization types.
const (
	// VizFrames draws frame boxes at their canvas positions with routed
	// reference connectors.
	VizFrames = "frames"

	// VizNodelink lets Graphviz lay out frames as a node-link diagram.
	VizNodelink = "nodelink"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatDOT:  true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizFrames:   true,
	VizNodelink: true,
}

// ValidMeasurers is the set of supported text measurers.
var ValidMeasurers = map[string]bool{
	layout.MeasurerFont:      true,
	layout.MeasurerHeuristic: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	VizType     string   `json:"viz_type,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	Measurer    string   `json:"measurer,omitempty"`
	Fill        string   `json:"fill,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	Interactive bool     `json:"interactive,omitempty"` // hover highlighting in SVG
	EmbedFont   bool     `json:"embed_font,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"` // slot lines in DOT node labels
	Pinned      bool     `json:"pinned,omitempty"`   // DOT nodes keep canvas positions
	Refresh     bool     `json:"refresh,omitempty"`  // bypass cache reads

	// Runtime options (not serialized)
	Source string        `json:"-"` // model origin, for logs
	TTL    time.Duration `json:"-"`
	Logger *log.Logger   `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ModelHash is the content hash of the model bytes.
	ModelHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Frames     int
	References int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	Hits      []string // formats served from cache
	RenderHit bool     // whether every artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fgerrors.New(fgerrors.ErrCodeUnsupported,
			"invalid format: %q (must be one of: svg, dot, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return fgerrors.New(fgerrors.ErrCodeUnsupported,
			"invalid viz type: %q (must be one of: frames, nodelink)", vizType)
	}
	return nil
}

// ValidateMeasurer checks that a measurer name is valid.
func ValidateMeasurer(name string) error {
	if !ValidMeasurers[name] {
		return fgerrors.New(fgerrors.ErrCodeUnsupported,
			"invalid measurer: %q (must be one of: font, heuristic)", name)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and checks every field.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateMeasurer(o.Measurer); err != nil {
		return err
	}
	if o.IsNodelink() && slices.Contains(o.Formats, FormatJSON) {
		return fgerrors.New(fgerrors.ErrCodeUnsupported, "json output is only available for the frames view")
	}
	if o.Scale < 0 {
		return fgerrors.New(fgerrors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.VizType == "" {
		o.VizType = VizFrames
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Measurer == "" {
		o.Measurer = DefaultMeasurer
	}
	if o.Fill == "" {
		o.Fill = DefaultFill
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.TTL == 0 {
		o.TTL = TTLArtifact
	}
	if o.Source == "" {
		o.Source = "model"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsNodelink returns true if Graphviz lays out the diagram.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizNodelink
}

// ArtifactKeyOpts holds the options that change a given format's bytes.
type ArtifactKeyOpts struct {
	VizType     string  `json:"viz_type"`
	Format      string  `json:"format"`
	Measurer    string  `json:"measurer,omitempty"`
	Fill        string  `json:"fill"`
	Scale       float64 `json:"scale,omitempty"`
	Interactive bool    `json:"interactive,omitempty"`
	EmbedFont   bool    `json:"embed_font,omitempty"`
	Detailed    bool    `json:"detailed,omitempty"`
	Pinned      bool    `json:"pinned,omitempty"`
}

// ArtifactKey returns the cache key options for format. Fields that cannot
// affect the format are left zero so equivalent runs share entries.
func (o *Options) ArtifactKey(format string) ArtifactKeyOpts {
	k := ArtifactKeyOpts{VizType: o.VizType, Format: format, Fill: o.Fill}

	if format == FormatDOT || o.IsNodelink() {
		k.Detailed = o.Detailed
		k.Pinned = o.Pinned
	} else {
		k.Measurer = o.Measurer
		if format != FormatJSON {
			k.Interactive = o.Interactive
			k.EmbedFont = o.EmbedFont
		}
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	if format == FormatJSON {
		k.Fill = ""
	}
	return k
}
