package layout

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
	"github.com/matzehuels/framegraph/pkg/fonts"
)

// Measurer reports the rendered width of a line of text in pixels.
type Measurer interface {
	TextWidth(s string) float64
}

// Measurer names accepted by [NewMeasurer].
const (
	MeasurerFont      = "font"
	MeasurerHeuristic = "heuristic"
)

const heuristicCharWidth = 0.55

// HeuristicMeasurer estimates widths from the rune count and a fixed
// per-character ratio of the font size. It needs no font data and is the
// fallback when the TrueType face cannot be loaded.
type HeuristicMeasurer struct {
	Size float64
}

// TextWidth implements [Measurer].
func (h HeuristicMeasurer) TextWidth(s string) float64 {
	size := h.Size
	if size <= 0 {
		size = FontSize
	}
	return float64(utf8.RuneCountInString(s)) * size * heuristicCharWidth
}

// FontMeasurer measures text with the Go Regular TrueType face. It is safe
// for concurrent use.
type FontMeasurer struct {
	mu   sync.Mutex
	face font.Face
}

// NewFontMeasurer loads a face at size pixels.
func NewFontMeasurer(size float64) (*FontMeasurer, error) {
	face, err := fonts.NewFace(size)
	if err != nil {
		return nil, fgerrors.Wrap(fgerrors.ErrCodeInternal, err, "load font face")
	}
	return &FontMeasurer{face: face}, nil
}

// TextWidth implements [Measurer].
func (m *FontMeasurer) TextWidth(s string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(font.MeasureString(m.face, s)) / 64
}

// Close releases the face.
func (m *FontMeasurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.face.Close()
}

// NewMeasurer returns the measurer with the given name at [FontSize].
// An empty name selects the font measurer.
func NewMeasurer(name string) (Measurer, error) {
	switch name {
	case "", MeasurerFont:
		return NewFontMeasurer(FontSize)
	case MeasurerHeuristic:
		return HeuristicMeasurer{Size: FontSize}, nil
	default:
		return nil, fgerrors.New(fgerrors.ErrCodeUnsupported,
			"unknown measurer %q (want %s or %s)", name, MeasurerFont, MeasurerHeuristic)
	}
}
