// Package fonts provides the typeface used to size and draw frame boxes.
//
// The Go Regular TrueType font ships with golang.org/x/image, so it is
// available without external files. The same bytes drive text measurement
// in the layout package and are embedded in SVG output, which keeps the
// measured and the rendered widths in agreement.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// RegularTTF returns the Go Regular TrueType font data.
func RegularTTF() []byte {
	return goregular.TTF
}

// Cache for the parsed font and its base64 encoding (computed once on
// first access).
var (
	parsed     *opentype.Font
	parseErr   error
	parsedOnce sync.Once

	ttfBase64     string
	ttfBase64Once sync.Once
)

// RegularTTFBase64 returns the TTF font data as a base64 string, for use in
// an SVG @font-face data URL. The result is cached after first computation.
func RegularTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// NewFace returns a Go Regular face at size pixels (72 DPI, no hinting).
// A face is not safe for concurrent use; create one per goroutine.
func NewFace(size float64) (font.Face, error) {
	parsedOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// FontFamily is the CSS font-family name for the embedded font.
const FontFamily = "Go"

// FallbackFontFamily provides fallback fonts for viewers that ignore the
// embedded font.
const FallbackFontFamily = `'Go', 'DejaVu Sans', Arial, sans-serif`
