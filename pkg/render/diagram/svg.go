package diagram

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/framegraph/pkg/fonts"
	"github.com/matzehuels/framegraph/pkg/layout"
)

// DefaultFill is the background color of frame boxes.
const DefaultFill = "#d3dfac"

const defaultMargin = 20.0

const frameInteractionCSS = `
    .frame-box { transition: stroke-width 0.2s ease; }
    .frame-box.highlight { stroke-width: 3; }
    .edge.highlight { stroke-width: 2.5; }`

const frameInteractionJS = `
    function highlight(name) {
      document.querySelectorAll('.frame-box').forEach(b => b.classList.toggle('highlight', b.dataset.frame === name));
      document.querySelectorAll('.edge').forEach(e => e.classList.toggle('highlight', e.dataset.from === name || e.dataset.to === name));
    }
    function clearHighlight() {
      document.querySelectorAll('.frame-box, .edge').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.frame-box').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.dataset.frame));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fill        string
	margin      float64
	embedFont   bool
	interactive bool
}

// WithFill sets the box fill color (any CSS color).
func WithFill(color string) SVGOption { return func(r *svgRenderer) { r.fill = color } }

// WithMargin sets the blank border around the drawing, in pixels.
func WithMargin(m float64) SVGOption { return func(r *svgRenderer) { r.margin = m } }

// WithEmbeddedFont embeds the measuring font as a data URL so the output
// renders with the exact widths used for layout.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// WithInteraction adds hover highlighting of a frame and its arrows.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{fill: DefaultFill, margin: defaultMargin}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws a diagram. Boxes are drawn in diagram order, then arrows
// on top of them. The viewBox covers every primitive plus the margin.
func RenderSVG(d layout.Diagram, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	b := d.Bounds()
	vx, vy := b.X-r.margin, b.Y-r.margin
	vw, vh := b.W+2*r.margin, b.H+2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vx, vy, vw, vh, vw, vh)

	r.renderDefs(&buf)
	for _, box := range d.Boxes {
		r.renderBox(&buf, box)
	}
	for _, e := range d.Edges {
		renderEdge(&buf, e)
	}
	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", frameInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", frameInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n    <style>\n")
	if r.embedFont {
		fmt.Fprintf(buf, "      @font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
			fonts.FontFamily, fonts.RegularTTFBase64())
	}
	fmt.Fprintf(buf, "      .frame-box { fill: %s; stroke: #000; stroke-width: 1; }\n", escapeXML(r.fill))
	fmt.Fprintf(buf, "      text { font-family: %s; font-size: %.0fpx; fill: #000; }\n", fonts.FallbackFontFamily, layout.FontSize)
	buf.WriteString("      .title { text-anchor: middle; }\n")
	buf.WriteString("      .header { font-weight: bold; }\n")
	buf.WriteString("      .separator, .edge { stroke: #000; stroke-width: 1; }\n")
	buf.WriteString("      .arrow { fill: #000; }\n")
	buf.WriteString("    </style>\n  </defs>\n")
}

func (r svgRenderer) renderBox(buf *bytes.Buffer, box layout.Box) {
	name := escapeXML(box.Frame)
	fmt.Fprintf(buf, `  <g id="frame-%s">`+"\n", name)
	fmt.Fprintf(buf, `    <rect class="frame-box" data-frame="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		name, box.Rect.X, box.Rect.Y, box.Rect.W, box.Rect.H)
	renderText(buf, box.Title, "title")
	fmt.Fprintf(buf, `    <line class="separator" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
		box.Separator.From.X, box.Separator.From.Y, box.Separator.To.X, box.Separator.To.Y)
	renderText(buf, box.Header, "header")
	for _, s := range box.Slots {
		renderText(buf, s, "slot")
	}
	buf.WriteString("  </g>\n")
}

func renderText(buf *bytes.Buffer, t layout.Text, class string) {
	fmt.Fprintf(buf, `    <text class="%s" x="%.1f" y="%.1f">%s</text>`+"\n", class, t.X, t.Y, escapeXML(t.Value))
}

func renderEdge(buf *bytes.Buffer, e layout.Edge) {
	fmt.Fprintf(buf, `  <line class="edge" data-from="%s" data-to="%s" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
		escapeXML(e.From), escapeXML(e.To), e.Start.X, e.Start.Y, e.End.X, e.End.Y)

	points := make([]string, len(e.Head))
	for i, p := range e.Head {
		points[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(buf, `  <polygon class="arrow" points="%s"/>`+"\n", strings.Join(points, " "))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
