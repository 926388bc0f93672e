package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
	"github.com/matzehuels/framegraph/pkg/frame"
	pkgio "github.com/matzehuels/framegraph/pkg/io"
	"github.com/matzehuels/framegraph/pkg/observability"
	"github.com/matzehuels/framegraph/pkg/pipeline"
	"github.com/matzehuels/framegraph/pkg/search"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only web viewer for the model",
		Long: `Serve a read-only web viewer for the model.

The model file is re-read on every request, so edits made with the other
commands show up on reload.

Routes:
  GET /                        interactive diagram page
  GET /diagram.{format}        svg, dot, json, png or pdf
  GET /model.json              the whole model as JSON
  GET /frames                  frame names and positions
  GET /frames/{name}           one frame with its slots
  GET /search/syntactic?q=...  slots by name
  GET /search/semantic?q=...   slots by value
  GET /health                  liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && c.Config.Serve.Addr != "" {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts, err := c.pipelineOptions()
	if err != nil {
		return err
	}
	if !c.verbose {
		observability.SetHTTPHooks(observability.NewLogHooks(c.Logger))
	}

	v := &viewer{cli: c, runner: runner, opts: opts, logger: c.Logger}
	srv := &http.Server{
		Addr:              addr,
		Handler:           v.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	c.printSuccess("Serving %s on %s", StyleHighlight.Render(c.modelPath()), StyleValue.Render("http://"+addr))

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	c.Logger.Info("server stopped")
	return nil
}

// viewer serves the model read-only over HTTP.
type viewer struct {
	cli    *CLI
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
}

func (v *viewer) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(httpHooks)

	r.Get("/health", v.health)
	r.Get("/", v.index)
	r.Get("/diagram.{format}", v.diagram)
	r.Get("/model.json", v.model)

	r.Route("/frames", func(r chi.Router) {
		r.Get("/", v.listFrames)
		r.Get("/{name}", v.getFrame)
	})

	r.Route("/search", func(r chi.Router) {
		r.Get("/syntactic", v.searchSyntactic)
		r.Get("/semantic", v.searchSemantic)
	})

	return r
}

// httpHooks reports every request to the registered observability hooks.
func httpHooks(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

func (v *viewer) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 1.5em; }
nav a { margin-right: 1em; }
</style>
</head>
<body>
<nav><a href="/diagram.svg">svg</a><a href="/diagram.png">png</a><a href="/diagram.pdf">pdf</a><a href="/diagram.dot">dot</a><a href="/model.json">json</a></nav>
{{.SVG}}
</body>
</html>
`))

func (v *viewer) index(w http.ResponseWriter, r *http.Request) {
	opts := v.opts
	opts.Formats = []string{pipeline.FormatSVG}
	opts.Interactive = true

	data, err := v.render(r.Context(), opts)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = indexTemplate.Execute(w, struct {
		Title string
		SVG   template.HTML
	}{
		Title: v.cli.modelPath(),
		SVG:   template.HTML(data[pipeline.FormatSVG]),
	})
	if err != nil {
		v.logger.Warn("write index", "err", err)
	}
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

func (v *viewer) diagram(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		respondError(w, err)
		return
	}

	opts := v.opts
	opts.Formats = []string{format}
	if q := r.URL.Query().Get("type"); q != "" {
		opts.VizType = q
	}
	opts.Interactive = r.URL.Query().Has("interactive")

	data, err := v.render(r.Context(), opts)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Write(data[format])
}

// render runs the cached pipeline on the current model file.
func (v *viewer) render(ctx context.Context, opts pipeline.Options) (map[string][]byte, error) {
	model, path, err := v.cli.readModelBytes()
	if err != nil {
		return nil, err
	}
	opts.Source = path
	result, err := v.runner.Render(ctx, model, opts)
	if err != nil {
		return nil, err
	}
	return result.Artifacts, nil
}

func (v *viewer) model(w http.ResponseWriter, r *http.Request) {
	g, err := v.cli.readModel()
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := pkgio.WriteJSON(g, w); err != nil {
		v.logger.Warn("write model", "err", err)
	}
}

// frameSummary is one entry of the frame list.
type frameSummary struct {
	Name     string         `json:"name"`
	Position frame.Position `json:"position"`
	Slots    int            `json:"slots"`
}

// frameDetail is a frame with its slots in display order.
type frameDetail struct {
	Name     string         `json:"name"`
	Label    string         `json:"label"`
	Position frame.Position `json:"position"`
	Slots    []slotDetail   `json:"slots"`
}

type slotDetail struct {
	Name  string     `json:"name"`
	Kind  frame.Kind `json:"kind"`
	Value string     `json:"value"`
}

func (v *viewer) listFrames(w http.ResponseWriter, r *http.Request) {
	g, err := v.cli.readModel()
	if err != nil {
		respondError(w, err)
		return
	}
	frames := make([]frameSummary, 0, g.Len())
	for _, p := range g.Frames() {
		frames = append(frames, frameSummary{Name: p.Frame.Name(), Position: p.Position, Slots: p.Frame.Len()})
	}
	respondJSON(w, http.StatusOK, frames)
}

func (v *viewer) getFrame(w http.ResponseWriter, r *http.Request) {
	g, err := v.cli.readModel()
	if err != nil {
		respondError(w, err)
		return
	}
	name := chi.URLParam(r, "name")
	f, err := g.At(name)
	if err != nil {
		respondError(w, err)
		return
	}
	pos, _ := g.Position(name)

	detail := frameDetail{
		Name:     f.Name(),
		Label:    f.DisplayLabel(),
		Position: pos,
		Slots:    make([]slotDetail, 0, f.Len()),
	}
	for _, s := range f.Slots() {
		value := s.Value.Text()
		if t, ok := g.Target(s.Value); ok {
			value = t.Name()
		}
		detail.Slots = append(detail.Slots, slotDetail{Name: s.Name, Kind: s.Value.Kind(), Value: value})
	}
	respondJSON(w, http.StatusOK, detail)
}

func (v *viewer) searchSyntactic(w http.ResponseWriter, r *http.Request) {
	terms, g, ok := v.searchInput(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, nonNil(search.Syntactic(g, terms)))
}

func (v *viewer) searchSemantic(w http.ResponseWriter, r *http.Request) {
	terms, g, ok := v.searchInput(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, nonNil(search.Semantic(g, terms)))
}

// searchInput parses the q parameter and loads the model, writing the error
// response itself when either fails.
func (v *viewer) searchInput(w http.ResponseWriter, r *http.Request) ([]string, *frame.Graph, bool) {
	terms, err := queryTerms(r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, fgerrors.Wrap(fgerrors.ErrCodeInvalidInput, err, "missing query: pass q=term1;term2"))
		return nil, nil, false
	}
	g, err := v.cli.readModel()
	if err != nil {
		respondError(w, err)
		return nil, nil, false
	}
	return terms, g, true
}

// =============================================================================
// Responses
// =============================================================================

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, err error) {
	code := fgerrors.GetCode(err)
	respondJSON(w, statusFor(err), errorResponse{Error: fgerrors.UserMessage(err), Code: string(code)})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch fgerrors.GetCode(err) {
	case fgerrors.ErrCodeFrameNotFound, fgerrors.ErrCodeSlotNotFound, fgerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case fgerrors.ErrCodeUnsupported, fgerrors.ErrCodeInvalidInput, fgerrors.ErrCodeInvalidName:
		return http.StatusBadRequest
	case fgerrors.ErrCodeInvalidFormat, fgerrors.ErrCodeDuplicateFrame, fgerrors.ErrCodeDuplicateSlot,
		fgerrors.ErrCodeSelfReference, fgerrors.ErrCodeTypeMismatch:
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, context.Canceled) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
