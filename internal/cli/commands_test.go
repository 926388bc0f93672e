package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
	pkgio "github.com/matzehuels/framegraph/pkg/io"
	"github.com/matzehuels/framegraph/pkg/observability"
)

// testEnv isolates a command run: its own model file, config and cache
// directories.
type testEnv struct {
	dir   string
	model string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	old := stderr
	stderr = io.Discard
	t.Cleanup(func() {
		stderr = old
		observability.Reset()
	})

	return &testEnv{dir: dir, model: filepath.Join(dir, "frame_model.fm")}
}

// run executes the root command with args against the env's model and
// returns what the command printed.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.SetOutput(&out)

	root := c.RootCommand()
	root.SetArgs(append([]string{"--model", e.model}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("%s: %v", strings.Join(args, " "), err)
	}
	return out
}

// seed builds the car model used by most tests:
//
//	Car (10, 20): Color (Red), Frame reference ("Engine")
//	Engine (200, 20): Power (150 hp)
//	Garage (10, 200): Frame reference ("Car")
func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	e.mustRun(t, "frame", "add", "Car", "--x", "10", "--y", "20")
	e.mustRun(t, "frame", "add", "Engine", "--x", "200", "--y", "20")
	e.mustRun(t, "frame", "add", "Garage", "--x", "10", "--y", "200")
	e.mustRun(t, "slot", "add", "Car", "Color", "Red")
	e.mustRun(t, "slot", "add", "Engine", "Power", "150 hp")
	e.mustRun(t, "slot", "ref", "Car", "Engine")
	e.mustRun(t, "slot", "ref", "Garage", "Car")
}

func TestFrameCommands(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)

	out := e.mustRun(t, "frame", "list")
	for _, want := range []string{"Car", "Engine", "Garage", "(10, 20)", "(200, 20)"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame list missing %q:\n%s", want, out)
		}
	}

	out = e.mustRun(t, "frame", "show", "Car")
	for _, want := range []string{"Color (Red)", `Frame reference ("Engine")`, "(10, 20)"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame show missing %q:\n%s", want, out)
		}
	}

	out = e.mustRun(t, "frame", "rename", "Engine", "Motor")
	if !strings.Contains(out, "updated 1 reference slot(s)") {
		t.Errorf("rename output = %q", out)
	}
	out = e.mustRun(t, "frame", "show", "Car")
	if !strings.Contains(out, `Frame reference ("Motor")`) {
		t.Errorf("reference not re-keyed after rename:\n%s", out)
	}

	e.mustRun(t, "frame", "move", "Garage", "--y", "300")
	out = e.mustRun(t, "frame", "show", "Garage")
	if !strings.Contains(out, "(10, 300)") {
		t.Errorf("move should keep x and change y:\n%s", out)
	}

	out = e.mustRun(t, "frame", "rm", "Car")
	if !strings.Contains(out, "removed 1 reference slot(s)") {
		t.Errorf("rm output = %q", out)
	}
	out = e.mustRun(t, "frame", "show", "Garage")
	if strings.Contains(out, "Frame reference") {
		t.Errorf("reference to removed frame survived:\n%s", out)
	}
}

func TestFrameCommandErrors(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)

	tests := []struct {
		name string
		args []string
		code fgerrors.Code
	}{
		{"duplicate frame", []string{"frame", "add", "Car"}, fgerrors.ErrCodeDuplicateFrame},
		{"missing frame", []string{"frame", "show", "Boat"}, fgerrors.ErrCodeFrameNotFound},
		{"rename onto existing", []string{"frame", "rename", "Car", "Engine"}, fgerrors.ErrCodeDuplicateFrame},
		{"duplicate slot", []string{"slot", "add", "Car", "Color", "Blue"}, fgerrors.ErrCodeDuplicateSlot},
		{"self reference", []string{"slot", "ref", "Car", "Car"}, fgerrors.ErrCodeSelfReference},
		{"set value of reference", []string{"slot", "set", "Car", "Engine", "x"}, fgerrors.ErrCodeTypeMismatch},
		{"missing slot", []string{"slot", "rm", "Car", "Wheels"}, fgerrors.ErrCodeSlotNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.run(t, tt.args...)
			if !fgerrors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}

	// Failed edits leave the file untouched.
	out := e.mustRun(t, "frame", "show", "Car")
	if !strings.Contains(out, "Color (Red)") {
		t.Errorf("model changed by failed edits:\n%s", out)
	}
}

func TestFrameMoveNeedsCoordinate(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun(t, "frame", "add", "Car")

	if _, err := e.run(t, "frame", "move", "Car"); err == nil {
		t.Error("move without --x or --y should fail")
	}
}

func TestSlotCommands(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)

	out := e.mustRun(t, "slot", "add", "Car", "Doors")
	if !strings.Contains(out, "Doors (Value)") {
		t.Errorf("empty value should default to Value: %q", out)
	}

	e.mustRun(t, "slot", "rename", "Car", "Color", "Paint")
	e.mustRun(t, "slot", "set", "Car", "Paint", "Blue")
	e.mustRun(t, "slot", "rm", "Car", "Engine")

	out = e.mustRun(t, "frame", "show", "Car")
	if !strings.Contains(out, "Paint (Blue)") {
		t.Errorf("renamed slot missing:\n%s", out)
	}
	if strings.Contains(out, "Frame reference") {
		t.Errorf("removed reference still shown:\n%s", out)
	}
}

func TestSearchCommands(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)

	out := e.mustRun(t, "search", "syntactic", "Color;Frame reference")
	for _, want := range []string{
		`Syntactic search results for slots "Color, Frame reference":`,
		`"Color" found in frame "Car" with value "Red"`,
		`"Frame reference" found in frame "Car" with value "Engine"`,
		`"Frame reference" found in frame "Garage" with value "Car"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("syntactic output missing %q:\n%s", want, out)
		}
	}

	out = e.mustRun(t, "search", "semantic", "Car")
	if !strings.Contains(out, `Found in frame "Garage":`) {
		t.Errorf("semantic output:\n%s", out)
	}

	out = e.mustRun(t, "search", "semantic", "Blue")
	if !strings.Contains(out, "no matches") {
		t.Errorf("expected no matches:\n%s", out)
	}

	if _, err := e.run(t, "search", "syntactic", " ; "); err == nil {
		t.Error("blank query should fail")
	}
}

func TestSearchJSON(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)

	out := e.mustRun(t, "search", "syntactic", "--json", "Power")
	var matches []map[string]string
	if err := json.Unmarshal([]byte(out), &matches); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(matches) != 1 || matches[0]["frame"] != "Engine" || matches[0]["kind"] != "literal" {
		t.Errorf("matches = %v", matches)
	}

	out = e.mustRun(t, "search", "semantic", "--json", "nothing")
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("empty result = %q, want []", out)
	}
}

func TestRenderCommand(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)
	base := filepath.Join(e.dir, "out", "car")

	out := e.mustRun(t, "render", "-f", "svg,dot,json", "-o", base, "--measurer", "heuristic")
	if !strings.Contains(out, "fresh") {
		t.Errorf("first render should be fresh:\n%s", out)
	}
	for _, ext := range []string{".svg", ".dot", ".json"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s: %v", ext, err)
		}
	}

	dot, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(dot), `"Car" -> "Engine"`) {
		t.Errorf("dot missing edge:\n%s", dot)
	}

	out = e.mustRun(t, "render", "-f", "svg,dot,json", "-o", base, "--measurer", "heuristic")
	if !strings.Contains(out, "cached") {
		t.Errorf("second render should hit the cache:\n%s", out)
	}
}

func TestRenderStdout(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)

	out := e.mustRun(t, "render", "-f", "dot", "-o", "-")
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("stdout render = %q", out)
	}

	if _, err := e.run(t, "render", "-f", "svg,dot", "-o", "-"); err == nil {
		t.Error("-o - with two formats should fail")
	}
}

func TestRenderErrors(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.run(t, "render")
	if !fgerrors.Is(err, fgerrors.ErrCodeFileNotFound) {
		t.Errorf("missing model: err = %v", err)
	}

	e.seed(t)
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"render", "-f", "gif"}},
		{"bad type", []string{"render", "-t", "tower"}},
		{"nodelink json", []string{"render", "-t", "nodelink", "-f", "json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.run(t, tt.args...)
			if !fgerrors.Is(err, fgerrors.ErrCodeUnsupported) {
				t.Errorf("err = %v, want UNSUPPORTED", err)
			}
		})
	}
}

func TestExportImport(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)

	jsonPath := filepath.Join(e.dir, "model.json")
	e.mustRun(t, "export", jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Fatalf("export is not JSON:\n%s", data)
	}

	other := &testEnv{dir: e.dir, model: filepath.Join(e.dir, "copy.fm")}
	out := other.mustRun(t, "import", jsonPath)
	if !strings.Contains(out, "Imported 3 frames") {
		t.Errorf("import output = %q", out)
	}
	out = other.mustRun(t, "frame", "show", "Garage")
	if !strings.Contains(out, `Frame reference ("Car")`) {
		t.Errorf("imported model lost its reference:\n%s", out)
	}
}

func TestImportMissingFileKeepsModel(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)

	if _, err := e.run(t, "import", filepath.Join(e.dir, "nope.fm")); err == nil {
		t.Fatal("import of a missing file should fail")
	}
	out := e.mustRun(t, "frame", "list")
	if !strings.Contains(out, "Garage") {
		t.Errorf("model was replaced:\n%s", out)
	}
}

func TestFlatTextRejectsUnrepresentableEdits(t *testing.T) {
	e := newTestEnv(t)
	e.seed(t)
	before, err := os.ReadFile(e.model)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"underscore in slot name", []string{"slot", "add", "Car", "max_speed", "5"}},
		{"underscore in value", []string{"slot", "set", "Car", "Color", "Dark_red"}},
		{"reference marker as value", []string{"slot", "add", "Car", "Label", pkgio.ReferenceMarker}},
		{"underscore in new frame", []string{"frame", "add", "Sports_car"}},
		{"underscore in frame rename", []string{"frame", "rename", "Car", "Sports_car"}},
		{"underscore in slot rename", []string{"slot", "rename", "Engine", "Power", "max_power"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.run(t, tt.args...)
			if !fgerrors.Is(err, fgerrors.ErrCodeInvalidInput) {
				t.Fatalf("err = %v, want INVALID_INPUT", err)
			}
			after, err := os.ReadFile(e.model)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(after, before) {
				t.Errorf("model file changed:\n%s", after)
			}
		})
	}

	// The model still loads and accepts further edits.
	e.mustRun(t, "slot", "set", "Car", "Color", "Dark red")
	out := e.mustRun(t, "frame", "show", "Car")
	if !strings.Contains(out, "Color (Dark red)") {
		t.Errorf("edit after rejected edits:\n%s", out)
	}
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".frame_model") {
			t.Errorf("temporary file %s left behind", entry.Name())
		}
	}
}

func TestJSONModelKeepsUnderscores(t *testing.T) {
	e := newTestEnv(t)
	e.model = filepath.Join(e.dir, "model.json")

	e.mustRun(t, "frame", "add", "Car")
	e.mustRun(t, "slot", "add", "Car", "max_speed", "5")
	e.mustRun(t, "slot", "set", "Car", "max_speed", "6")
	e.mustRun(t, "slot", "add", "Car", "Label", pkgio.ReferenceMarker)

	out := e.mustRun(t, "frame", "show", "Car")
	for _, want := range []string{"max_speed (6)", "Label (" + pkgio.ReferenceMarker + ")"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame show missing %q:\n%s", want, out)
		}
	}

	if _, err := e.run(t, "export", filepath.Join(e.dir, "flat.fm")); !fgerrors.Is(err, fgerrors.ErrCodeInvalidInput) {
		t.Errorf("export to flat text err = %v, want INVALID_INPUT", err)
	}
	if _, err := os.Stat(filepath.Join(e.dir, "flat.fm")); !os.IsNotExist(err) {
		t.Error("rejected export created the file")
	}
}

func TestSearchKeepsTermWhitespace(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun(t, "frame", "add", "Car")
	e.mustRun(t, "slot", "add", "Car", " Trim", "Chrome")
	e.mustRun(t, "slot", "add", "Car", "Trim", "Leather")

	out := e.mustRun(t, "search", "syntactic", " Trim")
	if !strings.Contains(out, "Chrome") || strings.Contains(out, "Leather") {
		t.Errorf("search for \" Trim\":\n%s", out)
	}
}

func TestEmptyModel(t *testing.T) {
	e := newTestEnv(t)

	out := e.mustRun(t, "frame", "list")
	if !strings.Contains(out, "No frames") {
		t.Errorf("empty list output = %q", out)
	}
	if _, err := os.Stat(e.model); !os.IsNotExist(err) {
		t.Error("read-only commands should not create the model file")
	}
}
