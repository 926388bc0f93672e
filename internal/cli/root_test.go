package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
)

func TestRootCommandTree(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := map[string][]string{
		"frame":  {"add", "rename", "rm", "move", "list", "show"},
		"slot":   {"add", "ref", "rename", "set", "rm"},
		"search": {"syntactic", "semantic"},
		"cache":  {"clear", "prune", "path"},
	}
	for parent, children := range want {
		cmd, _, err := root.Find([]string{parent})
		if err != nil || cmd.Name() != parent {
			t.Errorf("missing command %q", parent)
			continue
		}
		for _, child := range children {
			if sub, _, err := cmd.Find([]string{child}); err != nil || sub.Name() != child {
				t.Errorf("missing command %q %q", parent, child)
			}
		}
	}

	for _, name := range []string{"render", "export", "import", "serve", "browse", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestRootPersistentFlags(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"model", "config", "verbose"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
	if f := root.PersistentFlags().ShorthandLookup("m"); f == nil || f.Name != "model" {
		t.Error("-m should be shorthand for --model")
	}
}

func TestRenderFlags(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	cmd, _, err := root.Find([]string{"render"})
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"format", "output", "type", "measurer", "fill", "scale", "interactive", "embed-font", "detailed", "pinned", "no-cache", "refresh"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("render is missing --%s", name)
		}
	}
}

func TestReportError(t *testing.T) {
	err := fgerrors.Wrap(fgerrors.ErrCodeFileNotFound, errors.New("open x.fm: no such file"), "model x.fm does not exist")

	var buf bytes.Buffer
	ReportError(&buf, err, false)
	if got := buf.String(); !strings.Contains(got, "model x.fm does not exist") || strings.Contains(got, "FILE_NOT_FOUND") {
		t.Errorf("ReportError() = %q", got)
	}

	buf.Reset()
	ReportError(&buf, err, true)
	if got := buf.String(); !strings.Contains(got, "open x.fm") {
		t.Errorf("verbose ReportError() = %q, want the full chain", got)
	}
}

func TestCompletion(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun(t, "completion", "bash")
	if !strings.Contains(out, appName) {
		t.Errorf("bash completion does not mention %s", appName)
	}
}
