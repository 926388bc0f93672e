package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	fgerrors "github.com/matzehuels/framegraph/pkg/errors"
	"github.com/matzehuels/framegraph/pkg/frame"
	pkgio "github.com/matzehuels/framegraph/pkg/io"
)

// loadModel reads the model at path. A missing file is an empty model.
func loadModel(path string) (*frame.Graph, error) {
	g, err := pkgio.Import(path)
	if errors.Is(err, fs.ErrNotExist) {
		return frame.New(), nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// saveModel writes g to path through a temporary file in the same directory,
// so a failed write never truncates the existing model.
func saveModel(g *frame.Graph, path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+"-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := pkgio.Export(g, tmpPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// editModel loads the model, applies edit and saves the result. Nothing is
// written when edit fails.
func (c *CLI) editModel(edit func(g *frame.Graph) error) error {
	path := c.modelPath()
	g, err := loadModel(path)
	if err != nil {
		return err
	}
	if err := edit(g); err != nil {
		return err
	}
	if err := saveModel(g, path); err != nil {
		return err
	}
	c.Logger.Debug("saved model", "path", path, "frames", g.Len())
	return nil
}

// readModel loads the model for read-only commands.
func (c *CLI) readModel() (*frame.Graph, error) {
	return loadModel(c.modelPath())
}

// readModelBytes returns the raw model file for the render pipeline, which
// hashes the bytes before parsing them.
func (c *CLI) readModelBytes() ([]byte, string, error) {
	path := c.modelPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, path, fgerrors.Wrap(fgerrors.ErrCodeFileNotFound, err, "model %s does not exist", path)
	}
	if err != nil {
		return nil, path, fmt.Errorf("read model: %w", err)
	}
	return data, path, nil
}
