package dot

import (
	"fmt"
	"io"
	"os"
)

// Write renders the graph as DOT to an io.Writer.
// Use Marshal for in-memory serialization or WriteFile for files.
func Write(g *Graph, w io.Writer) error {
	if _, err := w.Write(Marshal(g)); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	return nil
}

// WriteFile writes the graph as a DOT file.
// The file is created with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}
