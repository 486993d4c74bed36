// Package statedir resolves where libretto keeps its per-directory state
// (logs and saved sessions).
package statedir

import (
	"os"
	"path/filepath"
)

const dirName = ".libretto"

// Paths points at the state subdirectories for one root.
type Paths struct {
	Root     string
	Logs     string
	Sessions string
}

// Resolve computes the state layout under root without touching the disk.
// An empty root means the current directory.
func Resolve(root string) Paths {
	root = filepath.Clean(root)
	if root == "" {
		root = "."
	}

	base := filepath.Join(root, dirName)
	return Paths{
		Root:     base,
		Logs:     filepath.Join(base, "logs"),
		Sessions: filepath.Join(base, "sessions"),
	}
}

// Ensure creates the state tree, returning the resolved paths.
func Ensure(root string) (Paths, error) {
	p := Resolve(root)
	for _, d := range []string{p.Logs, p.Sessions} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return Paths{}, err
		}
	}
	return p, nil
}
