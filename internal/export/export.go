// Package export writes rendered snippets to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/generator"
)

// DefaultBaseName is the file stem used when none is given.
const DefaultBaseName = "sandbox"

// Write stores one file per dialect in dir, named base plus the dialect's
// extension. base is resolved inside dir: it cannot climb out of it through
// ".." components or symlinks. dir is created if needed. It returns the
// written paths in dialect order.
func Write(dir, base string, out generator.Output, dialects []generator.Dialect) ([]string, error) {
	if base == "" {
		base = DefaultBaseName
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(dialects))
	for _, d := range dialects {
		path, err := securejoin.SecureJoin(dir, base+d.Extension())
		if err != nil {
			return paths, fmt.Errorf("failed to resolve output path for %s: %w", d, err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return paths, fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(out.Snippet(d)), 0644); err != nil {
			return paths, fmt.Errorf("failed to write %s snippet: %w", d, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
