package testutil

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-snippets/internal/config"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// ConfigFixtures names the same full sandbox config in every supported
// encoding.
var ConfigFixtures = []string{"sandbox.toml", "sandbox.yaml", "sandbox.json"}

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadSandboxFixture parses a config fixture, picking the format from its
// extension.
func LoadSandboxFixture(name string) (*config.Sandbox, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	format, err := config.FormatForPath(name)
	if err != nil {
		return nil, err
	}
	return config.Parse(data, format)
}

// FullSandbox returns the parsed full config fixture. Every clause is active
// for it.
func FullSandbox(t *testing.T) *config.Sandbox {
	t.Helper()

	sb, err := LoadSandboxFixture("sandbox.toml")
	if err != nil {
		t.Fatalf("Failed to load sandbox fixture: %v", err)
	}
	return sb
}

// WriteFixture copies a fixture into dir and returns its path.
func WriteFixture(t *testing.T, dir, name string) string {
	t.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}
