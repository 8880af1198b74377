// Package testutil provides sandbox config fixtures for tests.
//
// The fixtures are embedded using go:embed:
//
//	fixtures/sandbox.toml
//	fixtures/sandbox.yaml
//	fixtures/sandbox.json
//	fixtures/invalid.toml
//
// The three sandbox.* files describe the same config, one that activates
// every snippet clause. invalid.toml violates the config schema.
//
// # Usage in Tests
//
//	func TestRenderFromFile(t *testing.T) {
//	    path := testutil.WriteFixture(t, t.TempDir(), "sandbox.yaml")
//	    sb, err := config.Load(path)
//	    ...
//	}
//
//	sb := testutil.FullSandbox(t)
//	plan := generator.Activate(sb)
package testutil
