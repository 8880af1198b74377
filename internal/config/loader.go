package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath names the environment variable consulted when no
	// explicit config path is given.
	EnvConfigPath = "FORAGE_SNIPPETS_CONFIG"

	// DefaultConfigFile is looked up in the working directory last.
	DefaultConfigFile = "sandbox.toml"
)

// Format is a config file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
	}
}

//go:embed schema.json
var schemaJSON []byte

var sandboxSchema = mustCompileSchema(schemaJSON)

func mustCompileSchema(src []byte) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(src))
	if err != nil {
		// Embedded schema; a failure here is a build defect.
		panic("config: invalid embedded schema: " + err.Error())
	}
	return schema
}

// SchemaError lists every violation found while validating a config document.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "config does not match schema: " + strings.Join(e.Problems, "; ")
}

// DiscoverConfigFile finds the config file path using the discovery order:
//  1. Explicit path argument
//  2. FORAGE_SNIPPETS_CONFIG environment variable
//  3. ./sandbox.toml in the current directory
//
// Returns empty string if no config file is found.
func DiscoverConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return envPath
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	return ""
}

// Load reads and validates a sandbox config file.
func Load(path string) (*Sandbox, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	sb, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sb, nil
}

// Parse decodes data in the given format, validates it against the sandbox
// schema and returns the resulting model.
func Parse(data []byte, format Format) (*Sandbox, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Sandbox{}, nil
	}

	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}

	if err := Validate(doc); err != nil {
		return nil, err
	}

	var sb Sandbox
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &sb)
	case FormatYAML:
		err = yaml.Unmarshal(data, &sb)
	case FormatJSON:
		err = json.Unmarshal(data, &sb)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s config: %w", format, err)
	}
	return &sb, nil
}

// decodeDocument decodes data into a generic document for schema validation.
func decodeDocument(data []byte, format Format) (map[string]any, error) {
	doc := map[string]any{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", format, err)
	}
	if doc == nil {
		// A YAML document holding only comments decodes to a nil map.
		doc = map[string]any{}
	}
	return doc, nil
}

// Validate checks a decoded document against the sandbox schema.
func Validate(doc map[string]any) error {
	result, err := sandboxSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &SchemaError{Problems: problems}
}
