package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Playground defaults for a freshly opened sandbox form.
const (
	DefaultCPU         = 2
	DefaultMemory      = 4
	DefaultDisk        = 8
	DefaultAutoStop    = 15
	DefaultAutoArchive = 7
	DefaultAutoDelete  = -1
)

// Defaults returns the model the playground starts from: default resources
// and lifecycle intervals, everything else unset.
func Defaults() *Sandbox {
	return &Sandbox{
		Resources: &Resources{
			CPU:    Int(DefaultCPU),
			Memory: Int(DefaultMemory),
			Disk:   Int(DefaultDisk),
		},
		Lifecycle: &Lifecycle{
			AutoStop:    Int(DefaultAutoStop),
			AutoArchive: Int(DefaultAutoArchive),
			AutoDelete:  Int(DefaultAutoDelete),
		},
	}
}

var sampleCode = map[Language]string{
	LanguagePython: `def greet(name):
    return f"Hello, {name}!"

print(greet("Daytona"))`,
	LanguageTypeScript: "function greet(name: string): string {\n" +
		"    return `Hello, ${name}!`;\n" +
		"}\n" +
		"console.log(greet(\"Daytona\"));",
	LanguageJavaScript: "function greet(name) {\n" +
		"    return `Hello, ${name}!`;\n" +
		"}\n" +
		"console.log(greet(\"Daytona\"));",
}

// SampleCode returns the example program offered for a runtime language,
// or "" when the language is unknown.
func SampleCode(lang Language) string {
	return sampleCode[lang]
}

// EncodeTOML writes s as a TOML document.
func (s *Sandbox) EncodeTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to encode sandbox config: %w", err)
	}
	return nil
}
