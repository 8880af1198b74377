// Package generator renders sandbox SDK usage snippets in two dialects.
//
// A snippet is assembled from an ordered catalog of clauses. Each clause
// covers one configurable operation (resources, creation, running code,
// git clone, ...) and has an activation predicate over the sandbox model.
// Activation is evaluated once into a Plan, and both dialects are composed
// from that same Plan, so the Python and TypeScript snippets always
// describe the same operations.
//
// # Rendering
//
//	cfg := &config.Sandbox{
//	    RuntimeLanguage: config.LanguagePython,
//	    Resources:       &config.Resources{CPU: config.Int(2), Memory: config.Int(4)},
//	    CodeToRun:       `print("hi")`,
//	}
//
//	out := generator.Render(cfg, generator.Options{})
//	fmt.Print(out.Python)
//	fmt.Print(out.TypeScript)
//
// # Composition
//
// Each clause renders a Fragment of lines with a depth relative to the
// fragment's section. The Python dialect writes flat top-level statements.
// The TypeScript dialect keeps the client configuration at the top level,
// creates the client inside an async main function and puts every sandbox
// operation inside one try/catch block. Fragments are separated by exactly
// one blank line and indented with a single indent unit per depth.
//
// # Embedding user text
//
// Code bodies are fenced so that the user's text cannot close the literal
// early. Python uses a triple-quoted string when a safe fence exists and an
// escaped string otherwise. TypeScript uses a template literal with its
// special sequences escaped. Single-line values such as commands and paths
// are always escaped double-quoted strings.
//
// Rendering is pure: no I/O, no logging, no shared mutable state.
package generator
