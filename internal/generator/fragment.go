package generator

import (
	"fmt"
	"sort"
	"strings"
)

// Symbol is an SDK name a fragment needs imported. Both bindings export
// the same names.
type Symbol int

const (
	SymbolDaytona Symbol = iota
	SymbolDaytonaConfig
	SymbolCreateSandboxFromImageParams
	SymbolResources
	SymbolImage
)

func (s Symbol) String() string {
	switch s {
	case SymbolDaytona:
		return "Daytona"
	case SymbolDaytonaConfig:
		return "DaytonaConfig"
	case SymbolCreateSandboxFromImageParams:
		return "CreateSandboxFromImageParams"
	case SymbolResources:
		return "Resources"
	case SymbolImage:
		return "Image"
	default:
		return fmt.Sprintf("symbol(%d)", int(s))
	}
}

// Line is one line of a fragment. Depth is relative to the fragment's
// IndentLevel. Raw lines are continuation lines of embedded user text and
// are written with no indentation at all.
type Line struct {
	Depth int
	Text  string
	Raw   bool
}

// Fragment is the text one clause renders for one dialect.
type Fragment struct {
	Clause      ClauseID
	Lines       []Line
	Imports     []Symbol
	IndentLevel int
}

func (f *Fragment) add(depth int, text string) {
	f.Lines = append(f.Lines, Line{Depth: depth, Text: text})
}

func (f *Fragment) need(symbols ...Symbol) {
	f.Imports = append(f.Imports, symbols...)
}

// embed writes prefix+literal+suffix at depth. When the literal spans
// several lines, every line after the first is raw so the embedded text is
// reproduced byte for byte.
func (f *Fragment) embed(depth int, prefix, literal, suffix string) {
	parts := strings.Split(literal, "\n")
	if len(parts) == 1 {
		f.add(depth, prefix+literal+suffix)
		return
	}
	f.add(depth, prefix+parts[0])
	last := len(parts) - 1
	for _, p := range parts[1:last] {
		f.Lines = append(f.Lines, Line{Text: p, Raw: true})
	}
	f.Lines = append(f.Lines, Line{Text: parts[last] + suffix, Raw: true})
}

// empty reports whether the fragment has no text to write.
func (f *Fragment) empty() bool {
	return len(f.Lines) == 0
}

// importSet collects symbols across fragments without duplicates.
type importSet map[Symbol]struct{}

func (s importSet) add(symbols ...Symbol) {
	for _, sym := range symbols {
		s[sym] = struct{}{}
	}
}

// names returns the collected symbol names in canonical order.
func (s importSet) names() []string {
	syms := make([]Symbol, 0, len(s))
	for sym := range s {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = sym.String()
	}
	return names
}
