package generator

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// stringLiteral renders s as a double-quoted literal that both dialects
// accept: JSON string escapes are a subset of Python and JavaScript
// string escapes.
func stringLiteral(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a string cannot fail.
		panic("generator: failed to encode string literal: " + err.Error())
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// plainText reports whether s can sit inside a multi-line fence unchanged:
// valid UTF-8 with no control characters other than newline and tab.
func plainText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r == '\n' || r == '\t' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

var pythonFences = []string{`"""`, `'''`}

// pythonCodeLiteral fences code in a triple-quoted string, trying """ then
// '''. A fence is usable when the text neither contains it nor ends with
// its quote character, and the text has no backslashes (which a non-raw
// string would interpret). Anything else falls back to an escaped literal.
func pythonCodeLiteral(code string) string {
	if plainText(code) && !strings.Contains(code, `\`) {
		for _, fence := range pythonFences {
			if strings.Contains(code, fence) || strings.HasSuffix(code, fence[:1]) {
				continue
			}
			return fence + code + fence
		}
	}
	return stringLiteral(code)
}

var templateEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", "\\${")

// templateCodeLiteral fences code in a template literal. Backslashes,
// backticks and substitution openers are escaped, so the literal always
// closes where it should and evaluates to code.
func templateCodeLiteral(code string) string {
	if !plainText(code) {
		return stringLiteral(code)
	}
	return "`" + templateEscaper.Replace(code) + "`"
}
