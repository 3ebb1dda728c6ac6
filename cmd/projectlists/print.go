package main

import (
	"bytes"
	"encoding/json"
	"io"
)

// printJSON writes v as indented JSON, without a trailing newline. Nothing is written if encoding fails. Like HTML
// characters, the line and paragraph separators U+2028 and U+2029 are written as they are, not escaped.
func printJSON(w io.Writer, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fail("Could not encode output", err)
	}
	out := unescapeSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	if _, err := w.Write(out); err != nil {
		return fail("Could not write output", err)
	}
	return nil
}

// unescapeSeparators replaces the \u2028 and \u2029 escapes that encoding/json always emits with the characters
// themselves. Every backslash in encoder output starts an escape sequence, so a pair like \\ is skipped whole.
func unescapeSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 == len(b) {
			out = append(out, b[i])
			continue
		}
		switch rest := b[i:]; {
		case bytes.HasPrefix(rest, []byte(`\u2028`)):
			out = append(out, "\u2028"...)
			i += 5
		case bytes.HasPrefix(rest, []byte(`\u2029`)):
			out = append(out, "\u2029"...)
			i += 5
		default:
			out = append(out, b[i], b[i+1])
			i++
		}
	}
	return out
}
