// Package jsonrepair applies a bounded, best-effort repair to almost-JSON
// text returned by language models: code fences, leading prose, trailing
// commas, stray or missing closers. It never invents content, only trims and
// closes what is already there.
package jsonrepair

import (
	"encoding/json"
	"strings"
)

// Repair attempts to turn input into valid JSON. The second return value is
// false when the input is beyond repair; the caller must fall back.
func Repair(input string) (string, bool) {
	s := strings.TrimSpace(stripCodeFence(input))

	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", false
	}
	s = s[start:]

	var out strings.Builder
	var stack []byte
	inString := false
	escaped := false

walk:
	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			out.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			out.WriteByte(c)
		case '{':
			stack = append(stack, '}')
			out.WriteByte(c)
		case '[':
			stack = append(stack, ']')
			out.WriteByte(c)
		case '}', ']':
			if len(stack) == 0 {
				// Stray closer, drop it.
				continue
			}
			// On mismatch, emit the closer the structure actually needs.
			out.WriteByte(stack[len(stack)-1])
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				// Top-level value complete; anything after is junk.
				break walk
			}
		case ',':
			if nextIsCloserOrEnd(s, i+1) {
				continue
			}
			out.WriteByte(c)
		default:
			out.WriteByte(c)
		}
	}

	if inString {
		out.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out.WriteByte(stack[i])
	}

	repaired := strings.TrimSpace(out.String())
	if !json.Valid([]byte(repaired)) {
		return "", false
	}

	return repaired, true
}

func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}

	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		return s
	}

	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	return trimmed
}

func nextIsCloserOrEnd(s string, from int) bool {
	for i := from; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return true
}
