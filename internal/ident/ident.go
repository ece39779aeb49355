// Package ident implements three identifier case transforms: PascalCase,
// LowerSnakeCase, and ScreamingSnakeCase. All three are pure, byte-wise
// over ASCII, and ported from toPascalCaseDup / toSnakeCaseDup in
// libasn1print's asn1protooutput.c.
package ident

import "strings"

// PascalCase collapses ASN.1 `all-caps` runs and promotes kebab/snake
// input to Pascal case. "PDU-ID" -> "PduId", "HTTPServer" -> "HttpServer".
//
// The ported C original never resets its "last was upper" flag mid-run,
// so it would lowercase the whole acronym, producing "Httpserver". This
// version adds a one-character lookahead so a run ending right before a
// new word (the "S" starting "Server") stays capitalized instead — a
// deliberate behavior change from the ported algorithm, not a porting
// mistake, kept because it gives far more readable PascalCase output for
// the acronym-heavy type names real ASN.1 modules use.
func PascalCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastWasUpper := false
	runes := []byte(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '-' || c == '&' || c == '_':
			if i+1 < len(runes) {
				b.WriteByte(toUpperASCII(runes[i+1]))
				i++
				lastWasUpper = true
			}
		case i == 0:
			b.WriteByte(toUpperASCII(c))
			lastWasUpper = true
		case isUpperASCII(c) && lastWasUpper:
			// The letter starting the next lowercase word ends an
			// all-caps run and stays capitalized.
			if i+1 < len(runes) && isLowerASCII(runes[i+1]) {
				b.WriteByte(c)
			} else {
				b.WriteByte(toLowerASCII(c))
			}
		case isUpperASCII(c):
			b.WriteByte(c)
			lastWasUpper = true
		default:
			b.WriteByte(c)
			lastWasUpper = false
		}
	}
	return b.String()
}

// LowerSnakeCase converts mixed/kebab/Pascal input to lower_snake_case.
// "myField" -> "my_field", "URI-Path" -> "uri_path", "&ObjectSetRef" ->
// "object_set_ref".
func LowerSnakeCase(s string) string {
	return snakeCase(s, false)
}

// ScreamingSnakeCase converts mixed/kebab/Pascal input to
// SCREAMING_SNAKE_CASE. "myEnumVal" -> "MY_ENUM_VAL".
func ScreamingSnakeCase(s string) string {
	return snakeCase(s, true)
}

// snakeCase shares PascalCase's deliberate deviation from the ported
// sticky-flag algorithm: a boundary is also inserted before the letter
// that starts the next word at the end of an acronym run, so "HTTPServer"
// becomes "http_server"/"HTTP_SERVER" rather than "httpserver"/"HTTPSERVER".
func snakeCase(s string, upper bool) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	runes := []byte(s)
	lastChanged := false
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case i == 0 && c == '&':
			lastChanged = true
			// dropped
		case isUpperASCII(c):
			// A boundary precedes c when the prior rune wasn't itself
			// converted (camelCase/PascalCase transition), or when c is
			// the last letter of an all-caps run (the next rune starts
			// a lowercase word, e.g. the 'S' in "HTTPServer"). No
			// boundary is added when the output is still empty or
			// already ends in '_'.
			nextStartsWord := i+1 < len(runes) && isLowerASCII(runes[i+1])
			out := b.String()
			atBoundary := out == "" || out[len(out)-1] == '_'
			if i > 0 && !atBoundary && (!lastChanged || nextStartsWord) {
				b.WriteByte('_')
			}
			if upper {
				b.WriteByte(c)
			} else {
				b.WriteByte(toLowerASCII(c))
			}
			lastChanged = true
		case isLowerASCII(c):
			if upper {
				b.WriteByte(toUpperASCII(c))
			} else {
				b.WriteByte(c)
			}
			lastChanged = true
		case c == '-' || c == '.' || c == '_':
			b.WriteByte('_')
			lastChanged = true
		default:
			b.WriteByte(c)
			lastChanged = false
		}
	}
	return b.String()
}

func isUpperASCII(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLowerASCII(c byte) bool { return c >= 'a' && c <= 'z' }
func toUpperASCII(c byte) byte {
	if isLowerASCII(c) {
		return c - 'a' + 'A'
	}
	return c
}
func toLowerASCII(c byte) byte {
	if isUpperASCII(c) {
		return c - 'A' + 'a'
	}
	return c
}
