// Package experiment - Validierung und interne Hilfsfunktionen
// Enthaelt: Validierungslogik, partKind-Pruefungen, String-Hilfsfunktionen
package experiment

import (
	"cmp"
	"strings"
)

// IsValidCorpus reports whether the provided string is a valid corpus part.
func IsValidCorpus(s string) bool {
	return isValidPart(kindCorpus, s)
}

// IsValid reports whether all parts of the name are present and valid.
func (n Name) IsValid() bool {
	return n.IsFullyQualified()
}

// IsFullyQualified returns true if all parts of the name are present and
// valid.
func (n Name) IsFullyQualified() bool {
	parts := []string{
		n.Corpus,
		n.Model,
		n.Tag,
	}
	for i, part := range parts {
		if !isValidPart(partKind(i), part) {
			return false
		}
	}
	return true
}

// isValidLen checks if the string length is valid for a name part.
func isValidLen(s string) bool {
	return len(s) >= 1 && len(s) <= 80
}

// isValidPart validates a single part of the name based on its kind.
func isValidPart(kind partKind, s string) bool {
	if !isValidLen(s) {
		return false
	}
	for i := range s {
		if i == 0 {
			if !isAlphanumericOrUnderscore(s[i]) {
				return false
			}
			continue
		}
		switch s[i] {
		case '_', '-':
		case '.':
			if kind == kindCorpus {
				return false
			}
		default:
			if !isAlphanumericOrUnderscore(s[i]) {
				return false
			}
		}
	}
	return true
}

// isAlphanumericOrUnderscore checks if a byte is alphanumeric or underscore.
func isAlphanumericOrUnderscore(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}

// cutLast cuts the string at the last occurrence of the separator.
func cutLast(s, sep string) (before, after string, ok bool) {
	i := strings.LastIndex(s, sep)
	if i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// cutPromised cuts the last part of s at the last occurrence of sep. If sep is
// found, the part before and after sep are returned as-is unless empty, in
// which case they are returned as MissingPart, which will cause
// [Name.IsValid] to return false.
func cutPromised(s, sep string) (before, after string, ok bool) {
	before, after, ok = cutLast(s, sep)
	if !ok {
		return before, after, false
	}
	return cmp.Or(before, MissingPart), cmp.Or(after, MissingPart), true
}
