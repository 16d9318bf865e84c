// Package experiment - Kernmodul fuer Experiment-Namen und Parsing
// Enthaelt: Name-Struktur, Parsing-Funktionen, Konstanten
package experiment

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Errors
var (
	// ErrUnqualifiedName represents an error where a name is not fully
	// qualified. It is not used directly in this package, but is here
	// to avoid other packages inventing their own error type.
	// Additionally, it can be conveniently used via [Unqualified].
	ErrUnqualifiedName = errors.New("unqualified name")
)

// Unqualified is a helper function that returns an error with
// ErrUnqualifiedName as the cause and the name as the message.
func Unqualified(n Name) error {
	return fmt.Errorf("%w: %s", ErrUnqualifiedName, n)
}

// MissingPart is used to indicate any part of a name that was "promised" by
// the presence of a separator, but is missing.
//
// The value was chosen because it is deemed unlikely to be set by a user,
// not a valid part name valid when checked by [Name.IsValid], and easy to
// spot in logs.
const MissingPart = "!MISSING!"

const (
	defaultCorpus = "local"
	defaultTag    = "latest"
)

// DefaultName returns a name with the default values for the corpus and tag
// parts. The model part is empty.
//
//   - The default corpus is ("local")
//   - The default tag is ("latest")
func DefaultName() Name {
	return Name{
		Corpus: defaultCorpus,
		Tag:    defaultTag,
	}
}

type partKind int

const (
	kindCorpus partKind = iota
	kindModel
	kindTag
)

func (k partKind) String() string {
	switch k {
	case kindCorpus:
		return "corpus"
	case kindModel:
		return "model"
	case kindTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Name is a structured representation of an experiment name string, as
// defined by [ParseNameBare].
//
// It is not guaranteed to be valid. Use [Name.IsValid] to check if the name
// is valid.
type Name struct {
	Corpus string
	Model  string
	Tag    string
}

// ParseName parses and assembles a Name from a name string. The
// format of a valid name string is:
//
//	  s:
//		  { corpus } "/" { model } ":" { tag }
//		  { corpus } "/" { model }
//		  { model } ":" { tag }
//		  { model }
//	  corpus:
//	      pattern: { alphanum | "_" } { alphanum | "-" | "_" }*
//	      length:  [1, 80]
//	  model:
//	      pattern: { alphanum | "_" } { alphanum | "-" | "_" | "." }*
//	      length:  [1, 80]
//	  tag:
//	      pattern: { alphanum | "_" } { alphanum | "-" | "_" | "." }*
//	      length:  [1, 80]
//
// Missing corpus and tag parts are filled from [DefaultName].
//
// The name returned is not guaranteed to be valid. If it is not valid, the
// field values are left in an undefined state. Use [Name.IsValid] to check
// if the name is valid.
func ParseName(s string) Name {
	return Merge(ParseNameBare(s), DefaultName())
}

// ParseNameBare parses s as a name string and returns a Name. No merge with
// [DefaultName] is performed.
func ParseNameBare(s string) Name {
	var n Name
	var promised bool

	// "/" is an illegal tag character, so we can use it to split the corpus
	if strings.LastIndex(s, ":") > strings.LastIndex(s, "/") {
		s, n.Tag, _ = cutPromised(s, ":")
	}

	s, n.Model, promised = cutPromised(s, "/")
	if !promised {
		n.Model = s
		return n
	}

	n.Corpus = s
	return n
}

// Merge merges the corpus and tag parts of the two names, preferring the
// non-empty parts of a.
func Merge(a, b Name) Name {
	a.Corpus = cmp.Or(a.Corpus, b.Corpus)
	a.Tag = cmp.Or(a.Tag, b.Tag)
	return a
}

// LogValue returns a slog.Value that represents the name as a string.
func (n Name) LogValue() slog.Value {
	return slog.StringValue(n.String())
}

// EqualFold reports whether names are equal under Unicode case-folding.
func (n Name) EqualFold(o Name) bool {
	return strings.EqualFold(n.Corpus, o.Corpus) &&
		strings.EqualFold(n.Model, o.Model) &&
		strings.EqualFold(n.Tag, o.Tag)
}
