// Package experiment - Display- und String-Methoden fuer Name
// Enthaelt: String(), DisplayShortest()
package experiment

import (
	"strings"
)

// String returns the name string, in the format that [ParseNameBare]
// accepts as valid.
func (n Name) String() string {
	var b strings.Builder
	if n.Corpus != "" {
		b.WriteString(n.Corpus)
		b.WriteByte('/')
	}
	b.WriteString(n.Model)
	if n.Tag != "" {
		b.WriteByte(':')
		b.WriteString(n.Tag)
	}
	return b.String()
}

// DisplayShortest returns a short string version of the name. The corpus is
// omitted when it is the default corpus.
func (n Name) DisplayShortest() string {
	var sb strings.Builder

	if !strings.EqualFold(n.Corpus, defaultCorpus) {
		sb.WriteString(n.Corpus)
		sb.WriteByte('/')
	}

	// always include model and tag
	sb.WriteString(n.Model)
	sb.WriteString(":")
	sb.WriteString(n.Tag)
	return sb.String()
}
