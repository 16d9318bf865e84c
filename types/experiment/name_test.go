// name_test.go - Unit Tests fuer Experiment-Namen
//
// Testet Parsing, Validierung und Anzeige von corpus/model:tag Namen.
package experiment

import "testing"

// TestParseName testet das Parsing von Namens-Strings
func TestParseName(t *testing.T) {
	tests := []struct {
		input string
		want  Name
	}{
		{"blstm-mocha", Name{Corpus: "local", Model: "blstm-mocha", Tag: "latest"}},
		{"blstm-mocha:large", Name{Corpus: "local", Model: "blstm-mocha", Tag: "large"}},
		{"csj/blstm-mocha", Name{Corpus: "csj", Model: "blstm-mocha", Tag: "latest"}},
		{"csj/blstm-mocha:large", Name{Corpus: "csj", Model: "blstm-mocha", Tag: "large"}},
		{"csj/", Name{Corpus: "csj", Model: MissingPart, Tag: "latest"}},
		{"/blstm-mocha", Name{Corpus: MissingPart, Model: "blstm-mocha", Tag: "latest"}},
		{"blstm-mocha:", Name{Corpus: "local", Model: "blstm-mocha", Tag: MissingPart}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseName(tt.input); got != tt.want {
				t.Errorf("ParseName(%q) = %+v, erwartet %+v", tt.input, got, tt.want)
			}
		})
	}
}

// TestNameIsValid testet die Validierung der Namensteile
func TestNameIsValid(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"blstm-mocha", true},
		{"csj/blstm_mocha.v2:large", true},
		{"CSJ/Model:Tag", true},
		{"csj/", false},
		{"/blstm-mocha", false},
		{"blstm-mocha:", false},
		{"a/b/c", false},
		{"csj.v1/model", false},
		{"-leading/model", false},
		{"csj/model:has space", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseName(tt.input).IsValid(); got != tt.valid {
				t.Errorf("IsValid(%q) = %v, erwartet %v", tt.input, got, tt.valid)
			}
		})
	}
}

// TestNameString testet die String-Form und den Roundtrip
func TestNameString(t *testing.T) {
	for _, s := range []string{"csj/blstm-mocha:large", "local/blstm-mocha:latest"} {
		if got := ParseName(s).String(); got != s {
			t.Errorf("String = %q, erwartet %q", got, s)
		}
	}
}

// TestDisplayShortest testet die Kurzform ohne Default-Corpus
func TestDisplayShortest(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"blstm-mocha", "blstm-mocha:latest"},
		{"local/blstm-mocha:large", "blstm-mocha:large"},
		{"csj/blstm-mocha:large", "csj/blstm-mocha:large"},
	}

	for _, tt := range tests {
		if got := ParseName(tt.input).DisplayShortest(); got != tt.want {
			t.Errorf("DisplayShortest(%q) = %q, erwartet %q", tt.input, got, tt.want)
		}
	}
}

// TestEqualFold testet den Namensvergleich unter Case-Folding
func TestEqualFold(t *testing.T) {
	a := ParseName("CSJ/Blstm-Mocha:Large")
	b := ParseName("csj/blstm-mocha:large")
	if !a.EqualFold(b) {
		t.Errorf("EqualFold(%v, %v) = false, erwartet true", a, b)
	}

	c := ParseName("csj/blstm-mocha:small")
	if a.EqualFold(c) {
		t.Errorf("EqualFold(%v, %v) = true, erwartet false", a, c)
	}
}

// TestIsValidCorpus testet die Corpus-Pruefung
func TestIsValidCorpus(t *testing.T) {
	if !IsValidCorpus("csj") {
		t.Error("IsValidCorpus(csj) = false, erwartet true")
	}
	if IsValidCorpus("csj.v1") {
		t.Error("IsValidCorpus(csj.v1) = true, erwartet false")
	}
	if IsValidCorpus("") {
		t.Error("IsValidCorpus(\"\") = true, erwartet false")
	}
}
