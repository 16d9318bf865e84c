// load_test.go - Unit Tests fuer Laden, Speichern und Overrides
//
// Testet Load, LoadFile, Save, Apply, Suggest und Diff.
package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestLoadDefaults testet dass ein leeres Dokument die Defaults liefert
func TestLoadDefaults(t *testing.T) {
	config, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}

	if diff := cmp.Diff(Default(), config); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

// TestLoadOverridesDefaults testet dass gesetzte Schluessel die Defaults
// ueberschreiben und alle anderen unveraendert bleiben
func TestLoadOverridesDefaults(t *testing.T) {
	in := `
enc_type: blstm
enc_n_units: 320
lc_chunk_size_left: 0
lc_chunk_size_right: 0
conv_channels: 16_16
lr: 5e-4
mbr_training: true
`
	config, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}

	if config.EncType != "blstm" {
		t.Errorf("EncType = %q, erwartet %q", config.EncType, "blstm")
	}
	if config.EncNUnits != 320 {
		t.Errorf("EncNUnits = %d, erwartet 320", config.EncNUnits)
	}
	if diff := cmp.Diff(IntList{16, 16}, config.ConvChannels); diff != "" {
		t.Errorf("ConvChannels mismatch (-want +got):\n%s", diff)
	}
	if config.LR != 5e-4 {
		t.Errorf("LR = %g, erwartet 5e-4", config.LR)
	}
	if !config.MBRTraining {
		t.Error("MBRTraining nicht gesetzt")
	}

	// Defaults bleiben erhalten
	if config.BatchSize != Default().BatchSize {
		t.Errorf("BatchSize = %d, erwartet Default %d", config.BatchSize, Default().BatchSize)
	}
}

// TestLoadUnknownKey testet den Korrekturvorschlag fuer Tippfehler
func TestLoadUnknownKey(t *testing.T) {
	tests := []struct {
		name, key, suggestion string
	}{
		{"Buchstabendreher", "ctc_wieght", "ctc_weight"},
		{"Fehlender Buchstabe", "enc_typ", "enc_type"},
		{"Ohne Vorschlag", "completely_bogus_key_xyz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.key + ": 1\n"))
			if err == nil {
				t.Fatal("Erwartete Fehler fuer unbekannten Schluessel")
			}

			var keyErr *KeyError
			if !errors.As(err, &keyErr) {
				t.Fatalf("Erwartete KeyError, bekam %T", err)
			}
			if keyErr.Key != tt.key {
				t.Errorf("Key = %q, erwartet %q", keyErr.Key, tt.key)
			}
			if keyErr.Suggestion != tt.suggestion {
				t.Errorf("Suggestion = %q, erwartet %q", keyErr.Suggestion, tt.suggestion)
			}
		})
	}
}

// TestLoadLenient testet dass WithLenient unbekannte Schluessel durchwinkt
func TestLoadLenient(t *testing.T) {
	config, err := Load(strings.NewReader("ctc_wieght: 0.2\nlr: 5e-4\n"), WithLenient())
	if err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}
	if config.LR != 5e-4 {
		t.Errorf("LR = %g, erwartet 5e-4", config.LR)
	}
}

// TestLoadTypeError testet Typfehler beim Dekodieren
func TestLoadTypeError(t *testing.T) {
	if _, err := Load(strings.NewReader("lr: fast\n")); err == nil {
		t.Error("Erwartete Fehler fuer nicht-numerischen Wert")
	}
	if _, err := Load(strings.NewReader("- a\n- b\n")); err == nil {
		t.Error("Erwartete Fehler fuer Nicht-Mapping")
	}
}

// TestLoadDuplicateKey testet dass doppelte Schluessel abgelehnt werden
func TestLoadDuplicateKey(t *testing.T) {
	if _, err := Load(strings.NewReader("lr: 1e-3\nlr: 1e-4\n")); err == nil {
		t.Error("Erwartete Fehler fuer doppelten Schluessel")
	}
}

// TestSaveRoundTrip testet Save als Umkehrung von Load
func TestSaveRoundTrip(t *testing.T) {
	original := Default()
	original.EncNUnits = 320
	original.ConvChannels = IntList{16, 16}
	original.AttnType = "mocha"

	var buf bytes.Buffer
	if err := original.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("Round-Trip mismatch (-want +got):\n%s", diff)
	}
}

// TestSaveKeyOrder testet die Schema-Reihenfolge der Ausgabe
func TestSaveKeyOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := buf.String()
	keys := Keys()
	last := -1
	for _, key := range keys {
		idx := strings.Index(out, "\n"+key+":")
		if strings.HasPrefix(out, key+":") {
			idx = 0
		}
		if idx < 0 {
			t.Fatalf("Schluessel %q fehlt in der Ausgabe", key)
		}
		if idx < last {
			t.Errorf("Schluessel %q ausserhalb der Schema-Reihenfolge", key)
		}
		last = idx
	}
}

// TestLoadFile testet das Laden aus einer Datei samt Pfad im Fehler
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "train.yaml")
	if err := os.WriteFile(path, []byte("enc_n_units: 256\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	config, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}
	if config.EncNUnits != 256 {
		t.Errorf("EncNUnits = %d, erwartet 256", config.EncNUnits)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("enc_typ: blstm\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadFile(bad); err == nil {
		t.Fatal("Erwartete Fehler")
	} else if !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("Fehler ohne Dateipfad: %v", err)
	}
}

// TestApply testet String-Overrides
func TestApply(t *testing.T) {
	config := Default()

	err := config.Apply(map[string]string{
		"lr":               "5e-4",
		"enc_type":         "blstm",
		"conv_poolings":    "(2,2)_(1,1)",
		"subsample":        "1_2_2_1_1",
		"mbr_training":     "true",
		"recog_beam_width": "4",
	})
	if err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}

	if config.LR != 5e-4 {
		t.Errorf("LR = %g, erwartet 5e-4", config.LR)
	}
	if config.EncType != "blstm" {
		t.Errorf("EncType = %q, erwartet %q", config.EncType, "blstm")
	}
	if diff := cmp.Diff(ShapeList{{2, 2}, {1, 1}}, config.ConvPoolings); diff != "" {
		t.Errorf("ConvPoolings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(IntList{1, 2, 2, 1, 1}, config.Subsample); diff != "" {
		t.Errorf("Subsample mismatch (-want +got):\n%s", diff)
	}
	if !config.MBRTraining {
		t.Error("MBRTraining nicht gesetzt")
	}
	if config.RecogBeamWidth != 4 {
		t.Errorf("RecogBeamWidth = %d, erwartet 4", config.RecogBeamWidth)
	}
}

// TestApplyErrors testet Fehlerfaelle der Overrides
func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
	}{
		{"Unbekannter Schluessel", map[string]string{"ctc_wieght": "0.2"}},
		{"Keine Ganzzahl", map[string]string{"enc_n_units": "viele"}},
		{"Keine Zahl", map[string]string{"lr": "schnell"}},
		{"Kein Bool", map[string]string{"mbr_training": "vielleicht"}},
		{"Keine Liste", map[string]string{"conv_channels": "a_b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Default().Apply(tt.params); err == nil {
				t.Error("Erwartete Fehler")
			}
		})
	}
}

// TestValueAndMap testet den String-Zugriff auf einzelne Felder
func TestValueAndMap(t *testing.T) {
	config := Default()

	tests := []struct {
		key, expected string
	}{
		{"enc_type", "conv_lc_blstm"},
		{"conv_channels", "32_32"},
		{"conv_kernel_sizes", "(3,3)_(3,3)"},
		{"lr", "0.001"},
		{"mbr_training", "false"},
		{"batch_size", "32"},
	}

	for _, tt := range tests {
		got, ok := config.Value(tt.key)
		if !ok {
			t.Fatalf("Value(%q) nicht gefunden", tt.key)
		}
		if got != tt.expected {
			t.Errorf("Value(%q) = %q, erwartet %q", tt.key, got, tt.expected)
		}
	}

	if _, ok := config.Value("bogus"); ok {
		t.Error("Value fuer unbekannten Schluessel gefunden")
	}

	m := config.Map()
	if len(m) != len(Keys()) {
		t.Errorf("Map hat %d Eintraege, erwartet %d", len(m), len(Keys()))
	}
}

// TestDiff testet den Feldvergleich zweier Konfigurationen
func TestDiff(t *testing.T) {
	a := Default()
	b := Default()

	if keys := Diff(a, b); len(keys) != 0 {
		t.Errorf("Diff identischer Configs = %v, erwartet leer", keys)
	}

	b.LR = 5e-4
	b.EncNUnits = 320

	keys := Diff(a, b)
	expected := []string{"enc_n_units", "lr"}
	if diff := cmp.Diff(expected, keys); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}
