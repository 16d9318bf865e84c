// resolve_test.go - Unit Tests für die Rezept-Auflösung
//
// Testet Resolve gegen Basis-Konfigurationen, Overrides und Metadaten.
package recipe

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"testing"

	"github.com/resona-asr/resona/config"
)

func parse(t *testing.T, input string) *Recipefile {
	t.Helper()

	f, err := ParseFile(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}
	return f
}

// TestResolveDefault testet FROM default mit Overrides
func TestResolveDefault(t *testing.T) {
	f := parse(t, `FROM default
CORPUS csj
REQUIRES 0.3.0
PARAMETER lr 5e-4
PARAMETER enc_n_units 640
NOTE "half the rate"
`)

	resolved, err := f.Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.From != "default" {
		t.Errorf("From = %q, erwartet default", resolved.From)
	}
	if resolved.Corpus != "csj" {
		t.Errorf("Corpus = %q, erwartet csj", resolved.Corpus)
	}
	if resolved.Requires != "0.3.0" {
		t.Errorf("Requires = %q, erwartet 0.3.0", resolved.Requires)
	}
	if len(resolved.Notes) != 1 || resolved.Notes[0] != "half the rate" {
		t.Errorf("Notes = %v, erwartet eine Notiz", resolved.Notes)
	}

	if resolved.Config.LR != 5e-4 {
		t.Errorf("lr = %v, erwartet 5e-4", resolved.Config.LR)
	}
	if resolved.Config.EncNUnits != 640 {
		t.Errorf("enc_n_units = %d, erwartet 640", resolved.Config.EncNUnits)
	}

	// Nicht überschriebene Felder behalten die Defaults
	if resolved.Config.AttnType != config.Default().AttnType {
		t.Errorf("attn_type = %q, erwartet Default", resolved.Config.AttnType)
	}
}

// TestResolveBaseFile testet das Laden einer Basis-Konfiguration
func TestResolveBaseFile(t *testing.T) {
	dir := t.TempDir()

	base := config.Default()
	base.BatchSize = 64
	if err := base.SaveFile(filepath.Join(dir, "base.yaml")); err != nil {
		t.Fatal(err)
	}

	f := parse(t, "FROM base.yaml\nPARAMETER lr 2e-3\n")

	resolved, err := f.Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.Config.BatchSize != 64 {
		t.Errorf("batch_size = %d, erwartet 64 aus der Basis", resolved.Config.BatchSize)
	}
	if resolved.Config.LR != 2e-3 {
		t.Errorf("lr = %v, erwartet Override 2e-3", resolved.Config.LR)
	}
}

// TestResolveMissingBase testet eine fehlende Basis-Datei
func TestResolveMissingBase(t *testing.T) {
	f := parse(t, "FROM missing.yaml\n")

	if _, err := f.Resolve(t.TempDir()); !os.IsNotExist(err) {
		t.Errorf("Erwartete os.ErrNotExist, bekam %v", err)
	}
}

// TestResolveUnknownParameter testet unbekannte PARAMETER-Schlüssel
func TestResolveUnknownParameter(t *testing.T) {
	f := parse(t, "FROM default\nPARAMETER ctc_wieght 0.2\n")

	_, err := f.Resolve(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "ctc_weight") {
		t.Errorf("Erwartete Korrekturvorschlag ctc_weight, bekam %v", err)
	}
}

// TestResolveBadRequires testet ungültige Versionsangaben
func TestResolveBadRequires(t *testing.T) {
	f := parse(t, "FROM default\nREQUIRES not-a-version\n")

	_, err := f.Resolve(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "semver") {
		t.Errorf("Erwartete semver-Fehler, bekam %v", err)
	}
}

// TestExpandPath testet die Pfad-Expansion
func TestExpandPath(t *testing.T) {
	mockCurrentUser := func() (*user.User, error) {
		return &user.User{Username: "testuser", HomeDir: "/home/testuser"}, nil
	}
	mockLookupUser := func(username string) (*user.User, error) {
		if username == "testuser2" {
			return &user.User{Username: username, HomeDir: "/home/testuser2"}, nil
		}
		return nil, user.UnknownUserError(username)
	}

	tests := []struct {
		path        string
		relativeDir string
		want        string
	}{
		{"~/conf/base.yaml", "", "/home/testuser/conf/base.yaml"},
		{"~testuser2/base.yaml", "", "/home/testuser2/base.yaml"},
		{"/abs/base.yaml", "ignored", "/abs/base.yaml"},
		{"conf/base.yaml", "/work", "/work/conf/base.yaml"},
	}

	for _, tt := range tests {
		got, err := expandPathImpl(tt.path, tt.relativeDir, mockCurrentUser, mockLookupUser)
		if err != nil {
			t.Errorf("expandPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("expandPath(%q) = %q, erwartet %q", tt.path, got, tt.want)
		}
	}

	if _, err := expandPathImpl("~missing/x", "", mockCurrentUser, mockLookupUser); err == nil {
		t.Error("Erwartete Fehler für unbekannten Benutzer")
	}
}
