// config_test.go - Unit Tests fuer die Environment-Konfiguration
//
// Testet Host-Parsing, Log-Level und die Strict-Schaltung.
package envconfig

import (
	"log/slog"
	"testing"
)

// TestHost testet das Parsing von RESONA_HOST
func TestHost(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"Default", "", "http://127.0.0.1:11843"},
		{"Nur Host", "example.com", "http://example.com:11843"},
		{"Host und Port", "example.com:1234", "http://example.com:1234"},
		{"HTTP Scheme", "http://example.com", "http://example.com:80"},
		{"HTTPS Scheme", "https://example.com", "https://example.com:443"},
		{"IPv6", "[::1]:1234", "http://[::1]:1234"},
		{"Ungueltiger Port", "example.com:zz", "http://example.com:11843"},
		{"Quotes", "\"example.com:1234\"", "http://example.com:1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RESONA_HOST", tt.value)

			if got := Host().String(); got != tt.want {
				t.Errorf("Host = %q, erwartet %q", got, tt.want)
			}
		})
	}
}

// TestLogLevel testet das Mapping von RESONA_DEBUG auf slog-Level
func TestLogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"false", slog.LevelInfo},
		{"1", slog.LevelDebug},
		{"true", slog.LevelDebug},
		{"2", slog.Level(-8)},
	}

	for _, tt := range tests {
		t.Run("RESONA_DEBUG="+tt.value, func(t *testing.T) {
			t.Setenv("RESONA_DEBUG", tt.value)

			if got := LogLevel(); got != tt.want {
				t.Errorf("LogLevel = %v, erwartet %v", got, tt.want)
			}
		})
	}
}

// TestStrict testet die Strict-Schaltung mit Default
func TestStrict(t *testing.T) {
	t.Setenv("RESONA_STRICT", "")
	if !Strict(true) {
		t.Error("Strict(true) = false, erwartet Default true")
	}
	if Strict(false) {
		t.Error("Strict(false) = true, erwartet Default false")
	}

	t.Setenv("RESONA_STRICT", "false")
	if Strict(true) {
		t.Error("Strict(true) = true, erwartet false aus der Umgebung")
	}
}

// TestHome testet die Aufloesung des Resona-Verzeichnisses
func TestHome(t *testing.T) {
	t.Setenv("RESONA_HOME", "/srv/resona")
	if got := Home(); got != "/srv/resona" {
		t.Errorf("Home = %q, erwartet /srv/resona", got)
	}
}

// TestAllowedOrigins testet die Origin-Liste
func TestAllowedOrigins(t *testing.T) {
	t.Setenv("RESONA_ORIGINS", "https://lab.example.com")

	origins := AllowedOrigins()
	if origins[0] != "https://lab.example.com" {
		t.Errorf("origins[0] = %q, erwartet die konfigurierte Origin", origins[0])
	}

	found := false
	for _, origin := range origins {
		if origin == "http://localhost" {
			found = true
		}
	}
	if !found {
		t.Error("Standard-Origin http://localhost fehlt")
	}
}

// TestVar testet das Trimmen von Quotes und Leerzeichen
func TestVar(t *testing.T) {
	t.Setenv("RESONA_TEST_VAR", "  'value'  ")
	if got := Var("RESONA_TEST_VAR"); got != "value" {
		t.Errorf("Var = %q, erwartet value", got)
	}
}
