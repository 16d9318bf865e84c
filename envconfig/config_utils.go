// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - BoolWithDefault: Boolean-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"strconv"
)

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"RESONA_DEBUG":   {"RESONA_DEBUG", LogLevel(), "Show additional debug information (e.g. RESONA_DEBUG=1)"},
		"RESONA_HOME":    {"RESONA_HOME", Home(), "The path to the resona home directory (default \"$HOME/.resona\")"},
		"RESONA_HOST":    {"RESONA_HOST", Host(), "IP Address for the resona server (default 127.0.0.1:11843)"},
		"RESONA_ORIGINS": {"RESONA_ORIGINS", AllowedOrigins(), "A comma separated list of allowed origins"},
		"RESONA_STRICT":  {"RESONA_STRICT", Strict(true), "Reject unknown config keys when loading (default true)"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
