// Package recipe - Rezept-Parser für Resona
// Modul resolve: Auflösung eines Rezepts zur effektiven Konfiguration
package recipe

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/resona-asr/resona/config"
)

// Resolved ist das Ergebnis einer aufgelösten Rezeptdatei: die effektive
// Konfiguration samt Metadaten. Semantisch geprüft wird sie erst vom
// Aufrufer über Config.Validate, damit alle Verstöße gesammelt gemeldet
// werden können.
type Resolved struct {
	Config   *config.Config
	From     string
	Corpus   string
	Requires string
	Notes    []string
}

// Resolve löst die Rezeptdatei auf: lädt die Basis-Konfiguration aus der
// FROM-Zeile (eine YAML-Datei relativ zu relativeDir, oder das Wort
// "default" für die eingebauten Defaults) und wendet die PARAMETER-Zeilen
// der Reihe nach an.
func (f Recipefile) Resolve(relativeDir string) (*Resolved, error) {
	resolved := &Resolved{Config: config.Default()}

	for _, c := range f.Commands {
		switch c.Name {
		case "base":
			resolved.From = c.Args
			if c.Args == "default" {
				continue
			}

			path, err := expandPath(c.Args, relativeDir)
			if err != nil {
				return nil, err
			}

			cfg, err := config.LoadFile(path)
			if err != nil {
				return nil, err
			}

			resolved.Config = cfg
		case "corpus":
			resolved.Corpus = c.Args
		case "requires":
			// golang.org/x/mod/semver requires "v" prefix
			requires := c.Args
			if !strings.HasPrefix(requires, "v") {
				requires = "v" + requires
			}
			if !semver.IsValid(requires) {
				return nil, fmt.Errorf("requires must be a valid semver (e.g. 0.3.0)")
			}
			resolved.Requires = strings.TrimPrefix(requires, "v")
		case "note":
			resolved.Notes = append(resolved.Notes, c.Args)
		default:
			if err := resolved.Config.Apply(map[string]string{c.Name: c.Args}); err != nil {
				return nil, err
			}
		}
	}

	return resolved, nil
}

func expandPathImpl(path, relativeDir string, currentUserFunc func() (*user.User, error), lookupUserFunc func(string) (*user.User, error)) (string, error) {
	if filepath.IsAbs(path) || strings.HasPrefix(path, "\\") || strings.HasPrefix(path, "/") {
		return filepath.Abs(path)
	} else if strings.HasPrefix(path, "~") {
		var homeDir string

		if path == "~" || strings.HasPrefix(path, "~/") {
			// Current user's home directory
			currentUser, err := currentUserFunc()
			if err != nil {
				return "", fmt.Errorf("failed to get current user: %w", err)
			}
			homeDir = currentUser.HomeDir
			path = strings.TrimPrefix(path, "~")
		} else {
			// Specific user's home directory
			parts := strings.SplitN(path[1:], "/", 2)
			userInfo, err := lookupUserFunc(parts[0])
			if err != nil {
				return "", fmt.Errorf("failed to find user '%s': %w", parts[0], err)
			}
			homeDir = userInfo.HomeDir
			if len(parts) > 1 {
				path = "/" + parts[1]
			} else {
				path = ""
			}
		}

		path = filepath.Join(homeDir, path)
	} else {
		path = filepath.Join(relativeDir, path)
	}

	return filepath.Abs(path)
}

func expandPath(path, relativeDir string) (string, error) {
	return expandPathImpl(path, relativeDir, user.Current, user.Lookup)
}
