// load.go - Laden, Speichern und Overrides von Konfigurationen
// Enthaelt: Load, LoadFile, Save, SaveFile, Apply, Schluessel-Registry
package config

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// KeyError meldet einen Schluessel ausserhalb des Schemas
type KeyError struct {
	Key        string
	Suggestion string
}

func (e *KeyError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown config key %q, did you mean %q?", e.Key, e.Suggestion)
	}
	return fmt.Sprintf("unknown config key %q", e.Key)
}

// fieldIndex bildet YAML-Schluessel auf die Felder der Config-Struktur ab
var fieldIndex = func() map[string]reflect.StructField {
	index := make(map[string]reflect.StructField)
	for _, field := range reflect.VisibleFields(reflect.TypeOf(Config{})) {
		tag := strings.Split(field.Tag.Get("yaml"), ",")[0]
		if tag != "" {
			index[tag] = field
		}
	}
	return index
}()

// Keys gibt alle Schema-Schluessel in Schema-Reihenfolge zurueck
func Keys() []string {
	fields := reflect.VisibleFields(reflect.TypeOf(Config{}))
	keys := make([]string, 0, len(fields))
	for _, field := range fields {
		tag := strings.Split(field.Tag.Get("yaml"), ",")[0]
		if tag != "" {
			keys = append(keys, tag)
		}
	}
	return keys
}

// Suggest gibt den aehnlichsten Schema-Schluessel zurueck, oder "" wenn
// kein Schluessel nahe genug liegt
func Suggest(key string) string {
	var nearest string
	score := math.MaxInt
	for candidate := range fieldIndex {
		if s := levenshtein.ComputeDistance(key, candidate); s < score {
			score = s
			nearest = candidate
		}
	}

	if score <= len(key)/2+1 {
		return nearest
	}

	return ""
}

type loadOptions struct {
	lenient bool
}

// LoadOption konfiguriert Load und LoadFile
type LoadOption func(*loadOptions)

// WithLenient degradiert unbekannte Schluessel zu Warnungen statt Fehlern
func WithLenient() LoadOption {
	return func(o *loadOptions) {
		o.lenient = true
	}
}

// Load liest eine YAML-Konfiguration ueber den Defaults ein. Unbekannte
// Schluessel sind Fehler und tragen einen Korrekturvorschlag.
func Load(r io.Reader, opts ...LoadOption) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for key := range raw {
		if _, ok := fieldIndex[key]; ok {
			continue
		}

		if o.lenient {
			slog.Warn("unknown config key", "key", key)
			continue
		}

		return nil, &KeyError{Key: key, Suggestion: Suggest(key)}
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return config, nil
}

// LoadFile liest eine YAML-Konfiguration aus einer Datei
func LoadFile(path string, opts ...LoadOption) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	config, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Save schreibt die Konfiguration als YAML in Schema-Reihenfolge
func (c *Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}

	return enc.Close()
}

// SaveFile schreibt die Konfiguration als YAML-Datei
func (c *Config) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := c.Save(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Apply setzt String-Overrides (z.B. aus PARAMETER-Zeilen oder --set Flags)
// auf die Konfiguration
func (c *Config) Apply(params map[string]string) error {
	value := reflect.ValueOf(c).Elem()

	for key, raw := range params {
		fieldDef, ok := fieldIndex[key]
		if !ok {
			return &KeyError{Key: key, Suggestion: Suggest(key)}
		}

		field := value.FieldByIndex(fieldDef.Index)
		switch field.Interface().(type) {
		case IntList:
			list, err := ParseIntList(raw)
			if err != nil {
				return fmt.Errorf("parameter %q: %w", key, err)
			}
			field.Set(reflect.ValueOf(list))
		case ShapeList:
			list, err := ParseShapeList(raw)
			if err != nil {
				return fmt.Errorf("parameter %q: %w", key, err)
			}
			field.Set(reflect.ValueOf(list))
		default:
			switch field.Kind() {
			case reflect.Int:
				n, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("parameter %q must be an integer", key)
				}
				field.SetInt(int64(n))
			case reflect.Float64:
				f, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("parameter %q must be a number", key)
				}
				field.SetFloat(f)
			case reflect.Bool:
				b, err := strconv.ParseBool(raw)
				if err != nil {
					return fmt.Errorf("parameter %q must be a boolean", key)
				}
				field.SetBool(b)
			case reflect.String:
				field.SetString(raw)
			default:
				return fmt.Errorf("unknown type applying config params: %v", field.Kind())
			}
		}
	}

	return nil
}

// Value gibt den Wert eines Schluessels als String zurueck
func (c *Config) Value(key string) (string, bool) {
	fieldDef, ok := fieldIndex[key]
	if !ok {
		return "", false
	}

	field := reflect.ValueOf(c).Elem().FieldByIndex(fieldDef.Index)
	switch v := field.Interface().(type) {
	case IntList:
		return v.String(), true
	case ShapeList:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// Map gibt alle Schluessel und Werte als String-Map zurueck
func (c *Config) Map() map[string]string {
	m := make(map[string]string, len(fieldIndex))
	for key := range fieldIndex {
		if v, ok := c.Value(key); ok {
			m[key] = v
		}
	}
	return m
}

// Diff gibt die Schluessel in Schema-Reihenfolge zurueck, deren Werte
// sich zwischen beiden Konfigurationen unterscheiden
func Diff(a, b *Config) []string {
	var keys []string
	for _, key := range Keys() {
		av, _ := a.Value(key)
		bv, _ := b.Value(key)
		if av != bv {
			keys = append(keys, key)
		}
	}
	return keys
}
