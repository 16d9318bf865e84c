// values.go - Listen-Wertetypen in Unterstrich-Schreibweise
// Enthaelt: IntList, Shape, ShapeList samt Parse- und Marshal-Funktionen
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// IntList ist eine Liste von Ganzzahlen in Unterstrich-Schreibweise,
// z.B. "32_32" oder "1_2_2_1_1". Ein nacktes Skalar wie 32 wird als
// einelementige Liste gelesen, ein leerer String als leere Liste.
type IntList []int

// ParseIntList parst die Unterstrich-Schreibweise
func ParseIntList(s string) (IntList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, "_")
	list := make(IntList, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q in list %q", part, s)
		}

		list = append(list, n)
	}

	return list, nil
}

func (l IntList) String() string {
	parts := make([]string, len(l))
	for i, n := range l {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, "_")
}

// Product gibt das Produkt aller Elemente zurueck, 1 fuer leere Listen
func (l IntList) Product() int {
	p := 1
	for _, n := range l {
		p *= n
	}

	return p
}

func (l IntList) MarshalYAML() (any, error) {
	return l.String(), nil
}

func (l *IntList) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: expected underscore separated integers, got %s", value.Line, value.Tag)
	}

	list, err := ParseIntList(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	*l = list
	return nil
}

func (l IntList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *IntList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n int
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("expected underscore separated integers: %s", string(b))
		}

		*l = IntList{n}
		return nil
	}

	list, err := ParseIntList(s)
	if err != nil {
		return err
	}

	*l = list
	return nil
}

// Shape ist eine 2-D Ausdehnung entlang (Zeit, Frequenz), z.B. "(3,3)"
type Shape [2]int

// ParseShape parst die Klammer-Schreibweise "(zeit,frequenz)"
func ParseShape(s string) (Shape, error) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "(") || !strings.HasSuffix(t, ")") {
		return Shape{}, fmt.Errorf("invalid shape %q, expected \"(time,freq)\"", s)
	}

	first, second, ok := strings.Cut(t[1:len(t)-1], ",")
	if !ok {
		return Shape{}, fmt.Errorf("invalid shape %q, expected two comma separated integers", s)
	}

	a, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return Shape{}, fmt.Errorf("invalid shape %q: %w", s, err)
	}

	b, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return Shape{}, fmt.Errorf("invalid shape %q: %w", s, err)
	}

	return Shape{a, b}, nil
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d,%d)", s[0], s[1])
}

// Time gibt die Ausdehnung entlang der Zeitachse zurueck
func (s Shape) Time() int { return s[0] }

// Freq gibt die Ausdehnung entlang der Frequenzachse zurueck
func (s Shape) Freq() int { return s[1] }

// ShapeList ist eine Liste von 2-D Formen in Unterstrich-Schreibweise,
// z.B. "(3,3)_(3,3)".
type ShapeList []Shape

// ParseShapeList parst die Unterstrich-Schreibweise
func ParseShapeList(s string) (ShapeList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	// Unterstriche kommen innerhalb der Klammern nicht vor
	parts := strings.Split(s, "_")
	list := make(ShapeList, 0, len(parts))
	for _, part := range parts {
		shape, err := ParseShape(part)
		if err != nil {
			return nil, err
		}

		list = append(list, shape)
	}

	return list, nil
}

func (l ShapeList) String() string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}

	return strings.Join(parts, "_")
}

// TimeProduct gibt das Produkt der Zeitachsen-Ausdehnungen zurueck
func (l ShapeList) TimeProduct() int {
	p := 1
	for _, s := range l {
		if s.Time() > 1 {
			p *= s.Time()
		}
	}

	return p
}

func (l ShapeList) MarshalYAML() (any, error) {
	return l.String(), nil
}

func (l *ShapeList) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: expected underscore separated shapes, got %s", value.Line, value.Tag)
	}

	list, err := ParseShapeList(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	*l = list
	return nil
}

func (l ShapeList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *ShapeList) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected underscore separated shapes: %s", string(b))
	}

	list, err := ParseShapeList(s)
	if err != nil {
		return err
	}

	*l = list
	return nil
}
