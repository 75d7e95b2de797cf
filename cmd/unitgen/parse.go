package main

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// RawUnitsDef is the top level of units.yaml.
type RawUnitsDef struct {
	Units []RawUnitDef `yaml:"units"`
}

// RawUnitDef describes one time unit.
type RawUnitDef struct {
	Name        string   `yaml:"name"`   // Go constant name, e.g. "Second"
	Suffix      string   `yaml:"suffix"` // canonical suffix, e.g. "s"
	Nanos       int64    `yaml:"nanos"`  // scale in nanoseconds
	Aliases     []string `yaml:"aliases"`
	Description string   `yaml:"description"`
}

var (
	goNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	suffixPattern = regexp.MustCompile(`^[a-z]+$`)
)

// LoadUnits reads and validates a units YAML file.
func LoadUnits(path string) (*RawUnitsDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseUnits(data)
}

// ParseUnits decodes and validates units YAML.
func ParseUnits(data []byte) (*RawUnitsDef, error) {
	var def RawUnitsDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing units: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the invariants the duration codec relies on: the first
// unit has scale 1, scales strictly increase, and each scale divides the
// next one. Names, suffixes and aliases must be unique.
func (d *RawUnitsDef) Validate() error {
	if len(d.Units) == 0 {
		return fmt.Errorf("no units defined")
	}
	if len(d.Units) > 255 {
		return fmt.Errorf("too many units: %d (max 255)", len(d.Units))
	}

	names := make(map[string]bool)
	words := make(map[string]string) // suffix or alias -> unit name

	for i, u := range d.Units {
		if !goNamePattern.MatchString(u.Name) {
			return fmt.Errorf("unit %d: invalid name %q", i, u.Name)
		}
		if names[u.Name] {
			return fmt.Errorf("unit %s: duplicate name", u.Name)
		}
		names[u.Name] = true

		if !suffixPattern.MatchString(u.Suffix) {
			return fmt.Errorf("unit %s: invalid suffix %q", u.Name, u.Suffix)
		}
		if u.Nanos <= 0 {
			return fmt.Errorf("unit %s: scale must be positive, got %d", u.Name, u.Nanos)
		}

		if i == 0 {
			if u.Nanos != 1 {
				return fmt.Errorf("unit %s: smallest unit must have scale 1, got %d", u.Name, u.Nanos)
			}
		} else {
			prev := d.Units[i-1]
			if u.Nanos <= prev.Nanos {
				return fmt.Errorf("unit %s: scale %d not above %s scale %d", u.Name, u.Nanos, prev.Name, prev.Nanos)
			}
			if u.Nanos%prev.Nanos != 0 {
				return fmt.Errorf("unit %s: scale %d not a multiple of %s scale %d", u.Name, u.Nanos, prev.Name, prev.Nanos)
			}
		}

		for _, w := range append([]string{u.Suffix}, u.Aliases...) {
			if w == "" {
				return fmt.Errorf("unit %s: empty alias", u.Name)
			}
			if owner, dup := words[w]; dup {
				return fmt.Errorf("unit %s: %q already used by %s", u.Name, w, owner)
			}
			words[w] = u.Name
		}
	}
	return nil
}
