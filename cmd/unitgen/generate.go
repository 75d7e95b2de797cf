package main

import (
	"fmt"
	"strings"
)

// GenerateUnits renders the unit table for def. source names the YAML file
// in the generated header.
func GenerateUnits(def *RawUnitsDef, source, pkg string) (string, error) {
	data := unitsData{Source: source, Package: pkg}
	for i, u := range def.Units {
		data.Units = append(data.Units, unitData{
			Name:    u.Name,
			Value:   i + 1,
			Suffix:  u.Suffix,
			Nanos:   u.Nanos,
			Aliases: u.Aliases,
			Doc:     unitDoc(u),
		})
	}

	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, "units", data); err != nil {
		return "", fmt.Errorf("template units: %w", err)
	}
	return b.String(), nil
}

// unitDoc returns the doc comment text for a unit constant.
func unitDoc(u RawUnitDef) string {
	if u.Description != "" {
		return u.Name + " is " + firstLower(strings.TrimSpace(u.Description))
	}
	return fmt.Sprintf("%s has suffix %q and scale %dns.", u.Name, u.Suffix, u.Nanos)
}

func firstLower(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
