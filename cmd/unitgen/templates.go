package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to the templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"upper": strings.ToUpper,
	"quoteList": func(ss []string) string {
		quoted := make([]string, len(ss))
		for i, s := range ss {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return strings.Join(quoted, ", ")
	},
	"stringSlice": func(ss []string) string {
		if len(ss) == 0 {
			return "nil"
		}
		quoted := make([]string, len(ss))
		for i, s := range ss {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[]string{" + strings.Join(quoted, ", ") + "}"
	},
}

// templates holds the parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(unitsTmpl))

// unitsData holds data for the units template.
type unitsData struct {
	Source  string
	Package string
	Units   []unitData
}

type unitData struct {
	Name    string
	Value   int
	Suffix  string
	Nanos   int64
	Aliases []string
	Doc     string
}

const unitsTmpl = `{{define "units" -}}
// Code generated by unitgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "time"

const (
{{- range .Units}}
	// {{.Doc}}
	{{.Name}} TimeUnit = {{.Value}}
{{- end}}
)

// all lists every unit, smallest scale first.
var all = [...]TimeUnit{
{{- range .Units}}
	{{.Name}},
{{- end}}
}

// String returns the unit name.
func (u TimeUnit) String() string {
	switch u {
{{- range .Units}}
	case {{.Name}}:
		return {{quote (upper .Name)}}
{{- end}}
	default:
		return "UNKNOWN"
	}
}

// Suffix returns the canonical suffix, or "" for an invalid unit.
func (u TimeUnit) Suffix() string {
	switch u {
{{- range .Units}}
	case {{.Name}}:
		return {{quote .Suffix}}
{{- end}}
	default:
		return ""
	}
}

// Scale returns the length of one unit, or 0 for an invalid unit.
func (u TimeUnit) Scale() time.Duration {
	switch u {
{{- range .Units}}
	case {{.Name}}:
		return {{.Nanos}}
{{- end}}
	default:
		return 0
	}
}

// Aliases returns the long names accepted by ParseName.
func (u TimeUnit) Aliases() []string {
	switch u {
{{- range .Units}}
	case {{.Name}}:
		return {{stringSlice .Aliases}}
{{- end}}
	default:
		return nil
	}
}

func fromSuffix(s string) (TimeUnit, bool) {
	switch s {
{{- range .Units}}
	case {{quote .Suffix}}:
		return {{.Name}}, true
{{- end}}
	default:
		return 0, false
	}
}

func fromAlias(s string) (TimeUnit, bool) {
	switch s {
{{- range .Units}}
{{- if .Aliases}}
	case {{quoteList .Aliases}}:
		return {{.Name}}, true
{{- end}}
{{- end}}
	default:
		return 0, false
	}
}
{{end}}`
