// Command unitgen generates the time unit table from units.yaml.
//
// Usage:
//
//	unitgen -input units.yaml -output timeunit_gen.go [-package timeunit]
//
// It is normally run through go generate in pkg/timeunit.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	input := flag.String("input", "", "Path to the units YAML file")
	output := flag.String("output", "", "Path of the generated Go file")
	pkg := flag.String("package", "timeunit", "Package name of the generated file")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: unitgen -input <units.yaml> -output <file.go> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*input, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output, pkg string) error {
	def, err := LoadUnits(input)
	if err != nil {
		return fmt.Errorf("loading units: %w", err)
	}

	code, err := GenerateUnits(def, filepath.Base(input), pkg)
	if err != nil {
		return fmt.Errorf("generating units: %w", err)
	}

	if err := writeFormatted(output, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(output), err)
	}
	fmt.Printf("  generated %s\n", output)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
