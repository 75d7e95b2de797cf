package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mash-protocol/durunit/internal/config"
	"github.com/mash-protocol/durunit/pkg/wire"
)

// texter is a result with a one-line text rendering.
type texter interface {
	Text() string
}

// emit writes results to w in format. Text prints one line per result;
// the structured formats encode the whole slice.
func emit[T texter](w io.Writer, format string, results []T) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)

	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		return enc.Close()

	case config.OutputCBOR:
		if err := wire.NewEncoder(w).Encode(results); err != nil {
			return fmt.Errorf("marshal cbor: %w", err)
		}
		return nil

	case config.OutputDiag:
		data, err := wire.Marshal(results)
		if err != nil {
			return fmt.Errorf("marshal cbor: %w", err)
		}
		diag, err := wire.Diagnose(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, diag)
		return err

	default:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Text()); err != nil {
				return err
			}
		}
		return nil
	}
}
