package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"

	"github.com/mash-protocol/durunit/pkg/wire"
)

// decodedItem is one top-level CBOR item in diagnostic notation.
type decodedItem struct {
	Offset int    `json:"offset" yaml:"offset" cbor:"1,keyasint"`
	Diag   string `json:"diag" yaml:"diag" cbor:"2,keyasint"`
}

func (d decodedItem) Text() string { return d.Diag }

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Print a CBOR stream in diagnostic notation",
		Long: `Decode reads CBOR items from file, or from standard input when no file
is given, and prints each item in diagnostic notation. It reads the
output of "-o cbor" as well as session journals.`,
		Example: `  durfmt units -o cbor | durfmt decode
  durfmt decode session.djl`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			items, err := decodeStream(in)
			if err != nil {
				return err
			}
			a.logger.Debug("decoded", "items", len(items))
			return emit(cmd.OutOrStdout(), a.cfg.Output, items)
		},
	}
}

// decodeStream reads CBOR items from r until EOF.
func decodeStream(r io.Reader) ([]decodedItem, error) {
	dec := wire.NewDecoder(r)
	items := make([]decodedItem, 0)
	for {
		offset := dec.NumBytesRead()
		var raw cbor.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return items, nil
			}
			return nil, fmt.Errorf("decode item at offset %d: %w", offset, err)
		}
		diag, err := wire.Diagnose(raw)
		if err != nil {
			return nil, fmt.Errorf("diagnose item at offset %d: %w", offset, err)
		}
		items = append(items, decodedItem{Offset: offset, Diag: diag})
	}
}
