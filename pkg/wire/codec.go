package wire

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/mash-protocol/durunit/pkg/duration"
)

// encMode is the CBOR encoder mode for documents.
// Configured for deterministic output.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for documents.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder that reads a sequence of items from
// r, such as durfmt output or a session journal.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// EncodeDuration encodes d as a CBOR text string.
func EncodeDuration(d time.Duration) ([]byte, error) {
	return Marshal(duration.Duration(d))
}

// DecodeDuration decodes a CBOR text string holding a duration string.
func DecodeDuration(data []byte) (time.Duration, error) {
	var d duration.Duration
	if err := Unmarshal(data, &d); err != nil {
		return 0, fmt.Errorf("failed to decode duration: %w", err)
	}
	return d.Std(), nil
}

// Diagnose returns the CBOR diagnostic notation of data, e.g.
// {1: "90s"}.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
