package duration

import (
	"time"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that serializes as a unit-minimal duration
// string. Use it for struct fields:
//
//	type Config struct {
//	    Timeout duration.Duration `json:"timeout" yaml:"timeout" cbor:"1,keyasint"`
//	}
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the duration string, e.g. "1500us".
func (d Duration) String() string {
	return Encode(time.Duration(d))
}

// MarshalText implements encoding.TextMarshaler. JSON encoding uses it too.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(Encode(time.Duration(d))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Decode(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return Encode(time.Duration(d)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAMLScalar(node, d.UnmarshalText)
}

// MarshalCBOR encodes d as a CBOR text string.
func (d Duration) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(Encode(time.Duration(d)))
}

// UnmarshalCBOR decodes a CBOR text string.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	return unmarshalCBORText(data, d.UnmarshalText)
}
