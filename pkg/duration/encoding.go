package duration

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// unmarshalYAMLScalar passes the text of a scalar node to fn, adding the
// node position to errors.
func unmarshalYAMLScalar(node *yaml.Node, fn func([]byte) error) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	if err := fn([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// unmarshalCBORText decodes a CBOR text string and passes it to fn.
func unmarshalCBORText(data []byte, fn func([]byte) error) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a CBOR text string: %w", err)
	}
	return fn([]byte(s))
}
