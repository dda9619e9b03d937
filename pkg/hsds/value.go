package hsds

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeValue coerces a decoded JSON value tree (as returned inside
// ValueResponse or Attribute.Value) into dest, which should be a
// pointer to a slice or scalar of the wanted type. JSON numbers
// arrive as float64; weak decoding converts them to integer types
// where the caller asks for them.
func DecodeValue(value interface{}, dest interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dest,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("hsds: building value decoder: %w", err)
	}
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("hsds: decoding value: %w", err)
	}
	return nil
}
