package projectlists

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingField is returned by unmarshalling JSON when a required property is absent or null.
var ErrMissingField = errors.New("missing required field")

// ID references an entity by its server-assigned identifier. On the wire it is an object, {"id": "..."}, as found
// in the lists property of a project.
type ID struct {
	ID string `json:"id"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	var decoded ID
	if err := decodeFields(b, fields{"id": &decoded.ID}, nil); err != nil {
		return err
	}
	*id = decoded
	return nil
}

// fields maps property names to where their values are decoded.
type fields map[string]interface{}

// decodeFields decodes the JSON object in b property by property. Names must match exactly; encoding/json would
// also accept them with different case. Required properties must be present with a non-null value, optional ones
// may be absent or null. Any other property is ignored.
func decodeFields(b []byte, required fields, optional fields) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for name := range required {
		v, ok := raw[name]
		if !ok || string(v) == "null" {
			return fmt.Errorf("%q: %w", name, ErrMissingField)
		}
	}
	for _, props := range []fields{required, optional} {
		for name, target := range props {
			v, ok := raw[name]
			if !ok {
				continue
			}
			if err := json.Unmarshal(v, target); err != nil {
				return fmt.Errorf("%q: %w", name, err)
			}
		}
	}
	return nil
}
