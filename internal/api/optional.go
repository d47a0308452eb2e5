package api

import (
	"bytes"
	"encoding/json"
)

// OptionalField is a JSON field that records whether it was present in the
// request body and whether it was an explicit null.
type OptionalField[T any] struct {
	Value   T
	Present bool
	Null    bool
}

// UnmarshalJSON implements json.Unmarshaler. It is only called when the key
// is present in the object.
func (o *OptionalField[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// HasValue reports whether the field was present with a non-null value.
func (o OptionalField[T]) HasValue() bool {
	return o.Present && !o.Null
}
