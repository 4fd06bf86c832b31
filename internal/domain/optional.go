package domain

import (
	"bytes"
	"encoding/json"
)

// Optional carries a nullable field of a partial update. encoding/json only
// calls UnmarshalJSON for keys that appear in the payload, so the zero value
// means "key absent"; a present key with null yields Present with a nil
// Value, which callers apply as clearing the field.
type Optional[T any] struct {
	Present bool
	Value   *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

// Set builds a present Optional holding v, the literal-value counterpart of
// what UnmarshalJSON produces.
func Set[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: &v}
}

// Null builds a present Optional holding null, i.e. an explicit clear.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}
