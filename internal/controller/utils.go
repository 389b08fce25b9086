package controller

import (
	"encoding/json"
)

func marshalNilToEmptySlice[T any](in []T) ([]byte, error) {
	if in == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(in)
}
