package objmod

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/objmod/object"
)

// Decode reads a YAML or JSON document, see object.Decode.
func Decode(data []byte) (any, error) {
	return object.Decode(data)
}

// Encode writes v as YAML, or JSON if asJSON is set.
func Encode(v any, asJSON bool) ([]byte, error) {
	return object.Encode(v, asJSON)
}

// MergePatch returns the JSON merge patch (RFC 7386) taking before to after.
func MergePatch(before, after any) ([]byte, error) {
	from, err := object.Encode(before, true)
	if err != nil {
		return nil, err
	}
	to, err := object.Encode(after, true)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(from, to)
	if err != nil {
		return nil, fmt.Errorf("error creating merge patch: %w", err)
	}
	return res, nil
}
