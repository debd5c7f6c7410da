package messages

import (
	"fmt"
	"strings"
)

// ValidationError aggregates every structural problem found while parsing a
// single wire message. A parse reports all of its errors together instead of
// stopping at the first one.
type ValidationError struct {
	Name   string
	Errors []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Name, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

func errInvalidShape(msg string) error {
	return fmt.Errorf("invalid message shape: %s", msg)
}

func errField(index int, msg string) error {
	return fmt.Errorf("field %d: %s", index, msg)
}

// asInt accepts any numeric representation a decoded serializer might hand
// back (json.Number-free decoders use float64; CBOR/msgpack may hand back
// int64 or uint64) and normalizes it to an int.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	i, ok := asInt(v)
	if !ok {
		return 0, false
	}
	return int64(i), true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// checkLength validates that raw has between min and max elements inclusive,
// returning a single aggregated ValidationError if not.
func checkLength(name string, raw []any, min, max int) error {
	if len(raw) < min || len(raw) > max {
		return &ValidationError{
			Name: name,
			Errors: []error{fmt.Errorf(
				"expected between %d and %d elements, got %d", min, max, len(raw),
			)},
		}
	}
	return nil
}

// validID checks that a parsed identifier lies in the WAMP id range
// (1 .. 2^53), returning a descriptive error when it does not.
func validID(index int, field string, v any) (int64, error) {
	id, ok := asInt64(v)
	if !ok {
		return 0, errField(index, field+" must be an integer")
	}
	if id < 1 || id > idMax {
		return 0, errField(index, fmt.Sprintf("%s must be between 1 and 2^53", field))
	}
	return id, nil
}

const idMax = int64(1) << 53

func validURI(index int, field string, v any) (string, error) {
	s, ok := asString(v)
	if !ok {
		return "", errField(index, field+" must be a string")
	}
	if s == "" {
		return "", errField(index, field+" must not be empty")
	}
	return s, nil
}

func validOptionalMap(index int, field string, v any) (map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, errField(index, field+" must be a dictionary")
	}
	return m, nil
}

func validMap(index int, field string, v any) (map[string]any, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, errField(index, field+" must be a dictionary")
	}
	return m, nil
}

func validOptionalSlice(index int, field string, v any) ([]any, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := asSlice(v)
	if !ok {
		return nil, errField(index, field+" must be a list")
	}
	return s, nil
}

func validString(index int, field string, v any) (string, error) {
	s, ok := asString(v)
	if !ok {
		return "", errField(index, field+" must be a string")
	}
	return s, nil
}

func validOptionalString(index int, field string, v any) (string, error) {
	if v == nil {
		return "", nil
	}
	return validString(index, field, v)
}

func validAuthMethods(index int, v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := asSlice(v)
	if !ok {
		return nil, errField(index, "authmethods must be a list")
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := asString(item)
		if !ok {
			return nil, errField(index, "authmethods must contain only strings")
		}
		out = append(out, s)
	}
	return out, nil
}

// validRoles checks the details/welcome "roles" sub-dictionary is present
// and non-empty, as required by every Hello/Welcome message.
func validRoles(index int, v any) (map[string]any, error) {
	if v == nil {
		return nil, errField(index, "roles is required")
	}
	m, ok := asMap(v)
	if !ok {
		return nil, errField(index, "roles must be a dictionary")
	}
	if len(m) == 0 {
		return nil, errField(index, "roles must not be empty")
	}
	return m, nil
}

// elem returns raw[i] or nil if raw is too short; used for optional trailing
// positional fields.
func elem(raw []any, i int) any {
	if i < 0 || i >= len(raw) {
		return nil
	}
	return raw[i]
}
