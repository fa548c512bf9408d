package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidElement is matched by every InvalidElementError via errors.Is.
var ErrInvalidElement = errors.New("invalid element")

// InvalidElementError identifies an element whose attributes have the wrong
// JSON type. Index is -1 when the element was decoded on its own.
type InvalidElementError struct {
	Index int
	ID    string
	Field string
	Err   error
}

func (e *InvalidElementError) Error() string {
	id := e.ID
	if id == "" {
		id = "<no id>"
	}
	if e.Index >= 0 {
		return fmt.Sprintf("invalid element #%d (%s): field %q: %v", e.Index, id, e.Field, e.Err)
	}
	return fmt.Sprintf("invalid element (%s): field %q: %v", id, e.Field, e.Err)
}

func (e *InvalidElementError) Unwrap() error { return e.Err }

func (e *InvalidElementError) Is(target error) bool { return target == ErrInvalidElement }

var null = []byte("null")

// UnmarshalJSON applies the snapshot defaults for missing attributes and
// fails fast when a known attribute carries the wrong JSON type. Unknown
// attributes are ignored.
func (e *Element) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return &InvalidElementError{Index: -1, Field: "", Err: err}
	}
	var out Element

	// id first so later failures can name the element
	if v, ok := raw["id"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &out.ID); err != nil {
			return &InvalidElementError{Index: -1, Field: "id", Err: err}
		}
	}
	fail := func(field string, err error) error {
		return &InvalidElementError{Index: -1, ID: out.ID, Field: field, Err: err}
	}

	if v, ok := raw["type"]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &out.Type); err != nil {
			return fail("type", err)
		}
	}
	nums := []struct {
		key string
		dst *float64
	}{
		{"x", &out.X}, {"y", &out.Y}, {"width", &out.Width}, {"height", &out.Height},
	}
	for _, n := range nums {
		v, ok := raw[n.key]
		if !ok || isNull(v) {
			continue
		}
		if err := json.Unmarshal(v, n.dst); err != nil {
			return fail(n.key, err)
		}
	}
	if v, ok := raw["fontSize"]; ok && !isNull(v) {
		var fs float64
		if err := json.Unmarshal(v, &fs); err != nil {
			return fail("fontSize", err)
		}
		out.FontSize = &fs
	}

	// editor bookkeeping, not an analyzed attribute: anything but a bool is ignored
	if v, ok := raw["isDeleted"]; ok {
		var del bool
		if json.Unmarshal(v, &del) == nil {
			out.IsDeleted = del
		}
	}

	var err error
	if out.StartBinding, err = decodeBinding(raw["startBinding"]); err != nil {
		return fail("startBinding", err)
	}
	if out.EndBinding, err = decodeBinding(raw["endBinding"]); err != nil {
		return fail("endBinding", err)
	}

	*e = out
	return nil
}

// decodeBinding treats null and {} as an absent binding.
func decodeBinding(v json.RawMessage) (*Binding, error) {
	if len(v) == 0 || isNull(v) {
		return nil, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(v, &fields); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	var bnd Binding
	if id, ok := fields["elementId"]; ok && !isNull(id) {
		if err := json.Unmarshal(id, &bnd.ElementID); err != nil {
			return nil, err
		}
	}
	return &bnd, nil
}

// UnmarshalJSON decodes the elements one by one so an InvalidElementError
// carries the element's position in the snapshot.
func (s *Scene) UnmarshalJSON(b []byte) error {
	var raw struct {
		Elements []json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	elems := make([]Element, len(raw.Elements))
	for i, r := range raw.Elements {
		if err := json.Unmarshal(r, &elems[i]); err != nil {
			var ie *InvalidElementError
			if errors.As(err, &ie) {
				ie.Index = i
				return ie
			}
			return &InvalidElementError{Index: i, Err: err}
		}
	}
	s.Elements = elems
	return nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), null)
}
