package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestElementDefaults(t *testing.T) {
	t.Parallel()

	var e Element
	if err := json.Unmarshal([]byte(`{"type":"text","id":"t1","extra":[1,2]}`), &e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.X != 0 || e.Y != 0 || e.Width != 0 || e.Height != 0 {
		t.Errorf("geometry should default to 0, got %+v", e)
	}
	if e.FontSize != nil {
		t.Errorf("fontSize should be nil when absent, got %v", *e.FontSize)
	}
	if e.StartBinding != nil || e.EndBinding != nil {
		t.Error("bindings should be nil when absent")
	}
}

func TestElementBindings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		wantStart bool
		wantEnd   bool
	}{
		{"both", `{"type":"arrow","startBinding":{"elementId":"a"},"endBinding":{"elementId":"b"}}`, true, true},
		{"null start", `{"type":"arrow","startBinding":null,"endBinding":{"elementId":"b"}}`, false, true},
		{"empty object", `{"type":"arrow","startBinding":{},"endBinding":{"elementId":"b","focus":0.1}}`, false, true},
		{"missing", `{"type":"arrow"}`, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var e Element
			if err := json.Unmarshal([]byte(tt.in), &e); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (e.StartBinding != nil) != tt.wantStart {
				t.Errorf("start binding present = %v, want %v", e.StartBinding != nil, tt.wantStart)
			}
			if (e.EndBinding != nil) != tt.wantEnd {
				t.Errorf("end binding present = %v, want %v", e.EndBinding != nil, tt.wantEnd)
			}
		})
	}
}

func TestElementInvalidField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		field string
	}{
		{"string x", `{"id":"r1","type":"rectangle","x":"100"}`, "x"},
		{"bool width", `{"id":"r1","type":"rectangle","width":true}`, "width"},
		{"string fontSize", `{"id":"r1","type":"text","fontSize":"big"}`, "fontSize"},
		{"numeric type", `{"id":"r1","type":7}`, "type"},
		{"scalar binding", `{"id":"r1","type":"arrow","endBinding":"r2"}`, "endBinding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var e Element
			err := json.Unmarshal([]byte(tt.in), &e)
			var ie *InvalidElementError
			if !errors.As(err, &ie) {
				t.Fatalf("expected InvalidElementError, got %v", err)
			}
			if ie.Field != tt.field {
				t.Errorf("field = %q, want %q", ie.Field, tt.field)
			}
			if ie.ID != "r1" {
				t.Errorf("id = %q, want r1", ie.ID)
			}
			if !errors.Is(err, ErrInvalidElement) {
				t.Error("errors.Is(err, ErrInvalidElement) should hold")
			}
		})
	}
}

func TestElementDeletedFlag(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		`{"id":"a","isDeleted":true}`:  true,
		`{"id":"a","isDeleted":false}`: false,
		`{"id":"a","isDeleted":"no"}`:  false,
		`{"id":"a","isDeleted":1}`:     false,
		`{"id":"a","isDeleted":null}`:  false,
	}
	for in, want := range tests {
		var e Element
		if err := json.Unmarshal([]byte(in), &e); err != nil {
			t.Errorf("%s: unexpected error: %v", in, err)
			continue
		}
		if e.IsDeleted != want {
			t.Errorf("%s: IsDeleted = %v, want %v", in, e.IsDeleted, want)
		}
	}
}

func TestSceneInvalidElementIndex(t *testing.T) {
	t.Parallel()

	in := `{"elements":[{"id":"ok","type":"rectangle"},{"id":"bad","type":"rectangle","height":"tall"}]}`
	var s Scene
	err := json.Unmarshal([]byte(in), &s)
	var ie *InvalidElementError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidElementError, got %v", err)
	}
	if ie.Index != 1 || ie.ID != "bad" || ie.Field != "height" {
		t.Errorf("got index=%d id=%q field=%q", ie.Index, ie.ID, ie.Field)
	}
}

func TestSceneDecode(t *testing.T) {
	t.Parallel()

	in := `{"elements":[{"id":"r","type":"rectangle","x":1,"y":2,"width":3,"height":4},{"id":"t","type":"text","fontSize":18}]}`
	var s Scene
	if err := json.Unmarshal([]byte(in), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(s.Elements))
	}
	if !s.Elements[0].IsShape() || s.Elements[1].IsShape() {
		t.Error("IsShape classification wrong")
	}
	if fs := s.Elements[1].FontSize; fs == nil || *fs != 18 {
		t.Errorf("fontSize = %v, want 18", fs)
	}
}
