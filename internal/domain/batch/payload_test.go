package batch

import (
	"encoding/json"
	"testing"
)

func TestPayload_Int(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		want   int64
		wantOK bool
	}{
		{name: "int", value: 7, want: 7, wantOK: true},
		{name: "int64", value: int64(9), want: 9, wantOK: true},
		{name: "whole float64", value: float64(50), want: 50, wantOK: true},
		{name: "fractional float64", value: 1.5, wantOK: false},
		{name: "json number", value: json.Number("42"), want: 42, wantOK: true},
		{name: "bad json number", value: json.Number("4.2"), wantOK: false},
		{name: "string", value: "42", wantOK: false},
		{name: "missing", value: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Payload{}
			if tt.value != nil {
				p["n"] = tt.value
			}
			got, ok := p.Int("n")
			if ok != tt.wantOK {
				t.Fatalf("Int() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPayload_StringAndBool(t *testing.T) {
	t.Parallel()

	p := Payload{"note": "hello", "flagged": true, "count": 3}

	if got, ok := p.String("note"); !ok || got != "hello" {
		t.Errorf("String(note) = %q, %v, want hello, true", got, ok)
	}
	if _, ok := p.String("count"); ok {
		t.Error("String(count) ok = true, want false")
	}
	if got, ok := p.Bool("flagged"); !ok || !got {
		t.Errorf("Bool(flagged) = %v, %v, want true, true", got, ok)
	}
	if _, ok := p.Bool("note"); ok {
		t.Error("Bool(note) ok = true, want false")
	}

	var nilPayload Payload
	if _, ok := nilPayload.String("note"); ok {
		t.Error("nil Payload String() ok = true, want false")
	}
}
