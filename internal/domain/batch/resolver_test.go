package batch

import (
	"errors"
	"maps"
	"slices"
	"testing"
)

func TestResolver_Lifecycle(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	for _, reg := range []struct {
		id  string
		typ EntityType
	}{
		{"p1", TypeContainer}, {"t1", TypeLeaf}, {"t2", TypeLeaf}, {"t3", TypeLeaf},
	} {
		if err := r.Register(reg.id, reg.typ); err != nil {
			t.Fatalf("Register(%s) error = %v", reg.id, err)
		}
	}

	if _, ok := r.RealID("p1"); ok {
		t.Error("RealID(p1) before resolve ok = true, want false")
	}

	if err := r.Resolve("p1", "P100"); err != nil {
		t.Fatalf("Resolve(p1) error = %v", err)
	}
	if err := r.MarkFailed("t1", "boom"); err != nil {
		t.Fatalf("MarkFailed(t1) error = %v", err)
	}
	if err := r.Resolve("t2", "T200"); err != nil {
		t.Fatalf("Resolve(t2) error = %v", err)
	}

	if got, ok := r.RealID("p1"); !ok || got != "P100" {
		t.Errorf("RealID(p1) = %q, %v, want P100, true", got, ok)
	}
	if r.IsResolved("t1") {
		t.Error("IsResolved(t1) = true, want false")
	}
	if typ, ok := r.Type("t1"); !ok || typ != TypeLeaf {
		t.Errorf("Type(t1) = %v, %v, want leaf, true", typ, ok)
	}
	if _, ok := r.Type("nope"); ok {
		t.Error("Type(nope) ok = true, want false")
	}

	want := []CreatedEntity{
		{TempID: "p1", RealID: "P100", Type: TypeContainer},
		{TempID: "t2", RealID: "T200", Type: TypeLeaf},
	}
	if got := r.CreatedIDs(); !slices.Equal(got, want) {
		t.Errorf("CreatedIDs() = %v, want %v", got, want)
	}
	if got := r.Mappings(); !maps.Equal(got, map[string]string{"p1": "P100", "t2": "T200"}) {
		t.Errorf("Mappings() = %v", got)
	}
	if got := r.CreatedCount(); got != 2 {
		t.Errorf("CreatedCount() = %d, want 2", got)
	}
	if got := r.FailedCount(); got != 1 {
		t.Errorf("FailedCount() = %d, want 1", got)
	}
	if got := r.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}

	status := r.DetailedStatus()
	gotStates := make([]MappingState, len(status))
	for i, m := range status {
		gotStates[i] = m.State
	}
	wantStates := []MappingState{StateResolved, StateFailed, StateResolved, StateRegistered}
	if !slices.Equal(gotStates, wantStates) {
		t.Errorf("DetailedStatus() states = %v, want %v", gotStates, wantStates)
	}
	if status[1].Error != "boom" {
		t.Errorf("DetailedStatus()[1].Error = %q, want boom", status[1].Error)
	}
}

func TestResolver_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		run     func(r *Resolver) error
		wantErr error
	}{
		{
			name:    "register twice",
			run:     func(r *Resolver) error { return r.Register("p1", TypeLeaf) },
			wantErr: ErrAlreadyRegistered,
		},
		{
			name:    "resolve unknown",
			run:     func(r *Resolver) error { return r.Resolve("ghost", "X") },
			wantErr: ErrNotRegistered,
		},
		{
			name:    "mark unknown failed",
			run:     func(r *Resolver) error { return r.MarkFailed("ghost", "x") },
			wantErr: ErrNotRegistered,
		},
		{
			name: "resolve twice",
			run: func(r *Resolver) error {
				if err := r.Resolve("p1", "A"); err != nil {
					return err
				}
				return r.Resolve("p1", "B")
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "fail after resolve",
			run: func(r *Resolver) error {
				if err := r.Resolve("p1", "A"); err != nil {
					return err
				}
				return r.MarkFailed("p1", "late")
			},
			wantErr: ErrInvalidTransition,
		},
		{
			name: "resolve after fail",
			run: func(r *Resolver) error {
				if err := r.MarkFailed("p1", "boom"); err != nil {
					return err
				}
				return r.Resolve("p1", "A")
			},
			wantErr: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewResolver()
			if err := r.Register("p1", TypeContainer); err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if err := tt.run(r); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolver_FirstValueWins(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	_ = r.Register("p1", TypeContainer)
	_ = r.Resolve("p1", "first")
	_ = r.Resolve("p1", "second")

	if got, _ := r.RealID("p1"); got != "first" {
		t.Errorf("RealID(p1) = %q, want first", got)
	}
}
