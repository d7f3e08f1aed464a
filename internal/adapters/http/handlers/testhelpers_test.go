package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/go-batch-service/internal/ports"
)

// projectWithTask is a two-item batch result: one container and a leaf
// beneath it, both created.
func projectWithTask() *ports.BatchResult {
	return &ports.BatchResult{
		BatchID:    "b-1",
		Success:    true,
		Created:    2,
		TotalItems: 2,
		Results: []ports.ItemResult{
			{TempID: "p", RealID: "100", Type: batch.TypeContainer, Success: true},
			{TempID: "t", RealID: "7", Type: batch.TypeLeaf, Success: true},
		},
		Mapping: map[string]string{"p": "100", "t": "7"},
		Stats: batch.Stats{
			TotalItems: 2,
			RootCount:  1,
			MaxDepth:   1,
			ByType:     map[batch.EntityType]int{batch.TypeContainer: 1, batch.TypeLeaf: 1},
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
