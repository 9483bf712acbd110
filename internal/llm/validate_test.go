package llm

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"
)

func tierSchema() *Schema {
	return &Schema{
		Name:        "test-tier",
		Description: "A recommendation with supporting scores",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tier":    map[string]any{"type": "string", "enum": []any{"Yes", "Maybe", "No"}},
				"overall": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"notes": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"tier"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"tier":"Yes","overall":84,"notes":["strong analysis"]}`, false},
		{"optional fields omitted", `{"tier":"Maybe"}`, false},
		{"missing required", `{"overall":50}`, true},
		{"wrong type", `{"tier":"No","overall":"fifty"}`, true},
		{"out of range", `{"tier":"No","overall":120}`, true},
		{"bad enum", `{"tier":"Perhaps"}`, true},
		{"bad array item", `{"tier":"No","notes":[1,2]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(tierSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("boom")

	var rl *ErrRateLimit
	if !errors.As(classifyStatus(429, cause), &rl) {
		t.Fatal("429 should be a rate limit")
	}
	var rejected *ErrRequestRejected
	if err := classifyStatus(400, cause); !errors.As(err, &rejected) || rejected.Status != 400 {
		t.Fatalf("400 should be rejected, got %v", err)
	}
	var unavail *ErrProviderUnavailable
	for _, status := range []int{0, 500, 503} {
		if !errors.As(classifyStatus(status, cause), &unavail) {
			t.Fatalf("%d should be unavailable", status)
		}
	}
	if !errors.Is(classifyStatus(500, cause), cause) {
		t.Fatal("cause should unwrap")
	}
}

func TestWithRetryAfter(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "7")

	var rl *ErrRateLimit
	if err := withRetryAfter(classifyStatus(429, errors.New("slow down")), h); !errors.As(err, &rl) || rl.RetryAfter != 7*time.Second {
		t.Fatalf("RetryAfter not taken from header: %v", err)
	}

	h.Set("Retry-After", "Wed, 21 Oct 2026 07:28:00 GMT")
	if err := withRetryAfter(classifyStatus(429, errors.New("slow down")), h); !errors.As(err, &rl) || rl.RetryAfter != 0 {
		t.Fatalf("dates are not parsed, got %v", err)
	}

	rejected := classifyStatus(401, errors.New("bad key"))
	if withRetryAfter(rejected, h) != rejected {
		t.Fatal("non rate limit errors should pass through")
	}
}
