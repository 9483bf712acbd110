package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/riskready/internal/answers"
)

//go:embed report.schema.json
var schemaJSON []byte

const schemaURL = "schema://riskready/report.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Export is the serialized form of a completed assessment.
type Export struct {
	ID          string      `json:"id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Answers     answers.Set `json:"answers"`
	Results     *Report     `json:"results"`
}

// NewExport wraps a report and the answers that produced it.
func NewExport(id uuid.UUID, a answers.Set, r *Report, now time.Time) *Export {
	if a == nil {
		a = answers.New()
	}
	return &Export{
		ID:          id.String(),
		GeneratedAt: now.UTC(),
		Answers:     a.Clone(),
		Results:     r,
	}
}

// Encode writes e as indented JSON after checking it against the export
// schema. Nothing is written if validation fails.
func (e *Export) Encode(w io.Writer) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if err := Validate(data); err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Validate checks raw export JSON against the embedded schema.
func Validate(data []byte) error {
	sch, err := exportSchema()
	if err != nil {
		return err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse export: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("export does not match schema: %w", err)
	}
	return nil
}

func exportSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse export schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		c.AssertFormat()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add export schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
