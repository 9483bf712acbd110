// Package advisor turns a finished report into a short coaching narrative
// using an LLM provider. Scores are never changed by the narrative.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/riskready/internal/llm"
	"github.com/abhisek/riskready/internal/report"
)

// Narrative is the coaching text shown next to a report.
type Narrative struct {
	Headline   string   `json:"headline"`
	Summary    string   `json:"summary"`
	Strengths  []string `json:"strengths"`
	FocusAreas []string `json:"focus_areas"`
}

type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   700,
		Temperature: 0.4,
	}
}

// Service requests narratives from a provider.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewService creates an advisor. A nil logger discards log output.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log.Named("advisor")}
}

// Advise asks the provider for a narrative about r. It blocks until the
// provider answers or ctx is done.
func (s *Service) Advise(ctx context.Context, r *report.Report) (*Narrative, error) {
	if r == nil {
		return nil, errors.New("advisor: nil report")
	}
	ctx = llm.WithPurpose(ctx, "advice")

	req := llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(r)}},
		Schema:      NarrativeSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	start := time.Now()
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var n Narrative
	if err := json.Unmarshal(resp.Content, &n); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}
	s.log.Info("narrative ready",
		zap.String("recommendation", string(r.Recommendation)),
		zap.String("model", resp.Model),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &n, nil
}

// ModelID reports which model backs the service.
func (s *Service) ModelID() string {
	return s.provider.ModelID()
}
