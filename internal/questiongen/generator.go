package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dsengupta/mindprobe/internal/llm"
)

// Generator produces assessment question batches using an LLM provider.
type Generator interface {
	// Generate requests exactly count questions in a single call.
	// Returns a structurally validated batch or an error. The error is
	// the underlying cause, not a wrapped chain: callers display it
	// verbatim to the user.
	Generate(ctx context.Context, count int) ([]Question, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
// The provider may be nil when no credential was discovered at startup;
// Generate then fails with ErrNotConfigured.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is one raw batch element before validation.
type questionOutput struct {
	ID        int      `json:"id"`
	Text      string   `json:"text"`
	Dimension string   `json:"dimension"`
	Options   []string `json:"options"`
}

// questionSetOutput matches QuestionSetSchema.
type questionSetOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate produces a batch of exactly count questions.
func (g *LLMGenerator) Generate(ctx context.Context, count int) ([]Question, error) {
	if g.provider == nil {
		return nil, &llm.ErrNotConfigured{}
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(count)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse question batch: %w", err)
	}

	questions := make([]Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		questions = append(questions, Question{
			ID:        q.ID,
			Text:      q.Text,
			Dimension: q.Dimension,
			Options:   q.Options,
		})
	}

	if err := validateBatch(questions, count); err != nil {
		return nil, err
	}

	return questions, nil
}
