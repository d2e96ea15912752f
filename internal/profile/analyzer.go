package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dsengupta/mindprobe/internal/llm"
	"github.com/dsengupta/mindprobe/internal/session"
)

// Analyzer turns an answer transcript into a personality dossier.
type Analyzer interface {
	// Analyze sends the full transcript in a single call and returns the
	// decoded report with SubjectName and GeneratedAt attached. Errors
	// are the underlying cause, displayed verbatim by callers.
	Analyze(ctx context.Context, answers []session.Answer, subjectName string) (*Report, error)
}

// Config controls the behavior of the LLMAnalyzer.
type Config struct {
	// MaxTokens is the token budget for the dossier response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). Analysis
	// runs cooler than generation.
	Temperature float64
}

// DefaultConfig returns the recommended analysis settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.4,
	}
}

// LLMAnalyzer implements Analyzer using the LLM provider.
type LLMAnalyzer struct {
	provider llm.Provider
	config   Config
}

// NewAnalyzer creates an LLMAnalyzer with the given provider and config.
// A nil provider makes Analyze fail with ErrNotConfigured.
func NewAnalyzer(provider llm.Provider, cfg Config) *LLMAnalyzer {
	return &LLMAnalyzer{provider: provider, config: cfg}
}

// dossierOutput is the raw LLM response, matching DossierSchema.
type dossierOutput struct {
	Score                int      `json:"score"`
	DominantTraits       []string `json:"dominantTraits"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	BehavioralTendencies []string `json:"behavioralTendencies"`
	RiskIndicators       []string `json:"riskIndicators"`
	ConfidenceScore      int      `json:"confidenceScore"`
}

// Analyze produces the dossier for a completed run.
func (a *LLMAnalyzer) Analyze(ctx context.Context, answers []session.Answer, subjectName string) (*Report, error) {
	if a.provider == nil {
		return nil, &llm.ErrNotConfigured{}
	}

	ctx = llm.WithPurpose(ctx, "profile-analysis")

	userMsg, err := buildTranscriptMessage(answers)
	if err != nil {
		return nil, fmt.Errorf("build transcript: %w", err)
	}

	req := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      DossierSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var raw dossierOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse dossier: %w", err)
	}

	return &Report{
		SubjectName:          subjectName,
		Score:                raw.Score,
		DominantTraits:       raw.DominantTraits,
		Strengths:            raw.Strengths,
		Weaknesses:           raw.Weaknesses,
		BehavioralTendencies: raw.BehavioralTendencies,
		RiskIndicators:       raw.RiskIndicators,
		ConfidenceScore:      raw.ConfidenceScore,
		GeneratedAt:          time.Now().UTC(),
	}, nil
}
