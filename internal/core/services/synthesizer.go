package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quorumhq/quorum/internal/core/domain"
	"github.com/quorumhq/quorum/internal/core/ports/driven"
	"github.com/quorumhq/quorum/internal/logger"
)

// Fixed answers for the two non-generated cases.
const (
	// NoInformationAnswer is returned without calling the model when no
	// transcript content was found for the meeting.
	NoInformationAnswer = "No relevant information was found in this meeting's transcript to answer the question."

	// GenerationFallbackAnswer is returned when retrieval succeeded but
	// the generation capability was unavailable.
	GenerationFallbackAnswer = "The answer could not be generated right now. The relevant transcript excerpts are listed in the sources."
)

// Default generation parameters.
const (
	DefaultSynthesisTimeout = 60 * time.Second
	defaultMaxAnswerTokens  = 1024
)

// answerPrompt instructs the model to stay inside the supplied context.
const answerPrompt = `You are answering a question about a meeting, using only the transcript excerpts below. Each excerpt is prefixed with its timestamp range and speaker.

Rules:
- Answer only from the excerpts. Do not use outside knowledge.
- If the excerpts do not contain enough information to answer, say so explicitly.
- When useful, attribute statements to their speaker and timestamp.

Transcript excerpts:
%s

Question: %s

Answer:`

// Synthesizer invokes the text generation capability with the assembled
// context and a grounding instruction template.
type Synthesizer struct {
	llm     driven.LLMService
	timeout time.Duration
}

// NewSynthesizer creates a synthesizer around the given LLM service.
// A timeout below or equal to zero falls back to DefaultSynthesisTimeout.
func NewSynthesizer(llm driven.LLMService, timeout time.Duration) *Synthesizer {
	if timeout <= 0 {
		timeout = DefaultSynthesisTimeout
	}
	return &Synthesizer{llm: llm, timeout: timeout}
}

// Synthesize produces a grounded answer for the question from the assembled
// context. An empty context short-circuits to NoInformationAnswer without
// spending a generation call. Transport or quota failures surface as
// domain.ErrGenerationUnavailable.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, assembled AssembledContext) (string, error) {
	if assembled.IsEmpty() {
		logger.Debug("Synthesis: empty context, skipping generation")
		return NoInformationAnswer, nil
	}
	if s.llm == nil {
		return "", fmt.Errorf("%w: no LLM service configured", domain.ErrGenerationUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(answerPrompt, assembled.Text, question)
	logger.Debug("Synthesis: prompt is %d chars, model=%s", len(prompt), s.llm.ModelName())

	answer, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   defaultMaxAnswerTokens,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("%w: model returned empty answer", domain.ErrGenerationUnavailable)
	}
	return answer, nil
}
