package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumhq/quorum/internal/core/domain"
	"github.com/quorumhq/quorum/internal/core/ports/driven"
)

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	answer      string
	generateErr error
	calls       int
	lastPrompt  string
}

func (m *mockLLMService) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.answer, nil
}

func (m *mockLLMService) ModelName() string { return "mock-llm" }

func (m *mockLLMService) Ping(_ context.Context) error { return nil }

func (m *mockLLMService) Close() error { return nil }

func TestSynthesizeGroundsPromptInContext(t *testing.T) {
	llm := &mockLLMService{answer: "The launch was moved to Friday."}
	s := NewSynthesizer(llm, 0)

	assembled := AssembledContext{
		Text:     "[00:10 - 00:20] Sam: launch moves to friday",
		Included: []domain.FusedResult{fused("c1", 10, 0.5, "launch moves to friday")},
	}

	answer, err := s.Synthesize(context.Background(), "when is the launch?", assembled)
	require.NoError(t, err)
	assert.Equal(t, "The launch was moved to Friday.", answer)

	assert.Equal(t, 1, llm.calls)
	assert.Contains(t, llm.lastPrompt, "launch moves to friday")
	assert.Contains(t, llm.lastPrompt, "when is the launch?")
	assert.Contains(t, llm.lastPrompt, "Answer only from the excerpts")
}

func TestSynthesizeEmptyContextShortCircuits(t *testing.T) {
	llm := &mockLLMService{answer: "should never be used"}
	s := NewSynthesizer(llm, 0)

	answer, err := s.Synthesize(context.Background(), "anything?", AssembledContext{})
	require.NoError(t, err)
	assert.Equal(t, NoInformationAnswer, answer)
	assert.Zero(t, llm.calls, "generation must not be called for an empty context")
}

func TestSynthesizeTransportErrorMapsToGenerationUnavailable(t *testing.T) {
	llm := &mockLLMService{generateErr: errors.New("connection refused")}
	s := NewSynthesizer(llm, 0)

	assembled := AssembledContext{
		Text:     "some context",
		Included: []domain.FusedResult{fused("c1", 0, 0.5, "some context")},
	}

	_, err := s.Synthesize(context.Background(), "q", assembled)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGenerationUnavailable)
}

func TestSynthesizeEmptyModelAnswerIsError(t *testing.T) {
	llm := &mockLLMService{answer: "   "}
	s := NewSynthesizer(llm, 0)

	assembled := AssembledContext{
		Text:     "some context",
		Included: []domain.FusedResult{fused("c1", 0, 0.5, "some context")},
	}

	_, err := s.Synthesize(context.Background(), "q", assembled)
	assert.ErrorIs(t, err, domain.ErrGenerationUnavailable)
}

func TestSynthesizeNilLLM(t *testing.T) {
	s := NewSynthesizer(nil, 0)

	assembled := AssembledContext{
		Text:     "some context",
		Included: []domain.FusedResult{fused("c1", 0, 0.5, "some context")},
	}

	_, err := s.Synthesize(context.Background(), "q", assembled)
	assert.ErrorIs(t, err, domain.ErrGenerationUnavailable)
}
