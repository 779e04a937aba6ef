package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/quorumhq/quorum/internal/core/domain"
	"github.com/quorumhq/quorum/internal/core/ports/driving"
	"github.com/quorumhq/quorum/internal/logger"
)

// DefaultRetrievalTimeout bounds each engine's retrieval call. A timed-out
// engine is treated like an unreachable one; the other may still answer.
const DefaultRetrievalTimeout = 10 * time.Second

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService orchestrates a query: validate, fan out to both retrievers
// concurrently, fuse, assemble, synthesize, respond.
type QueryService struct {
	semantic  Retriever
	lexical   Retriever
	fuser     *Fuser
	assembler *Assembler
	synth     *Synthesizer

	retrievalTimeout time.Duration
}

// QueryOption configures a QueryService.
type QueryOption func(*QueryService)

// WithRetrievalTimeout overrides the per-engine retrieval timeout.
func WithRetrievalTimeout(d time.Duration) QueryOption {
	return func(s *QueryService) {
		if d > 0 {
			s.retrievalTimeout = d
		}
	}
}

// NewQueryService wires the pipeline stages together.
func NewQueryService(semantic, lexical Retriever, fuser *Fuser, assembler *Assembler, synth *Synthesizer, opts ...QueryOption) *QueryService {
	s := &QueryService{
		semantic:         semantic,
		lexical:          lexical,
		fuser:            fuser,
		assembler:        assembler,
		synth:            synth,
		retrievalTimeout: DefaultRetrievalTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Query answers a question about one meeting's transcript.
func (s *QueryService) Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResponse, error) {
	logger.Section("Query Execution")
	logger.Debug("Question: %q, meeting=%s, k=%d", req.Question, req.MeetingID, req.K)

	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Normalize()

	// Fetch more than k per engine so fusion has candidates to promote.
	internalLimit := req.K * 2
	logger.Debug("Internal limit: %d", internalLimit)

	semanticResults, lexicalResults, notes, err := s.retrieve(ctx, req.Question, req.MeetingID, internalLimit)
	if err != nil {
		return nil, err
	}
	degraded := len(notes) > 0

	fused := s.fuser.Fuse(semanticResults, lexicalResults, req.K)
	logger.Debug("Fusion: %d semantic + %d lexical -> %d fused", len(semanticResults), len(lexicalResults), len(fused))

	assembled := s.assembler.Assemble(fused)

	answer, err := s.synth.Synthesize(ctx, req.Question, assembled)
	if err != nil {
		// Retrieval succeeded; the provenance data still has value on
		// its own, so degrade instead of aborting.
		logger.Warn("Synthesis failed, returning sources with fallback answer: %v", err)
		answer = GenerationFallbackAnswer
		notes = append(notes, "answer generation unavailable")
		degraded = true
	}

	sources := make([]domain.Source, 0, len(assembled.Included))
	for _, r := range assembled.Included {
		sources = append(sources, domain.NewSource(r))
	}

	logger.Info("Query answered: %d sources, degraded=%t", len(sources), degraded)

	return &domain.QueryResponse{
		Answer:       answer,
		MeetingID:    req.MeetingID,
		Sources:      sources,
		TotalSources: len(sources),
		Degraded:     degraded,
		Notes:        notes,
	}, nil
}

// retrieve fans out to both engines concurrently, each under its own
// timeout, and applies the degradation policy: one engine failing yields a
// note, both failing aborts the request.
func (s *QueryService) retrieve(ctx context.Context, question, meetingID string, limit int) (semantic, lexical []domain.ChunkRecord, notes []string, err error) {
	var (
		wg          sync.WaitGroup
		semanticErr error
		lexicalErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		retrieveCtx, cancel := context.WithTimeout(ctx, s.retrievalTimeout)
		defer cancel()
		semantic, semanticErr = s.semantic.Retrieve(retrieveCtx, question, meetingID, limit)
	}()
	go func() {
		defer wg.Done()
		retrieveCtx, cancel := context.WithTimeout(ctx, s.retrievalTimeout)
		defer cancel()
		lexical, lexicalErr = s.lexical.Retrieve(retrieveCtx, question, meetingID, limit)
	}()
	wg.Wait()

	if semanticErr != nil && lexicalErr != nil {
		logger.Warn("Both retrieval engines failed: semantic=%v, lexical=%v", semanticErr, lexicalErr)
		return nil, nil, nil, fmt.Errorf("%w: semantic: %v; lexical: %v",
			domain.ErrRetrievalUnavailable, semanticErr, lexicalErr)
	}
	if semanticErr != nil {
		logger.Warn("Semantic retrieval failed, continuing with lexical only: %v", semanticErr)
		notes = append(notes, fmt.Sprintf("%s retrieval unavailable", s.semantic.Name()))
	}
	if lexicalErr != nil {
		logger.Warn("Lexical retrieval failed, continuing with semantic only: %v", lexicalErr)
		notes = append(notes, fmt.Sprintf("%s retrieval unavailable", s.lexical.Name()))
	}

	return semantic, lexical, notes, nil
}
