package services

import (
	"sort"

	"github.com/quorumhq/quorum/internal/core/domain"
)

// DefaultFusionConstant is the reciprocal rank fusion constant. It keeps the
// first-ranked result from dominating the combined score.
const DefaultFusionConstant = 60

// Fuser merges the two engines' ranked lists into one ordering using
// reciprocal rank fusion. Raw engine scores live on incomparable scales, so
// fusion works on rank positions only.
type Fuser struct {
	c int
}

// NewFuser creates a fuser with the given RRF constant.
// Values below 1 fall back to DefaultFusionConstant.
func NewFuser(c int) *Fuser {
	if c < 1 {
		c = DefaultFusionConstant
	}
	return &Fuser{c: c}
}

// Fuse merges the semantic and lexical result lists and returns the top k
// by fused score. A chunk present in both lists sums the weight from each
// rank position and is marked as a dual-hit. Either list may be empty; the
// missing engine simply contributes no weight.
//
// Ordering is fused score descending, ties broken by earlier StartTime, then
// by ID for determinism.
func (f *Fuser) Fuse(semantic, lexical []domain.ChunkRecord, k int) []domain.FusedResult {
	if k <= 0 {
		return []domain.FusedResult{}
	}

	merged := make(map[string]*domain.FusedResult, len(semantic)+len(lexical))

	for rank, chunk := range semantic {
		weight := 1.0 / float64(f.c+rank+1)
		merged[chunk.ID] = &domain.FusedResult{
			ChunkRecord: chunk,
			FusedScore:  weight,
			Provenance:  domain.ProvenanceSemantic,
		}
	}

	for rank, chunk := range lexical {
		weight := 1.0 / float64(f.c+rank+1)
		if existing, ok := merged[chunk.ID]; ok {
			existing.FusedScore += weight
			existing.Provenance = domain.ProvenanceBoth
			continue
		}
		merged[chunk.ID] = &domain.FusedResult{
			ChunkRecord: chunk,
			FusedScore:  weight,
			Provenance:  domain.ProvenanceLexical,
		}
	}

	results := make([]domain.FusedResult, 0, len(merged))
	for _, r := range merged {
		results = append(results, *r)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].FusedScore != results[j].FusedScore {
			return results[i].FusedScore > results[j].FusedScore
		}
		if results[i].StartTime != results[j].StartTime {
			return results[i].StartTime < results[j].StartTime
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}
