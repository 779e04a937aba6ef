package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     QueryRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  QueryRequest{Question: "what was decided?", MeetingID: "m-1"},
		},
		{
			name:    "empty question",
			req:     QueryRequest{Question: "", MeetingID: "m-1"},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "whitespace question",
			req:     QueryRequest{Question: "   ", MeetingID: "m-1"},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "empty meeting id",
			req:     QueryRequest{Question: "what was decided?", MeetingID: ""},
			wantErr: ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQueryRequestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		k     int
		wantK int
	}{
		{name: "zero defaults", k: 0, wantK: DefaultK},
		{name: "negative clamps to one", k: -3, wantK: 1},
		{name: "in range untouched", k: 7, wantK: 7},
		{name: "over max clamps", k: 5000, wantK: MaxK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := QueryRequest{Question: "q", MeetingID: "m", K: tt.k}
			req.Normalize()
			assert.Equal(t, tt.wantK, req.K)
		})
	}
}

func TestNewSource(t *testing.T) {
	fused := FusedResult{
		ChunkRecord: ChunkRecord{
			ID:        "c-1",
			MeetingID: "m-1",
			Content:   "we agreed to ship friday",
			StartTime: 12.5,
			EndTime:   18.0,
			Speaker:   "Dana",
		},
		FusedScore: 0.032,
		Provenance: ProvenanceBoth,
	}

	src := NewSource(fused)
	assert.Equal(t, "c-1", src.ChunkID)
	assert.Equal(t, "we agreed to ship friday", src.Content)
	assert.Equal(t, 12.5, src.StartTime)
	assert.Equal(t, 18.0, src.EndTime)
	assert.Equal(t, "Dana", src.Speaker)
	assert.Equal(t, 0.032, src.Score)
	assert.Equal(t, ProvenanceBoth, src.Provenance)
}
