package match

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/SaiPrasanna98/Smartroomate/ai"
	"github.com/SaiPrasanna98/Smartroomate/core"
)

// SemanticScorer computes lifestyle similarity between two profiles from
// embeddings of their feature text.
type SemanticScorer struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// NewSemanticScorer creates a new SemanticScorer.
func NewSemanticScorer(embedder ai.Embedder, logger *slog.Logger) *SemanticScorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SemanticScorer{
		embedder: embedder,
		logger:   logger,
	}
}

// ProfileVector returns the embedding vector for a profile's feature text.
// A cached vector on the profile is reused when its feature hash still matches
// the current feature text; otherwise the text is embedded on the spot.
func (s *SemanticScorer) ProfileVector(ctx context.Context, profile *core.Profile) ([]float32, error) {
	if len(profile.Vector) > 0 && profile.FeatureHash == profile.CurrentFeatureHash() {
		return profile.Vector, nil
	}

	vector, err := s.embedder.EmbedText(ctx, profile.FeatureText())
	if err != nil {
		return nil, fmt.Errorf("%w: embedding profile %d: %w", ErrSemanticUnavailable, profile.Id, err)
	}
	return vector, nil
}

// Similarity returns the semantic similarity of two profiles on a 0-100 scale.
// Returns ErrSemanticUnavailable when either profile cannot be embedded or
// produces a zero-norm vector.
func (s *SemanticScorer) Similarity(ctx context.Context, a, b *core.Profile) (float64, error) {
	va, err := s.ProfileVector(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := s.ProfileVector(ctx, b)
	if err != nil {
		return 0, err
	}
	return SimilarityFromVectors(va, vb)
}

// SimilarityFromVectors maps the cosine similarity of two vectors onto the
// 0-100 scale used by the compatibility score.
func SimilarityFromVectors(a, b []float32) (float64, error) {
	cos, ok := cosineSimilarity(a, b)
	if !ok {
		return 0, fmt.Errorf("%w: zero-norm vector", ErrSemanticUnavailable)
	}
	return clamp((cos+1)*50, 0, 100), nil
}

// cosineSimilarity returns the cosine of the angle between two vectors.
// The second return value is false when either vector has zero norm.
func cosineSimilarity(a, b []float32) (float64, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
