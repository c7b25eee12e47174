package match

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiPrasanna98/Smartroomate/ai/mock"
	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/SaiPrasanna98/Smartroomate/geo/static"
)

func scorerTestProfile(userID core.ID, name, city, zip string, budgetMin, budgetMax int) *core.Profile {
	return &core.Profile{
		Id:                   userID,
		UserId:               userID,
		Name:                 name,
		Age:                  28,
		Gender:               core.GenderOther,
		Occupation:           "Analyst",
		City:                 city,
		ZipCode:              zip,
		RentBudgetMin:        budgetMin,
		RentBudgetMax:        budgetMax,
		SleepSchedule:        core.SleepEarlyBird,
		CleanlinessLevel:     core.CleanVeryClean,
		NoiseTolerance:       core.NoiseQuiet,
		Hobbies:              "hiking with " + name,
		PetPreference:        core.PreferenceNo,
		SmokingPreference:    core.PreferenceNo,
		LifestyleDescription: name + " keeps a quiet, tidy home and works regular hours.",
		IsActive:             true,
	}
}

// vectorsFor pins each profile's feature text to a fixed embedding so tests
// control the cosine similarity exactly.
func vectorsFor(pairs map[*core.Profile][]float32) func(ctx context.Context, text string) ([]float32, error) {
	byText := make(map[string][]float32, len(pairs))
	for p, v := range pairs {
		byText[p.FeatureText()] = v
	}
	return func(ctx context.Context, text string) ([]float32, error) {
		return byText[text], nil
	}
}

func newTestScorer(t *testing.T, embedder *mock.MockEmbedder) *Scorer {
	t.Helper()
	semantic := NewSemanticScorer(embedder, slog.Default())
	scorer, err := NewScorer(semantic, static.NewGeocoder())
	require.NoError(t, err)
	return scorer
}

func TestScoreSameCityFullOverlap(t *testing.T) {
	query := scorerTestProfile(1, "Priya", "Dallas", "75201", 600, 800)
	candidate := scorerTestProfile(2, "Sam", "Dallas", "75202", 650, 900)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = vectorsFor(map[*core.Profile][]float32{
		query:     {1, 0},
		candidate: {1, 0},
	})

	result := newTestScorer(t, embedder).Score(context.Background(), query, candidate)

	assert.Equal(t, 100.0, result.CompatibilityScore)
	assert.Equal(t, 100.0, result.SemanticSimilarity)
	assert.True(t, result.LocationMatch)
	require.NotNil(t, result.DistanceMiles)
	assert.Equal(t, 0.0, *result.DistanceMiles)
	assert.True(t, result.BudgetMatch)
	assert.Equal(t, []string{
		"High lifestyle compatibility",
		"Close proximity (0.0 miles)",
		"Budget compatibility",
		"Pet preference match",
		"Smoking preference match",
	}, result.MatchReasons)
}

func TestScoreDistantOppositePair(t *testing.T) {
	query := scorerTestProfile(1, "Priya", "Dallas", "75201", 600, 800)
	candidate := scorerTestProfile(2, "Sam", "New York", "10001", 2000, 3000)
	candidate.PetPreference = core.PreferenceYes
	candidate.SmokingPreference = core.PreferenceYes

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = vectorsFor(map[*core.Profile][]float32{
		query:     {1, 0},
		candidate: {-1, 0},
	})

	result := newTestScorer(t, embedder).Score(context.Background(), query, candidate)

	assert.Equal(t, 0.0, result.CompatibilityScore)
	assert.Equal(t, 0.0, result.SemanticSimilarity)
	assert.False(t, result.LocationMatch, "1300+ miles is not a location match")
	assert.Nil(t, result.DistanceMiles)
	assert.False(t, result.BudgetMatch)
	assert.Empty(t, result.MatchReasons)
}

func TestScoreUnknownPostalCode(t *testing.T) {
	query := scorerTestProfile(1, "Priya", "Dallas", "75201", 600, 800)
	candidate := scorerTestProfile(2, "Sam", "Nowhere", "99999", 600, 800)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = vectorsFor(map[*core.Profile][]float32{
		query:     {1, 0},
		candidate: {1, 0},
	})

	result := newTestScorer(t, embedder).Score(context.Background(), query, candidate)

	// Location component degrades, semantic and budget still count
	assert.False(t, result.LocationMatch)
	assert.Nil(t, result.DistanceMiles)
	assert.Equal(t, 70.0, result.CompatibilityScore)
	assert.NotContains(t, result.MatchReasons, "Close proximity (0.0 miles)")
}

func TestScoreZeroNormVector(t *testing.T) {
	query := scorerTestProfile(1, "Priya", "Dallas", "75201", 600, 800)
	candidate := scorerTestProfile(2, "Sam", "Dallas", "75202", 600, 800)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = vectorsFor(map[*core.Profile][]float32{
		query:     {1, 0},
		candidate: {0, 0},
	})

	result := newTestScorer(t, embedder).Score(context.Background(), query, candidate)

	// Semantic soft-fails to zero, location and budget survive
	assert.Equal(t, 0.0, result.SemanticSimilarity)
	assert.Equal(t, 50.0, result.CompatibilityScore)
	assert.True(t, result.LocationMatch)
	assert.True(t, result.BudgetMatch)
}

func TestSimilarityFromVectors(t *testing.T) {
	t.Run("identical vectors score 100", func(t *testing.T) {
		score, err := SimilarityFromVectors([]float32{1, 2, 3}, []float32{1, 2, 3})
		require.NoError(t, err)
		assert.InDelta(t, 100, score, 0.001)
	})

	t.Run("opposite vectors score 0", func(t *testing.T) {
		score, err := SimilarityFromVectors([]float32{1, 0}, []float32{-1, 0})
		require.NoError(t, err)
		assert.InDelta(t, 0, score, 0.001)
	})

	t.Run("orthogonal vectors score 50", func(t *testing.T) {
		score, err := SimilarityFromVectors([]float32{1, 0}, []float32{0, 1})
		require.NoError(t, err)
		assert.InDelta(t, 50, score, 0.001)
	})

	t.Run("zero norm is unscorable", func(t *testing.T) {
		_, err := SimilarityFromVectors([]float32{0, 0}, []float32{1, 0})
		assert.ErrorIs(t, err, ErrSemanticUnavailable)
	})
}

func TestSelfSimilarity(t *testing.T) {
	profile := scorerTestProfile(1, "Priya", "Dallas", "75201", 600, 800)
	semantic := NewSemanticScorer(mock.NewMockEmbedder(), slog.Default())

	score, err := semantic.Similarity(context.Background(), profile, profile)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, 90.0)
}

func TestProfileVectorCache(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	semantic := NewSemanticScorer(embedder, slog.Default())
	ctx := context.Background()

	t.Run("fresh cache skips the embedder", func(t *testing.T) {
		profile := scorerTestProfile(1, "Priya", "Dallas", "75201", 600, 800)
		profile.Vector = []float32{0.5, 0.5}
		profile.FeatureHash = profile.CurrentFeatureHash()

		embedder.Reset()
		vector, err := semantic.ProfileVector(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, []float32{0.5, 0.5}, vector)
		assert.Equal(t, 0, embedder.CallCount())
	})

	t.Run("stale cache re-embeds", func(t *testing.T) {
		profile := scorerTestProfile(1, "Priya", "Dallas", "75201", 600, 800)
		profile.Vector = []float32{0.5, 0.5}
		profile.FeatureHash = profile.CurrentFeatureHash()
		profile.Hobbies = "completely new hobbies"

		embedder.Reset()
		_, err := semantic.ProfileVector(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, 1, embedder.CallCount())
	})
}
