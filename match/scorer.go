package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/SaiPrasanna98/Smartroomate/geo"
)

const (
	// SemanticReasonThreshold is the similarity above which the lifestyle
	// reason is attached to a match.
	SemanticReasonThreshold = 70.0

	defaultMaxDistanceMiles = 50.0
	defaultCallTimeout      = 15 * time.Second
)

// Weights controls how the component scores combine into the final
// compatibility score. The three weights should sum to 1.
type Weights struct {
	Semantic float64
	Location float64
	Budget   float64
}

// DefaultWeights is the standard 50/30/20 split between lifestyle
// similarity, location proximity, and budget overlap.
var DefaultWeights = Weights{Semantic: 0.5, Location: 0.3, Budget: 0.2}

// Scorer computes the compatibility of a candidate profile against a query
// profile.
type Scorer struct {
	semantic         *SemanticScorer
	geocoder         geo.Geocoder
	weights          Weights
	maxDistanceMiles float64
	callTimeout      time.Duration
	logger           *slog.Logger
}

// ScorerOption configures a Scorer.
type ScorerOption func(*Scorer) error

// WithWeights overrides the default component weights.
func WithWeights(weights Weights) ScorerOption {
	return func(s *Scorer) error {
		s.weights = weights
		return nil
	}
}

// WithMaxDistance sets the proximity threshold in miles.
// Default is 50 miles.
func WithMaxDistance(miles float64) ScorerOption {
	return func(s *Scorer) error {
		if miles <= 0 {
			miles = defaultMaxDistanceMiles
		}
		s.maxDistanceMiles = miles
		return nil
	}
}

// WithCallTimeout bounds each external call made while scoring a candidate.
// Default is 15 seconds.
func WithCallTimeout(timeout time.Duration) ScorerOption {
	return func(s *Scorer) error {
		if timeout <= 0 {
			timeout = defaultCallTimeout
		}
		s.callTimeout = timeout
		return nil
	}
}

// WithScorerLogger sets a custom logger.
// Default is slog.Default().
func WithScorerLogger(logger *slog.Logger) ScorerOption {
	return func(s *Scorer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewScorer creates a new compatibility scorer.
func NewScorer(semantic *SemanticScorer, geocoder geo.Geocoder, opts ...ScorerOption) (*Scorer, error) {
	if semantic == nil {
		return nil, ErrAIProviderRequired
	}
	if geocoder == nil {
		return nil, ErrGeocoderRequired
	}

	s := &Scorer{
		semantic:         semantic,
		geocoder:         geocoder,
		weights:          DefaultWeights,
		maxDistanceMiles: defaultMaxDistanceMiles,
		callTimeout:      defaultCallTimeout,
		logger:           slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Score computes the full compatibility result of candidate against query.
// Component failures (embedding, geocoding) degrade the affected component to
// zero instead of failing the whole comparison.
func (s *Scorer) Score(ctx context.Context, query, candidate *core.Profile) *core.MatchResult {
	queryVector, err := s.semantic.ProfileVector(ctx, query)
	if err != nil {
		s.logger.Warn("failed to embed query profile", "profileID", query.Id, "err", err)
		queryVector = nil
	}
	return s.scoreAgainst(ctx, query, queryVector, candidate)
}

// scoreAgainst scores a candidate against a pre-computed query vector.
// A nil query vector zeroes the semantic component.
func (s *Scorer) scoreAgainst(ctx context.Context, query *core.Profile, queryVector []float32, candidate *core.Profile) *core.MatchResult {
	result := &core.MatchResult{Candidate: candidate}

	// Semantic component
	if queryVector != nil {
		similarity, err := s.candidateSimilarity(ctx, queryVector, candidate)
		if err != nil {
			s.logger.Warn("semantic similarity unavailable",
				"queryProfile", query.Id, "candidateProfile", candidate.Id, "err", err)
		} else {
			result.SemanticSimilarity = similarity
		}
	}

	// Location component
	distance, ok := s.distanceBetween(ctx, query, candidate)
	if ok && distance <= s.maxDistanceMiles {
		result.LocationMatch = true
		rounded := round1(distance)
		result.DistanceMiles = &rounded
	}

	// Budget component
	result.BudgetMatch = core.BudgetsOverlap(
		query.RentBudgetMin, query.RentBudgetMax,
		candidate.RentBudgetMin, candidate.RentBudgetMax)

	score := result.SemanticSimilarity * s.weights.Semantic
	if result.LocationMatch {
		score += 100 * s.weights.Location
	}
	if result.BudgetMatch {
		score += 100 * s.weights.Budget
	}
	result.CompatibilityScore = round1(clamp(score, 0, 100))
	result.MatchReasons = s.reasons(query, result)

	return result
}

// candidateSimilarity embeds the candidate (cache-aware, one retry on
// transient failure) and compares it to the query vector.
func (s *Scorer) candidateSimilarity(ctx context.Context, queryVector []float32, candidate *core.Profile) (float64, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	var vector []float32
	err := RetryWithBackoff(callCtx, func() error {
		var embedErr error
		vector, embedErr = s.semantic.ProfileVector(callCtx, candidate)
		return embedErr
	}, 2, 100*time.Millisecond)
	if err != nil {
		return 0, err
	}

	return SimilarityFromVectors(queryVector, vector)
}

// distanceBetween resolves both postal codes and returns the haversine
// distance in miles. Returns false when either postal code cannot be resolved.
func (s *Scorer) distanceBetween(ctx context.Context, query, candidate *core.Profile) (float64, bool) {
	from, err := s.resolve(ctx, query.ZipCode)
	if err != nil {
		s.logger.Warn("failed to resolve postal code", "zip", query.ZipCode, "err", err)
		return 0, false
	}
	to, err := s.resolve(ctx, candidate.ZipCode)
	if err != nil {
		s.logger.Warn("failed to resolve postal code", "zip", candidate.ZipCode, "err", err)
		return 0, false
	}

	distance := geo.DistanceBetween(from, to)
	if math.IsNaN(distance) {
		return 0, false
	}
	return distance, true
}

// resolve geocodes a postal code with one retry for transient failures.
// Unknown postal codes are permanent and never retried.
func (s *Scorer) resolve(ctx context.Context, postalCode string) (core.Coordinate, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	var coord core.Coordinate
	op := func() error {
		c, err := s.geocoder.Resolve(callCtx, postalCode)
		if err != nil {
			return err
		}
		coord = c
		return nil
	}

	err := op()
	if err == nil || errors.Is(err, geo.ErrUnknownPostalCode) {
		return coord, err
	}
	if err := RetryWithBackoff(callCtx, op, 1, 100*time.Millisecond); err != nil {
		return core.Coordinate{}, err
	}
	return coord, nil
}

// reasons builds the human-readable match reasons in a fixed order.
func (s *Scorer) reasons(query *core.Profile, result *core.MatchResult) []string {
	var reasons []string
	if result.SemanticSimilarity > SemanticReasonThreshold {
		reasons = append(reasons, "High lifestyle compatibility")
	}
	if result.LocationMatch && result.DistanceMiles != nil {
		reasons = append(reasons, fmt.Sprintf("Close proximity (%.1f miles)", *result.DistanceMiles))
	}
	if result.BudgetMatch {
		reasons = append(reasons, "Budget compatibility")
	}
	if query.PetPreference == result.Candidate.PetPreference {
		reasons = append(reasons, "Pet preference match")
	}
	if query.SmokingPreference == result.Candidate.SmokingPreference {
		reasons = append(reasons, "Smoking preference match")
	}
	return reasons
}
