package match

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/SaiPrasanna98/Smartroomate/ai"
	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/SaiPrasanna98/Smartroomate/geo"
	"github.com/SaiPrasanna98/Smartroomate/storage"
)

const (
	// DefaultThreshold is the minimum compatibility score a candidate must
	// reach to appear in the results.
	DefaultThreshold = 30.0

	// DefaultLimit is the number of matches returned when no limit is given.
	DefaultLimit = 5

	// MaxLimit caps how many matches a single request may return.
	MaxLimit = 20
)

// Ranker runs the full matching flow: list the candidate pool, score every
// candidate concurrently, filter, rank, and persist the retained matches to
// the match history.
type Ranker struct {
	profiles storage.ProfileRepository
	history  storage.MatchHistoryRepository
	semantic *SemanticScorer
	scorer   *Scorer

	scoringPool *ants.Pool
	historyPool *ants.Pool

	threshold            float64
	historyWriteFailures atomic.Int64
	logger               *slog.Logger

	scorerOpts []ScorerOption
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker) error

// WithThreshold sets the minimum compatibility score.
// Values below 1 are raised to 1; filtering cannot be disabled.
func WithThreshold(threshold float64) RankerOption {
	return func(r *Ranker) error {
		if threshold < 1 {
			threshold = 1
		}
		r.threshold = threshold
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent candidate scoring.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) RankerOption {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}

		if r.scoringPool != nil {
			r.scoringPool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.scoringPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) RankerOption {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithScorerOptions forwards options to the underlying compatibility scorer.
func WithScorerOptions(opts ...ScorerOption) RankerOption {
	return func(r *Ranker) error {
		r.scorerOpts = append(r.scorerOpts, opts...)
		return nil
	}
}

// NewRanker creates a new match ranker.
func NewRanker(
	profileRepository storage.ProfileRepository,
	historyRepository storage.MatchHistoryRepository,
	provider ai.AIProvider,
	geocoder geo.Geocoder,
	opts ...RankerOption,
) (*Ranker, error) {
	if profileRepository == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if historyRepository == nil {
		return nil, ErrHistoryRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if geocoder == nil {
		return nil, ErrGeocoderRequired
	}

	poolSize := runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}

	scoringPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	historyPool, err := ants.NewPool(1)
	if err != nil {
		scoringPool.Release()
		return nil, err
	}

	r := &Ranker{
		profiles:    profileRepository,
		history:     historyRepository,
		semantic:    NewSemanticScorer(provider.Embedder(), slog.Default()),
		scoringPool: scoringPool,
		historyPool: historyPool,
		threshold:   DefaultThreshold,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}

	r.semantic = NewSemanticScorer(provider.Embedder(), r.logger)
	scorerOpts := append([]ScorerOption{WithScorerLogger(r.logger)}, r.scorerOpts...)
	scorer, err := NewScorer(r.semantic, geocoder, scorerOpts...)
	if err != nil {
		r.Release()
		return nil, err
	}
	r.scorer = scorer

	return r, nil
}

// FindMatches finds compatible roommates for a user.
// Pass a nil query to load the user's stored profile.
// Returns up to limit results, ranked by compatibility score.
func (r *Ranker) FindMatches(ctx context.Context, userID core.ID, query *core.Profile, limit int) ([]*core.MatchResult, error) {
	return r.FindMatchesWithMonitor(ctx, userID, query, limit, nil)
}

// FindMatchesWithMonitor finds compatible roommates for a user with monitoring.
// The monitor receives callbacks at each stage of the matching process.
func (r *Ranker) FindMatchesWithMonitor(ctx context.Context, userID core.ID, query *core.Profile, limit int, monitor MatchMonitor) ([]*core.MatchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(userID)

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	logger := r.logger.With("requestID", uuid.NewString(), "userID", userID)

	if query == nil {
		var err error
		query, err = r.profiles.GetProfileByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	// 1. List the candidate pool
	candidates, err := r.profiles.ListActiveProfiles(ctx, userID)
	if err != nil {
		logger.Error("error listing candidate pool", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrMatchingUnavailable, err)
	}
	monitor.AfterPoolListing(candidates)

	// An empty pool never touches the embedder or the geocoder
	if len(candidates) == 0 {
		monitor.Finish(nil)
		return []*core.MatchResult{}, nil
	}

	// 2. Embed the query profile once for the whole pool.
	// Failure degrades the semantic component to zero for every candidate.
	queryVector, err := r.semantic.ProfileVector(ctx, query)
	if err != nil {
		logger.Warn("failed to embed query profile", "err", err)
		queryVector = nil
	}
	monitor.AfterQueryEmbedding(len(queryVector))

	// 3. Score candidates concurrently, buffered by pool position
	scored := make([]*core.MatchResult, len(candidates))
	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			scored[i] = r.scorer.scoreAgainst(ctx, query, queryVector, candidate)
		}
		if err := r.scoringPool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	monitor.AfterScoring(scored)

	// 4. Filter by threshold
	results := make([]*core.MatchResult, 0, len(scored))
	for _, result := range scored {
		if result == nil {
			continue
		}
		if result.CompatibilityScore >= r.threshold {
			results = append(results, result)
		} else {
			monitor.BelowThreshold(result)
		}
	}

	// 5. Rank by score descending; ties keep pool order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompatibilityScore > results[j].CompatibilityScore
	})
	if len(results) > limit {
		results = results[:limit]
	}

	// 6. Persist retained matches asynchronously, fire and forget
	r.appendHistory(logger, userID, results)

	monitor.Finish(results)
	return results, nil
}

// Compatibility scores a single pair of profiles without touching the
// candidate pool or the match history.
func (r *Ranker) Compatibility(ctx context.Context, query, candidate *core.Profile) *core.MatchResult {
	return r.scorer.Score(ctx, query, candidate)
}

// HistoryWriteFailures returns how many history entries failed to persist
// since the ranker was created.
func (r *Ranker) HistoryWriteFailures() int64 {
	return r.historyWriteFailures.Load()
}

// appendHistory submits the retained results for asynchronous persistence.
// Failures are logged and counted but never remove results from the response.
func (r *Ranker) appendHistory(logger *slog.Logger, userID core.ID, results []*core.MatchResult) {
	if len(results) == 0 {
		return
	}

	now := time.Now().UTC()
	entries := make([]*core.MatchHistoryEntry, len(results))
	for i, result := range results {
		entries[i] = result.HistoryEntry(userID, now)
	}

	task := func() {
		if _, err := r.history.AppendEntries(context.Background(), entries...); err != nil {
			r.historyWriteFailures.Add(int64(len(entries)))
			logger.Error("error appending match history", "entryCount", len(entries), "err", err)
		}
	}
	if err := r.historyPool.Submit(task); err != nil {
		task()
	}
}

// Release releases resources including worker pools.
// The ranker should not be used after calling Release.
func (r *Ranker) Release() {
	if r.scoringPool != nil {
		r.scoringPool.Release()
	}
	if r.historyPool != nil {
		r.historyPool.Release()
	}
}
