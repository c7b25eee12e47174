package ingestion

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"

	"github.com/SaiPrasanna98/Smartroomate/ai"
	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/SaiPrasanna98/Smartroomate/storage"
)

// Pipeline orchestrates profile intake: validation, persistence, and
// asynchronous embedding enrichment.
type Pipeline struct {
	profileRepository storage.ProfileRepository
	embeddingPool     *ants.Pool
	embeddingProc     *embeddingProcessor
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for embedding enrichment.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.embeddingPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new profile intake pipeline.
func NewPipeline(
	profileRepository storage.ProfileRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if profileRepository == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		profileRepository: profileRepository,
		embeddingPool:     embeddingPool,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	embeddingProc, err := newEmbeddingProcessor(profileRepository, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.embeddingProc = embeddingProc

	return p, nil
}

// AddProfile validates and stores a new profile, then computes its feature
// embedding asynchronously. The profile is active immediately; matching
// falls back to on-the-fly embedding until the cache is warm.
func (p *Pipeline) AddProfile(ctx context.Context, profile *core.Profile) (*core.Profile, error) {
	if err := core.ValidateProfile(profile); err != nil {
		return nil, err
	}

	profile.IsActive = true
	added, err := p.profileRepository.AddProfiles(ctx, profile)
	if err != nil {
		return nil, err
	}

	p.enrichAsync(added[0].Id)
	return added[0], nil
}

// UpdateProfile validates and stores profile changes. A changed feature text
// invalidates the cached embedding, which is recomputed asynchronously.
func (p *Pipeline) UpdateProfile(ctx context.Context, profile *core.Profile) (*core.Profile, error) {
	if err := core.ValidateProfile(profile); err != nil {
		return nil, err
	}

	updated, err := p.profileRepository.UpdateProfiles(ctx, profile)
	if err != nil {
		return nil, err
	}

	p.enrichAsync(updated[0].Id)
	return updated[0], nil
}

// Deactivate removes a user's profile from the matching pool without
// deleting it.
func (p *Pipeline) Deactivate(ctx context.Context, userID core.ID) error {
	profile, err := p.profileRepository.GetProfileByUser(ctx, userID)
	if err != nil {
		return err
	}

	profile.IsActive = false
	_, err = p.profileRepository.UpdateProfiles(ctx, profile)
	return err
}

// enrichAsync submits a profile for background embedding.
// Errors are logged but never fail the intake that triggered them.
func (p *Pipeline) enrichAsync(id core.ID) {
	task := func() {
		if err := p.embeddingProc.process(context.Background(), id); err != nil {
			p.logger.Error("error processing embeddings", "profileID", id, "err", err)
		}
	}
	if err := p.embeddingPool.Submit(task); err != nil {
		p.logger.Error("error submitting embedding task", "profileID", id, "err", err)
	}
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
