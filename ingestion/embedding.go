package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SaiPrasanna98/Smartroomate/ai"
	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/SaiPrasanna98/Smartroomate/storage"
)

// embeddingProcessor computes and caches feature-text embeddings on profiles.
type embeddingProcessor struct {
	profileRepository storage.ProfileRepository
	embedder          ai.Embedder
	logger            *slog.Logger
}

// newEmbeddingProcessor creates a new embedding processor.
func newEmbeddingProcessor(profileRepository storage.ProfileRepository, embedder ai.Embedder, logger *slog.Logger) (*embeddingProcessor, error) {
	if profileRepository == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrAIProviderRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		profileRepository: profileRepository,
		embedder:          embedder,
		logger:            logger.With("processor", "embeddings"),
	}, nil
}

// process computes embeddings for the specified profiles.
// Profiles whose cached vector still matches their feature text are skipped.
func (ep *embeddingProcessor) process(ctx context.Context, ids ...core.ID) error {
	ep.logger.Info("processing profiles for embeddings", "profiles", len(ids))

	slices.Sort(ids)

	profiles, err := ep.profileRepository.GetProfiles(ctx, ids...)
	if err != nil {
		ep.logger.Error("error retrieving profiles", "err", err)
		return err
	}

	stale := make([]*core.Profile, 0, len(profiles))
	for _, profile := range profiles {
		if len(profile.Vector) > 0 && profile.FeatureHash == profile.CurrentFeatureHash() {
			continue
		}
		stale = append(stale, profile)
	}
	if len(stale) == 0 {
		return nil
	}

	texts := make([]string, len(stale))
	for i, profile := range stale {
		texts[i] = profile.FeatureText()
	}

	ep.logger.Debug("generating embeddings for profiles", "profiles", len(texts))
	embeddings, err := ep.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(stale) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(stale), len(embeddings))
	}

	for i := range embeddings {
		stale[i].Vector = embeddings[i]
		stale[i].FeatureHash = stale[i].CurrentFeatureHash()
	}

	_, err = ep.profileRepository.UpdateProfiles(ctx, stale...)
	return err
}
