// Copyright 2025 Smartroomate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package smartroomate wires the matching engine together: BadgerDB-backed
// repositories, the embedding provider, the intake pipeline, and the ranker.
package smartroomate

import (
	"log/slog"

	"github.com/SaiPrasanna98/Smartroomate/ai"
	"github.com/SaiPrasanna98/Smartroomate/ai/openai"
	"github.com/SaiPrasanna98/Smartroomate/geo"
	"github.com/SaiPrasanna98/Smartroomate/geo/static"
	"github.com/SaiPrasanna98/Smartroomate/ingestion"
	"github.com/SaiPrasanna98/Smartroomate/match"
	"github.com/SaiPrasanna98/Smartroomate/storage"
	"github.com/SaiPrasanna98/Smartroomate/storage/badger"
)

type Database struct {
	backend     *badger.Backend
	profileRepo storage.ProfileRepository
	historyRepo storage.MatchHistoryRepository
	provider    ai.AIProvider
	geocoder    geo.Geocoder
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	geocoder geo.Geocoder
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing the OpenAI client.
// Used by tests to plug in the mock provider.
func WithProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithGeocoder overrides the default static table geocoder.
func WithGeocoder(geocoder geo.Geocoder) DatabaseOption {
	return func(o *databaseOptions) {
		o.geocoder = geocoder
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	profileRepo, err := badger.NewProfileRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	historyRepo, err := badger.NewMatchHistoryRepository(backend)
	if err != nil {
		profileRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			historyRepo.Close()
			profileRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	geocoder := options.geocoder
	if geocoder == nil {
		geocoder = static.NewGeocoder()
	}

	return &Database{
		backend:     backend,
		profileRepo: profileRepo,
		historyRepo: historyRepo,
		provider:    provider,
		geocoder:    geocoder,
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.historyRepo.Close(); err != nil {
		db.logger.Error("error closing match history repository", "err", err)
		return err
	}
	if err := db.profileRepo.Close(); err != nil {
		db.logger.Error("error closing profile repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ProfileRepository() storage.ProfileRepository {
	return db.profileRepo
}

func (db *Database) MatchHistoryRepository() storage.MatchHistoryRepository {
	return db.historyRepo
}

func (db *Database) Geocoder() geo.Geocoder {
	return db.geocoder
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.profileRepo, db.provider, opts...)
}

func (db *Database) NewRanker(opts ...match.RankerOption) (*match.Ranker, error) {
	return match.NewRanker(db.profileRepo, db.historyRepo, db.provider, db.geocoder, opts...)
}
