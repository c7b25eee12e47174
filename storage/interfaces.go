package storage

import (
	"context"

	"github.com/SaiPrasanna98/Smartroomate/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProfileRepository provides operations for managing housing profiles.
type ProfileRepository interface {
	Repository
	// AddProfiles adds one or more profiles to storage.
	// For profiles with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the profiles with generated IDs and timestamps populated.
	AddProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// UpdateProfiles updates existing profiles.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any profile doesn't exist.
	UpdateProfiles(ctx context.Context, profiles ...*core.Profile) ([]*core.Profile, error)

	// DeleteProfiles removes profiles by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any profile doesn't exist.
	DeleteProfiles(ctx context.Context, ids ...core.ID) error

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// GetProfiles retrieves multiple profiles by their IDs.
	// Returns only the profiles that exist (no error for missing profiles).
	GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error)

	// GetProfileByUser retrieves the profile owned by a user.
	// Returns ErrNotFound if the user has no profile.
	GetProfileByUser(ctx context.Context, userID core.ID) (*core.Profile, error)

	// ListActiveProfiles retrieves all active profiles, excluding the one
	// owned by excludeUserID (a user never matches their own profile).
	// Pass 0 to exclude nothing.
	ListActiveProfiles(ctx context.Context, excludeUserID core.ID) ([]*core.Profile, error)
}

// MatchHistoryRepository provides operations for the append-only match history.
// Entries are never updated or deleted once written.
type MatchHistoryRepository interface {
	Repository
	// AppendEntries appends one or more match history entries.
	// Generates IDs from sequence and sets CreatedAt if not already set.
	// Returns the entries with generated IDs and timestamps populated.
	AppendEntries(ctx context.Context, entries ...*core.MatchHistoryEntry) ([]*core.MatchHistoryEntry, error)

	// GetEntriesForUser retrieves a user's match history, newest first.
	// Returns up to limit entries.
	GetEntriesForUser(ctx context.Context, userID core.ID, limit int) ([]*core.MatchHistoryEntry, error)
}
