package smartroomate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiPrasanna98/Smartroomate/ai/mock"
	"github.com/SaiPrasanna98/Smartroomate/core"
)

func TestNewDatabase(t *testing.T) {
	t.Run("create new database", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir, WithProvider(mock.NewMockProvider()))
		require.NoError(t, err)
		require.NotNil(t, db)
		defer db.Close()

		assert.NotNil(t, db.ProfileRepository())
		assert.NotNil(t, db.MatchHistoryRepository())
		assert.NotNil(t, db.Geocoder())
		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a database at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		db, err := NewDatabase(tmpFile, WithProvider(mock.NewMockProvider()))
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_Close(t *testing.T) {
	db, err := NewDatabase(t.TempDir(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, db)

	err = db.Close()
	assert.NoError(t, err)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	db, err := NewDatabase(t.TempDir(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, db)
	defer db.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create ranker", func(t *testing.T) {
		ranker, err := db.NewRanker()
		require.NoError(t, err)
		require.NotNil(t, ranker)
		ranker.Release()
	})
}

// End-to-end: intake two profiles, match one against the other.
func TestDatabase_MatchFlow(t *testing.T) {
	db, err := NewDatabase("", WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	ranker, err := db.NewRanker()
	require.NoError(t, err)
	defer ranker.Release()

	ctx := context.Background()
	seeker := &core.Profile{
		UserId: 1, Name: "Priya", Age: 27, Gender: core.GenderFemale,
		Occupation: "Software Engineer", City: "Dallas", ZipCode: "75201",
		RentBudgetMin: 600, RentBudgetMax: 900,
		SleepSchedule: core.SleepEarlyBird, CleanlinessLevel: core.CleanVeryClean,
		NoiseTolerance: core.NoiseQuiet, Hobbies: "reading, hiking",
		PetPreference: core.PreferenceNo, SmokingPreference: core.PreferenceNo,
		LifestyleDescription: "Quiet early riser who works from home most days.",
	}
	roommate := &core.Profile{
		UserId: 2, Name: "Sam", Age: 30, Gender: core.GenderMale,
		Occupation: "Nurse", City: "Dallas", ZipCode: "75202",
		RentBudgetMin: 700, RentBudgetMax: 1000,
		SleepSchedule: core.SleepEarlyBird, CleanlinessLevel: core.CleanVeryClean,
		NoiseTolerance: core.NoiseQuiet, Hobbies: "cooking, running",
		PetPreference: core.PreferenceNo, SmokingPreference: core.PreferenceNo,
		LifestyleDescription: "Tidy and calm, out of the house on long shifts.",
	}

	_, err = pipeline.AddProfile(ctx, seeker)
	require.NoError(t, err)
	_, err = pipeline.AddProfile(ctx, roommate)
	require.NoError(t, err)

	results, err := ranker.FindMatches(ctx, 1, nil, 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Sam", results[0].Candidate.Name)
	assert.True(t, results[0].LocationMatch)
	assert.True(t, results[0].BudgetMatch)
	assert.GreaterOrEqual(t, results[0].CompatibilityScore, 50.0)
}
