package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *Profile {
	return &Profile{
		UserId:               42,
		Name:                 "Jordan",
		Age:                  27,
		Gender:               GenderNonBinary,
		Occupation:           "Software Engineer",
		City:                 "Dallas",
		ZipCode:              "75201",
		RentBudgetMin:        600,
		RentBudgetMax:        800,
		SleepSchedule:        SleepEarlyBird,
		CleanlinessLevel:     CleanVeryClean,
		NoiseTolerance:       NoiseQuiet,
		Hobbies:              "hiking, cooking, board games",
		PetPreference:        PreferenceYes,
		SmokingPreference:    PreferenceNo,
		LifestyleDescription: "Quiet early riser who likes a tidy home and weekend hikes.",
		IsActive:             true,
	}
}

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("hello world")
		id2 := IDFromContent("hello world")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different id", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("hello"), IDFromContent("world"))
	})
}

func TestFeatureText(t *testing.T) {
	p := testProfile()

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, p.FeatureText(), p.FeatureText())
	})

	t.Run("fixed field order", func(t *testing.T) {
		lines := strings.Split(p.FeatureText(), "\n")
		require.Len(t, lines, 8)
		assert.Equal(t, "Occupation: Software Engineer", lines[0])
		assert.Equal(t, "Sleep Schedule: Early Bird", lines[1])
		assert.Equal(t, "Cleanliness: Very Clean", lines[2])
		assert.Equal(t, "Noise Tolerance: Quiet", lines[3])
		assert.Equal(t, "Hobbies: hiking, cooking, board games", lines[4])
		assert.Equal(t, "Pet Preference: Yes", lines[5])
		assert.Equal(t, "Smoking Preference: No", lines[6])
		assert.Equal(t, "Lifestyle: Quiet early riser who likes a tidy home and weekend hikes.", lines[7])
	})

	t.Run("no leading or trailing whitespace", func(t *testing.T) {
		text := p.FeatureText()
		assert.Equal(t, strings.TrimSpace(text), text)
	})

	t.Run("feature hash tracks content", func(t *testing.T) {
		h1 := p.CurrentFeatureHash()
		changed := *p
		changed.Hobbies = "knitting"
		assert.NotEqual(t, h1, changed.CurrentFeatureHash())
		assert.Equal(t, h1, p.CurrentFeatureHash())
	})
}

func TestBudgetsOverlap(t *testing.T) {
	t.Run("overlapping", func(t *testing.T) {
		assert.True(t, BudgetsOverlap(600, 800, 700, 900))
	})

	t.Run("touching boundary counts as overlap", func(t *testing.T) {
		assert.True(t, BudgetsOverlap(600, 700, 700, 800))
		assert.True(t, BudgetsOverlap(100, 200, 200, 300))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.False(t, BudgetsOverlap(600, 800, 1000, 1200))
	})

	t.Run("symmetric", func(t *testing.T) {
		cases := [][4]int{
			{600, 800, 700, 900},
			{600, 700, 700, 800},
			{600, 800, 1000, 1200},
			{0, 0, 0, 0},
		}
		for _, c := range cases {
			assert.Equal(t,
				BudgetsOverlap(c[0], c[1], c[2], c[3]),
				BudgetsOverlap(c[2], c[3], c[0], c[1]),
				"overlap must be symmetric for %v", c)
		}
	})

	t.Run("contained range", func(t *testing.T) {
		assert.True(t, BudgetsOverlap(500, 1500, 700, 900))
	})
}

func TestEnumRoundTrips(t *testing.T) {
	t.Run("gender", func(t *testing.T) {
		for _, g := range []Gender{GenderMale, GenderFemale, GenderNonBinary, GenderOther} {
			parsed, err := ParseGender(g.String())
			require.NoError(t, err)
			assert.Equal(t, g, parsed)
		}
		_, err := ParseGender("unknown")
		assert.ErrorIs(t, err, ErrInvalidGender)
	})

	t.Run("sleep schedule", func(t *testing.T) {
		for _, s := range []SleepSchedule{SleepEarlyBird, SleepNightOwl, SleepFlexible} {
			parsed, err := ParseSleepSchedule(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
		_, err := ParseSleepSchedule("Midday")
		assert.ErrorIs(t, err, ErrInvalidSleepSchedule)
	})

	t.Run("cleanliness", func(t *testing.T) {
		for _, c := range []CleanlinessLevel{CleanVeryClean, CleanModeratelyClean, CleanRelaxed} {
			parsed, err := ParseCleanlinessLevel(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
		_, err := ParseCleanlinessLevel("Spotless")
		assert.ErrorIs(t, err, ErrInvalidCleanlinessLevel)
	})

	t.Run("noise tolerance", func(t *testing.T) {
		for _, n := range []NoiseTolerance{NoiseQuiet, NoiseModerate, NoiseLoudOK} {
			parsed, err := ParseNoiseTolerance(n.String())
			require.NoError(t, err)
			assert.Equal(t, n, parsed)
		}
		_, err := ParseNoiseTolerance("Silent")
		assert.ErrorIs(t, err, ErrInvalidNoiseTolerance)
	})

	t.Run("preference", func(t *testing.T) {
		for _, p := range []Preference{PreferenceYes, PreferenceNo, PreferenceEither} {
			parsed, err := ParsePreference(p.String())
			require.NoError(t, err)
			assert.Equal(t, p, parsed)
		}
		_, err := ParsePreference("Maybe")
		assert.ErrorIs(t, err, ErrInvalidPreference)
	})
}

func TestHistoryEntry(t *testing.T) {
	p := testProfile()
	p.Id = 7
	dist := 12.3
	result := &MatchResult{
		Candidate:          p,
		CompatibilityScore: 84.5,
		SemanticSimilarity: 79.0,
		LocationMatch:      true,
		BudgetMatch:        true,
		DistanceMiles:      &dist,
	}

	entry := result.HistoryEntry(99, result.Candidate.InsertedAt)
	assert.Equal(t, ID(99), entry.UserId)
	assert.Equal(t, p.UserId, entry.MatchedUserId)
	assert.Equal(t, 84.5, entry.CompatibilityScore)
	assert.Equal(t, 79.0, entry.SemanticSimilarity)
	assert.True(t, entry.LocationMatch)
	assert.True(t, entry.BudgetMatch)
	require.NotNil(t, entry.DistanceMiles)
	assert.Equal(t, 12.3, *entry.DistanceMiles)
}
