package core

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Gender identifies a person's gender on a profile.
type Gender int

const (
	GenderMale Gender = iota + 1
	GenderFemale
	GenderNonBinary
	GenderOther
)

// String returns the canonical wire string for the gender.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderNonBinary:
		return "Non-binary"
	case GenderOther:
		return "Other"
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// ParseGender converts a wire string into a Gender.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "Male":
		return GenderMale, nil
	case "Female":
		return GenderFemale, nil
	case "Non-binary":
		return GenderNonBinary, nil
	case "Other":
		return GenderOther, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

// SleepSchedule describes when a person tends to be awake.
type SleepSchedule int

const (
	SleepEarlyBird SleepSchedule = iota + 1
	SleepNightOwl
	SleepFlexible
)

func (s SleepSchedule) String() string {
	switch s {
	case SleepEarlyBird:
		return "Early Bird"
	case SleepNightOwl:
		return "Night Owl"
	case SleepFlexible:
		return "Flexible"
	}
	return fmt.Sprintf("SleepSchedule(%d)", int(s))
}

// ParseSleepSchedule converts a wire string into a SleepSchedule.
func ParseSleepSchedule(s string) (SleepSchedule, error) {
	switch s {
	case "Early Bird":
		return SleepEarlyBird, nil
	case "Night Owl":
		return SleepNightOwl, nil
	case "Flexible":
		return SleepFlexible, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSleepSchedule, s)
}

// CleanlinessLevel describes how clean a person keeps shared spaces.
type CleanlinessLevel int

const (
	CleanVeryClean CleanlinessLevel = iota + 1
	CleanModeratelyClean
	CleanRelaxed
)

func (c CleanlinessLevel) String() string {
	switch c {
	case CleanVeryClean:
		return "Very Clean"
	case CleanModeratelyClean:
		return "Moderately Clean"
	case CleanRelaxed:
		return "Relaxed"
	}
	return fmt.Sprintf("CleanlinessLevel(%d)", int(c))
}

// ParseCleanlinessLevel converts a wire string into a CleanlinessLevel.
func ParseCleanlinessLevel(s string) (CleanlinessLevel, error) {
	switch s {
	case "Very Clean":
		return CleanVeryClean, nil
	case "Moderately Clean":
		return CleanModeratelyClean, nil
	case "Relaxed":
		return CleanRelaxed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCleanlinessLevel, s)
}

// NoiseTolerance describes how much noise a person accepts at home.
type NoiseTolerance int

const (
	NoiseQuiet NoiseTolerance = iota + 1
	NoiseModerate
	NoiseLoudOK
)

func (n NoiseTolerance) String() string {
	switch n {
	case NoiseQuiet:
		return "Quiet"
	case NoiseModerate:
		return "Moderate"
	case NoiseLoudOK:
		return "Loud OK"
	}
	return fmt.Sprintf("NoiseTolerance(%d)", int(n))
}

// ParseNoiseTolerance converts a wire string into a NoiseTolerance.
func ParseNoiseTolerance(s string) (NoiseTolerance, error) {
	switch s {
	case "Quiet":
		return NoiseQuiet, nil
	case "Moderate":
		return NoiseModerate, nil
	case "Loud OK":
		return NoiseLoudOK, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNoiseTolerance, s)
}

// Preference is a yes/no/either preference, used for pets and smoking.
type Preference int

const (
	PreferenceYes Preference = iota + 1
	PreferenceNo
	PreferenceEither
)

func (p Preference) String() string {
	switch p {
	case PreferenceYes:
		return "Yes"
	case PreferenceNo:
		return "No"
	case PreferenceEither:
		return "Either"
	}
	return fmt.Sprintf("Preference(%d)", int(p))
}

// ParsePreference converts a wire string into a Preference.
func ParsePreference(s string) (Preference, error) {
	switch s {
	case "Yes":
		return PreferenceYes, nil
	case "No":
		return PreferenceNo, nil
	case "Either":
		return PreferenceEither, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPreference, s)
}

// SocialLinks holds optional social media URLs attached to a profile.
type SocialLinks struct {
	Instagram string
	Facebook  string
	LinkedIn  string
	Twitter   string
}

// Profile is a housing-compatibility record for a candidate or query.
// Vector and FeatureHash are populated by the ingestion pipeline and act
// as a cache of the profile's feature-text embedding.
type Profile struct {
	Id                   ID // 0 for an unsaved query profile
	UserId               ID
	Name                 string
	Age                  int
	Gender               Gender
	Occupation           string
	City                 string
	ZipCode              string
	RentBudgetMin        int
	RentBudgetMax        int
	SleepSchedule        SleepSchedule
	CleanlinessLevel     CleanlinessLevel
	NoiseTolerance       NoiseTolerance
	Hobbies              string
	PetPreference        Preference
	SmokingPreference    Preference
	LifestyleDescription string
	Social               SocialLinks
	IsActive             bool
	Vector               []float32 // Cached feature-text embedding (populated by processors)
	FeatureHash          ID        // Content hash of FeatureText when Vector was computed
	InsertedAt           time.Time
	UpdatedAt            time.Time
}

// FeatureText renders the profile's lifestyle features as a fixed-order,
// labeled text block. The output is byte-deterministic for an unmodified
// profile; it is the embedding cache key surface.
func (p *Profile) FeatureText() string {
	var b strings.Builder
	b.WriteString("Occupation: " + p.Occupation + "\n")
	b.WriteString("Sleep Schedule: " + p.SleepSchedule.String() + "\n")
	b.WriteString("Cleanliness: " + p.CleanlinessLevel.String() + "\n")
	b.WriteString("Noise Tolerance: " + p.NoiseTolerance.String() + "\n")
	b.WriteString("Hobbies: " + p.Hobbies + "\n")
	b.WriteString("Pet Preference: " + p.PetPreference.String() + "\n")
	b.WriteString("Smoking Preference: " + p.SmokingPreference.String() + "\n")
	b.WriteString("Lifestyle: " + p.LifestyleDescription)
	return strings.TrimSpace(b.String())
}

// CurrentFeatureHash returns the content hash of the profile's feature text.
// A stored Vector is only valid while FeatureHash equals this value.
func (p *Profile) CurrentFeatureHash() ID {
	return IDFromContent(p.FeatureText())
}

// BudgetsOverlap reports whether two inclusive rent-budget ranges overlap.
// Touching ranges (max1 == min2) count as overlapping.
func BudgetsOverlap(min1, max1, min2, max2 int) bool {
	return max1 >= min2 && max2 >= min1
}

// Coordinate is a latitude/longitude pair resolved from a postal code.
type Coordinate struct {
	Lat float64
	Lon float64
}

// MatchResult is produced per (query, candidate) pair during ranking.
// It is transient; accepted results are persisted as MatchHistoryEntry.
type MatchResult struct {
	Candidate          *Profile
	CompatibilityScore float64 // 0-100, rounded to one decimal
	SemanticSimilarity float64 // 0-100
	LocationMatch      bool
	BudgetMatch        bool
	DistanceMiles      *float64 // nil unless LocationMatch
	MatchReasons       []string
}

// HistoryEntry converts the result into an append-only history record
// keyed by the querying user.
func (m *MatchResult) HistoryEntry(userID ID, at time.Time) *MatchHistoryEntry {
	return &MatchHistoryEntry{
		UserId:             userID,
		MatchedUserId:      m.Candidate.UserId,
		CompatibilityScore: m.CompatibilityScore,
		SemanticSimilarity: m.SemanticSimilarity,
		LocationMatch:      m.LocationMatch,
		BudgetMatch:        m.BudgetMatch,
		DistanceMiles:      m.DistanceMiles,
		CreatedAt:          at,
	}
}

// MatchHistoryEntry is the append-only record of an accepted match.
// Entries are never mutated after being written.
type MatchHistoryEntry struct {
	Id                 ID
	UserId             ID // the querying user
	MatchedUserId      ID
	CompatibilityScore float64
	SemanticSimilarity float64
	LocationMatch      bool
	BudgetMatch        bool
	DistanceMiles      *float64
	CreatedAt          time.Time
}
