package badger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/SaiPrasanna98/Smartroomate/storage"
)

func newTestProfile(userID core.ID, name string) *core.Profile {
	return &core.Profile{
		UserId:               userID,
		Name:                 name,
		Age:                  27,
		Gender:               core.GenderFemale,
		Occupation:           "Software Engineer",
		City:                 "Dallas",
		ZipCode:              "75201",
		RentBudgetMin:        600,
		RentBudgetMax:        900,
		SleepSchedule:        core.SleepEarlyBird,
		CleanlinessLevel:     core.CleanVeryClean,
		NoiseTolerance:       core.NoiseQuiet,
		Hobbies:              "reading, hiking",
		PetPreference:        core.PreferenceNo,
		SmokingPreference:    core.PreferenceNo,
		LifestyleDescription: "Quiet early riser who works from home most days.",
		IsActive:             true,
	}
}

func TestProfileBasics(t *testing.T) {
	profileRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); profileRepo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := profileRepo.AddProfiles(ctx, newTestProfile(10, "Priya"))
	if err != nil {
		t.Fatalf("Failed to add profile: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("Expected 1 profile, got %d", len(added))
	}
	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added[0].InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := profileRepo.GetProfile(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if retrieved.Name != "Priya" {
		t.Fatalf("Expected 'Priya', got '%s'", retrieved.Name)
	}

	byUser, err := profileRepo.GetProfileByUser(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get profile by user: %v", err)
	}
	if byUser.Id != added[0].Id {
		t.Fatalf("Expected profile %d, got %d", added[0].Id, byUser.Id)
	}
}

func TestProfileDuplicateUser(t *testing.T) {
	profileRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); profileRepo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := profileRepo.AddProfiles(ctx, newTestProfile(10, "Priya")); err != nil {
		t.Fatalf("Failed to add profile: %v", err)
	}

	_, err = profileRepo.AddProfiles(ctx, newTestProfile(10, "Imposter"))
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestProfileUpdate(t *testing.T) {
	profileRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); profileRepo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := profileRepo.AddProfiles(ctx, newTestProfile(10, "Priya"))
	if err != nil {
		t.Fatalf("Failed to add profile: %v", err)
	}
	inserted := added[0].InsertedAt

	added[0].City = "Austin"
	added[0].ZipCode = "78701"
	if _, err := profileRepo.UpdateProfiles(ctx, added[0]); err != nil {
		t.Fatalf("Failed to update profile: %v", err)
	}

	retrieved, err := profileRepo.GetProfile(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if retrieved.City != "Austin" {
		t.Fatalf("Expected 'Austin', got '%s'", retrieved.City)
	}
	if !retrieved.InsertedAt.Equal(inserted) {
		t.Fatal("Expected InsertedAt to be preserved across updates")
	}

	// Updating a missing profile fails
	ghost := newTestProfile(99, "Ghost")
	ghost.Id = 4242
	if _, err := profileRepo.UpdateProfiles(ctx, ghost); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestProfileDelete(t *testing.T) {
	profileRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); profileRepo.Close(); backend.Close() }()

	ctx := context.Background()

	added, err := profileRepo.AddProfiles(ctx, newTestProfile(10, "Priya"))
	if err != nil {
		t.Fatalf("Failed to add profile: %v", err)
	}

	if err := profileRepo.DeleteProfiles(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete profile: %v", err)
	}

	if _, err := profileRepo.GetProfile(ctx, added[0].Id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	// User index entry is cleaned up too
	if _, err := profileRepo.GetProfileByUser(ctx, 10); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestListActiveProfiles(t *testing.T) {
	profileRepo, historyRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { historyRepo.Close(); profileRepo.Close(); backend.Close() }()

	ctx := context.Background()

	profiles := make([]*core.Profile, 0, 4)
	for i := 1; i <= 4; i++ {
		profiles = append(profiles, newTestProfile(core.ID(i), fmt.Sprintf("User %d", i)))
	}
	profiles[3].IsActive = false

	if _, err := profileRepo.AddProfiles(ctx, profiles...); err != nil {
		t.Fatalf("Failed to add profiles: %v", err)
	}

	// User 1's pool: users 2 and 3 (4 is inactive, 1 is excluded)
	results, err := profileRepo.ListActiveProfiles(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to list active profiles: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(results))
	}
	for _, p := range results {
		if p.UserId == 1 || !p.IsActive {
			t.Fatalf("Unexpected profile in results: user %d active=%v", p.UserId, p.IsActive)
		}
	}

	// Exclude nothing
	results, err = profileRepo.ListActiveProfiles(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to list active profiles: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 profiles, got %d", len(results))
	}
}
