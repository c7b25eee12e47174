package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	smartroomate "github.com/SaiPrasanna98/Smartroomate"
	"github.com/SaiPrasanna98/Smartroomate/core"
)

var sampleProfiles = []*core.Profile{
	{
		UserId: 1, Name: "Priya Sharma", Age: 27, Gender: core.GenderFemale,
		Occupation: "Software Engineer", City: "Dallas", ZipCode: "75201",
		RentBudgetMin: 700, RentBudgetMax: 1100,
		SleepSchedule: core.SleepEarlyBird, CleanlinessLevel: core.CleanVeryClean,
		NoiseTolerance: core.NoiseQuiet, Hobbies: "yoga, cooking, reading",
		PetPreference: core.PreferenceNo, SmokingPreference: core.PreferenceNo,
		LifestyleDescription: "Early riser who works from home and keeps a tidy, calm apartment. Weekends are for farmers markets and long walks.",
	},
	{
		UserId: 2, Name: "Marcus Webb", Age: 31, Gender: core.GenderMale,
		Occupation: "Nurse", City: "Dallas", ZipCode: "75202",
		RentBudgetMin: 800, RentBudgetMax: 1200,
		SleepSchedule: core.SleepNightOwl, CleanlinessLevel: core.CleanModeratelyClean,
		NoiseTolerance: core.NoiseModerate, Hobbies: "basketball, video games",
		PetPreference: core.PreferenceEither, SmokingPreference: core.PreferenceNo,
		LifestyleDescription: "Night-shift nurse, quiet during the day and out most evenings. Easygoing about shared spaces.",
	},
	{
		UserId: 3, Name: "Elena Vasquez", Age: 24, Gender: core.GenderFemale,
		Occupation: "Graduate Student", City: "Austin", ZipCode: "78701",
		RentBudgetMin: 500, RentBudgetMax: 850,
		SleepSchedule: core.SleepFlexible, CleanlinessLevel: core.CleanModeratelyClean,
		NoiseTolerance: core.NoiseModerate, Hobbies: "live music, cycling, photography",
		PetPreference: core.PreferenceYes, SmokingPreference: core.PreferenceNo,
		LifestyleDescription: "Grad student with a rescue dog. Loves hosting small dinners and exploring the local music scene.",
	},
	{
		UserId: 4, Name: "Dev Patel", Age: 29, Gender: core.GenderMale,
		Occupation: "Data Analyst", City: "Austin", ZipCode: "78702",
		RentBudgetMin: 600, RentBudgetMax: 1000,
		SleepSchedule: core.SleepEarlyBird, CleanlinessLevel: core.CleanVeryClean,
		NoiseTolerance: core.NoiseQuiet, Hobbies: "running, chess, coffee roasting",
		PetPreference: core.PreferenceNo, SmokingPreference: core.PreferenceNo,
		LifestyleDescription: "Up at six for a run, in bed by ten. Prefers a quiet home where everyone cleans up after themselves.",
	},
	{
		UserId: 5, Name: "Jordan Kim", Age: 26, Gender: core.GenderNonBinary,
		Occupation: "Graphic Designer", City: "New York", ZipCode: "10001",
		RentBudgetMin: 1200, RentBudgetMax: 1800,
		SleepSchedule: core.SleepNightOwl, CleanlinessLevel: core.CleanRelaxed,
		NoiseTolerance: core.NoiseLoudOK, Hobbies: "galleries, vinyl collecting, climbing",
		PetPreference: core.PreferenceEither, SmokingPreference: core.PreferenceEither,
		LifestyleDescription: "Freelance designer who keeps odd hours. Friends over on weekends, music on most of the time.",
	},
	{
		UserId: 6, Name: "Sofia Rossi", Age: 33, Gender: core.GenderFemale,
		Occupation: "Teacher", City: "Chicago", ZipCode: "60601",
		RentBudgetMin: 700, RentBudgetMax: 1100,
		SleepSchedule: core.SleepEarlyBird, CleanlinessLevel: core.CleanVeryClean,
		NoiseTolerance: core.NoiseQuiet, Hobbies: "baking, book club, museums",
		PetPreference: core.PreferenceYes, SmokingPreference: core.PreferenceNo,
		LifestyleDescription: "Elementary school teacher with an old cat. Quiet weeknights, bakes far too much on Sundays.",
	},
	{
		UserId: 7, Name: "Aiden O'Brien", Age: 28, Gender: core.GenderMale,
		Occupation: "Line Cook", City: "Boston", ZipCode: "02101",
		RentBudgetMin: 600, RentBudgetMax: 950,
		SleepSchedule: core.SleepNightOwl, CleanlinessLevel: core.CleanModeratelyClean,
		NoiseTolerance: core.NoiseModerate, Hobbies: "hockey, concerts, cooking at home",
		PetPreference: core.PreferenceNo, SmokingPreference: core.PreferenceEither,
		LifestyleDescription: "Works closing shifts at a restaurant, home after midnight. Keeps the kitchen spotless, the rest lived-in.",
	},
}

var dbPath = flag.String("db", "./smartroomate-db", "path to BadgerDB database directory")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	db, err := smartroomate.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()
	for _, profile := range sampleProfiles {
		added, err := pipeline.AddProfile(ctx, profile)
		if err != nil {
			panic(err)
		}
		slog.Info("seeded profile", "id", added.Id, "user", added.UserId, "name", added.Name)
	}
}
