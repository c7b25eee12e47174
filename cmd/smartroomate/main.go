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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	smartroomate "github.com/SaiPrasanna98/Smartroomate"
	"github.com/SaiPrasanna98/Smartroomate/ai"
	"github.com/SaiPrasanna98/Smartroomate/core"
	"github.com/SaiPrasanna98/Smartroomate/match"
)

func main() {
	// A missing .env file is fine; flags and real env still apply
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "smartroomate",
		Usage: "Roommate matching engine over semantic lifestyle profiles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				EnvVars: []string{"SMARTROOMATE_DB"},
				Value:   "smartroomate-db",
			},
			&cli.StringFlag{
				Name:    "embedding-host",
				Usage:   "Embedding service host URL",
				EnvVars: []string{"SMARTROOMATE_EMBEDDING_HOST"},
				Value:   "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name",
				EnvVars: []string{"SMARTROOMATE_EMBEDDING_MODEL"},
				Value:   "embeddinggemma",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "add-profile",
				Usage:  "Create or update a roommate profile",
				Action: addProfileCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Usage: "Owning user ID", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.IntFlag{Name: "age", Required: true},
					&cli.StringFlag{Name: "gender", Usage: "Male, Female, Non-binary, Other", Required: true},
					&cli.StringFlag{Name: "occupation", Required: true},
					&cli.StringFlag{Name: "city", Required: true},
					&cli.StringFlag{Name: "zip", Usage: "US ZIP code", Required: true},
					&cli.IntFlag{Name: "budget-min", Usage: "Monthly rent budget lower bound", Required: true},
					&cli.IntFlag{Name: "budget-max", Usage: "Monthly rent budget upper bound", Required: true},
					&cli.StringFlag{Name: "sleep", Usage: "Early Bird, Night Owl, Flexible", Required: true},
					&cli.StringFlag{Name: "cleanliness", Usage: "Very Clean, Moderately Clean, Relaxed", Required: true},
					&cli.StringFlag{Name: "noise", Usage: "Quiet, Moderate, Loud OK", Required: true},
					&cli.StringFlag{Name: "hobbies", Required: true},
					&cli.StringFlag{Name: "pets", Usage: "Yes, No, Either", Required: true},
					&cli.StringFlag{Name: "smoking", Usage: "Yes, No, Either", Required: true},
					&cli.StringFlag{Name: "lifestyle", Usage: "Free-form lifestyle description", Required: true},
				},
			},
			{
				Name:   "match",
				Usage:  "Find compatible roommates for a user",
				Action: matchCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Usage: "User to match for", Required: true},
					&cli.IntFlag{Name: "limit", Usage: "Maximum number of matches (1-20)", Value: match.DefaultLimit},
					&cli.Float64Flag{Name: "min-score", Usage: "Minimum compatibility score", Value: match.DefaultThreshold},
					&cli.Uint64Flag{Name: "against", Usage: "Score against a single user instead of the whole pool"},
				},
			},
			{
				Name:   "history",
				Usage:  "Show a user's match history, newest first",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Usage: "User whose history to show", Required: true},
					&cli.IntFlag{Name: "limit", Usage: "Maximum number of entries", Value: 20},
				},
			},
			{
				Name:   "deactivate",
				Usage:  "Remove a user's profile from the matching pool",
				Action: deactivateCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Usage: "User whose profile to deactivate", Required: true},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDatabase(c *cli.Context) (*smartroomate.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return smartroomate.NewDatabase(c.String("db"), smartroomate.WithAIConfig(aiConfig))
}

func addProfileCommand(c *cli.Context) error {
	ctx := context.Background()

	gender, err := core.ParseGender(c.String("gender"))
	if err != nil {
		return err
	}
	sleep, err := core.ParseSleepSchedule(c.String("sleep"))
	if err != nil {
		return err
	}
	cleanliness, err := core.ParseCleanlinessLevel(c.String("cleanliness"))
	if err != nil {
		return err
	}
	noise, err := core.ParseNoiseTolerance(c.String("noise"))
	if err != nil {
		return err
	}
	pets, err := core.ParsePreference(c.String("pets"))
	if err != nil {
		return err
	}
	smoking, err := core.ParsePreference(c.String("smoking"))
	if err != nil {
		return err
	}

	profile := &core.Profile{
		UserId:               core.ID(c.Uint64("user")),
		Name:                 c.String("name"),
		Age:                  c.Int("age"),
		Gender:               gender,
		Occupation:           c.String("occupation"),
		City:                 c.String("city"),
		ZipCode:              c.String("zip"),
		RentBudgetMin:        c.Int("budget-min"),
		RentBudgetMax:        c.Int("budget-max"),
		SleepSchedule:        sleep,
		CleanlinessLevel:     cleanliness,
		NoiseTolerance:       noise,
		Hobbies:              c.String("hobbies"),
		PetPreference:        pets,
		SmokingPreference:    smoking,
		LifestyleDescription: c.String("lifestyle"),
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	added, err := pipeline.AddProfile(ctx, profile)
	if err != nil {
		return err
	}

	fmt.Printf("Profile %d created for user %d (%s, %s)\n",
		added.Id, added.UserId, added.Name, added.City)
	return nil
}

func matchCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ranker, err := db.NewRanker(match.WithThreshold(c.Float64("min-score")))
	if err != nil {
		return err
	}
	defer ranker.Release()

	userID := core.ID(c.Uint64("user"))

	if against := c.Uint64("against"); against != 0 {
		return compatibilityReport(ctx, db, ranker, userID, core.ID(against))
	}

	results, err := ranker.FindMatches(ctx, userID, nil, c.Int("limit"))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No compatible roommates found.")
		return nil
	}

	for i, result := range results {
		printResult(i+1, result)
	}
	return nil
}

func compatibilityReport(ctx context.Context, db *smartroomate.Database, ranker *match.Ranker, userID, againstID core.ID) error {
	query, err := db.ProfileRepository().GetProfileByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading profile for user %d: %w", userID, err)
	}
	candidate, err := db.ProfileRepository().GetProfileByUser(ctx, againstID)
	if err != nil {
		return fmt.Errorf("loading profile for user %d: %w", againstID, err)
	}

	printResult(1, ranker.Compatibility(ctx, query, candidate))
	return nil
}

func printResult(rank int, result *core.MatchResult) {
	fmt.Printf("%d. %s (user %d) — %.1f\n",
		rank, result.Candidate.Name, result.Candidate.UserId, result.CompatibilityScore)
	fmt.Printf("   semantic %.1f, location %v, budget %v\n",
		result.SemanticSimilarity, result.LocationMatch, result.BudgetMatch)
	if len(result.MatchReasons) > 0 {
		fmt.Printf("   %s\n", strings.Join(result.MatchReasons, "; "))
	}
}

func historyCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	userID := core.ID(c.Uint64("user"))
	entries, err := db.MatchHistoryRepository().GetEntriesForUser(ctx, userID, c.Int("limit"))
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No match history for user %d.\n", userID)
		return nil
	}

	for _, entry := range entries {
		distance := "n/a"
		if entry.DistanceMiles != nil {
			distance = fmt.Sprintf("%.1f mi", *entry.DistanceMiles)
		}
		fmt.Printf("%s  matched user %d  score %.1f  (semantic %.1f, location %v, budget %v, %s)\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.MatchedUserId,
			entry.CompatibilityScore, entry.SemanticSimilarity,
			entry.LocationMatch, entry.BudgetMatch, distance)
	}
	return nil
}

func deactivateCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	userID := core.ID(c.Uint64("user"))
	if err := pipeline.Deactivate(ctx, userID); err != nil {
		return err
	}

	fmt.Printf("Profile for user %d removed from the matching pool.\n", userID)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
