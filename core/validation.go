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


package core

import "fmt"

// ValidateProfile validates a Profile according to domain rules.
//
// Validation rules:
//   - Name, Occupation, City and Hobbies must not be empty
//   - Age must be within 18-100 inclusive
//   - ZipCode must be 5-10 characters
//   - RentBudgetMin/Max must be non-negative with min <= max
//   - All enumerated fields must hold values from their closed sets
//   - LifestyleDescription must be at least 10 characters
//
// NOT validated (populated by processors):
//   - Vector and FeatureHash (empty until the embedding processor runs)
//   - ID (0 is valid for unsaved query profiles)
func ValidateProfile(p *Profile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if p.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyName)
	}

	if p.Age < 18 || p.Age > 100 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidProfile, ErrInvalidAge, p.Age)
	}

	if err := ValidateGender(p.Gender); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	if p.Occupation == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyOccupation)
	}

	if p.City == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyCity)
	}

	if len(p.ZipCode) < 5 || len(p.ZipCode) > 10 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrInvalidZipCode)
	}

	if p.RentBudgetMin < 0 || p.RentBudgetMax < 0 || p.RentBudgetMin > p.RentBudgetMax {
		return fmt.Errorf("%w: %w [%d, %d]", ErrInvalidProfile, ErrInvalidBudget,
			p.RentBudgetMin, p.RentBudgetMax)
	}

	if err := ValidateSleepSchedule(p.SleepSchedule); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	if err := ValidateCleanlinessLevel(p.CleanlinessLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	if err := ValidateNoiseTolerance(p.NoiseTolerance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	if p.Hobbies == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyHobbies)
	}

	if err := ValidatePreference(p.PetPreference); err != nil {
		return fmt.Errorf("%w: pet %w", ErrInvalidProfile, err)
	}

	if err := ValidatePreference(p.SmokingPreference); err != nil {
		return fmt.Errorf("%w: smoking %w", ErrInvalidProfile, err)
	}

	if len(p.LifestyleDescription) < 10 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrShortLifestyle)
	}

	return nil
}

// ValidateGender validates that a Gender has a valid value.
func ValidateGender(g Gender) error {
	if g < GenderMale || g > GenderOther {
		return fmt.Errorf("%w: value %d", ErrInvalidGender, g)
	}
	return nil
}

// ValidateSleepSchedule validates that a SleepSchedule has a valid value.
func ValidateSleepSchedule(s SleepSchedule) error {
	if s < SleepEarlyBird || s > SleepFlexible {
		return fmt.Errorf("%w: value %d", ErrInvalidSleepSchedule, s)
	}
	return nil
}

// ValidateCleanlinessLevel validates that a CleanlinessLevel has a valid value.
func ValidateCleanlinessLevel(c CleanlinessLevel) error {
	if c < CleanVeryClean || c > CleanRelaxed {
		return fmt.Errorf("%w: value %d", ErrInvalidCleanlinessLevel, c)
	}
	return nil
}

// ValidateNoiseTolerance validates that a NoiseTolerance has a valid value.
func ValidateNoiseTolerance(n NoiseTolerance) error {
	if n < NoiseQuiet || n > NoiseLoudOK {
		return fmt.Errorf("%w: value %d", ErrInvalidNoiseTolerance, n)
	}
	return nil
}

// ValidatePreference validates that a Preference has a valid value.
func ValidatePreference(p Preference) error {
	if p < PreferenceYes || p > PreferenceEither {
		return fmt.Errorf("%w: value %d", ErrInvalidPreference, p)
	}
	return nil
}
