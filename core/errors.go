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

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfile indicates a Profile failed validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidAge indicates an age outside the 18-100 range.
	ErrInvalidAge = errors.New("age must be between 18 and 100")

	// ErrInvalidBudget indicates a negative or inverted rent-budget range.
	ErrInvalidBudget = errors.New("invalid rent budget range")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyOccupation indicates the Occupation field is empty.
	ErrEmptyOccupation = errors.New("occupation cannot be empty")

	// ErrEmptyCity indicates the City field is empty.
	ErrEmptyCity = errors.New("city cannot be empty")

	// ErrInvalidZipCode indicates a postal code outside the 5-10 character range.
	ErrInvalidZipCode = errors.New("zip code must be 5 to 10 characters")

	// ErrEmptyHobbies indicates the Hobbies field is empty.
	ErrEmptyHobbies = errors.New("hobbies cannot be empty")

	// ErrShortLifestyle indicates a lifestyle description under 10 characters.
	ErrShortLifestyle = errors.New("lifestyle description must be at least 10 characters")

	// ErrInvalidGender indicates an invalid Gender value.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrInvalidSleepSchedule indicates an invalid SleepSchedule value.
	ErrInvalidSleepSchedule = errors.New("invalid sleep schedule")

	// ErrInvalidCleanlinessLevel indicates an invalid CleanlinessLevel value.
	ErrInvalidCleanlinessLevel = errors.New("invalid cleanliness level")

	// ErrInvalidNoiseTolerance indicates an invalid NoiseTolerance value.
	ErrInvalidNoiseTolerance = errors.New("invalid noise tolerance")

	// ErrInvalidPreference indicates an invalid Preference value.
	ErrInvalidPreference = errors.New("invalid preference")
)
