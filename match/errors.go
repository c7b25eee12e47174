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


package match

import "errors"

var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrHistoryRepositoryRequired is returned when a match history repository is not provided.
	ErrHistoryRepositoryRequired = errors.New("match history repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrGeocoderRequired is returned when a geocoder is not provided.
	ErrGeocoderRequired = errors.New("geocoder required")

	// ErrMatchingUnavailable is returned when the candidate pool cannot be listed.
	ErrMatchingUnavailable = errors.New("matching unavailable")

	// ErrSemanticUnavailable indicates that a semantic similarity could not be
	// computed for a pair of profiles.
	ErrSemanticUnavailable = errors.New("semantic similarity unavailable")

	// ErrInvalidMaxAttempts is returned when retry is configured with zero attempts.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")
)
