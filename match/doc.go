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


// Package match implements the roommate matching engine.
//
// A compatibility score combines three components: semantic similarity of the
// profiles' lifestyle feature text (embeddings, weight 0.5), location
// proximity within a configurable mile radius (weight 0.3), and rent budget
// overlap (weight 0.2). The Ranker scores an entire candidate pool
// concurrently, filters by a minimum score, ranks the survivors, and appends
// them to the match history in the background.
//
// Component failures degrade gracefully: a profile that cannot be embedded or
// geocoded loses that component of its score but is never dropped from the
// pool, and history persistence failures never remove results from a
// response.
package match
