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


// Package ingestion handles profile intake and enrichment.
//
// New and updated profiles are validated and persisted synchronously; their
// feature-text embeddings are computed on a background worker pool and cached
// on the profile record together with a content hash of the feature text. The
// matching engine reuses a cached vector as long as the hash still matches.
package ingestion
