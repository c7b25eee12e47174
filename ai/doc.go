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


// Package ai provides abstractions for AI services used by the matching engine.
//
// This package defines the text embedding interface used for semantic
// profile similarity. It follows the dependency inversion principle: the
// core domain and matching logic depend on these abstractions rather than
// on concrete implementations.
//
// Production code uses the OpenAI-compatible implementation in ai/openai;
// tests use the deterministic doubles in ai/mock. The embedder is loaded
// once at process start and shared by reference; it is never instantiated
// per request.
package ai
