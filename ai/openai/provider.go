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


package openai

import (
	"github.com/SaiPrasanna98/Smartroomate/ai"
)

// Provider implements ai.AIProvider for OpenAI-compatible services.
// It manages the embedder lifecycle and shares configuration across services.
type Provider struct {
	embedder *Embedder
}

var _ ai.AIProvider = (*Provider)(nil)

// NewProvider creates a provider with services configured from config.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	return &Provider{embedder: embedder}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Close releases resources held by the provider.
// The underlying HTTP client needs no explicit shutdown.
func (p *Provider) Close() error {
	return nil
}
