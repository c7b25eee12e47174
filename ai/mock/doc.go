// Package mock provides test doubles for the ai interfaces.
//
// The mock embedder is deterministic: the same text always produces the
// same vector, which makes semantic-similarity assertions reproducible
// without a live embedding service.
package mock
