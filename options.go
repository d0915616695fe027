// Copyright 2025 The Rivaas Authors
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

package pathtrie

// Option configures a Trie at construction time. Options are applied in
// order by New and validated afterwards; invalid combinations surface as an
// error from New (or a panic from MustNew).
type Option[T any] func(*Trie[T])

// WithWildcardSuffix sets the trailing marker that makes an inserted path a
// wildcard route. The default is DefaultWildcardSuffix ("/*"). The hosting
// router and the trie must agree on the spelling; the marker is only
// recognized at the very end of a path.
//
// The suffix must be non-empty or validation will fail.
//
// Example:
//
//	t := pathtrie.MustNew(pathtrie.WithWildcardSuffix[string]("/**"))
//	t.Insert("/files/**", handler) // wildcard anchored at "/files"
func WithWildcardSuffix[T any](suffix string) Option[T] {
	return func(t *Trie[T]) {
		t.wildcardSuffix = suffix
	}
}

// WithMetricsRecorder sets an optional metrics recorder for the trie.
// Lookup outcomes and mutations are reported to it; the trie behaves
// identically whether metrics are collected or not.
//
// Example with OpenTelemetry:
//
//	rec, err := pathtrie.NewOTelMetricsRecorder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t := pathtrie.MustNew(pathtrie.WithMetricsRecorder[string](rec))
func WithMetricsRecorder[T any](recorder MetricsRecorder) Option[T] {
	return func(t *Trie[T]) {
		t.metrics = recorder
	}
}

// WithDiagnostics sets a diagnostic handler for the trie.
//
// Diagnostic events are optional informational events, such as a route
// value being silently replaced. The trie functions correctly whether
// diagnostics are collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := pathtrie.DiagnosticHandlerFunc(func(e pathtrie.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	t := pathtrie.MustNew(pathtrie.WithDiagnostics[string](handler))
func WithDiagnostics[T any](handler DiagnosticHandler) Option[T] {
	return func(t *Trie[T]) {
		t.diagnostics = handler
	}
}

// WithBloomFilterSize sets the bloom filter size, in bits, for the table
// built by Compile. The bloom filter short-circuits negative exact-route
// lookups before the hash table is consulted. Larger sizes reduce false
// positives.
//
// Default: 1000
// Recommended: 2-3x the number of exact routes
// Must be > 0 or validation will fail.
func WithBloomFilterSize[T any](size uint64) Option[T] {
	return func(t *Trie[T]) {
		t.bloomFilterSize = size
	}
}

// WithBloomFilterHashFunctions sets the number of hash functions used by
// the compiled table's bloom filter. More hash functions reduce false
// positives up to a point.
//
// Default: 3
// Range: 1-10 (values above 10 are clamped; non-positive values fail
// validation)
func WithBloomFilterHashFunctions[T any](numFuncs int) Option[T] {
	return func(t *Trie[T]) {
		t.bloomHashFunctions = min(numFuncs, 10)
	}
}
