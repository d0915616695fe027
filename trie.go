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

import (
	"fmt"
	"strings"
)

// DefaultWildcardSuffix is the trailing marker that makes an inserted path
// a wildcard route. It can be changed per trie with WithWildcardSuffix.
const DefaultWildcardSuffix = "/*"

const (
	defaultBloomFilterSize    = 1000
	defaultBloomHashFunctions = 3
)

// Trie maps hierarchical path strings to values of type T.
//
// Paths are matched against a compressed prefix tree, so lookup cost is
// proportional to the path length, not to the number of registered routes.
// A path inserted with the wildcard suffix (default "/*") matches itself and
// everything beneath it; an exact route always beats a wildcard route, and
// among wildcards the closest enclosing one wins.
//
// Thread safety:
// A Trie is not internally synchronized. Register routes during a
// single-threaded configuration phase; once mutation stops, any number of
// goroutines may call Lookup and Visualize concurrently. Callers that must
// interleave mutation with reads own the required locking.
type Trie[T any] struct {
	root node[T]
	size int // Number of stored values (exact and wildcard slots each count)

	wildcardSuffix     string
	bloomFilterSize    uint64
	bloomHashFunctions int

	compiled    *exactTable[T] // Compiled exact-route table, nil until Compile
	metrics     MetricsRecorder
	diagnostics DiagnosticHandler
}

// New creates an empty trie with the given options.
//
// New returns an error only for invalid configuration; an empty trie itself
// cannot fail to construct. Use MustNew when configuration errors should
// abort startup.
func New[T any](opts ...Option[T]) (*Trie[T], error) {
	t := &Trie[T]{
		wildcardSuffix:     DefaultWildcardSuffix,
		bloomFilterSize:    defaultBloomFilterSize,
		bloomHashFunctions: defaultBloomHashFunctions,
	}

	for _, opt := range opts {
		opt(t)
	}

	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("pathtrie configuration validation failed: %w", err)
	}
	return t, nil
}

// MustNew creates an empty trie and panics if the configuration is invalid.
func MustNew[T any](opts ...Option[T]) *Trie[T] {
	t, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("pathtrie.MustNew: %v", err))
	}
	return t
}

// validate checks the trie configuration for common errors. Called by New
// after options are applied.
func (t *Trie[T]) validate() error {
	if t.wildcardSuffix == "" {
		return ErrWildcardSuffixEmpty
	}
	if t.bloomFilterSize == 0 {
		return ErrBloomFilterSizeZero
	}
	if t.bloomHashFunctions <= 0 {
		return ErrBloomHashFunctionsInvalid
	}
	return nil
}

// Insert registers value at path, silently replacing any previous value of
// the same kind. A path ending in the wildcard suffix registers a wildcard
// route anchored at the literal prefix before the suffix; the marker is
// recognized only in trailing position and is ordinary path bytes anywhere
// else. The empty path denotes the exact root route.
//
// Insert invalidates any table built by Compile.
func (t *Trie[T]) Insert(path string, value T) {
	literal, wild := t.splitWildcard(path)
	replaced := t.root.insert(literal, value, wild)
	if !replaced {
		t.size++
	}
	t.compiled = nil

	op := MutationInsert
	if replaced {
		op = MutationReplace
		t.diagnose(DiagnosticEvent{
			Kind:    DiagValueReplaced,
			Message: "existing route value replaced",
			Fields:  map[string]any{"path": path, "wildcard": wild},
		})
	}
	if wild {
		t.diagnose(DiagnosticEvent{
			Kind:    DiagWildcardRegistered,
			Message: "wildcard route registered",
			Fields:  map[string]any{"path": path, "prefix": literal},
		})
	}
	if t.metrics != nil {
		t.metrics.RecordMutation(op, t.size)
	}
}

// Lookup returns the value that handles path, or (zero, false) when no
// route applies. Exact routes strictly outrank wildcard routes; among
// applicable wildcards the closest enclosing one wins. Lookup never mutates
// the trie.
func (t *Trie[T]) Lookup(path string) (T, bool) {
	if t.compiled != nil {
		// Exact routes always win, so a compiled hit is authoritative.
		if v, ok := t.compiled.lookup(path); ok {
			t.recordLookup(LookupExact)
			return v, true
		}
	}

	v, isExact := t.root.lookup(path, nil)
	if v == nil {
		var zero T
		t.recordLookup(LookupMiss)
		return zero, false
	}

	result := LookupWildcard
	if isExact {
		result = LookupExact
	}
	t.recordLookup(result)
	return *v, true
}

// Remove clears the exact (or, with a trailing wildcard suffix, wildcard)
// value at path and returns it, or (zero, false) when no such value exists.
// The tree is re-compressed afterwards: emptied nodes are pruned and
// redundant pass-through nodes are merged, so subsequent lookups fall back
// to the closest remaining enclosing wildcard.
//
// Remove invalidates any table built by Compile.
func (t *Trie[T]) Remove(path string) (T, bool) {
	literal, wild := t.splitWildcard(path)

	v := t.root.remove(literal, wild)
	if v == nil {
		var zero T
		return zero, false
	}

	t.size--
	t.compiled = nil
	if t.metrics != nil {
		t.metrics.RecordMutation(MutationRemove, t.size)
	}
	return *v, true
}

// Len returns the number of stored values. A path registered both as an
// exact and as a wildcard route counts twice.
func (t *Trie[T]) Len() int {
	return t.size
}

// splitWildcard strips a trailing wildcard suffix from path, reporting
// whether one was present.
func (t *Trie[T]) splitWildcard(path string) (string, bool) {
	return strings.CutSuffix(path, t.wildcardSuffix)
}

// diagnose forwards an event to the configured handler, if any.
func (t *Trie[T]) diagnose(e DiagnosticEvent) {
	if t.diagnostics != nil {
		t.diagnostics.OnDiagnostic(e)
	}
}

func (t *Trie[T]) recordLookup(result LookupResult) {
	if t.metrics != nil {
		t.metrics.RecordLookup(result)
	}
}
