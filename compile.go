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
	"hash/fnv"

	"rivaas.dev/pathtrie/internal/bloom"
)

// Below this entry count the bloom filter is skipped: a direct map probe is
// cheaper than hashing through the filter first.
const smallTableCutoff = 10

// exactTable is a compiled lookup table over the trie's exact routes.
// Hits are verified against the stored path, so a hash collision degrades
// to a table miss (resolved by tree traversal) instead of a wrong value.
type exactTable[T any] struct {
	entries map[uint64]exactEntry[T]
	bloom   *bloom.Filter
}

type exactEntry[T any] struct {
	path  string
	value T
}

// Compile builds a hash table of all exact routes, guarded by a bloom
// filter for negative lookups. Lookup consults the table before traversing
// the tree; wildcard resolution always falls back to traversal.
//
// Compile is meant for a registration phase followed by a read-only serving
// phase: call it once after all routes are inserted.
// Any subsequent Insert or Remove discards the table; calling Compile again
// rebuilds it. Compiling is purely an optimization - lookup results are
// identical with or without it.
func (t *Trie[T]) Compile() {
	table := &exactTable[T]{
		entries: make(map[uint64]exactEntry[T], t.size),
		bloom:   bloom.New(max(t.bloomFilterSize, 100), t.bloomHashFunctions),
	}

	t.root.walk("", func(path string, n *node[T]) {
		if n.exact == nil {
			return
		}
		h := fnv.New64a()
		h.Write([]byte(path))
		table.entries[h.Sum64()] = exactEntry[T]{path: path, value: *n.exact}
		table.bloom.Add([]byte(path))
	})

	t.compiled = table
	t.diagnose(DiagnosticEvent{
		Kind:    DiagCompiled,
		Message: "exact-route table compiled",
		Fields: map[string]any{
			"routes":           len(table.entries),
			"bloom_bits":       max(t.bloomFilterSize, 100),
			"bloom_hash_funcs": t.bloomHashFunctions,
		},
	})
}

// lookup returns the value for an exact route, or false when path is not a
// compiled exact route. A false result says nothing about wildcard routes.
func (table *exactTable[T]) lookup(path string) (T, bool) {
	var zero T

	h := fnv.New64a()
	h.Write([]byte(path))
	hash := h.Sum64()

	if len(table.entries) >= smallTableCutoff && !table.bloom.TestHash(hash) {
		return zero, false // Definitely not an exact route
	}

	entry, ok := table.entries[hash]
	if !ok || entry.path != path {
		// Absent, or a hash collision with a different route.
		return zero, false
	}
	return entry.value, true
}
