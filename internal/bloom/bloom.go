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

// Package bloom provides a small bloom filter used to short-circuit
// negative exact-path lookups before the compiled route table is probed.
//
// A bloom filter answers "definitely not in the set" with certainty and
// "possibly in the set" with a tunable false-positive rate. Paths that
// fail the filter can skip the hash table entirely, which is the common
// case when most traffic resolves through wildcard routes or misses.
package bloom

import "hash/fnv"

// Filter is a fixed-size bloom filter keyed by FNV-1a. Distinct hash
// functions are derived by XORing the base hash with per-function seeds,
// which avoids re-hashing the input once per function.
//
// A Filter is write-once in practice: fill it during compilation, then
// only Test against it. Concurrent Adds are not synchronized.
type Filter struct {
	bits  []uint64 // Bit array, 64 bits per word
	size  uint64   // Total number of bits
	seeds []uint64 // One seed per derived hash function
}

// New creates a filter with the given number of bits and hash functions.
// size must be positive; numHashFuncs must be at least 1. Callers validate
// both (the trie does so at construction time).
func New(size uint64, numHashFuncs int) *Filter {
	f := &Filter{
		bits:  make([]uint64, (size+63)/64),
		size:  size,
		seeds: make([]uint64, numHashFuncs),
	}
	for i := range numHashFuncs {
		f.seeds[i] = uint64(i + 1) //nolint:gosec // numHashFuncs is small, no overflow
	}
	return f
}

// position maps a seeded hash to a bit index.
func (f *Filter) position(baseHash, seed uint64) uint64 {
	return (baseHash ^ seed) % f.size
}

// Add records data as a member of the set.
func (f *Filter) Add(data []byte) {
	h := fnv.New64a()
	h.Write(data)
	baseHash := h.Sum64()

	for _, seed := range f.seeds {
		pos := f.position(baseHash, seed)
		f.bits[pos/64] |= 1 << (pos % 64)
	}
}

// Test reports whether data might be in the set. A false result is
// definitive; a true result must be confirmed against the backing table.
func (f *Filter) Test(data []byte) bool {
	h := fnv.New64a()
	h.Write(data)
	return f.TestHash(h.Sum64())
}

// TestHash is Test for callers that already computed the FNV-1a hash of
// the input, sparing a second pass over the bytes. Exits on the first
// unset bit, the common case for misses.
func (f *Filter) TestHash(baseHash uint64) bool {
	for _, seed := range f.seeds {
		pos := f.position(baseHash, seed)
		if f.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}
