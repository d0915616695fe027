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
	"testing"
)

// FuzzTrieOperations drives insert, lookup, and remove with three fuzzed
// paths. The trie must never panic, must keep its structural invariants
// through every mutation, and must honor insert-then-remove round trips,
// whatever bytes the paths contain.
func FuzzTrieOperations(f *testing.F) {
	// Seed corpus with known good/bad inputs
	f.Add("/", "/api/users", "/api/*")
	f.Add("", "", "")
	f.Add("//", "/users//posts", "/*")
	f.Add("/api/*", "/api", "/api/users/*")
	f.Add("/a/*/b", "/*/", "*/")
	f.Add("invalid-path-without-leading-slash", "/very/long/path/with/many/segments", "/üñïçø∂é/∆")
	f.Add("/a", "/ab", "/abc")
	f.Add("/\x00binary\xff", "/\x00", "\xff\xfe")

	f.Fuzz(func(t *testing.T, a, b, c string) {
		trie := MustNew[int]()

		trie.Insert(a, 1)
		verifyInvariants(t, trie)
		trie.Insert(b, 2)
		verifyInvariants(t, trie)
		trie.Insert(c, 3)
		verifyInvariants(t, trie)

		// Every inserted route must be removable exactly once; paths that
		// collide (same literal path and kind) were silently replaced, so
		// the first removal wins and later ones miss.
		seen := make(map[string]bool)
		for _, path := range []string{a, b, c} {
			literal, wild := trie.splitWildcard(path)
			key := fmt.Sprintf("%t|%s", wild, literal)

			_, ok := trie.Remove(path)
			if seen[key] {
				if ok {
					t.Fatalf("second removal of %q succeeded", path)
				}
			} else if !ok {
				t.Fatalf("removal of inserted path %q missed", path)
			}
			seen[key] = true
			verifyInvariants(t, trie)
		}

		if trie.Len() != 0 {
			t.Fatalf("trie not empty after removing all routes: %d left", trie.Len())
		}

		// Lookups on the emptied trie must miss without panicking.
		for _, path := range []string{a, b, c, "/probe"} {
			if _, ok := trie.Lookup(path); ok {
				t.Fatalf("lookup %q matched on an empty trie", path)
			}
		}

		if got := trie.Visualize(); got != "(empty trie)\n" {
			t.Fatalf("emptied trie renders as %q", got)
		}
	})
}

// FuzzLookupAgainstTraversal checks that compiled lookups always agree with
// plain tree traversal.
func FuzzLookupAgainstTraversal(f *testing.F) {
	f.Add("/api/users", "/api/*", "/api/users")
	f.Add("/a", "/b", "/c")
	f.Add("", "/*", "/x/y/z")

	f.Fuzz(func(t *testing.T, routeA, routeB, query string) {
		plain := MustNew[int]()
		compiled := MustNew[int]()
		for _, trie := range []*Trie[int]{plain, compiled} {
			trie.Insert(routeA, 1)
			trie.Insert(routeB, 2)
		}
		compiled.Compile()

		wantV, wantOK := plain.Lookup(query)
		gotV, gotOK := compiled.Lookup(query)
		if wantOK != gotOK || wantV != gotV {
			t.Fatalf("compiled lookup of %q = (%d, %t), traversal = (%d, %t)",
				query, gotV, gotOK, wantV, wantOK)
		}
	})
}
