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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualizeEmptyTrie(t *testing.T) {
	trie := MustNew[string]()
	assert.Equal(t, "(empty trie)\n", trie.Visualize())
}

func TestVisualizeStructure(t *testing.T) {
	trie := MustNew[string]()
	trie.Insert("/", "home")
	trie.Insert("/api/*", "api_fallback")
	trie.Insert("/api/v1/users", "users_v1")
	trie.Insert("/api/v1/posts", "posts_v1")
	trie.Insert("/admin/dashboard", "admin")

	out := trie.Visualize()

	assert.True(t, strings.HasPrefix(out, "(root)\n"))
	assert.Contains(t, out, `[exact: home]`)
	assert.Contains(t, out, `[wildcard: api_fallback]`)
	assert.Contains(t, out, `[exact: users_v1]`)
	assert.Contains(t, out, `[exact: posts_v1]`)
	assert.Contains(t, out, "└── ")
	assert.Contains(t, out, "├── ")

	// Rendering must not disturb the trie.
	got, ok := trie.Lookup("/api/v1/users")
	require.True(t, ok)
	assert.Equal(t, "users_v1", got)
	verifyInvariants(t, trie)
}

func TestVisualizeExactOutput(t *testing.T) {
	trie := MustNew[string]()
	trie.Insert("/a", "home")
	trie.Insert("/admin", "admin")
	trie.Insert("/api/*", "api_fallback")

	want := "(root)\n" +
		"└── \"/a\" [exact: home]\n" +
		"    ├── \"dmin\" [exact: admin]\n" +
		"    └── \"pi\" [wildcard: api_fallback]\n"
	assert.Equal(t, want, trie.Visualize())
}

func TestVisualizeDeterministic(t *testing.T) {
	// Insertion order changes edge order internally; the rendering must
	// not depend on it.
	build := func(paths []string) *Trie[int] {
		trie := MustNew[int]()
		for i, p := range paths {
			trie.Insert(p, i%2)
		}
		return trie
	}

	a := build([]string{"/x", "/y", "/z/deep", "/z/down"})
	b := build([]string{"/z/down", "/x", "/z/deep", "/y"})

	// Values differ between the two orders, so compare shapes only.
	stripValues := func(s string) string {
		var lines []string
		for _, line := range strings.Split(s, "\n") {
			if i := strings.Index(line, " ["); i >= 0 {
				line = line[:i]
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")
	}
	assert.Equal(t, stripValues(a.Visualize()), stripValues(b.Visualize()))
}

func TestVisualizeRootValue(t *testing.T) {
	trie := MustNew[string]()
	trie.Insert("", "everything")
	assert.Equal(t, "(root) [exact: everything]\n", trie.Visualize())
}
