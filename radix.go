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

// edge links a node to one child, discriminated by the first byte of the
// child's prefix (avoids map hashing in the hot path).
type edge[T any] struct {
	label byte
	node  *node[T]
}

// node is a compressed trie node.
//
// prefix holds the path bytes consumed between the parent and this node;
// the root's prefix is empty. A node may carry two independent values:
// exact (a route terminating precisely at this node) and wildcard (a route
// registered for this node's full path plus the wildcard suffix, covering
// every path beneath it).
//
// Structural invariants, restored after every mutation:
//  1. No non-root node is valueless with exactly one child; such chains are
//     merged into a single node with the concatenated prefix.
//  2. Children of a node have pairwise-distinct first bytes.
//  3. No reachable node is valueless with no children.
//
// Thread safety:
// Nodes are not synchronized. Mutation must happen during a single-threaded
// registration phase; afterwards the tree is safe for concurrent reads.
type node[T any] struct {
	prefix   string
	edges    []edge[T] // Per-byte children (linear scan for traversal)
	exact    *T        // Value for a route ending exactly at this node
	wildcard *T        // Value for a wildcard route anchored at this node
}

// findChild returns the child whose prefix starts with label, or nil.
func (n *node[T]) findChild(label byte) *node[T] {
	for i := range n.edges {
		if n.edges[i].label == label {
			return n.edges[i].node
		}
	}
	return nil
}

// childIndex returns the edge index for label, or -1.
func (n *node[T]) childIndex(label byte) int {
	for i := range n.edges {
		if n.edges[i].label == label {
			return i
		}
	}
	return -1
}

// insert stores value at path below n, splitting n when the path diverges
// partway through its prefix. Reports whether an existing value of the same
// kind was replaced.
func (n *node[T]) insert(path string, value T, wild bool) bool {
	common := commonPrefixLen(n.prefix, path)

	// The path diverges inside this node's prefix: split so the shared
	// portion becomes a branch point and the old suffix a child.
	if common < len(n.prefix) {
		n.split(common)
	}

	if common < len(path) {
		rest := path[common:]
		child := n.findChild(rest[0])
		if child == nil {
			child = &node[T]{prefix: rest}
			n.edges = append(n.edges, edge[T]{label: rest[0], node: child})
		}
		return child.insert(rest, value, wild)
	}

	return n.store(value, wild)
}

// lookup resolves path below n. fallback carries the wildcard value of the
// closest ancestor whose full path is a prefix of the query; it is replaced
// by this node's own wildcard once the node's prefix is fully matched.
//
// Returns the winning value (nil for no match) and whether it came from an
// exact route. Exact matches always outrank wildcards.
func (n *node[T]) lookup(path string, fallback *T) (*T, bool) {
	common := commonPrefixLen(n.prefix, path)
	if common < len(n.prefix) {
		// Diverged inside this node's prefix. The node's full path is not
		// a prefix of the query, so its own wildcard does not apply.
		return fallback, false
	}

	if n.wildcard != nil {
		fallback = n.wildcard
	}

	rest := path[common:]
	if rest == "" {
		if n.exact != nil {
			return n.exact, true
		}
		return fallback, false
	}

	child := n.findChild(rest[0])
	if child == nil {
		return fallback, false
	}
	return child.lookup(rest, fallback)
}

// remove clears the exact or wildcard value at path below n and returns it,
// or nil when no such value exists. After a successful removal each frame
// repairs the child it descended into, which re-compresses the whole spine
// up to (but never including) the root.
func (n *node[T]) remove(path string, wild bool) *T {
	common := commonPrefixLen(n.prefix, path)
	if common < len(n.prefix) {
		return nil
	}

	rest := path[common:]
	if rest == "" {
		return n.take(wild)
	}

	idx := n.childIndex(rest[0])
	if idx < 0 {
		return nil
	}

	removed := n.edges[idx].node.remove(rest, wild)
	if removed != nil {
		n.repair(idx)
	}
	return removed
}

// repair restores the compression invariants for the child at idx after a
// removal beneath it: a valueless leaf is pruned, a valueless single-child
// node is merged with its only child.
func (n *node[T]) repair(idx int) {
	child := n.edges[idx].node
	if child.exact != nil || child.wildcard != nil {
		return
	}

	switch len(child.edges) {
	case 0:
		n.edges = append(n.edges[:idx], n.edges[idx+1:]...)
	case 1:
		grand := child.edges[0].node
		grand.prefix = child.prefix + grand.prefix
		// The merged prefix still begins with the old edge label.
		n.edges[idx].node = grand
	}
}

// split divides n's prefix at the given byte offset. The leading portion
// stays on n (now a pure branch point) and the trailing portion moves to a
// new child that inherits n's values and children.
func (n *node[T]) split(at int) {
	if at >= len(n.prefix) {
		panic("pathtrie: split offset beyond node prefix")
	}

	child := &node[T]{
		prefix:   n.prefix[at:],
		edges:    n.edges,
		exact:    n.exact,
		wildcard: n.wildcard,
	}

	n.prefix = n.prefix[:at]
	n.exact = nil
	n.wildcard = nil
	n.edges = []edge[T]{{label: child.prefix[0], node: child}}
}

// store sets the exact or wildcard slot, reporting whether a previous value
// was replaced.
func (n *node[T]) store(value T, wild bool) bool {
	slot := &n.exact
	if wild {
		slot = &n.wildcard
	}
	replaced := *slot != nil
	*slot = &value
	return replaced
}

// take clears and returns the exact or wildcard slot.
func (n *node[T]) take(wild bool) *T {
	slot := &n.exact
	if wild {
		slot = &n.wildcard
	}
	v := *slot
	*slot = nil
	return v
}

// walk visits n and every node beneath it in depth-first order, passing the
// full path accumulated from the root. Read-only with respect to the tree.
func (n *node[T]) walk(parentPath string, fn func(path string, n *node[T])) {
	full := parentPath + n.prefix
	fn(full, n)
	for i := range n.edges {
		n.edges[i].node.walk(full, fn)
	}
}

// commonPrefixLen returns the length of the longest common byte prefix of
// a and b. Paths are compared byte-wise; no text normalization is applied.
func commonPrefixLen(a, b string) int {
	limit := min(len(a), len(b))
	i := 0
	for i < limit && a[i] == b[i] {
		i++
	}
	return i
}
