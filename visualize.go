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
	"slices"
	"strings"
)

// Visualize renders the tree structure as indented text for debugging:
// one line per node with its quoted prefix and markers for stored values,
// connected with box-drawing characters. Children are ordered by their
// first byte, so the same tree always renders the same text.
//
// Visualize never mutates the trie and is safe on any reachable tree shape,
// including an empty one.
//
// Example output:
//
//	(root)
//	└── "/a" [exact: home]
//	    ├── "dmin" [exact: admin]
//	    └── "pi" [wildcard: api_fallback]
func (t *Trie[T]) Visualize() string {
	if t.root.exact == nil && t.root.wildcard == nil && len(t.root.edges) == 0 {
		return "(empty trie)\n"
	}

	var b strings.Builder
	t.root.render(&b, "", true, true)
	return b.String()
}

// render writes n and its subtree to b. indent is the accumulated prefix
// for this depth; last and root select the connector.
func (n *node[T]) render(b *strings.Builder, indent string, last, root bool) {
	if !root {
		connector := "├── "
		if last {
			connector = "└── "
		}
		b.WriteString(indent)
		b.WriteString(connector)
	}

	if root && n.prefix == "" {
		b.WriteString("(root)")
	} else {
		fmt.Fprintf(b, "%q", n.prefix)
	}

	var markers []string
	if n.exact != nil {
		markers = append(markers, fmt.Sprintf("exact: %v", *n.exact))
	}
	if n.wildcard != nil {
		markers = append(markers, fmt.Sprintf("wildcard: %v", *n.wildcard))
	}
	if len(markers) > 0 {
		fmt.Fprintf(b, " [%s]", strings.Join(markers, ", "))
	}
	b.WriteByte('\n')

	childIndent := ""
	if !root {
		childIndent = indent + "    "
		if !last {
			childIndent = indent + "│   "
		}
	}

	// Edges are stored in insertion order; sort a copy by label so the
	// rendering is deterministic.
	ordered := slices.Clone(n.edges)
	slices.SortFunc(ordered, func(a, b edge[T]) int {
		return int(a.label) - int(b.label)
	})

	for i, e := range ordered {
		e.node.render(b, childIndent, i == len(ordered)-1, false)
	}
}
