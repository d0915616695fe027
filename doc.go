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

// Package pathtrie provides a compressed prefix tree that maps URL-style
// path strings to values, with wildcard fallback routes.
//
// The trie is the lookup core for a routing layer: it models "does a value
// exist at this path", while HTTP methods, headers, parameter capture and
// transport remain the host's concern. Common prefixes are stored once
// ("/api/v1/users" and "/api/v1/posts" share one "/api/v1/" node), so lookup
// cost is bounded by the path length rather than the number of routes, and
// adversarially long or deeply segmented paths cannot blow up the tree.
//
// # Key Features
//
//   - Exact and wildcard routes with exact-over-wildcard precedence
//   - Closest enclosing wildcard wins among nested wildcard routes
//   - Maximal prefix compression maintained across inserts and removals
//   - Optional compiled exact-route table with bloom-filtered negative lookups
//   - Optional textual tree visualization for debugging
//   - Optional OpenTelemetry metrics and diagnostic event hooks
//
// # Wildcard Routes
//
// A path ending in the wildcard suffix (default "/*", configurable with
// WithWildcardSuffix) registers a fallback covering the literal prefix and
// every path beneath it:
//
//	t := pathtrie.MustNew[string]()
//	t.Insert("/api/*", "api_fallback")    // wildcard
//	t.Insert("/api/users", "users")       // exact, takes precedence
//
//	t.Lookup("/api/users")       // "users", exact match
//	t.Lookup("/api/posts/123")   // "api_fallback", wildcard match
//	t.Lookup("/auth/login")      // miss
//
// The marker is recognized only at the very end of an inserted path. In any
// other position it is ordinary path bytes: Insert("/a/*/b", v) registers
// the literal path "/a/*/b". Paths are compared byte-wise with no encoding
// normalization or case folding; hosts that need either apply it before
// calling in.
//
// # Constructor Pattern
//
//   - New returns (*Trie, error): a trie is plain memory and cannot fail to
//     construct, but options are validated at application time.
//   - MustNew panics on invalid configuration, for failing fast at startup.
//   - All configuration options use the "With" prefix.
//
// # Thread Safety
//
// A Trie is not internally synchronized. The intended model is a
// single-threaded registration phase followed by a read-only serving phase,
// during which concurrent Lookup calls are safe. Hosts that mutate at
// serving time must wrap the trie in their own lock, or swap immutable
// snapshots.
//
// # Compiled Lookups
//
// After registration, Compile builds a hash table of all exact routes
// fronted by a bloom filter, so exact hits and definite misses skip tree
// traversal. Compiling never changes lookup results and any later mutation
// safely discards the table:
//
//	for path, handler := range routes {
//	    t.Insert(path, handler)
//	}
//	t.Compile()
//
// # Observability
//
// Lookup outcomes and mutations can be reported through a MetricsRecorder
// (an OpenTelemetry implementation is provided) and noteworthy events, such
// as a value being silently replaced, through a DiagnosticHandler:
//
//	rec, err := pathtrie.NewOTelMetricsRecorder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t := pathtrie.MustNew(
//	    pathtrie.WithMetricsRecorder[string](rec),
//	    pathtrie.WithDiagnostics[string](handler),
//	)
package pathtrie
