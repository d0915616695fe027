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

// LookupResult classifies the outcome of a single Lookup call.
type LookupResult string

const (
	// LookupExact means an exact route matched the full path.
	LookupExact LookupResult = "exact"

	// LookupWildcard means no exact route matched and the value came from
	// the closest enclosing wildcard route.
	LookupWildcard LookupResult = "wildcard"

	// LookupMiss means no route applied to the path.
	LookupMiss LookupResult = "miss"
)

// MutationOp classifies a mutating trie operation.
type MutationOp string

const (
	// MutationInsert means Insert stored a value at a previously vacant slot.
	MutationInsert MutationOp = "insert"

	// MutationReplace means Insert overwrote an existing value.
	MutationReplace MutationOp = "replace"

	// MutationRemove means Remove cleared a stored value.
	MutationRemove MutationOp = "remove"
)

// MetricsRecorder receives measurements from a Trie. Implementations
// typically forward to a metrics system; NewOTelMetricsRecorder provides an
// OpenTelemetry-backed implementation.
//
// The recorder is called synchronously on the lookup hot path, so
// implementations should be cheap and must not block.
//
// Thread safety: implementations must be safe for concurrent use whenever
// the trie itself is read concurrently.
type MetricsRecorder interface {
	// RecordLookup is called once per Lookup with the match outcome.
	RecordLookup(result LookupResult)

	// RecordMutation is called once per successful Insert or Remove with
	// the operation kind and the trie's value count after the operation.
	RecordMutation(op MutationOp, size int)
}
