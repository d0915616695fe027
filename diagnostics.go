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

// DiagnosticEvent represents a trie diagnostic or anomaly.
//
// Diagnostic events are optional - the trie functions correctly whether
// they are collected or not. They provide visibility into edge cases, such
// as a route value being silently replaced, that a routing table owner may
// want to log or alert on.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagValueReplaced is emitted when Insert overwrites an existing value
	// at the same path and kind.
	DiagValueReplaced DiagnosticKind = "value_replaced"

	// DiagWildcardRegistered is emitted when a wildcard route is inserted.
	// Wildcards silently absorb all paths beneath their anchor, which can
	// surprise hosts that expected a miss.
	DiagWildcardRegistered DiagnosticKind = "wildcard_registered"

	// DiagCompiled is emitted after Compile builds the exact-route table.
	DiagCompiled DiagnosticKind = "compiled"
)

// DiagnosticHandler receives diagnostic events from the trie.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := pathtrie.DiagnosticHandlerFunc(func(e pathtrie.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	t := pathtrie.MustNew(pathtrie.WithDiagnostics[string](handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}
