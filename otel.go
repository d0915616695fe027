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
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName identifies this library to OpenTelemetry meter providers.
const meterName = "rivaas.dev/pathtrie"

// OTelMetricsRecorder is a MetricsRecorder backed by the OpenTelemetry
// metric API.
//
// Instruments:
//   - pathtrie.lookups (counter): lookups by result (exact/wildcard/miss)
//   - pathtrie.mutations (counter): mutations by operation (insert/replace/remove)
//   - pathtrie.size (gauge): number of stored values after the last mutation
//
// Safe for concurrent use; OpenTelemetry instruments are concurrency-safe.
type OTelMetricsRecorder struct {
	lookups   metric.Int64Counter
	mutations metric.Int64Counter
	size      metric.Int64Gauge
}

// OTelOption configures an OTelMetricsRecorder.
type OTelOption func(*otelConfig)

type otelConfig struct {
	provider metric.MeterProvider
}

// WithMeterProvider sets the meter provider used to create instruments.
// Defaults to the global provider registered with the otel package.
func WithMeterProvider(provider metric.MeterProvider) OTelOption {
	return func(c *otelConfig) {
		c.provider = provider
	}
}

// NewOTelMetricsRecorder creates an OpenTelemetry-backed metrics recorder.
//
// Unlike trie construction, recorder construction can fail: instrument
// creation is delegated to the meter provider, which may reject names or
// configurations. Errors are returned rather than deferred to record time.
func NewOTelMetricsRecorder(opts ...OTelOption) (*OTelMetricsRecorder, error) {
	cfg := otelConfig{provider: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.provider.Meter(meterName)

	lookups, err := meter.Int64Counter("pathtrie.lookups",
		metric.WithDescription("Number of trie lookups by match result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create pathtrie.lookups counter: %w", err)
	}

	mutations, err := meter.Int64Counter("pathtrie.mutations",
		metric.WithDescription("Number of trie mutations by operation"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create pathtrie.mutations counter: %w", err)
	}

	size, err := meter.Int64Gauge("pathtrie.size",
		metric.WithDescription("Number of values stored in the trie"),
		metric.WithUnit("{value}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create pathtrie.size gauge: %w", err)
	}

	return &OTelMetricsRecorder{lookups: lookups, mutations: mutations, size: size}, nil
}

// RecordLookup implements MetricsRecorder.
func (r *OTelMetricsRecorder) RecordLookup(result LookupResult) {
	// Trie operations are synchronous and carry no context; measurements
	// are not tied to a request span.
	r.lookups.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("result", string(result))))
}

// RecordMutation implements MetricsRecorder.
func (r *OTelMetricsRecorder) RecordMutation(op MutationOp, size int) {
	ctx := context.Background()
	r.mutations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("operation", string(op))))
	r.size.Record(ctx, int64(size))
}
