// Copyright (c) Partlane
// SPDX-License-Identifier: Apache-2.0

// Package tracing contains helpers shared by tracing middlewares.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// StartSpan starts a span only when the surrounding context is already
// sampled, so internal operations do not create orphan root spans.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}

	return tracer.Start(ctx, name, opts...)
}
