package cli

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/authcorp/libs/go/fantasy/docpath"

// NewTracer returns the tracer of the globally installed provider, which is
// a no-op unless the embedding program installs one.
func NewTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
