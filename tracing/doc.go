// Package tracing integrates OpenTelemetry with the simulator so that a
// simulation run can be inspected as a span with scheduler transitions
// attached as span events.  All instrumentation goes through this package so
// the OpenTelemetry surface stays in one place.
package tracing
