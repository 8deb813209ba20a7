// Package progress provides a lightweight tracker that keeps per-tick process
// counts (pending, ready, running, completed) for a single simulation run.
// The tracker instance lives in the run context – every component that
// receives the context can observe counter updates without requiring a global
// registry.
package progress
