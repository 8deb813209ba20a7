// Package scheduler implements the scheduling policy engine: a ready queue
// ordered by descending priority with round-robin placement inside each
// priority class, and a step engine that resolves arrivals, preemption,
// quantum expiry and completion one tick at a time.
package scheduler
