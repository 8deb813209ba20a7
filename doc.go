// Package schedly simulates preemptive, priority-based CPU scheduling with
// round-robin tie-breaking among equal-priority processes over a fixed
// discrete time horizon.
//
// The simulator ticks through the horizon resolving process arrivals,
// preemption, quantum expiry and completion, and reports per-process
// turnaround and wait time.  It comes with pluggable service layers such as:
//
//   - scheduler – the ready queue and per-tick step engine
//   - simulator – the bounded driver loop and run records
//   - loader    – workload file parsing over abstract storage
//   - report    – Gantt chart and schedule table rendering
//
// End-users typically interact via the high-level Service façade exposed by
// the root package:
//
//	srv := schedly.New()
//	processes, _ := srv.Load(ctx, "workload.txt")
//	run, _ := srv.Simulate(ctx, processes)
//	report.Render(os.Stdout, "priority round-robin", run.Result)
//
// For more details see the individual sub-packages.
package schedly
