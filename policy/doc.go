// Package policy defines the scheduling parameters of a simulation run – the
// round-robin time quantum and the simulation horizon.  A policy can be
// attached to a context so that every layer of the simulator sees the same
// parameters without threading them through each call site.
package policy
