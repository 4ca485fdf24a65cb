// Package metrics exposes Prometheus counters for session and reminder
// outcomes. Components accept a Recorder; Nop is used when none is set.
package metrics
