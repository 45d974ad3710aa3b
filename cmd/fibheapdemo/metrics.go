package main

import "github.com/VictoriaMetrics/metrics"

// Operation counters for whatever the demo driver itself does to the
// heap. They only ever see driver-observable events (an Insert call, an
// ExtractMin call, ...) — the heap's internal cuts and links are not
// something a collaborator outside the package can instrument.
var (
	insertsTotal      = metrics.NewCounter("fibheap_demo_inserts_total")
	extractsTotal     = metrics.NewCounter("fibheap_demo_extracts_total")
	decreaseKeysTotal = metrics.NewCounter("fibheap_demo_decrease_keys_total")
	deletesTotal      = metrics.NewCounter("fibheap_demo_deletes_total")
)
