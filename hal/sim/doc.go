// Package sim provides in-memory implementations of the hal interfaces plus
// a Host harness that replays the firmware's call sites: connect, control
// requests with stock-handler fallback, vendor command staging, and the
// main-loop poll. It backs the test suite and the examples without
// hardware.
package sim
