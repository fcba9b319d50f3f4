// Package diag implements the always-on diagnostics recorder: a single-slot
// request snapshot, an append-only event ring read back over the vendor
// command channel, and an independent lossy telemetry ring drained by an
// external debug probe.
//
// Both rings are producer-only from the device side. The event ring
// overwrites its oldest bytes on wrap; the telemetry ring drops new records
// when full. Neither ever blocks.
package diag
