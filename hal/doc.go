// Package hal defines the boundary between the hook runtime and the host
// firmware it is spliced into: the shared memory regions (descriptor length
// mirrors, vendor command buffer, LED frame and display buffers, telemetry
// region), the control and interrupt transmit primitives, and the decoded
// device-state block.
//
// On real hardware each of these is a fixed absolute address or a direct
// call into the firmware image. Here they are interfaces so the runtime can
// run against the simulated backing store in package hal/sim.
package hal
