// Package monsmod implements an in-device hook runtime for MonsGeek and
// Akko wireless keyboards: it extends the HID report descriptor with a
// battery appendix, answers battery feature reads the stock firmware would
// stall, carries a vendor command channel for identity, LED streaming and
// log readout, and publishes battery telemetry to a probe-readable ring.
//
// The runtime attaches to four fixed points in the host firmware (connect,
// class setup, vendor dispatch, battery monitor) and touches nothing else.
// Hardware access goes through the interfaces in package hal; package
// hal/sim provides an in-memory implementation for tests and host-side
// experiments.
package monsmod
