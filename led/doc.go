// Package led implements the real-time LED streaming engine: a small state
// machine that encodes host-supplied RGB pages into the shared
// waveform-encoded frame buffer and commits whole frames to the display
// scanout buffer.
package led
