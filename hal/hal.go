package hal

// The hook runtime shares fixed, statically located memory regions and a few
// transmit primitives with firmware it cannot modify. These interfaces model
// that contract so tests and examples can substitute a simulated backing
// store for the real peripheral space.
//
// All methods are expected to be non-blocking: every hook entry point runs to
// completion on its caller's execution context.

// Store provides access to the shared memory regions owned by the host
// firmware. Slices returned by Store alias the backing regions directly;
// writes through them are visible to the firmware (and, in the simulator, to
// the test harness) immediately.
type Store interface {
	// ReportDescriptor returns the firmware's original interface report
	// descriptor bytes. Read-only by convention.
	ReportDescriptor() []byte

	// LengthMirrors returns the advertised report-descriptor length fields,
	// one 2-byte little-endian slot per configuration context (full-speed,
	// high-speed, OS descriptor, and the live descriptor object).
	LengthMirrors() [][]byte

	// CommandBuffer returns the shared vendor command/response buffer.
	// Byte 0 is the host-set pending flag, byte 2 the command selector;
	// payload and response share the bytes from offset 3.
	CommandBuffer() []byte

	// FrameBuffer returns the waveform-encoded LED frame buffer written by
	// the streaming engine.
	FrameBuffer() []byte

	// DisplayBuffer returns the buffer consumed by the display scanout
	// hardware. Data becomes visible only when copied here.
	DisplayBuffer() []byte

	// TelemetryRegion returns the raw region scanned by the external debug
	// probe: control header followed by the telemetry ring.
	TelemetryRegion() []byte

	// EffectMode returns the firmware's current display-effect selector.
	EffectMode() uint8

	// SetEffectMode overwrites the display-effect selector. An out-of-range
	// value makes the firmware's animation dispatch fall through to a no-op
	// default.
	SetEffectMode(mode uint8)
}

// ControlPort starts IN transfers on the control endpoint. The caller must
// cap the transfer at the requester's wLength: exceeding it wedges the
// firmware's EP0 state machine.
type ControlPort interface {
	Transmit(data []byte)
}

// NotifyPort pushes unsolicited reports on the interrupt IN endpoint.
type NotifyPort interface {
	// TryTransmit sends data if the endpoint is idle and reports whether the
	// data was accepted. It never blocks: a busy endpoint drops the push.
	TryTransmit(data []byte) bool
}

// DeviceState exposes the already-decoded sensor and connectivity fields
// maintained by the host firmware.
type DeviceState interface {
	// BatteryLevel returns the debounced battery level, 0-100.
	BatteryLevel() uint8

	// Charging reports whether the charger is connected.
	Charging() bool

	// RawBatteryLevel returns the pre-debounce battery level.
	RawBatteryLevel() uint8

	// ChargerDebounce returns the charger debounce counter.
	ChargerDebounce() uint8

	// BatteryUpdateCount returns the battery update counter.
	BatteryUpdateCount() uint8

	// IndicatorActive reports whether the battery indicator is active.
	IndicatorActive() bool

	// ADCAverage returns the averaged battery ADC reading.
	ADCAverage() uint16

	// ScanCount returns the free-running ADC scan counter.
	ScanCount() uint32
}
