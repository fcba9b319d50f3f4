package bridge

import (
	"github.com/echtzeit-solutions/monsmod/descriptor"
	"github.com/echtzeit-solutions/monsmod/diag"
	"github.com/echtzeit-solutions/monsmod/hal"
	"github.com/echtzeit-solutions/monsmod/pkg"
)

// batteryInterface is the interface number whose report descriptor carries
// the battery appendix.
const batteryInterface = 1

// batteryRequestType is the exact bmRequestType of the intercepted request:
// device-to-host, class, interface recipient.
const batteryRequestType = hal.RequestDirectionDeviceToHost |
	hal.RequestTypeClass | hal.RequestRecipientInterface

// batteryFeatureValue is the wValue of the intercepted GET_REPORT:
// feature report type in the high byte, battery report ID in the low byte.
const batteryFeatureValue = uint16(hal.ReportTypeFeature)<<8 | descriptor.BatteryReportID

// Bridge intercepts the battery feature GET_REPORT on the control channel
// and leaves every other request, including GET_DESCRIPTOR, to the original
// handler — which is transparently served from the extension buffer the
// bridge keeps populated.
type Bridge struct {
	ext      *descriptor.Extension
	control  hal.ControlPort
	notify   hal.NotifyPort
	state    hal.DeviceState
	snapshot *diag.Snapshot
	log      *diag.EventLog

	setupRaw [hal.SetupPacketSize]byte
}

// New creates a bridge over the given peripherals and recorder state.
func New(ext *descriptor.Extension, control hal.ControlPort, notify hal.NotifyPort,
	state hal.DeviceState, snapshot *diag.Snapshot, log *diag.EventLog) *Bridge {
	return &Bridge{
		ext:      ext,
		control:  control,
		notify:   notify,
		state:    state,
		snapshot: snapshot,
		log:      log,
	}
}

// HandleConnect is the connect-time filter hook. It logs the connect
// marker and primes the extended descriptor before enumeration starts, then
// always passes through to the original connect logic.
func (b *Bridge) HandleConnect() bool {
	b.log.Append(diag.EventConnect, nil)
	b.ext.Populate()
	return false
}

// HandleSetup is the class-setup filter hook. It records diagnostics,
// re-populates the extended descriptor (idempotent, so the buffer is ready
// before the original handler reads it), and intercepts exactly the battery
// feature GET_REPORT. It reports whether the request was fully handled.
func (b *Bridge) HandleSetup(setup *hal.SetupPacket) bool {
	b.snapshot.RecordSetup(setup)

	setup.MarshalTo(b.setupRaw[:])
	b.log.Append(diag.EventSetup, b.setupRaw[:])

	b.ext.Populate()

	if setup.RequestType == batteryRequestType &&
		setup.Request == hal.RequestGetReport &&
		setup.Index == batteryInterface &&
		setup.Value == batteryFeatureValue {
		level := b.respondBattery(setup.Length)
		b.snapshot.RecordIntercept(level)
		b.log.Append(diag.EventSetupResult, []byte{diag.ResultIntercepted, level})
		return true
	}

	b.snapshot.RecordPassthrough()
	b.log.Append(diag.EventSetupResult, []byte{diag.ResultPassthrough, 0})
	return false
}

// respondBattery synthesizes the battery feature report, transmits it on
// the control channel capped at the requested length, and best-effort
// pushes the same bytes as an input report. The cap is a correctness
// requirement: sending more than wLength wedges the control channel's
// state machine.
func (b *Bridge) respondBattery(requested uint16) uint8 {
	level := b.state.BatteryLevel()
	var charging uint8
	if b.state.Charging() {
		charging = 1
	}

	report := [descriptor.BatteryReportLength]byte{
		descriptor.BatteryReportID,
		level,
		charging,
	}

	n := uint16(descriptor.BatteryReportLength)
	if requested < n {
		n = requested
	}
	b.control.Transmit(report[:n])

	// A generic host input stack updates charge status only from
	// input-style reports, never from polled feature reads, so the same
	// bytes are pushed on the notification channel when it is free.
	if !b.notify.TryTransmit(report[:]) {
		pkg.LogDebug(pkg.ComponentBridge, "battery push dropped, channel busy")
	}

	pkg.LogDebug(pkg.ComponentBridge, "battery report served",
		"level", level,
		"charging", charging,
		"bytes", n)
	return level
}
