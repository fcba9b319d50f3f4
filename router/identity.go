package router

import (
	"encoding/binary"

	"github.com/echtzeit-solutions/monsmod/diag"
)

// Identity response constants.
const (
	MagicHigh    = 0xCA
	MagicLow     = 0xFE
	PatchVersion = 1

	// Capability bits advertised in the identity response.
	CapBattery   = 1 << 0
	CapLEDStream = 1 << 1
	CapDebugLog  = 1 << 2

	Capabilities = CapBattery | CapLEDStream | CapDebugLog
)

// PatchName identifies the patch in the identity response, NUL-padded to
// patchNameSize bytes.
const PatchName = "MONSMOD"

const patchNameSize = 8

// Identity response offsets within the command buffer.
const (
	offMagic        = 3
	offVersion      = 5
	offCapabilities = 6
	offName         = 8
	offSnapshot     = offName + patchNameSize
	offRawState     = offSnapshot + diag.SnapshotSize
	offScanCount    = offRawState + 6
)

// fillIdentity writes the identity/diagnostics response in place: signature,
// patch version, capability bitmap, short name, the full diagnostics
// snapshot, and raw device-state readings for field debugging. It is a pure
// read of already-maintained state and always succeeds.
func (r *Router) fillIdentity(buf []byte) {
	buf[offMagic] = MagicHigh
	buf[offMagic+1] = MagicLow
	buf[offVersion] = PatchVersion
	binary.LittleEndian.PutUint16(buf[offCapabilities:], Capabilities)

	for i := 0; i < patchNameSize; i++ {
		if i < len(PatchName) {
			buf[offName+i] = PatchName[i]
		} else {
			buf[offName+i] = 0
		}
	}

	r.snapshot.MarshalTo(buf[offSnapshot:])

	var charging, indicator uint8
	if r.state.Charging() {
		charging = 1
	}
	if r.state.IndicatorActive() {
		indicator = 1
	}
	buf[offRawState] = r.state.BatteryLevel()
	buf[offRawState+1] = charging
	buf[offRawState+2] = r.state.ChargerDebounce()
	buf[offRawState+3] = r.state.BatteryUpdateCount()
	buf[offRawState+4] = r.state.RawBatteryLevel()
	buf[offRawState+5] = indicator
	binary.LittleEndian.PutUint16(buf[offScanCount:], uint16(r.state.ScanCount()))
}
