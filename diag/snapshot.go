package diag

import (
	"encoding/binary"

	"github.com/echtzeit-solutions/monsmod/hal"
)

// Setup interception results recorded in the snapshot.
const (
	ResultPassthrough = 0 // deferred to the original firmware handler
	ResultIntercepted = 1 // handled by the hook, original skipped
)

// SnapshotSize is the marshaled size of a Snapshot in bytes.
const SnapshotSize = 14

// Snapshot is a single-slot record of control-request activity: running
// counters plus the fields of the most recent request. It is overwritten on
// every relevant call; it is not a history.
type Snapshot struct {
	SetupCalls      uint32 // total setup hook invocations
	SetupIntercepts uint32 // invocations that were intercepted

	LastRequestType  uint8
	LastRequest      uint8
	LastValue        uint16
	LastIndex        uint16
	LastLength       uint16
	LastBatteryLevel uint8
	LastResult       uint8
}

// RecordSetup notes an incoming setup packet and bumps the call counter.
func (s *Snapshot) RecordSetup(setup *hal.SetupPacket) {
	s.SetupCalls++
	s.LastRequestType = setup.RequestType
	s.LastRequest = setup.Request
	s.LastValue = setup.Value
	s.LastIndex = setup.Index
	s.LastLength = setup.Length
}

// RecordIntercept notes that the last setup was handled by the hook, with
// the battery level it reported.
func (s *Snapshot) RecordIntercept(batteryLevel uint8) {
	s.SetupIntercepts++
	s.LastBatteryLevel = batteryLevel
	s.LastResult = ResultIntercepted
}

// RecordPassthrough notes that the last setup was left to the original
// firmware handler.
func (s *Snapshot) RecordPassthrough() {
	s.LastResult = ResultPassthrough
}

// MarshalTo writes the snapshot in its wire layout: counters truncated to
// 16 bits, then the last request fields, little-endian throughout.
// Returns the number of bytes written, or 0 if buf is too small.
func (s *Snapshot) MarshalTo(buf []byte) int {
	if len(buf) < SnapshotSize {
		return 0
	}
	binary.LittleEndian.PutUint16(buf[0:2], uint16(s.SetupCalls))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(s.SetupIntercepts))
	buf[4] = s.LastRequestType
	buf[5] = s.LastRequest
	binary.LittleEndian.PutUint16(buf[6:8], s.LastValue)
	binary.LittleEndian.PutUint16(buf[8:10], s.LastIndex)
	binary.LittleEndian.PutUint16(buf[10:12], s.LastLength)
	buf[12] = s.LastBatteryLevel
	buf[13] = s.LastResult
	return SnapshotSize
}
