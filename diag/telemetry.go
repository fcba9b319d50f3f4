package diag

import (
	"encoding/binary"

	"github.com/echtzeit-solutions/monsmod/pkg"
)

// Telemetry control block layout within the shared region. The external
// debug probe discovers the ring by scanning raw memory for the identifying
// pattern, then follows the header fields to the ring and its cursors.
const (
	// TelemetrySignatureSize is the size of the identifying pattern slot.
	TelemetrySignatureSize = 16

	headerRingOffset  = 16 // u32 LE: ring offset within the region
	headerRingSize    = 20 // u32 LE: ring capacity in bytes
	headerWriteOffset = 24 // u32 LE: write cursor, relative to ring start
	headerReadOffset  = 28 // u32 LE: read cursor, relative to ring start

	// TelemetryHeaderSize is the total control block size.
	TelemetryHeaderSize = 32
)

// TelemetrySignature is the identifying pattern the external probe scans
// for. It matches the RTT pattern so stock debug-probe tooling locates the
// ring without custom discovery.
var TelemetrySignature = [TelemetrySignatureSize]byte{
	'S', 'E', 'G', 'G', 'E', 'R', ' ', 'R', 'T', 'T',
}

// TelemetryRecordSize is the size of one ring record: [tag][u32 LE value].
const TelemetryRecordSize = 5

// Telemetry channel tags.
const (
	TagADCAverage      = 0x01 // averaged battery ADC reading (u16)
	TagBatteryRaw      = 0x02 // pre-debounce battery level (u8)
	TagBatteryLevel    = 0x03 // debounced battery level (u8)
	TagCharger         = 0x04 // charger connected flag (u8)
	TagChargerDebounce = 0x05 // charger debounce counter (u8)
	TagScanCount       = 0x10 // free-running ADC scan counter (u32)
)

// Telemetry is a lossy single-producer ring written into a shared memory
// region and drained by a fully asynchronous external reader. The device
// side only ever advances the write cursor; the reader owns the read
// cursor. A publish that would not fit is dropped, never blocking and never
// overwriting unread records.
//
// Cursor updates are single 4-byte stores, so the reader can never observe
// a partially updated cursor.
type Telemetry struct {
	region []byte
}

// NewTelemetry creates a telemetry ring over the given shared region. The
// first TelemetryHeaderSize bytes hold the control block; the remainder is
// the ring. The region is not touched until SessionStart.
func NewTelemetry(region []byte) *Telemetry {
	return &Telemetry{region: region}
}

// ringSize returns the ring capacity, or 0 if the region is too small to
// hold the header plus at least one record.
func (t *Telemetry) ringSize() uint32 {
	if len(t.region) < TelemetryHeaderSize+TelemetryRecordSize {
		return 0
	}
	return uint32(len(t.region) - TelemetryHeaderSize)
}

// SessionStart (re)writes the control block and resets both cursors. The
// identifying pattern is written last, ordered after the rest of the
// header, so a probe polling raw memory can never observe a
// half-initialized header behind a valid signature.
func (t *Telemetry) SessionStart() {
	size := t.ringSize()
	if size == 0 {
		return
	}

	binary.LittleEndian.PutUint32(t.region[headerRingOffset:], TelemetryHeaderSize)
	binary.LittleEndian.PutUint32(t.region[headerRingSize:], size)
	binary.LittleEndian.PutUint32(t.region[headerWriteOffset:], 0)
	binary.LittleEndian.PutUint32(t.region[headerReadOffset:], 0)

	// On hardware an explicit memory barrier sits here; the signature store
	// must not be reordered before the header stores above.
	copy(t.region[:TelemetrySignatureSize], TelemetrySignature[:])

	pkg.LogDebug(pkg.ComponentDiag, "telemetry session started",
		"ringSize", size)
}

// Publish appends one [tag][value] record. It reports false, dropping the
// record, when the wrap-aware free space cannot hold it. It never blocks.
func (t *Telemetry) Publish(tag uint8, value uint32) bool {
	size := t.ringSize()
	if size == 0 {
		return false
	}

	wr := binary.LittleEndian.Uint32(t.region[headerWriteOffset:])
	rd := binary.LittleEndian.Uint32(t.region[headerReadOffset:])

	// One byte is kept unused so a full ring is distinguishable from an
	// empty one.
	free := (rd + size - wr - 1) % size
	if free < TelemetryRecordSize {
		return false
	}

	var rec [TelemetryRecordSize]byte
	rec[0] = tag
	binary.LittleEndian.PutUint32(rec[1:], value)

	ring := t.region[TelemetryHeaderSize:]
	for _, b := range rec {
		ring[wr] = b
		wr = (wr + 1) % size
	}

	// Single 4-byte store publishing the new cursor.
	binary.LittleEndian.PutUint32(t.region[headerWriteOffset:], wr)
	return true
}

// ReadRecord consumes one record from the reader side. It models the
// external probe for tests and returns ok=false on an empty ring.
func (t *Telemetry) ReadRecord() (tag uint8, value uint32, ok bool) {
	size := t.ringSize()
	if size == 0 {
		return 0, 0, false
	}

	wr := binary.LittleEndian.Uint32(t.region[headerWriteOffset:])
	rd := binary.LittleEndian.Uint32(t.region[headerReadOffset:])
	if (wr+size-rd)%size < TelemetryRecordSize {
		return 0, 0, false
	}

	var rec [TelemetryRecordSize]byte
	ring := t.region[TelemetryHeaderSize:]
	for i := range rec {
		rec[i] = ring[rd]
		rd = (rd + 1) % size
	}
	binary.LittleEndian.PutUint32(t.region[headerReadOffset:], rd)

	return rec[0], binary.LittleEndian.Uint32(rec[1:]), true
}
