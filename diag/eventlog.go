package diag

// EventLogSize is the event ring capacity in bytes.
const EventLogSize = 512

// EventPageSize is the slice of the ring returned per log-read command.
const EventPageSize = 56

// EventPageCount is the number of readable pages (0 through 9).
const EventPageCount = 10

// Event record types. Each type has a fixed payload length; records are
// stored as [type][payload].
const (
	EventSetup         = 0x01 // 8B payload: raw setup packet
	EventSetupResult   = 0x02 // 2B payload: result, battery level
	EventVendorCommand = 0x03 // 2B payload: pending flag, selector
	EventConnect       = 0x04 // 0B payload
	EventTransferStart = 0x05 // 6B payload: transfer context
)

// EventLog is a fixed-capacity append-only event ring. The write head wraps
// at capacity, overwriting the oldest bytes. The occupancy counter is a
// monotonic "at least this much written since boot" signal: it saturates at
// capacity and is not an exact live occupancy once the ring has wrapped.
type EventLog struct {
	head  uint16
	count uint16
	data  [EventLogSize]byte
}

// Append writes a [type][payload] record to the ring.
func (l *EventLog) Append(typ uint8, payload []byte) {
	l.data[l.head] = typ
	l.head = (l.head + 1) % EventLogSize

	for _, b := range payload {
		l.data[l.head] = b
		l.head = (l.head + 1) % EventLogSize
	}

	total := uint16(1 + len(payload))
	if l.count <= EventLogSize-total {
		l.count += total
	} else {
		l.count = EventLogSize
	}
}

// Head returns the next write position.
func (l *EventLog) Head() uint16 { return l.head }

// Count returns the saturating bytes-written counter.
func (l *EventLog) Count() uint16 { return l.count }

// Capacity returns the ring capacity in bytes.
func (l *EventLog) Capacity() uint16 { return EventLogSize }

// ReadPage copies one EventPageSize slice of the ring, starting at
// page*EventPageSize, into out. Offsets past the ring capacity are
// zero-filled rather than wrapped, so a reader never sees ring slots it was
// not offered; slots inside capacity that were never written read as zero.
// Returns the number of bytes written to out, or 0 if out is too small.
func (l *EventLog) ReadPage(page uint8, out []byte) int {
	if len(out) < EventPageSize {
		return 0
	}
	offset := int(page) * EventPageSize
	for i := 0; i < EventPageSize; i++ {
		if offset+i < EventLogSize {
			out[i] = l.data[offset+i]
		} else {
			out[i] = 0
		}
	}
	return EventPageSize
}
