package descriptor

import (
	"encoding/binary"

	"github.com/echtzeit-solutions/monsmod/hal"
	"github.com/echtzeit-solutions/monsmod/pkg"
)

// MaxExtendedLength bounds the extended descriptor buffer. The firmware's
// interface descriptor is 171 bytes and the battery appendix 46, but the
// buffer is sized generously so the manager works unchanged against
// simulated stores with different originals.
const MaxExtendedLength = 512

// Extension owns the synthesized extended report descriptor: the firmware's
// original descriptor bytes followed by the battery appendix. The firmware's
// descriptor pointer is redirected to this buffer at build time, so keeping
// the buffer and every advertised-length mirror current is what makes the
// original GET_DESCRIPTOR path transparently serve the extended descriptor.
type Extension struct {
	store    hal.Store
	appendix []byte

	buf    [MaxExtendedLength]byte
	length int
}

// New creates an extension manager over the given store, appending the
// battery report descriptor.
func New(store hal.Store) *Extension {
	return NewWithAppendix(store, BatteryReportDescriptor)
}

// NewWithAppendix creates an extension manager with a custom appendix.
// The appendix is stored by reference.
func NewWithAppendix(store hal.Store, appendix []byte) *Extension {
	return &Extension{store: store, appendix: appendix}
}

// Populate (re)builds the extended descriptor buffer and writes the
// canonical length into every mirror. It is strictly idempotent: after the
// first call, re-invocation is a byte-for-byte no-op on top of the prior
// result, so it is safe (and intended) to run on every interception.
//
// Known accepted race: if the host enumerates before the first call, the
// very first negotiated descriptor may be the un-extended original. The
// connect hook narrows this window by priming before enumeration; nothing
// closes it entirely.
func (e *Extension) Populate() {
	orig := e.store.ReportDescriptor()
	n := copy(e.buf[:], orig)
	n += copy(e.buf[n:], e.appendix)

	first := e.length == 0
	e.length = n

	for _, mirror := range e.store.LengthMirrors() {
		if len(mirror) >= 2 {
			binary.LittleEndian.PutUint16(mirror, uint16(n))
		}
	}

	if first {
		pkg.LogDebug(pkg.ComponentDescriptor, "extended descriptor populated",
			"originalLen", len(orig),
			"appendixLen", len(e.appendix),
			"extendedLen", n)
	}
}

// Bytes returns the extended descriptor, or nil before the first Populate.
func (e *Extension) Bytes() []byte {
	if e.length == 0 {
		return nil
	}
	return e.buf[:e.length]
}

// Length returns the canonical extended descriptor length, 0 before the
// first Populate.
func (e *Extension) Length() uint16 {
	return uint16(e.length)
}
