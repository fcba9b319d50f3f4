package router

import (
	"encoding/binary"

	"github.com/echtzeit-solutions/monsmod/diag"
)

// Log page response offsets within the command buffer.
const (
	offLogCount    = 3 // u16 LE: saturating bytes-written counter
	offLogHead     = 5 // u16 LE: ring write head
	offLogCapacity = 7 // ring capacity, high byte
	offLogData     = 8 // 56 bytes of ring data
)

// fillLogPage answers a log-read command in place. The requested page
// number arrives in the first payload byte and is overwritten by the
// response header: occupancy count, write head, capacity, then one
// 56-byte page of ring data.
func (r *Router) fillLogPage(buf []byte) {
	page := buf[offPayload]

	binary.LittleEndian.PutUint16(buf[offLogCount:], r.log.Count())
	binary.LittleEndian.PutUint16(buf[offLogHead:], r.log.Head())
	buf[offLogCapacity] = uint8(r.log.Capacity() >> 8)

	r.log.ReadPage(page, buf[offLogData:offLogData+diag.EventPageSize])
}
