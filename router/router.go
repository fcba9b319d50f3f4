package router

import (
	"github.com/echtzeit-solutions/monsmod/descriptor"
	"github.com/echtzeit-solutions/monsmod/diag"
	"github.com/echtzeit-solutions/monsmod/hal"
	"github.com/echtzeit-solutions/monsmod/led"
	"github.com/echtzeit-solutions/monsmod/pkg"
)

// Vendor command selectors.
const (
	CmdIdentity  = 0xFB // identity/diagnostics query
	CmdLEDStream = 0xFC // LED page write / commit / release
	CmdLogRead   = 0xFD // event log page read
)

// Command buffer offsets. The host firmware's SET_REPORT handler stages the
// report payload at offset 2 and sets the pending flag; GET_REPORT returns
// from offset 2, so the host sees response byte N at buffer offset N+2.
const (
	offPending  = 0 // host-set pending flag, cleared on completion
	offSelector = 2 // command selector (first report payload byte)
	offPayload  = 3 // command payload / response
)

// minCommandBuffer is the smallest buffer the router operates on: selectors
// and the 56-byte log page response at offset 8 must fit.
const minCommandBuffer = 64

// Router observes the shared command/response buffer and dispatches pending
// commands to exactly one sub-handler. It also runs the battery charge edge
// detector on every poll, independent of pending-command state.
type Router struct {
	store    hal.Store
	notify   hal.NotifyPort
	state    hal.DeviceState
	snapshot *diag.Snapshot
	log      *diag.EventLog
	led      *led.Engine

	// prevCharging is the edge detector's last observed charge status.
	// Zero-initialized, so a device that boots on the charger pushes one
	// notification on the first poll.
	prevCharging uint8
}

// New creates a router over the given peripherals and recorder state.
func New(store hal.Store, notify hal.NotifyPort, state hal.DeviceState,
	snapshot *diag.Snapshot, log *diag.EventLog, engine *led.Engine) *Router {
	return &Router{
		store:    store,
		notify:   notify,
		state:    state,
		snapshot: snapshot,
		log:      log,
		led:      engine,
	}
}

// Poll runs one router cycle: the charge edge detector, then dispatch of a
// pending command if one is staged. It reports whether a command was
// claimed; unrecognized selectors are left for the original firmware. Poll
// is cheap when nothing is pending.
func (r *Router) Poll() bool {
	r.detectChargeEdge()

	buf := r.store.CommandBuffer()
	if len(buf) < minCommandBuffer || buf[offPending] == 0 {
		return false
	}

	selector := buf[offSelector]

	// Log-read commands are excluded from the event log so a reader does
	// not contaminate the stream it is reading.
	if selector != CmdLogRead {
		r.log.Append(diag.EventVendorCommand, []byte{buf[offPending], selector})
	}

	switch selector {
	case CmdIdentity:
		r.fillIdentity(buf)
		buf[offPending] = 0
		return true

	case CmdLEDStream:
		page := buf[offPayload]
		if !r.led.HandlePage(page, buf[offPayload+1:offPayload+1+3*led.TriplesPerPage]) {
			return false
		}
		buf[offPending] = 0
		return true

	case CmdLogRead:
		r.fillLogPage(buf)
		buf[offPending] = 0
		return true

	default:
		pkg.LogDebug(pkg.ComponentRouter, "unrecognized selector",
			"selector", selector)
		return false
	}
}

// detectChargeEdge pushes a battery input report when the cached charge
// status changed since the last poll and the notification channel is free.
// A busy channel drops the push; the next state change resends.
func (r *Router) detectChargeEdge() {
	var cur uint8
	if r.state.Charging() {
		cur = 1
	}
	if cur == r.prevCharging {
		return
	}
	r.prevCharging = cur

	report := [descriptor.BatteryReportLength]byte{
		descriptor.BatteryReportID,
		r.state.BatteryLevel(),
		cur,
	}
	if !r.notify.TryTransmit(report[:]) {
		pkg.LogDebug(pkg.ComponentRouter, "charge edge push dropped, channel busy")
	}
}
