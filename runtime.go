package monsmod

import (
	"github.com/echtzeit-solutions/monsmod/bridge"
	"github.com/echtzeit-solutions/monsmod/descriptor"
	"github.com/echtzeit-solutions/monsmod/diag"
	"github.com/echtzeit-solutions/monsmod/hal"
	"github.com/echtzeit-solutions/monsmod/hook"
	"github.com/echtzeit-solutions/monsmod/led"
	"github.com/echtzeit-solutions/monsmod/pkg"
	"github.com/echtzeit-solutions/monsmod/router"
)

// Runtime is the assembled patch: descriptor extension, battery bridge,
// vendor command router, LED engine, and diagnostics, wired over one set of
// hardware ports. Its exported methods are the four attachment points the
// host firmware calls into; everything else hangs off them.
//
// All methods run on the firmware's single execution context. Runtime is
// not safe for concurrent use.
type Runtime struct {
	store hal.Store

	ext       *descriptor.Extension
	bridge    *bridge.Bridge
	router    *router.Router
	engine    *led.Engine
	snapshot  *diag.Snapshot
	eventLog  *diag.EventLog
	telemetry *diag.Telemetry
	sampler   *diag.Sampler
}

// New assembles a runtime over the given store and ports.
func New(store hal.Store, control hal.ControlPort, notify hal.NotifyPort,
	state hal.DeviceState) *Runtime {
	snapshot := &diag.Snapshot{}
	eventLog := &diag.EventLog{}
	ext := descriptor.New(store)
	engine := led.NewEngine(store)
	telemetry := diag.NewTelemetry(store.TelemetryRegion())

	return &Runtime{
		store:     store,
		ext:       ext,
		bridge:    bridge.New(ext, control, notify, state, snapshot, eventLog),
		router:    router.New(store, notify, state, snapshot, eventLog, engine),
		engine:    engine,
		snapshot:  snapshot,
		eventLog:  eventLog,
		telemetry: telemetry,
		sampler:   diag.NewSampler(telemetry, state),
	}
}

// SessionStart initializes the telemetry region so a debug probe can find
// and follow it. Call once at boot, before the first SampleTelemetry.
func (r *Runtime) SessionStart() {
	r.telemetry.SessionStart()
	pkg.LogInfo(pkg.ComponentHarness, "runtime session started")
}

// HandleConnect is the usb_connect filter hook.
func (r *Runtime) HandleConnect() hook.Result {
	if r.bridge.HandleConnect() {
		return hook.Handled
	}
	return hook.Passthrough
}

// HandleHIDSetup is the hid_class_setup filter hook. The packet is the raw
// 8-byte SETUP as received on the control channel.
func (r *Runtime) HandleHIDSetup(raw []byte) (hook.Result, error) {
	var setup hal.SetupPacket
	if err := hal.ParseSetupPacket(raw, &setup); err != nil {
		return hook.Passthrough, err
	}
	if r.bridge.HandleSetup(&setup) {
		return hook.Handled, nil
	}
	return hook.Passthrough, nil
}

// PollVendor is the vendor_dispatch filter hook, called from the firmware's
// main loop. It consumes a staged vendor command when one is pending and
// recognized.
func (r *Runtime) PollVendor() hook.Result {
	if r.router.Poll() {
		return hook.Handled
	}
	return hook.Passthrough
}

// SampleTelemetry is the battery_monitor before hook: it publishes one
// batch of counters after the original monitor has refreshed them.
func (r *Runtime) SampleTelemetry() {
	r.sampler.Sample()
}

// Extension exposes the descriptor extension manager, e.g. for a simulated
// control channel that must serve GET_DESCRIPTOR from the extended buffer.
func (r *Runtime) Extension() *descriptor.Extension {
	return r.ext
}

// Snapshot exposes the live diagnostics snapshot.
func (r *Runtime) Snapshot() *diag.Snapshot {
	return r.snapshot
}

// EventLog exposes the diagnostics event ring.
func (r *Runtime) EventLog() *diag.EventLog {
	return r.eventLog
}

// Points enumerates the firmware attachment points this runtime serves,
// in the order they fire during a typical session.
func (r *Runtime) Points() []hook.Point {
	return []hook.Point{
		{
			Name:        hook.PointConnect,
			Kind:        hook.Filter,
			Description: "prime extended report descriptor before enumeration",
		},
		{
			Name:        hook.PointClassSetup,
			Kind:        hook.Filter,
			Description: "intercept battery feature GET_REPORT",
		},
		{
			Name:        hook.PointVendorDispatch,
			Kind:        hook.Filter,
			Description: "dispatch staged vendor commands",
		},
		{
			Name:        hook.PointBatteryMonitor,
			Kind:        hook.Before,
			Description: "publish battery telemetry batch",
		},
	}
}
