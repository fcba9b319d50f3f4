package monsmod_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/echtzeit-solutions/monsmod"
	"github.com/echtzeit-solutions/monsmod/descriptor"
	"github.com/echtzeit-solutions/monsmod/diag"
	"github.com/echtzeit-solutions/monsmod/hal/sim"
	"github.com/echtzeit-solutions/monsmod/hook"
	"github.com/echtzeit-solutions/monsmod/router"
)

type fixture struct {
	store   *sim.Store
	state   *sim.State
	control *sim.ControlPort
	notify  *sim.NotifyPort
	runtime *monsmod.Runtime
	host    *sim.Host
}

func newFixture() *fixture {
	f := &fixture{
		store:   sim.NewStore(),
		state:   &sim.State{Battery: 87, IsCharging: true, ADCAvg: 2481, Scans: 5000},
		control: &sim.ControlPort{},
		notify:  &sim.NotifyPort{},
	}
	f.runtime = monsmod.New(f.store, f.control, f.notify, f.state)
	f.host = sim.NewHost(f.runtime, f.store, f.control, f.notify)
	return f
}

func TestEnumerationServesExtendedDescriptor(t *testing.T) {
	f := newFixture()

	if got := f.host.Connect(); got != hook.Passthrough {
		t.Errorf("Connect() = %v, want passthrough", got)
	}

	desc, err := f.host.ReadDescriptor(512)
	if err != nil {
		t.Fatalf("ReadDescriptor() error = %v", err)
	}
	if len(desc) != 217 {
		t.Fatalf("descriptor length = %d, want 217", len(desc))
	}
	if !bytes.Equal(desc[:sim.StockDescriptorLength], f.store.ReportDescriptor()) {
		t.Error("extended descriptor does not start with the original")
	}
	if !bytes.Equal(desc[sim.StockDescriptorLength:], descriptor.BatteryReportDescriptor) {
		t.Error("extended descriptor does not end with the battery appendix")
	}

	for i := 0; i < sim.MirrorCount; i++ {
		if got := f.store.MirrorValue(i); got != 217 {
			t.Errorf("mirror %d = %d, want 217", i, got)
		}
	}
}

func TestEnumerationRaceBeforeFirstHook(t *testing.T) {
	f := newFixture()

	// A host that enumerates before the connect hook fires negotiates the
	// original descriptor; the next read sees the extended one.
	desc, err := f.host.ReadDescriptor(512)
	if err != nil {
		t.Fatalf("ReadDescriptor() error = %v", err)
	}
	// The descriptor read itself is a standard request, so the setup hook
	// has already primed the buffer by the time passthrough serves it;
	// only a raw pre-hook read observes the stale original.
	if len(desc) != 217 {
		t.Fatalf("post-hook descriptor length = %d, want 217", len(desc))
	}

	// Model the raw pre-hook window: what the stock handler would have
	// streamed before any hook invocation.
	f2 := newFixture()
	if got := f2.runtime.Extension().Bytes(); got != nil {
		t.Errorf("extension bytes before any hook = %d bytes, want nil", len(got))
	}
	if got := f2.store.MirrorValue(0); got != uint16(sim.StockDescriptorLength) {
		t.Errorf("mirror before any hook = %d, want original %d",
			got, sim.StockDescriptorLength)
	}
}

func TestBatteryFeatureRead(t *testing.T) {
	f := newFixture()
	f.host.Connect()

	tests := []struct {
		name   string
		length uint16
		want   []byte
	}{
		{name: "full read", length: 3, want: []byte{7, 87, 1}},
		{name: "kernel probe wLength 1", length: 1, want: []byte{7}},
		{name: "oversized wLength", length: 64, want: []byte{7, 87, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.host.ReadBatteryReport(tt.length)
			if err != nil {
				t.Fatalf("ReadBatteryReport() error = %v", err)
			}
			if !bytes.Equal(resp, tt.want) {
				t.Errorf("response = %v, want %v", resp, tt.want)
			}
		})
	}

	// Each intercepted read also pushed an input report.
	if got := len(f.notify.Frames()); got != len(tests) {
		t.Errorf("pushed frames = %d, want %d", got, len(tests))
	}
}

func TestVendorIdentityExchange(t *testing.T) {
	f := newFixture()
	f.host.Connect()

	if err := f.host.SubmitCommand([]byte{router.CmdIdentity}); err != nil {
		t.Fatalf("SubmitCommand() error = %v", err)
	}
	if got := f.host.Poll(); got != hook.Handled {
		t.Fatalf("Poll() = %v, want handled", got)
	}

	resp, err := f.host.ReadResponse(62)
	if err != nil {
		t.Fatalf("ReadResponse() error = %v", err)
	}

	// Response byte N is command buffer byte N+2.
	if resp[0] != router.CmdIdentity {
		t.Errorf("selector echo = 0x%02x, want 0x%02x", resp[0], router.CmdIdentity)
	}
	if resp[1] != router.MagicHigh || resp[2] != router.MagicLow {
		t.Errorf("magic = %02x %02x, want %02x %02x",
			resp[1], resp[2], router.MagicHigh, router.MagicLow)
	}
	if resp[3] != router.PatchVersion {
		t.Errorf("version = %d, want %d", resp[3], router.PatchVersion)
	}
	if got := binary.LittleEndian.Uint16(resp[4:]); got != router.Capabilities {
		t.Errorf("capabilities = 0x%04x, want 0x%04x", got, router.Capabilities)
	}
	name := resp[6 : 6+len(router.PatchName)]
	if string(name) != router.PatchName {
		t.Errorf("name = %q, want %q", name, router.PatchName)
	}

	// A second poll with nothing staged passes through.
	if got := f.host.Poll(); got != hook.Passthrough {
		t.Errorf("idle Poll() = %v, want passthrough", got)
	}
}

func TestVendorLogReadRoundTrip(t *testing.T) {
	f := newFixture()
	f.host.Connect()
	f.host.ReadBatteryReport(3)

	if err := f.host.SubmitCommand([]byte{router.CmdLogRead, 0}); err != nil {
		t.Fatalf("SubmitCommand() error = %v", err)
	}
	if got := f.host.Poll(); got != hook.Handled {
		t.Fatalf("Poll() = %v, want handled", got)
	}

	resp, err := f.host.ReadResponse(62)
	if err != nil {
		t.Fatalf("ReadResponse() error = %v", err)
	}

	count := binary.LittleEndian.Uint16(resp[1:])
	if count == 0 {
		t.Fatal("log count = 0, want connect and setup records")
	}
	if resp[5] != uint8(diag.EventLogSize>>8) {
		t.Errorf("capacity byte = %d, want %d", resp[5], diag.EventLogSize>>8)
	}
	if resp[6] != diag.EventConnect {
		t.Errorf("first log record = 0x%02x, want connect", resp[6])
	}
}

func TestTelemetrySession(t *testing.T) {
	f := newFixture()
	f.runtime.SessionStart()

	region := f.store.TelemetryRegion()
	if !bytes.Equal(region[:10], []byte("SEGGER RTT")) {
		t.Fatalf("signature = %q, want probe-discoverable pattern", region[:16])
	}

	f.host.Poll() // one batch

	ring := diag.NewTelemetry(region)
	tag, value, ok := ring.ReadRecord()
	if !ok {
		t.Fatal("no telemetry after poll")
	}
	if tag != diag.TagADCAverage || value != 2481 {
		t.Errorf("first record = (0x%02x, %d), want ADC average 2481", tag, value)
	}
}

func TestChargeEdgeThroughHarness(t *testing.T) {
	f := newFixture()
	f.host.Connect()

	// Boot-on-charger announcement.
	f.host.Poll()
	if got := len(f.notify.Frames()); got != 1 {
		t.Fatalf("frames = %d, want 1", got)
	}

	f.state.IsCharging = false
	f.notify.Busy = true
	f.host.Poll()
	if f.notify.Dropped() != 1 {
		t.Errorf("dropped = %d, want 1", f.notify.Dropped())
	}

	// The lost edge is not replayed once the channel frees up.
	f.notify.Busy = false
	f.host.Poll()
	if got := len(f.notify.Frames()); got != 1 {
		t.Errorf("frames = %d, want still 1", got)
	}
}

func TestHookPoints(t *testing.T) {
	f := newFixture()
	points := f.runtime.Points()

	want := map[string]hook.Kind{
		hook.PointConnect:        hook.Filter,
		hook.PointClassSetup:     hook.Filter,
		hook.PointVendorDispatch: hook.Filter,
		hook.PointBatteryMonitor: hook.Before,
	}
	if len(points) != len(want) {
		t.Fatalf("len(Points()) = %d, want %d", len(points), len(want))
	}
	for _, p := range points {
		kind, ok := want[p.Name]
		if !ok {
			t.Errorf("unexpected point %q", p.Name)
			continue
		}
		if p.Kind != kind {
			t.Errorf("point %q kind = %v, want %v", p.Name, p.Kind, kind)
		}
	}
}

func TestLEDStreamThroughHarness(t *testing.T) {
	f := newFixture()
	f.host.Connect()

	payload := make([]byte, 2+3*18)
	payload[0] = router.CmdLEDStream
	payload[1] = 0 // page
	for i := 2; i < len(payload); i++ {
		payload[i] = 0xFF
	}
	if err := f.host.SubmitCommand(payload); err != nil {
		t.Fatalf("SubmitCommand() error = %v", err)
	}
	if got := f.host.Poll(); got != hook.Handled {
		t.Fatalf("Poll() = %v, want handled", got)
	}
	if got := f.store.EffectMode(); got != 0xFF {
		t.Errorf("effect mode = 0x%02x, want takeover sentinel", got)
	}

	// Commit copies the frame into the display buffer.
	if err := f.host.SubmitCommand([]byte{router.CmdLEDStream, 0xFF}); err != nil {
		t.Fatalf("SubmitCommand() error = %v", err)
	}
	f.host.Poll()
	if !bytes.Equal(f.store.DisplayBuffer(), f.store.FrameBuffer()) {
		t.Error("display buffer does not match frame buffer after commit")
	}

	// Release restores the original effect selector.
	if err := f.host.SubmitCommand([]byte{router.CmdLEDStream, 0xFE}); err != nil {
		t.Fatalf("SubmitCommand() error = %v", err)
	}
	f.host.Poll()
	if got := f.store.EffectMode(); got != 0 {
		t.Errorf("effect mode = 0x%02x, want restored 0", got)
	}
}
