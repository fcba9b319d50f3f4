package hook

// Kind distinguishes how a hook composes with the routine it instruments.
type Kind uint8

const (
	// Filter hooks run instead of the original routine when they claim
	// the call, and fall through to it when they do not.
	Filter Kind = iota
	// Before hooks run ahead of the original routine for side effects
	// only; the original always runs afterwards.
	Before
)

func (k Kind) String() string {
	switch k {
	case Filter:
		return "filter"
	case Before:
		return "before"
	}
	return "unknown"
}

// Result is a filter hook's verdict on a single call.
type Result uint8

const (
	// Passthrough hands the call to the original routine.
	Passthrough Result = iota
	// Handled consumes the call; the original routine is skipped.
	Handled
)

func (r Result) String() string {
	switch r {
	case Passthrough:
		return "passthrough"
	case Handled:
		return "handled"
	}
	return "unknown"
}

// Point describes one instrumented routine: where the runtime attaches and
// how the attachment composes with the original code.
type Point struct {
	// Name identifies the instrumented routine.
	Name string
	// Kind is the composition mode at this point.
	Kind Kind
	// Description states what the attachment does there.
	Description string
}

// Well-known point names used by the runtime.
const (
	PointClassSetup     = "hid_class_setup"
	PointConnect        = "usb_connect"
	PointVendorDispatch = "vendor_dispatch"
	PointBatteryMonitor = "battery_monitor"
)
