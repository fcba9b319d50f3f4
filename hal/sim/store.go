package sim

import "github.com/echtzeit-solutions/monsmod/hal"

// Region sizes matching the firmware memory map.
const (
	// CommandBufferSize is the vendor feature report buffer size.
	CommandBufferSize = 64
	// FrameBufferSize holds 82 LEDs at 24 waveform bytes each.
	FrameBufferSize = 1968
	// TelemetryRegionSize holds the control block plus a 1 KiB ring.
	TelemetryRegionSize = 32 + 1024
	// MirrorCount is the number of advertised-length fields: full-speed
	// config, high-speed config, OS config, live HID descriptor object.
	MirrorCount = 4
)

// Store is an in-memory hal.Store with the firmware's region geometry. The
// zero value is not usable; construct with NewStore.
type Store struct {
	descriptor []byte
	mirrors    [MirrorCount][2]byte
	commandBuf [CommandBufferSize]byte
	frameBuf   [FrameBufferSize]byte
	displayBuf [FrameBufferSize]byte
	telemetry  [TelemetryRegionSize]byte
	effectMode uint8
}

// Option configures a Store.
type Option func(*Store)

// WithReportDescriptor replaces the default original report descriptor.
// The bytes are copied.
func WithReportDescriptor(desc []byte) Option {
	return func(s *Store) {
		s.descriptor = append([]byte(nil), desc...)
	}
}

// WithEffectMode sets the initial lighting effect selector.
func WithEffectMode(mode uint8) Option {
	return func(s *Store) {
		s.effectMode = mode
	}
}

// NewStore creates a store pre-loaded with the stock interface 1 report
// descriptor and every mirror advertising its original length.
func NewStore(opts ...Option) *Store {
	s := &Store{
		descriptor: append([]byte(nil), stockReportDescriptor[:]...),
	}
	for _, opt := range opts {
		opt(s)
	}
	n := uint16(len(s.descriptor))
	for i := range s.mirrors {
		s.mirrors[i][0] = byte(n)
		s.mirrors[i][1] = byte(n >> 8)
	}
	return s
}

var _ hal.Store = (*Store)(nil)

func (s *Store) ReportDescriptor() []byte { return s.descriptor }

func (s *Store) LengthMirrors() [][]byte {
	out := make([][]byte, MirrorCount)
	for i := range s.mirrors {
		out[i] = s.mirrors[i][:]
	}
	return out
}

func (s *Store) CommandBuffer() []byte   { return s.commandBuf[:] }
func (s *Store) FrameBuffer() []byte     { return s.frameBuf[:] }
func (s *Store) DisplayBuffer() []byte   { return s.displayBuf[:] }
func (s *Store) TelemetryRegion() []byte { return s.telemetry[:] }

func (s *Store) EffectMode() uint8        { return s.effectMode }
func (s *Store) SetEffectMode(mode uint8) { s.effectMode = mode }

// MirrorValue returns the advertised descriptor length in mirror i.
func (s *Store) MirrorValue(i int) uint16 {
	return uint16(s.mirrors[i][0]) | uint16(s.mirrors[i][1])<<8
}
