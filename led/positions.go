package led

// Logical grid geometry. The host addresses LEDs by column-major grid
// position (col*GridRows + row).
const (
	GridColumns   = 16
	GridRows      = 6
	PositionCount = GridColumns * GridRows
)

// NoLED marks a grid position with no LED behind it. The grid is
// intentionally non-rectangular: wide keys and unused columns leave gaps in
// the coordinate space, which are a tolerated property, not an error.
const NoLED = 0xFF

// LEDCount is the number of physical LEDs on the strip.
const LEDCount = 82

// PositionTable maps logical grid positions to physical strip indices.
type PositionTable [PositionCount]uint8

// DefaultPositions is the position table for the keyboard's physical
// layout. The strip snakes through the key matrix, so neighboring grid
// positions map to non-contiguous strip indices.
var DefaultPositions = PositionTable{
	0x00, 0x1C, 0x1D, 0x39, 0x3A, 0x51, // col  0: Esc..LCtrl
	0x01, 0x1B, 0x1E, 0x38, 0xFF, 0x50, // col  1: F1..LWin
	0x02, 0x1A, 0x1F, 0x37, 0x3B, 0x4F, // col  2: F2..LAlt
	0x03, 0x19, 0x20, 0x36, 0x3C, 0xFF, // col  3: F3..X
	0x04, 0x18, 0x21, 0x35, 0x3D, 0xFF, // col  4: F4..C
	0x05, 0x17, 0x22, 0x34, 0x3E, 0xFF, // col  5: F5..V
	0x06, 0x16, 0x23, 0x33, 0x3F, 0x4E, // col  6: F6..Space
	0x07, 0x15, 0x24, 0x32, 0x40, 0xFF, // col  7: F7..N
	0x08, 0x14, 0x25, 0x31, 0x41, 0xFF, // col  8: F8..M
	0x09, 0x13, 0x26, 0x30, 0x42, 0x4D, // col  9: F9..RAlt
	0x0A, 0x12, 0x27, 0x2F, 0x43, 0x4C, // col 10: F10..Fn
	0x0B, 0x11, 0x28, 0x2E, 0x44, 0x4B, // col 11: F11..RCtrl
	0x0C, 0x10, 0x29, 0xFF, 0x45, 0x4A, // col 12: F12..Left
	0x0D, 0x0F, 0x2A, 0x2D, 0x46, 0x49, // col 13: Del..Down
	0xFF, 0x0E, 0x2B, 0x2C, 0x47, 0x48, // col 14: -..Right
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // col 15: (media/empty)
}
