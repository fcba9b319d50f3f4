package led

// Waveform pulse bytes recognized by the addressable-LED serial protocol.
// Each data bit expands to one byte clocked out by the scanout hardware:
// a long high pulse encodes 1, a short high pulse encodes 0.
const (
	PulseLong  = 0xF0 // bit 1
	PulseShort = 0xC0 // bit 0
)

// Encoded sizes. A color channel expands to 8 pulse bytes, one per bit;
// a pixel carries three channels.
const (
	BytesPerChannel = 8
	BytesPerPixel   = 3 * BytesPerChannel
)

// EncodeByte expands val into 8 waveform bytes in dst, most significant bit
// first. dst must hold at least BytesPerChannel bytes.
func EncodeByte(dst []byte, val uint8) {
	_ = dst[BytesPerChannel-1]
	for i := 0; i < BytesPerChannel; i++ {
		if val&(0x80>>i) != 0 {
			dst[i] = PulseLong
		} else {
			dst[i] = PulseShort
		}
	}
}
