package sim

import "github.com/echtzeit-solutions/monsmod/hal"

// ControlPort records control channel transmissions. The firmware's real
// port streams into the EP0 state machine; the sim keeps each transfer
// whole so tests can assert on exact bytes and lengths.
type ControlPort struct {
	transfers [][]byte
}

var _ hal.ControlPort = (*ControlPort)(nil)

func (p *ControlPort) Transmit(data []byte) {
	p.transfers = append(p.transfers, append([]byte(nil), data...))
}

// Last returns the most recent transfer, or nil if none happened.
func (p *ControlPort) Last() []byte {
	if len(p.transfers) == 0 {
		return nil
	}
	return p.transfers[len(p.transfers)-1]
}

// Count returns the number of transfers observed.
func (p *ControlPort) Count() int { return len(p.transfers) }

// NotifyPort records interrupt-style pushes and can simulate a busy
// endpoint: while Busy is set, TryTransmit refuses and counts a drop.
type NotifyPort struct {
	Busy bool

	frames  [][]byte
	dropped int
}

var _ hal.NotifyPort = (*NotifyPort)(nil)

func (p *NotifyPort) TryTransmit(data []byte) bool {
	if p.Busy {
		p.dropped++
		return false
	}
	p.frames = append(p.frames, append([]byte(nil), data...))
	return true
}

// Frames returns every frame accepted so far.
func (p *NotifyPort) Frames() [][]byte { return p.frames }

// Dropped returns the number of refused transmissions.
func (p *NotifyPort) Dropped() int { return p.dropped }
