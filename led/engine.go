package led

import (
	"github.com/echtzeit-solutions/monsmod/hal"
	"github.com/echtzeit-solutions/monsmod/pkg"
)

// TriplesPerPage is the number of RGB triples carried by one data page.
const TriplesPerPage = 18

// Page selectors. Values below the data-page limit carry pixel data; the
// two high selectors trigger the stateless commit and release transitions.
const (
	PageCommit  = 0xFF
	PageRelease = 0xFE

	// maxDataPage bounds accepted data pages; positions beyond the grid
	// within an accepted page are clamped by the position table walk.
	maxDataPage = 6
)

// EffectModeNone is an out-of-range display-effect selector. Installing it
// makes the firmware's animation dispatch fall through to a no-op default,
// handing exclusive ownership of the frame buffer to the engine.
const EffectModeNone = 0xFF

// Engine is a two-state machine (idle, streaming) over the shared LED frame
// buffer. The first data page takes ownership of the frame buffer away from
// the firmware's built-in animation; release hands it back.
type Engine struct {
	store     hal.Store
	positions *PositionTable

	active      bool
	savedEffect uint8
}

// NewEngine creates an engine over the given store using the default
// position table.
func NewEngine(store hal.Store) *Engine {
	return NewEngineWithPositions(store, &DefaultPositions)
}

// NewEngineWithPositions creates an engine with a custom position table.
func NewEngineWithPositions(store hal.Store, positions *PositionTable) *Engine {
	return &Engine{store: store, positions: positions}
}

// Active reports whether the engine currently owns the frame buffer.
func (e *Engine) Active() bool { return e.active }

// HandlePage processes one page selector with its RGB payload and reports
// whether the selector was claimed. Unknown selectors are left to the
// original firmware.
func (e *Engine) HandlePage(page uint8, rgb []byte) bool {
	switch {
	case page == PageCommit:
		e.Commit()
		return true
	case page == PageRelease:
		e.Release()
		return true
	case page <= maxDataPage:
		e.writePage(page, rgb)
		return true
	default:
		return false
	}
}

// writePage encodes up to TriplesPerPage RGB triples into the frame buffer
// at grid positions page*TriplesPerPage onward. Positions mapping to NoLED,
// or to a strip index beyond the physical frame buffer, are silently
// skipped.
func (e *Engine) writePage(page uint8, rgb []byte) {
	if !e.active {
		e.active = true
		e.savedEffect = e.store.EffectMode()
		e.store.SetEffectMode(EffectModeNone)
		pkg.LogDebug(pkg.ComponentLED, "streaming started",
			"savedEffect", e.savedEffect)
	}

	frame := e.store.FrameBuffer()
	start := int(page) * TriplesPerPage

	for i := 0; i < TriplesPerPage && start+i < PositionCount; i++ {
		if (i+1)*3 > len(rgb) {
			break
		}
		idx := int(e.positions[start+i])
		if idx >= LEDCount || (idx+1)*BytesPerPixel > len(frame) {
			continue
		}

		r := rgb[i*3]
		g := rgb[i*3+1]
		b := rgb[i*3+2]

		// Channel order G, R, B per the strip's serial protocol.
		p := frame[idx*BytesPerPixel:]
		EncodeByte(p[0:], g)
		EncodeByte(p[BytesPerChannel:], r)
		EncodeByte(p[2*BytesPerChannel:], b)
	}
}

// Commit copies the entire encoded frame buffer into the buffer consumed by
// the display scanout hardware. This is the only path by which streamed
// data becomes visible, so updates are tear-free at full-commit granularity
// only.
func (e *Engine) Commit() {
	copy(e.store.DisplayBuffer(), e.store.FrameBuffer())
}

// Release restores the saved display-effect selector and returns to idle.
// Calling Release while idle is a no-op: state, saved selector, and frame
// buffer are all unchanged.
func (e *Engine) Release() {
	if !e.active {
		return
	}
	e.active = false
	e.store.SetEffectMode(e.savedEffect)
	pkg.LogDebug(pkg.ComponentLED, "streaming released",
		"restoredEffect", e.savedEffect)
}
