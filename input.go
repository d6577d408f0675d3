// Package gameinput abstracts the input queries gameplay code needs from
// whatever device is driving the game. Consumers hold a Reader and poll it
// each tick; concrete readers translate one input source (ebiten window
// mouse/keyboard, OS-global cursor, scripted playback) into the same two
// queries, so sources can be swapped without touching calling code.
package gameinput

// Reader is the capability contract for an input source.
//
// Both queries are pure reads of state the host sampled at the start of
// the tick: they never fail, block, or mutate anything. InteractPressed is
// edge-triggered and should be consulted once per tick; PointerPosition
// may be read any number of times with identical results until the next
// sampling pass.
type Reader interface {
	// InteractPressed reports whether the interact trigger transitioned
	// from inactive to active this tick. It stays false on subsequent
	// ticks while the trigger is held.
	InteractPressed() bool

	// PointerPosition returns the current pointer location in screen-pixel
	// coordinates, using the host platform's origin and axis convention.
	PointerPosition() (x, y float64)
}
