package gameinput

// Desktop reads the operating system's global cursor, outside any game
// window. The OS exposes no per-tick transition flag, so Desktop owns the
// previous button level and computes the interact edge itself via Trigger;
// the frame loop must call Poll once per tick before querying.
type Desktop struct {
	cursor  func() (int, int)
	button  func() bool
	trigger Trigger

	x, y    float64
	pressed bool
}

var _ Reader = (*Desktop)(nil)

// NewDesktop returns a Desktop backed by the host platform's cursor and
// primary-button primitives. Platforms missing a primitive degrade to a
// zero cursor position and a never-pressed trigger; see cursor_other.go.
func NewDesktop() *Desktop {
	return &Desktop{cursor: cursorPos, button: primaryButtonDown}
}

// Poll samples the platform state for this tick. All queries made before
// the next Poll see the same sampled values.
func (d *Desktop) Poll() {
	x, y := d.cursor()
	d.x, d.y = float64(x), float64(y)
	d.pressed = d.trigger.Update(d.button())
}

// InteractPressed reports whether the primary button went down during the
// most recent Poll.
func (d *Desktop) InteractPressed() bool {
	return d.pressed
}

// PointerPosition returns the cursor position captured by the most recent
// Poll, in desktop pixel coordinates.
func (d *Desktop) PointerPosition() (float64, float64) {
	return d.x, d.y
}
