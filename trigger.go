package gameinput

// Trigger turns a level signal into an edge signal for hosts that do not
// expose a per-tick transition flag. It owns the single bit of previous
// state and must be updated exactly once per tick.
type Trigger struct {
	prev bool
}

// Update consumes the trigger level sampled this tick and reports whether
// it transitioned from released to pressed. A held trigger reports true
// only on the tick of the transition.
func (t *Trigger) Update(down bool) bool {
	pressed := down && !t.prev
	t.prev = down
	return pressed
}

// Reset forgets the previous level, so a trigger already held on the next
// Update counts as a fresh press. Useful after the host loses and regains
// input focus.
func (t *Trigger) Reset() {
	t.prev = false
}
