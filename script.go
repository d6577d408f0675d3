package gameinput

// Frame is one tick of scripted input. Down is the trigger level for the
// tick, not an edge; consecutive Down frames press once.
type Frame struct {
	X, Y float64
	Down bool
}

// Script replays a fixed input sequence, one Frame per tick. It stands in
// for a real device in tests and headless builds, and doubles as the
// in-repo proof that anything satisfying Reader is substitutable for the
// hardware-backed readers.
//
// Advance plays the role of the platform sampling pass: call it once per
// tick before querying. Queries between two Advance calls are idempotent.
// Past the end of the sequence the last frame holds, with its press edge
// already spent.
type Script struct {
	frames  []Frame
	idx     int
	started bool
	trigger Trigger
	pressed bool
}

var _ Reader = (*Script)(nil)

// NewScript returns a Script that will play frames in order. An empty
// script reports a zero position and no presses forever.
func NewScript(frames ...Frame) *Script {
	return &Script{frames: frames}
}

// Advance consumes the next scripted tick.
func (s *Script) Advance() {
	if s.started && s.idx < len(s.frames)-1 {
		s.idx++
	}
	s.started = true
	if len(s.frames) == 0 {
		return
	}
	s.pressed = s.trigger.Update(s.frames[s.idx].Down)
}

func (s *Script) InteractPressed() bool {
	return s.pressed
}

func (s *Script) PointerPosition() (float64, float64) {
	if len(s.frames) == 0 {
		return 0, 0
	}
	return s.frames[s.idx].X, s.frames[s.idx].Y
}
