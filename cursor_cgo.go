//go:build !windows && cgo

package gameinput

import "github.com/go-vgo/robotgo"

func cursorPos() (int, int) {
	return robotgo.GetMousePos()
}

// robotgo has no button-level query, so the interact trigger never fires
// on these platforms. Pointer position still works.
func primaryButtonDown() bool {
	return false
}
