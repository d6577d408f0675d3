//go:build windows

package gameinput

import (
	"syscall"
	"unsafe"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

const vkLButton = 0x01

type point struct {
	X int32
	Y int32
}

func cursorPos() (int, int) {
	var p point
	ret, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return 0, 0
	}
	return int(p.X), int(p.Y)
}

// primaryButtonDown reports the left mouse button level. GetAsyncKeyState
// sets the high bit while the key is held.
func primaryButtonDown() bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vkLButton))
	return ret&0x8000 != 0
}
