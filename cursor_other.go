//go:build !windows && !cgo

package gameinput

// Pure-Go shims when building without cgo. Degraded policy: zero cursor
// position, button never down.

func cursorPos() (int, int) { return 0, 0 }

func primaryButtonDown() bool { return false }
