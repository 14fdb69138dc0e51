//go:build !linux && !windows

package protection

// debuggerAttached has no probe on this platform.
func debuggerAttached() bool {
	return false
}
