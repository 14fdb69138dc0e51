package protection

import "golang.org/x/sys/windows"

var (
	modkernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procIsDebuggerPresent = modkernel32.NewProc("IsDebuggerPresent")
)

func debuggerAttached() bool {
	if err := procIsDebuggerPresent.Find(); err != nil {
		return true
	}
	ret, _, _ := procIsDebuggerPresent.Call()
	return ret != 0
}
