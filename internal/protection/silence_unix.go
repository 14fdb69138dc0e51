//go:build linux || darwin || freebsd || netbsd || openbsd

package protection

import (
	"os"

	"golang.org/x/sys/unix"
)

// silenceStdio points fds 1 and 2 at the null device so native code and a
// hosting process lose output too, then swaps the os package handles.
func silenceStdio() error {
	null, err := openDevNull()
	if err != nil {
		return err
	}
	for _, fd := range []int{unix.Stdout, unix.Stderr} {
		if err := dupOnto(int(null.Fd()), fd); err != nil {
			return err
		}
	}
	os.Stdout = null
	os.Stderr = null
	return nil
}
