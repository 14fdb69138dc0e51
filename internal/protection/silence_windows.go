package protection

import (
	"os"

	"golang.org/x/sys/windows"
)

func silenceStdio() error {
	null, err := openDevNull()
	if err != nil {
		return err
	}
	h := windows.Handle(null.Fd())
	if err := windows.SetStdHandle(windows.STD_OUTPUT_HANDLE, h); err != nil {
		return err
	}
	if err := windows.SetStdHandle(windows.STD_ERROR_HANDLE, h); err != nil {
		return err
	}
	os.Stdout = null
	os.Stderr = null
	return nil
}
