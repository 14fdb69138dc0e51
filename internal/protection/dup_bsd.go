//go:build darwin || freebsd || netbsd || openbsd

package protection

import "golang.org/x/sys/unix"

func dupOnto(oldfd, newfd int) error {
	return unix.Dup2(oldfd, newfd)
}
