//go:build linux || darwin || freebsd || netbsd || openbsd

package core

import "golang.org/x/sys/unix"

func uname() (string, string, bool) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", "", false
	}
	return unix.ByteSliceToString(u.Sysname[:]), unix.ByteSliceToString(u.Release[:]), true
}
