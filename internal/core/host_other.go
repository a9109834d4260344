//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package core

func uname() (string, string, bool) {
	return "", "", false
}
