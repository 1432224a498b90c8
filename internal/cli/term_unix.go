//go:build unix

package cli

import "golang.org/x/sys/unix"

// terminalSize returns the dimensions of the terminal on fd.
func terminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
