//go:build !unix && !windows

package cli

import "errors"

func terminalSize(int) (width, height int, err error) {
	return 0, 0, errors.New("terminal size not supported on this platform")
}
