//go:build windows

package runner

import "errors"

func openStatusChannel() (StatusChannel, error) {
	return nil, errors.New("waiting for pane commands is not supported on windows")
}
