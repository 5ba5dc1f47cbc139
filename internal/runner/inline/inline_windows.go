//go:build windows

package inline

import (
	"errors"

	"wezbits/internal/task"
)

func (t *Terminal) Deliver(argv []string, paneID string) (task.ExitStatus, error) {
	return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: errors.New("inline mode is not supported on windows")}
}
