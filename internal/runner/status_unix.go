//go:build !windows

package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/kballard/go-shellquote"

	"wezbits/internal/task"
)

// fifoChannel is a named pipe in a private temp dir. Reading blocks until
// the pane shell opens it for writing and returns once the shell closes it.
type fifoChannel struct {
	dir  string
	path string
}

func openStatusChannel() (StatusChannel, error) {
	dir, err := os.MkdirTemp("", "wez-bits-")
	if err != nil {
		return nil, fmt.Errorf("create status dir: %w", err)
	}
	path := filepath.Join(dir, "status")
	if err := syscall.Mkfifo(path, 0o600); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("create status fifo: %w", err)
	}
	return &fifoChannel{dir: dir, path: path}, nil
}

func (c *fifoChannel) Report() string {
	return "echo $? > " + shellquote.Join(c.path)
}

func (c *fifoChannel) Wait() (task.ExitStatus, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return task.ExitAbnormal, fmt.Errorf("read status: %w", err)
	}
	return ParseStatus(data)
}

func (c *fifoChannel) Close() error {
	return os.RemoveAll(c.dir)
}
