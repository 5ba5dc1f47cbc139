//go:build !windows

package inline

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"wezbits/internal/runner"
	"wezbits/internal/task"
)

// Deliver starts argv directly and blocks until it exits. A command that
// cannot be started reports ExitNotStarted.
func (t *Terminal) Deliver(argv []string, paneID string) (task.ExitStatus, error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: err}
	}
	defer ptmx.Close()

	if len(argv) == 0 {
		_ = tty.Close()
		return task.ExitNotStarted, nil
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = tty
	cmd.Stdout = tty
	cmd.Stderr = tty
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}

	console, interactive := t.console()
	if interactive {
		_ = pty.InheritSize(console, tty)
	}
	if err := cmd.Start(); err != nil {
		_ = tty.Close()
		return task.ExitNotStarted, nil
	}
	_ = tty.Close()

	if interactive {
		stopResize := followResize(console, ptmx)
		defer stopResize()
		if state, err := term.MakeRaw(int(console.Fd())); err == nil {
			defer func() { _ = term.Restore(int(console.Fd()), state) }()
		}
	}
	go t.forwardInput(ptmx, interactive)

	// Reading the master side ends with EIO once the child closes the tty.
	_, _ = io.Copy(t.output, ptmx)

	waitErr := cmd.Wait()
	if status, ok := runner.StatusFromError(waitErr); ok {
		return status, nil
	}
	return task.ExitAbnormal, &task.TerminalError{Op: task.OpDeliver, PaneID: paneID, Err: fmt.Errorf("wait for %s: %w", argv[0], waitErr)}
}

// console returns the input as a terminal file when it is one.
func (t *Terminal) console() (*os.File, bool) {
	file, ok := t.input.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil, false
	}
	return file, true
}

// forwardInput copies input into the pty. Piped input that runs out is
// followed by an end-of-transmission so readers in the task see EOF.
func (t *Terminal) forwardInput(ptmx *os.File, interactive bool) {
	_, err := io.Copy(ptmx, t.input)
	if err == nil && !interactive {
		_, _ = ptmx.Write([]byte{eot})
	}
}

func followResize(console, ptmx *os.File) func() {
	resized := make(chan os.Signal, 1)
	signal.Notify(resized, syscall.SIGWINCH)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-resized:
				_ = pty.InheritSize(console, ptmx)
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(resized)
		close(done)
	}
}
