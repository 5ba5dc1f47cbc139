package tmux

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"wezbits/internal/runner"
	"wezbits/internal/task"
)

type tmuxCall struct {
	args  []string
	input []byte
}

type fakeRunner struct {
	calls  []tmuxCall
	output []byte
	err    error
	// failOn makes only the named subcommand fail.
	failOn string
}

func (f *fakeRunner) Run(args []string, input []byte) ([]byte, error) {
	f.calls = append(f.calls, tmuxCall{args: append([]string(nil), args...), input: append([]byte(nil), input...)})
	if f.failOn != "" && args[0] != f.failOn {
		return nil, nil
	}
	return f.output, f.err
}

type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e exitError) ExitCode() int { return e.code }

func TestClientOpenPaneRight(t *testing.T) {
	fake := &fakeRunner{output: []byte("%12\n")}
	client := NewClientWithRunner(fake)

	paneID, err := client.OpenPane(task.DirectionRight, 30)
	if err != nil {
		t.Fatalf("open pane: %v", err)
	}
	if paneID != "%12" {
		t.Fatalf("expected pane %%12, got %q", paneID)
	}
	expected := []string{"split-window", "-h", "-l", "30%", "-P", "-F", "#{pane_id}"}
	if len(fake.calls) != 1 || !equalArgs(fake.calls[0].args, expected) {
		t.Fatalf("unexpected calls: %#v", fake.calls)
	}
}

func TestClientOpenPaneDown(t *testing.T) {
	fake := &fakeRunner{output: []byte("%3")}
	client := NewClientWithRunner(fake)

	if _, err := client.OpenPane(task.DirectionDown, 30); err != nil {
		t.Fatalf("open pane: %v", err)
	}
	expected := []string{"split-window", "-v", "-l", "30%", "-P", "-F", "#{pane_id}"}
	if !equalArgs(fake.calls[0].args, expected) {
		t.Fatalf("unexpected args: %#v", fake.calls[0].args)
	}
}

func TestClientOpenPaneError(t *testing.T) {
	client := NewClientWithRunner(&fakeRunner{output: []byte("no server running"), err: exitError{code: 1}})

	_, err := client.OpenPane(task.DirectionRight, 30)
	var termErr *task.TerminalError
	if !errors.As(err, &termErr) || termErr.Op != task.OpOpen {
		t.Fatalf("expected open TerminalError, got %v", err)
	}
}

type fakeChannel struct {
	status task.ExitStatus
	err    error
	waited bool
	closed bool
}

func (f *fakeChannel) Report() string { return "echo $? > /tmp/wez-bits-1/status" }

func (f *fakeChannel) Wait() (task.ExitStatus, error) {
	f.waited = true
	return f.status, f.err
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestClient(r *fakeRunner, channel *fakeChannel) *Client {
	client := NewClientWithRunner(r)
	client.openStatus = func() (runner.StatusChannel, error) { return channel, nil }
	return client
}

func TestClientDeliverPastesLineAndWaits(t *testing.T) {
	fake := &fakeRunner{}
	channel := &fakeChannel{}
	client := newTestClient(fake, channel)

	status, err := client.Deliver([]string{"go", "test", "./..."}, "%12")
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if !status.Success() {
		t.Fatalf("expected success, got %d", status)
	}
	if len(fake.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(fake.calls))
	}
	load := fake.calls[0]
	if !equalArgs(load.args, []string{"load-buffer", "-b", "wez-bits", "-"}) {
		t.Fatalf("unexpected load args: %#v", load.args)
	}
	if !bytes.Equal(load.input, []byte("go test ./...; echo $? > /tmp/wez-bits-1/status\n")) {
		t.Fatalf("unexpected input: %q", load.input)
	}
	paste := fake.calls[1]
	if !equalArgs(paste.args, []string{"paste-buffer", "-d", "-b", "wez-bits", "-t", "%12"}) {
		t.Fatalf("unexpected paste args: %#v", paste.args)
	}
	if !channel.waited || !channel.closed {
		t.Fatalf("expected status channel to be waited on and closed")
	}
}

func TestClientDeliverReturnsCommandStatus(t *testing.T) {
	client := newTestClient(&fakeRunner{}, &fakeChannel{status: 2})

	status, err := client.Deliver([]string{"make", "check"}, "%12")
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if status != 2 {
		t.Fatalf("expected status 2, got %d", status)
	}
}

func TestClientDeliverQuotesArguments(t *testing.T) {
	fake := &fakeRunner{}
	client := newTestClient(fake, &fakeChannel{})

	if _, err := client.Deliver([]string{"git", "commit", "-m", "fix it; now"}, "%12"); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	want := "git commit -m 'fix it; now'; "
	if !bytes.HasPrefix(fake.calls[0].input, []byte(want)) {
		t.Fatalf("expected input to start with %q, got %q", want, fake.calls[0].input)
	}
}

func TestClientDeliverPasteFailureSkipsWait(t *testing.T) {
	channel := &fakeChannel{}
	client := newTestClient(&fakeRunner{err: exitError{code: 1}, failOn: "paste-buffer"}, channel)

	_, err := client.Deliver([]string{"make"}, "%12")
	var termErr *task.TerminalError
	if !errors.As(err, &termErr) || termErr.Op != task.OpDeliver || termErr.PaneID != "%12" {
		t.Fatalf("expected deliver TerminalError, got %v", err)
	}
	if channel.waited {
		t.Fatalf("expected no wait after a failed paste")
	}
	if !channel.closed {
		t.Fatalf("expected status channel to be closed")
	}
}

func TestClientDeliverLoadFailureSkipsPaste(t *testing.T) {
	fake := &fakeRunner{err: errors.New("fork failed"), failOn: "load-buffer"}
	client := newTestClient(fake, &fakeChannel{})

	_, err := client.Deliver([]string{"make"}, "%12")
	var termErr *task.TerminalError
	if !errors.As(err, &termErr) || termErr.Op != task.OpDeliver {
		t.Fatalf("expected deliver TerminalError, got %v", err)
	}
	if len(fake.calls) != 1 {
		t.Fatalf("expected paste to be skipped, got %d calls", len(fake.calls))
	}
}

func TestClientDeliverWaitFailure(t *testing.T) {
	client := newTestClient(&fakeRunner{}, &fakeChannel{status: task.ExitAbnormal, err: fmt.Errorf("read status: interrupted")})

	_, err := client.Deliver([]string{"make"}, "%12")
	var termErr *task.TerminalError
	if !errors.As(err, &termErr) || termErr.PaneID != "%12" {
		t.Fatalf("expected deliver TerminalError, got %v", err)
	}
}

func TestServiceSeesCommandStatus(t *testing.T) {
	fake := &fakeRunner{output: []byte("%12\n")}
	client := newTestClient(fake, &fakeChannel{status: 3})
	failing := task.Task{
		Command:  task.Command{Program: "sh", Args: []string{"-c", "exit 3"}},
		Settings: task.TaskSettings{Close: task.CloseOnSuccess, Direction: task.DirectionDown},
	}

	status, err := task.NewService(client, nil).Execute(failing)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if status != 3 {
		t.Fatalf("expected status 3, got %d", status)
	}
	for _, call := range fake.calls {
		if call.args[0] == "kill-pane" {
			t.Fatalf("failed task pane was closed: %#v", fake.calls)
		}
	}
}

func TestClientClosePane(t *testing.T) {
	fake := &fakeRunner{}
	client := NewClientWithRunner(fake)

	if err := client.ClosePane("%12"); err != nil {
		t.Fatalf("close pane: %v", err)
	}
	if !equalArgs(fake.calls[0].args, []string{"kill-pane", "-t", "%12"}) {
		t.Fatalf("unexpected args: %#v", fake.calls[0].args)
	}
}

func TestClientClosePaneError(t *testing.T) {
	client := NewClientWithRunner(&fakeRunner{err: errors.New("boom"), output: []byte("can't find pane")})

	err := client.ClosePane("%12")
	var termErr *task.TerminalError
	if !errors.As(err, &termErr) || termErr.PaneID != "%12" {
		t.Fatalf("expected close TerminalError, got %v", err)
	}
}

func equalArgs(got, expected []string) bool {
	if len(got) != len(expected) {
		return false
	}
	for i := range expected {
		if got[i] != expected[i] {
			return false
		}
	}
	return true
}
