package task

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseDirection(t *testing.T) {
	cases := []struct {
		input     string
		want      Direction
		expectErr bool
	}{
		{input: "right", want: DirectionRight},
		{input: "Down", want: DirectionDown},
		{input: "left", expectErr: true},
		{input: "", expectErr: true},
	}
	for _, tc := range cases {
		got, err := ParseDirection(tc.input)
		if tc.expectErr {
			if err == nil {
				t.Fatalf("ParseDirection(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseDirection(%q) = %q, %v", tc.input, got, err)
		}
	}
}

func TestParseTaskClose(t *testing.T) {
	cases := []struct {
		input     string
		want      TaskClose
		expectErr bool
	}{
		{input: "always", want: CloseAlways},
		{input: "on-success", want: CloseOnSuccess},
		{input: " never ", want: CloseNever},
		{input: "onsuccess", expectErr: true},
	}
	for _, tc := range cases {
		got, err := ParseTaskClose(tc.input)
		if tc.expectErr {
			if err == nil {
				t.Fatalf("ParseTaskClose(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseTaskClose(%q) = %q, %v", tc.input, got, err)
		}
	}
}

func TestCommandArgv(t *testing.T) {
	command := Command{Program: "npm", Args: []string{"run", "build"}}
	if got := command.Argv(); !reflect.DeepEqual(got, []string{"npm", "run", "build"}) {
		t.Fatalf("unexpected argv: %v", got)
	}
	if got := (Command{}).Argv(); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("unexpected argv for empty command: %#v", got)
	}
}

func TestExitStatus(t *testing.T) {
	if !ExitStatus(0).Success() {
		t.Fatalf("expected 0 to be success")
	}
	if ExitStatus(2).Success() || ExitAbnormal.Success() {
		t.Fatalf("expected non-zero statuses to fail")
	}
	if ExitAbnormal.Code() != 1 || ExitStatus(7).Code() != 7 {
		t.Fatalf("unexpected codes: %d %d", ExitAbnormal.Code(), ExitStatus(7).Code())
	}
}

func TestTerminalErrorMessage(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &TerminalError{Op: OpClose, PaneID: "12", Err: cause}
	if !strings.Contains(err.Error(), "close pane 12 failed") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	open := &TerminalError{Op: OpOpen, Err: cause}
	if open.Error() != "open pane failed: exit status 1" {
		t.Fatalf("unexpected message: %q", open.Error())
	}
}
