package main

import (
	"fmt"
	"io"

	"wezbits/internal/config"
	"wezbits/internal/runner/inline"
	"wezbits/internal/runner/tmux"
	"wezbits/internal/runner/wezterm"
	"wezbits/internal/task"
)

func newTerminal(mux config.Multiplexer, in io.Reader, out io.Writer) (task.Terminal, error) {
	switch mux {
	case config.MultiplexerWezterm:
		return wezterm.NewClient(), nil
	case config.MultiplexerTmux:
		return tmux.NewClient(), nil
	case config.MultiplexerInline:
		return inline.New(in, out), nil
	default:
		return nil, fmt.Errorf("unsupported multiplexer %q", mux)
	}
}
