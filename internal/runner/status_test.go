package runner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wezbits/internal/task"
)

type staticChannel struct{}

func (staticChannel) Report() string                 { return "echo $? > /tmp/status" }
func (staticChannel) Wait() (task.ExitStatus, error) { return 0, nil }
func (staticChannel) Close() error                   { return nil }

func TestShellLineQuotesWords(t *testing.T) {
	cases := []struct {
		argv []string
		want string
	}{
		{argv: []string{"npm", "run", "build"}, want: "npm run build"},
		{argv: []string{"echo", "hello world"}, want: "echo 'hello world'"},
		{argv: []string{"echo", "a;b"}, want: `echo a\;b`},
		{argv: []string{"echo", ""}, want: "echo ''"},
		{argv: []string{"echo", "it's"}, want: `echo it\'s`},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ShellLine(tc.argv), "argv %q", tc.argv)
	}
}

func TestCommandLineAppendsReport(t *testing.T) {
	line := CommandLine([]string{"cargo", "test"}, staticChannel{})
	require.Equal(t, "cargo test; echo $? > /tmp/status\n", line)
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus([]byte("3\n"))
	require.NoError(t, err)
	require.Equal(t, task.ExitStatus(3), status)

	status, err = ParseStatus([]byte(" 0 "))
	require.NoError(t, err)
	require.True(t, status.Success())

	_, err = ParseStatus(nil)
	require.ErrorContains(t, err, "before reporting")

	status, err = ParseStatus([]byte("oops"))
	require.Error(t, err)
	require.Equal(t, task.ExitAbnormal, status)
}
