package cli

import (
	"flag"
	"fmt"
	"strings"
)

const (
	defaultHelpDesc    = "Show help"
	defaultVersionDesc = "Print version and exit"
)

type HelpVersionFlags struct {
	Help    bool
	Version bool
}

func AddHelpVersionFlags(fs *flag.FlagSet, helpDesc, versionDesc string) *HelpVersionFlags {
	if fs == nil {
		return &HelpVersionFlags{}
	}
	if helpDesc == "" {
		helpDesc = defaultHelpDesc
	}
	if versionDesc == "" {
		versionDesc = defaultVersionDesc
	}
	flags := &HelpVersionFlags{}
	fs.BoolVar(&flags.Help, "help", false, helpDesc)
	fs.BoolVar(&flags.Help, "h", false, helpDesc)
	fs.BoolVar(&flags.Version, "version", false, versionDesc)
	fs.BoolVar(&flags.Version, "v", false, versionDesc)
	return flags
}

// Choice is a string flag restricted to a fixed set of values.
type Choice struct {
	Value   string
	Allowed []string
}

func (c *Choice) String() string {
	if c == nil {
		return ""
	}
	return c.Value
}

func (c *Choice) Set(value string) error {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, allowed := range c.Allowed {
		if normalized == allowed {
			c.Value = allowed
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(c.Allowed, ", "))
}

// AddChoiceFlag registers a long and short name for the same choice.
func AddChoiceFlag(fs *flag.FlagSet, name, short, value, usage string, allowed ...string) *Choice {
	choice := &Choice{Value: value, Allowed: allowed}
	usage = fmt.Sprintf("%s (%s)", usage, strings.Join(allowed, "|"))
	fs.Var(choice, name, usage)
	if short != "" {
		fs.Var(choice, short, usage)
	}
	return choice
}

// Interspersed parses fs over args while allowing flags after positional
// arguments, which the flag package otherwise stops at. Everything after a
// "--" terminator is positional.
func Interspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var rest []string
	for i, arg := range args {
		if arg == "--" {
			rest = args[i+1:]
			args = args[:i]
			break
		}
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return append(positional, rest...), nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}
