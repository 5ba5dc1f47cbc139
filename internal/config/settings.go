package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDotDir   = ".wez"
	DefaultLogLevel = "warning"
	EnvPrefix       = "WEZBITS"
)

// Multiplexer selects the terminal backend tasks run in.
type Multiplexer string

const (
	MultiplexerAuto    Multiplexer = "auto"
	MultiplexerWezterm Multiplexer = "wezterm"
	MultiplexerTmux    Multiplexer = "tmux"
	MultiplexerInline  Multiplexer = "inline"
)

func ParseMultiplexer(value string) (Multiplexer, error) {
	switch Multiplexer(strings.ToLower(strings.TrimSpace(value))) {
	case MultiplexerAuto, "":
		return MultiplexerAuto, nil
	case MultiplexerWezterm:
		return MultiplexerWezterm, nil
	case MultiplexerTmux:
		return MultiplexerTmux, nil
	case MultiplexerInline, "none":
		return MultiplexerInline, nil
	default:
		return "", fmt.Errorf("unknown multiplexer %q (expected auto, wezterm, tmux or inline)", value)
	}
}

// Resolve turns auto into a concrete backend using the environment of the
// calling terminal.
func (m Multiplexer) Resolve(getenv func(string) string) Multiplexer {
	if m != MultiplexerAuto {
		return m
	}
	if getenv("WEZTERM_PANE") != "" {
		return MultiplexerWezterm
	}
	if getenv("TMUX") != "" {
		return MultiplexerTmux
	}
	return MultiplexerWezterm
}

// Settings configure wez-bits itself, as opposed to the project tasks.
type Settings struct {
	Multiplexer Multiplexer
	LogLevel    string
	DotDir      string
	ConfigFile  string
}

// LoadSettings reads defaults, then an optional settings.toml in the dot
// dir, then WEZBITS_* environment variables.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetDefault("multiplexer", string(MultiplexerAuto))
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("dot_dir", DefaultDotDir)
	v.SetDefault("config_file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigName("settings")
	v.SetConfigType("toml")
	v.AddConfigPath(v.GetString("dot_dir"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	multiplexer, err := ParseMultiplexer(v.GetString("multiplexer"))
	if err != nil {
		return Settings{}, err
	}
	dotDir := strings.TrimSpace(v.GetString("dot_dir"))
	if dotDir == "" {
		dotDir = DefaultDotDir
	}
	return Settings{
		Multiplexer: multiplexer,
		LogLevel:    v.GetString("log_level"),
		DotDir:      dotDir,
		ConfigFile:  strings.TrimSpace(v.GetString("config_file")),
	}, nil
}
