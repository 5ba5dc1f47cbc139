package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"wezbits/internal/fsutil"
	"wezbits/internal/logging"
	"wezbits/internal/task"
)

//go:embed defaults
var defaultsFS embed.FS

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigExists   = errors.New("config file already exists")
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported config format %q (expected toml or yaml)", value)
	}
}

func formatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// candidateNames are tried in order inside the dot dir.
var candidateNames = []string{"config.toml", "config.yaml", "config.yml"}

// Store reads and writes the project task configuration.
type Store struct {
	FS     fsutil.FS
	DotDir string
	// File overrides the search inside DotDir when set.
	File   string
	Logger *logging.Logger
}

// Path returns the config file in use. When none exists it returns the
// default TOML path together with ErrConfigNotFound.
func (s *Store) Path() (string, error) {
	if strings.TrimSpace(s.File) != "" {
		ok, err := s.FS.Exists(s.File)
		if err != nil {
			return "", err
		}
		if !ok {
			return s.File, fmt.Errorf("%w: %s", ErrConfigNotFound, s.File)
		}
		return s.File, nil
	}
	for _, name := range candidateNames {
		path := filepath.Join(s.DotDir, name)
		ok, err := s.FS.Exists(path)
		if err != nil {
			return "", err
		}
		if ok {
			return path, nil
		}
	}
	path := filepath.Join(s.DotDir, candidateNames[0])
	return path, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
}

// Load reads and decodes the task configuration.
func (s *Store) Load() (task.TaskConfig, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}
	format, err := formatForPath(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	s.logInfo("loading config", map[string]string{"path": path, "format": string(format)})

	data, err := s.FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	switch format {
	case FormatYAML:
		return s.decodeYAML(path, data)
	default:
		return s.decodeTOML(path, data)
	}
}

func (s *Store) decodeTOML(path string, data []byte) (task.TaskConfig, error) {
	config := task.TaskConfig{}
	meta, err := toml.Decode(string(data), &config)
	if err != nil {
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("parse config %s: %s", path, parseErr.ErrorWithPosition())
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		s.logWarn("unknown config keys ignored", map[string]string{"path": path, "keys": strings.Join(keys, ",")})
	}
	return config, nil
}

func (s *Store) decodeYAML(path string, data []byte) (task.TaskConfig, error) {
	config := task.TaskConfig{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return task.TaskConfig{}, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if config == nil {
		config = task.TaskConfig{}
	}
	return config, nil
}

// Create writes the default configuration into the dot dir and returns its
// path. An existing config is kept unless overwrite is set, in which case
// the new file replaces it.
func (s *Store) Create(format Format, overwrite bool) (string, error) {
	existing, err := s.Path()
	switch {
	case err == nil && !overwrite:
		return existing, fmt.Errorf("%w: %s", ErrConfigExists, existing)
	case err == nil:
	case errors.Is(err, ErrConfigNotFound):
		existing = ""
	default:
		return "", err
	}

	path := strings.TrimSpace(s.File)
	if path == "" {
		path = filepath.Join(s.DotDir, "config."+string(format))
	} else if fileFormat, err := formatForPath(path); err != nil {
		return "", err
	} else {
		format = fileFormat
	}

	payload, err := defaultsFS.ReadFile("defaults/config." + string(format))
	if err != nil {
		return "", fmt.Errorf("load default config: %w", err)
	}

	dir := filepath.Dir(path)
	s.logInfo("creating config directory", map[string]string{"path": dir})
	if err := s.FS.MkdirAll(dir); err != nil {
		return "", fmt.Errorf("create config directory %s: %w", dir, err)
	}
	if err := s.FS.WriteFile(path, payload); err != nil {
		return "", fmt.Errorf("write config %s: %w", path, err)
	}
	// A replaced config in the other format would still shadow or be shadowed
	// by the new one.
	if existing != "" && existing != path {
		if err := s.FS.Remove(existing); err != nil {
			return path, fmt.Errorf("remove previous config %s: %w", existing, err)
		}
	}
	s.logInfo("config created", map[string]string{"path": path, "replaced": existing})
	return path, nil
}

// View writes one line per task, sorted by name.
func (s *Store) View(w io.Writer) error {
	config, err := s.Load()
	if err != nil {
		return err
	}
	return Render(w, config)
}

// Render prints config as `[name] program args...` lines. Styling is
// dropped when w is not a terminal.
func Render(w io.Writer, config task.TaskConfig) error {
	renderer := lipgloss.NewRenderer(w)
	nameStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	unsetStyle := renderer.NewStyle().Faint(true)

	names := config.Names()
	sort.Strings(names)
	for _, name := range names {
		command := config[name]
		line := nameStyle.Render("[" + name + "]")
		if command.Program == "" {
			line += " " + unsetStyle.Render("(not configured)")
		} else {
			line += " " + strings.Join(command.Argv(), " ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) logInfo(message string, fields map[string]string) {
	if s == nil || s.Logger == nil {
		return
	}
	s.Logger.Info(message, fields)
}

func (s *Store) logWarn(message string, fields map[string]string) {
	if s == nil || s.Logger == nil {
		return
	}
	s.Logger.Warn(message, fields)
}
