package task

import (
	"strconv"
	"strings"

	"wezbits/internal/logging"
)

// PaneSizePercent is the share of the current pane given to a task pane.
// It is the same for both directions.
const PaneSizePercent = 30

// Terminal is the multiplexer capability the orchestrator drives.
type Terminal interface {
	// OpenPane splits the current pane and returns the new pane id.
	OpenPane(direction Direction, sizePercent int) (string, error)
	// ClosePane kills a pane.
	ClosePane(paneID string) error
	// Deliver runs argv inside the pane and blocks until it completes.
	Deliver(argv []string, paneID string) (ExitStatus, error)
}

// Service runs tasks in terminal panes.
type Service struct {
	terminal Terminal
	logger   *logging.Logger
}

func NewService(terminal Terminal, logger *logging.Logger) *Service {
	return &Service{terminal: terminal, logger: logger}
}

// Execute opens a pane, delivers the task command into it and applies the
// close policy. A pane that cannot be opened aborts the run. A failure to
// close the pane is logged and never replaces the command's own status.
func (s *Service) Execute(task Task) (ExitStatus, error) {
	fields := map[string]string{
		"program":   task.Command.Program,
		"direction": string(task.Settings.Direction),
		"close":     string(task.Settings.Close),
	}

	paneID, err := s.terminal.OpenPane(task.Settings.Direction, PaneSizePercent)
	if err != nil {
		return 0, err
	}
	fields["pane_id"] = paneID
	s.logger.Info("pane opened", fields)

	argv := task.Command.Argv()
	s.logger.Debug("delivering command", withField(fields, "argv", strings.Join(argv, " ")))
	status, deliverErr := s.terminal.Deliver(argv, paneID)
	if deliverErr == nil {
		s.logger.Info("command finished", withField(fields, "exit_status", strconv.Itoa(int(status))))
	}

	if shouldClose(task.Settings.Close, status, deliverErr) {
		if err := s.terminal.ClosePane(paneID); err != nil {
			s.logger.Warn("close pane failed", withField(fields, "error", err.Error()))
		}
	}

	if deliverErr != nil {
		return status, deliverErr
	}
	return status, nil
}

func shouldClose(policy TaskClose, status ExitStatus, deliverErr error) bool {
	switch policy {
	case CloseAlways:
		return true
	case CloseOnSuccess:
		return deliverErr == nil && status.Success()
	default:
		return false
	}
}

func withField(fields map[string]string, key, value string) map[string]string {
	combined := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		combined[k] = v
	}
	combined[key] = value
	return combined
}
