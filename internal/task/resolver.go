package task

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

const maxSuggestionDistance = 2

// FindTask looks up name in config and binds it to the settings of this run.
// The returned task owns a copy of the configured command.
func FindTask(name string, config TaskConfig, close TaskClose, direction Direction) (Task, error) {
	command, ok := config[name]
	if !ok {
		return Task{}, &NotConfiguredError{Name: name, Suggestion: suggestName(name, config)}
	}
	return Task{
		Command:  command.clone(),
		Settings: TaskSettings{Close: close, Direction: direction},
	}, nil
}

// suggestName returns the closest configured name, or "" when nothing is close enough.
func suggestName(name string, config TaskConfig) string {
	limit := len(name) / 2
	if limit > maxSuggestionDistance {
		limit = maxSuggestionDistance
	}
	if limit == 0 {
		return ""
	}

	names := config.Names()
	sort.Strings(names)
	best := ""
	bestDistance := limit + 1
	for _, candidate := range names {
		distance := levenshtein.ComputeDistance(name, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}
