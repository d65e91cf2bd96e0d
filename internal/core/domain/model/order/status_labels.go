package order

import (
	"errors"
	"fmt"
)

// ErrDefaultStatusIsNotConfigured marks a state with no default status label.
var ErrDefaultStatusIsNotConfigured = errors.New("default status is not configured")

// StatusLabels maps each lifecycle state to its default status label.
// It is loaded from configuration (see statusrepo) and satisfies the state
// classifier's status resolver.
type StatusLabels map[State]string

// DefaultStatusLabels returns the labels seeded on a fresh installation:
// new orders are "pending", every other state uses its own name.
func DefaultStatusLabels() StatusLabels {
	labels := make(StatusLabels, len(States()))
	for _, state := range States() {
		labels[state] = string(state)
	}
	labels[StateNew] = "pending"
	return labels
}

// DefaultStatus returns the label configured for state.
//
// Returns:
//   - ErrDefaultStatusIsNotConfigured when the state has no non-empty label
func (l StatusLabels) DefaultStatus(state State) (string, error) {
	status, ok := l[state]
	if !ok || status == "" {
		return "", fmt.Errorf("%w for state %q", ErrDefaultStatusIsNotConfigured, state)
	}
	return status, nil
}
