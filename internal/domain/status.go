package domain

import (
	"fmt"
	"strings"
)

// TaskStatus is the lifecycle state of a task. The numeric value defines the
// sort order used when tasks are ordered by status.
type TaskStatus int

// Possible task status values, in sort order.
const (
	StatusPending TaskStatus = iota
	StatusInProgress
	StatusDone
	StatusCancelled
)

var statusNames = [...]string{
	StatusPending:    "PENDING",
	StatusInProgress: "IN_PROGRESS",
	StatusDone:       "DONE",
	StatusCancelled:  "CANCELLED",
}

// AllStatuses returns every status in sort order.
func AllStatuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusDone, StatusCancelled}
}

// ParseTaskStatus converts a wire name into a TaskStatus. Matching is case-insensitive.
func ParseTaskStatus(s string) (TaskStatus, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range statusNames {
		if n == name {
			return TaskStatus(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Valid reports whether s is one of the declared statuses.
func (s TaskStatus) Valid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

// String returns the wire name of the status.
func (s TaskStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("TaskStatus(%d)", int(s))
	}
	return statusNames[s]
}

// Compare orders statuses by their declaration order.
func (s TaskStatus) Compare(other TaskStatus) int {
	switch {
	case s < other:
		return -1
	case s > other:
		return 1
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s TaskStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TaskStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseTaskStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
