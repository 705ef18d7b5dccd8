package order

import (
	"errors"
	"fmt"
)

// Status is the lifecycle stage of an order. The wire values are the ones
// the bar staff see on the board.
type Status string

const (
	StatusNew      Status = "NY"
	StatusStarted  Status = "PABORJAD"
	StatusReady    Status = "KLAR"
	StatusServed   Status = "UTLAMNAD"
	StatusArchived Status = "ARKIV"
)

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// AllStatuses lists the closed set in lifecycle order.
var AllStatuses = []Status{StatusNew, StatusStarted, StatusReady, StatusServed, StatusArchived}

// ParseStatus accepts only members of the closed set.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusStarted, StatusReady, StatusServed, StatusArchived:
		return true
	default:
		return false
	}
}

// Weight buckets statuses for sorting. READY and SERVED share a bucket.
func (s Status) Weight() int {
	switch s {
	case StatusNew:
		return 0
	case StatusStarted:
		return 1
	case StatusReady, StatusServed:
		return 2
	case StatusArchived:
		return 99
	default:
		return 10
	}
}

// Active reports whether the order still belongs on the working board.
func (s Status) Active() bool {
	return s != StatusArchived
}

var transitions = map[Status][]Status{
	StatusNew:     {StatusStarted, StatusReady},
	StatusStarted: {StatusReady},
	StatusReady:   {StatusServed, StatusArchived},
	StatusServed:  {StatusArchived},
}

// CanTransition reports whether from -> to is an edge of the lifecycle.
// ARCHIVED is terminal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses an order in from may move to, in
// lifecycle order.
func NextStatuses(from Status) []Status {
	return append([]Status(nil), transitions[from]...)
}

// TransitionError describes a rejected edge.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// ValidateTransition returns a *TransitionError for illegal edges.
func ValidateTransition(from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, to)
	}
	if !CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}
