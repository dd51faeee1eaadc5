package valueobjects

import "fmt"

type Status string

const (
	StatusOpen      Status = "open"
	StatusAssigned  Status = "assigned"
	StatusForwarded Status = "forwarded"
	StatusClosed    Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:      true,
	StatusAssigned:  true,
	StatusForwarded: true,
	StatusClosed:    true,
}

// statusTransitions encodes the issue lifecycle. Closed is terminal: nothing
// leaves it. Open also appears as a target because a failed escalation during
// verification re-opens the issue.
var statusTransitions = map[Status][]Status{
	StatusOpen: {
		StatusAssigned,
		StatusForwarded,
		StatusClosed,
	},
	StatusAssigned: {
		StatusOpen,
		StatusForwarded,
		StatusClosed,
	},
	StatusForwarded: {
		StatusOpen,
		StatusAssigned,
		StatusForwarded,
		StatusClosed,
	},
	StatusClosed: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	// Staying put is always fine; closed→closed covers re-verification of an
	// already resolved issue.
	if s == newStatus {
		return true
	}
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsAssigned() bool {
	return s == StatusAssigned
}

func (s Status) IsForwarded() bool {
	return s == StatusForwarded
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid issue status: %s", s)
	}
	return status, nil
}
