package market

import "preloved-market/internal/pkg/fsm"

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

var Transitions = fsm.New("market", map[Status][]Status{
	StatusDraft:  {StatusActive, StatusCancelled},
	StatusActive: {StatusCompleted, StatusCancelled},
})

// Deletable reports whether the market may be removed together with its children.
func (s Status) Deletable() bool {
	return s != StatusActive
}
