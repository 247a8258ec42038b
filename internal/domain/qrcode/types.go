package qrcode

import "preloved-market/internal/pkg/fsm"

type Status string

const (
	StatusUnused  Status = "UNUSED"
	StatusLinked  Status = "LINKED"
	StatusInvalid Status = "INVALID"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnused, StatusLinked, StatusInvalid:
		return true
	default:
		return false
	}
}

// LINKED -> UNUSED exists only for compensating a failed link.
var Transitions = fsm.New("qr_code", map[Status][]Status{
	StatusUnused: {StatusLinked, StatusInvalid},
	StatusLinked: {StatusUnused, StatusInvalid},
})

const ReasonWithdrawn = "withdrawn"
