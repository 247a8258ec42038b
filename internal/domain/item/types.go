package item

import "preloved-market/internal/pkg/fsm"

type Status string

const (
	StatusWardrobe Status = "WARDROBE"
	StatusRack     Status = "RACK"
	StatusSold     Status = "SOLD"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWardrobe, StatusRack, StatusSold:
		return true
	default:
		return false
	}
}

// An item never goes WARDROBE -> SOLD without passing through RACK.
var Transitions = fsm.New("item", map[Status][]Status{
	StatusWardrobe: {StatusRack},
	StatusRack:     {StatusWardrobe, StatusSold},
})
