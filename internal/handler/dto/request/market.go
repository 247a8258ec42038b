package request

import (
	"time"

	"preloved-market/internal/domain/market"
	"preloved-market/internal/usecase/commands"
)

type CreateMarketRequest struct {
	Name       string    `json:"name" binding:"required,max=200"`
	MaxVendors int       `json:"max_vendors" binding:"required,gt=0"`
	MaxHangers *int      `json:"max_hangers" binding:"omitempty,gt=0"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
	EndsAt     time.Time `json:"ends_at" binding:"required,gtfield=StartsAt"`
}

func (r *CreateMarketRequest) ToInput() commands.CreateMarketInput {
	return commands.CreateMarketInput{
		Name:       r.Name,
		MaxVendors: r.MaxVendors,
		MaxHangers: r.MaxHangers,
		StartsAt:   r.StartsAt,
		EndsAt:     r.EndsAt,
	}
}

// UpdateCapacityRequest leaves a limit untouched when its field is absent.
type UpdateCapacityRequest struct {
	MaxVendors *int `json:"max_vendors" binding:"omitempty,gt=0"`
	MaxHangers *int `json:"max_hangers" binding:"omitempty,gt=0"`
}

func (r *UpdateCapacityRequest) ToInput() commands.UpdateCapacityInput {
	return commands.UpdateCapacityInput{MaxVendors: r.MaxVendors, MaxHangers: r.MaxHangers}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT ACTIVE COMPLETED CANCELLED"`
}

func (r *ChangeStatusRequest) ToDomain() market.Status {
	return market.Status(r.Status)
}
