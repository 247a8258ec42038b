package market

import (
	"strings"
	"time"

	"preloved-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type Market struct {
	id         uuid.UUID
	name       string
	status     Status
	maxVendors int
	maxHangers int
	startsAt   time.Time
	endsAt     time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewMarket creates a DRAFT market. A nil maxHangers falls back to
// maxVendors * hangersPerVendor.
func NewMarket(name string, maxVendors int, maxHangers *int, hangersPerVendor int, startsAt, endsAt, now time.Time) (*Market, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.WithDetailf(errs.ErrValidation, "market name is required")
	}
	if !endsAt.After(startsAt) {
		return nil, errs.WithDetailf(errs.ErrValidation, "market must end after it starts")
	}

	hangers := maxVendors * hangersPerVendor
	if maxHangers != nil {
		hangers = *maxHangers
	}
	if err := validateCapacity(maxVendors, hangers); err != nil {
		return nil, err
	}

	return &Market{
		id:         uuid.New(),
		name:       name,
		status:     StatusDraft,
		maxVendors: maxVendors,
		maxHangers: hangers,
		startsAt:   startsAt,
		endsAt:     endsAt,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructMarket(
	id uuid.UUID,
	name string,
	status Status,
	maxVendors, maxHangers int,
	startsAt, endsAt, createdAt, updatedAt time.Time,
) *Market {
	return &Market{
		id:         id,
		name:       name,
		status:     status,
		maxVendors: maxVendors,
		maxHangers: maxHangers,
		startsAt:   startsAt,
		endsAt:     endsAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func validateCapacity(maxVendors, maxHangers int) error {
	if maxVendors <= 0 || maxHangers <= 0 {
		return errs.WithDetailf(errs.ErrInvalidCapacity, "maxVendors=%d maxHangers=%d", maxVendors, maxHangers)
	}
	return nil
}

func (m *Market) IsOpen() bool {
	return m.status == StatusActive
}

func (m *Market) ChangeStatus(to Status, now time.Time) error {
	if err := Transitions.Check(m.status, to); err != nil {
		return err
	}
	m.status = to
	m.updatedAt = now
	return nil
}

// Resize re-validates the new limits against live consumption.
func (m *Market) Resize(maxVendors, maxHangers int, usage Capacity, now time.Time) error {
	if err := validateCapacity(maxVendors, maxHangers); err != nil {
		return err
	}
	if maxVendors < usage.Vendors.Current || maxHangers < usage.Hangers.Current {
		return errs.WithDetailf(errs.ErrCapacityBelowUsage,
			"vendors %d in use, hangers %d in use", usage.Vendors.Current, usage.Hangers.Current)
	}
	m.maxVendors = maxVendors
	m.maxHangers = maxHangers
	m.updatedAt = now
	return nil
}

func (m *Market) ID() uuid.UUID        { return m.id }
func (m *Market) Name() string         { return m.name }
func (m *Market) Status() Status       { return m.status }
func (m *Market) MaxVendors() int      { return m.maxVendors }
func (m *Market) MaxHangers() int      { return m.maxHangers }
func (m *Market) StartsAt() time.Time  { return m.startsAt }
func (m *Market) EndsAt() time.Time    { return m.endsAt }
func (m *Market) CreatedAt() time.Time { return m.createdAt }
func (m *Market) UpdatedAt() time.Time { return m.updatedAt }
