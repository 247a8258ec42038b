package market

// Pool is one capacity dimension of a market.
type Pool struct {
	Current   int
	Max       int
	Available int
}

func newPool(current, max int) Pool {
	available := max - current
	if available < 0 {
		available = 0
	}
	return Pool{Current: current, Max: max, Available: available}
}

// Capacity is derived from source records on every read and is stale the moment it is returned.
type Capacity struct {
	Vendors Pool
	Hangers Pool
}

func NewCapacity(m *Market, enrolledVendors, reservedHangers int) Capacity {
	return Capacity{
		Vendors: newPool(enrolledVendors, m.maxVendors),
		Hangers: newPool(reservedHangers, m.maxHangers),
	}
}

func (c Capacity) VendorsExhausted() bool {
	return c.Vendors.Current >= c.Vendors.Max
}

func (c Capacity) HangersExhausted() bool {
	return c.Hangers.Max > 0 && c.Hangers.Current >= c.Hangers.Max
}

// AdmitsVendor is the pre-insert gate for enrollment. A market without free hangers
// cannot take another vendor either.
func (c Capacity) AdmitsVendor() bool {
	return !c.VendorsExhausted() && !c.HangersExhausted()
}

// OverAdmitted is the post-insert check: the newly inserted enrollment is already
// counted in Vendors.Current.
func (c Capacity) OverAdmitted() bool {
	return c.Vendors.Current > c.Vendors.Max || c.HangersExhausted()
}

func (c Capacity) AdmitsHangers(n int) bool {
	return c.Hangers.Current+n <= c.Hangers.Max
}

func (c Capacity) HangersOverbooked() bool {
	return c.Hangers.Current > c.Hangers.Max
}
