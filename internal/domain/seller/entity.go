package seller

import (
	"github.com/google/uuid"
)

// Profile is maintained by onboarding; the engine only reads the verification flags.
type Profile struct {
	id               uuid.UUID
	displayName      string
	identityVerified bool
	payoutVerified   bool
}

func ReconstructProfile(id uuid.UUID, displayName string, identityVerified, payoutVerified bool) *Profile {
	return &Profile{
		id:               id,
		displayName:      displayName,
		identityVerified: identityVerified,
		payoutVerified:   payoutVerified,
	}
}

// IsActive reports whether both identity and payout verification are complete.
func (p *Profile) IsActive() bool {
	return p.identityVerified && p.payoutVerified
}

func (p *Profile) ID() uuid.UUID          { return p.id }
func (p *Profile) DisplayName() string    { return p.displayName }
func (p *Profile) IdentityVerified() bool { return p.identityVerified }
func (p *Profile) PayoutVerified() bool   { return p.payoutVerified }
