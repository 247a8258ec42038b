package request

import "preloved-market/internal/usecase/commands"

type SyncSellerRequest struct {
	DisplayName      string `json:"display_name" binding:"required,max=200"`
	IdentityVerified bool   `json:"identity_verified"`
	PayoutVerified   bool   `json:"payout_verified"`
}

func (r *SyncSellerRequest) ToInput() commands.SyncProfileInput {
	return commands.SyncProfileInput{
		DisplayName:      r.DisplayName,
		IdentityVerified: r.IdentityVerified,
		PayoutVerified:   r.PayoutVerified,
	}
}
