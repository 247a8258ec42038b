//go:build unit

package user_test

import (
	"testing"

	"preloved-market/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		in      string
		want    user.Role
		wantErr bool
		staff   bool
	}{
		{in: "buyer", want: user.RoleBuyer},
		{in: "seller", want: user.RoleSeller},
		{in: "operator", want: user.RoleOperator, staff: true},
		{in: "admin", want: user.RoleAdmin, staff: true},
		{in: "viewer", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := user.NewRole(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, user.ErrInvalidRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.staff, got.IsStaff())
		})
	}
}
