package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kacameta/internal/model"
)

func claimsWithRole(role model.Role) *Claims {
	return &Claims{
		AdminID:  1,
		Username: "admin",
		Role:     role,
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		claims *Claims
		want   Verdict
	}{
		{
			name:   "public catalog path is always allowed",
			path:   "/product/classic-aviator",
			claims: nil,
			want:   Verdict{Action: ActionAllow},
		},
		{
			name:   "path sharing the admin prefix but outside it is public",
			path:   "/administrator",
			claims: nil,
			want:   Verdict{Action: ActionAllow},
		},
		{
			name:   "login page without session renders",
			path:   "/admin/login",
			claims: nil,
			want:   Verdict{Action: ActionAllow},
		},
		{
			name:   "login page with valid session bounces to admin home",
			path:   "/admin/login",
			claims: claimsWithRole(model.RoleAdmin),
			want:   Verdict{Action: ActionRedirect, Location: "/admin"},
		},
		{
			name:   "admin home without session redirects to login",
			path:   "/admin",
			claims: nil,
			want:   Verdict{Action: ActionRedirect, Location: "/admin/login"},
		},
		{
			name:   "nested admin path without session redirects to login",
			path:   "/admin/products",
			claims: nil,
			want:   Verdict{Action: ActionRedirect, Location: "/admin/login"},
		},
		{
			name:   "admin role cannot reach manage-admins",
			path:   "/admin/manage-admins",
			claims: claimsWithRole(model.RoleAdmin),
			want:   Verdict{Action: ActionRedirect, Location: "/admin"},
		},
		{
			name:   "super admin reaches manage-admins",
			path:   "/admin/manage-admins",
			claims: claimsWithRole(model.RoleSuperAdmin),
			want:   Verdict{Action: ActionAllow},
		},
		{
			name:   "admin role reaches regular admin pages",
			path:   "/admin/products",
			claims: claimsWithRole(model.RoleAdmin),
			want:   Verdict{Action: ActionAllow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.path, tt.claims))
		})
	}
}

func TestRoleHasAtLeast(t *testing.T) {
	assert.True(t, model.RoleSuperAdmin.HasAtLeast(model.RoleAdmin))
	assert.True(t, model.RoleSuperAdmin.HasAtLeast(model.RoleSuperAdmin))
	assert.True(t, model.RoleAdmin.HasAtLeast(model.RoleAdmin))
	assert.False(t, model.RoleAdmin.HasAtLeast(model.RoleSuperAdmin))
	assert.False(t, model.Role("GUEST").HasAtLeast(model.RoleAdmin))
	assert.False(t, model.Role("").HasAtLeast(model.RoleAdmin))
}
