package auth

import (
	"strings"

	"kacameta/internal/model"
)

// Well-known admin-area paths.
const (
	AdminHomePath  = "/admin"
	AdminLoginPath = "/admin/login"

	// superAdminPrefix gates admin-user management to SUPER_ADMIN.
	superAdminPrefix = "/admin/manage-admins"
)

// Action is the outcome kind of a guard decision.
type Action int

const (
	ActionAllow Action = iota
	ActionRedirect
)

// Verdict is the guard's decision for a request: either let it through or
// send the client elsewhere. Authorization failures redirect to a safe page
// rather than raising an error.
type Verdict struct {
	Action   Action
	Location string
}

func allow() Verdict {
	return Verdict{Action: ActionAllow}
}

func redirect(location string) Verdict {
	return Verdict{Action: ActionRedirect, Location: location}
}

// Decide applies the admin-area access policy to a request path and the
// session claims decoded from it (nil means no valid session). Absent,
// expired and tampered sessions are indistinguishable here: the caller maps
// all three to nil claims, and the guard fails closed.
//
// Policy, in fixed order:
//  1. Paths outside /admin are public.
//  2. The login page is public, but an authenticated admin is bounced back
//     to the admin home instead of seeing the form again.
//  3. Any other admin path requires a session; paths under the admin-user
//     management prefix additionally require SUPER_ADMIN, with insufficient
//     role silently downgraded to the admin home.
func Decide(path string, claims *Claims) Verdict {
	if path != AdminHomePath && !strings.HasPrefix(path, AdminHomePath+"/") {
		return allow()
	}

	if path == AdminLoginPath {
		if claims != nil {
			return redirect(AdminHomePath)
		}
		return allow()
	}

	if claims == nil {
		return redirect(AdminLoginPath)
	}

	if strings.HasPrefix(path, superAdminPrefix) && !claims.Role.HasAtLeast(model.RoleSuperAdmin) {
		return redirect(AdminHomePath)
	}

	return allow()
}
