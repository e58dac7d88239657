package middleware

import (
	"net/http"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/pkg/response"
)

// RequireRole creates a middleware that checks if the authenticated identity
// holds any of the allowed roles. An empty list admits every authenticated
// identity. Runs strictly after Authenticate; roles are never treated as a
// hierarchy.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			if len(allowedRoles) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequireAdminOrPractitioner is a convenience middleware for staff endpoints
func RequireAdminOrPractitioner(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RolePractitioner)(next)
}

// RequireAdminOrPatient is a convenience middleware for the cancel endpoint
func RequireAdminOrPatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RolePatient)(next)
}
