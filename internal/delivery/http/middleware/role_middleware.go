package middleware

import (
	"net/http"

	"med-adherence-api/internal/domain/entity"
	"med-adherence-api/pkg/response"
)

// RequireAdmin guards routes with no patient affiliation, where only an
// admin may act. Object-level rules live in the authorization engine, not
// here; this is purely the route-level gate for user management writes.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRoleFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Role information not found")
			return
		}
		if role != entity.RoleAdmin {
			response.Forbidden(w, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
