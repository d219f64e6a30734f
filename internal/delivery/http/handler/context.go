package handler

import (
	"net/http"

	"med-adherence-api/internal/delivery/http/middleware"
	"med-adherence-api/internal/domain/entity"

	"github.com/google/uuid"
)

// actorFromRequest pulls the authenticated identity out of the request
// context. Both values are set by the auth middleware; absence means the
// route was wired without it.
func actorFromRequest(r *http.Request) (uuid.UUID, entity.Role, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		return uuid.Nil, "", false
	}
	return userID, role, true
}
