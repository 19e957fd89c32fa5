package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/saarthi-api/internal/models"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
	"github.com/noah-isme/saarthi-api/pkg/response"
)

// RequireRoles lets a request through only when the JWT claims carry one of roles.
// It must run after JWT; a request without claims is answered with 401.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		if _, ok := allowed[claims.Role]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "insufficient role"))
			c.Abort()
			return
		}
		c.Next()
	}
}
