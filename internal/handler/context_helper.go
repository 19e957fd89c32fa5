package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/saarthi-api/internal/middleware"
	"github.com/noah-isme/saarthi-api/internal/models"
	appErrors "github.com/noah-isme/saarthi-api/pkg/errors"
	"github.com/noah-isme/saarthi-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	claims, ok := middleware.Claims(c)
	if !ok {
		return nil
	}
	return claims
}

// pathID parses the named path parameter, answering 400 when it is not an integer.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.Error(c, appErrors.Validation(err, "invalid "+name))
		return 0, false
	}
	return id, true
}

// queryID parses an optional integer query parameter. Absent yields nil.
func queryID(c *gin.Context, name string) (*int, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, appErrors.Validation(err, "invalid "+name))
		return nil, false
	}
	return &id, true
}

// bindJSON decodes the request body into dest, answering 400 on malformed input.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid payload"))
		return false
	}
	return true
}
