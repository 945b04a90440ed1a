package middleware

import (
	"net/http"
	"strings"

	"go-comp/internal/shared/apperror"
	"go-comp/internal/shared/contextutil"
	"go-comp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderCompanyID = "X-Company-ID"
	HeaderActorID   = "X-Actor-ID"
)

// Tenant requires a company header and records the acting user. Requests
// without an actor header are attributed to contextutil.DefaultActor.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := strings.TrimSpace(c.GetHeader(HeaderCompanyID))
		if companyID == "" {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, HeaderCompanyID+" header is required", nil)
			c.Abort()
			return
		}
		if _, err := uuid.Parse(companyID); err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, HeaderCompanyID+" must be a UUID", nil)
			c.Abort()
			return
		}

		actor := strings.TrimSpace(c.GetHeader(HeaderActorID))
		if actor == "" {
			actor = contextutil.DefaultActor
		}

		c.Set("company_id", companyID)
		c.Set("actor_id", actor)

		ctx := contextutil.WithCompanyID(c.Request.Context(), companyID)
		ctx = contextutil.WithActorID(ctx, actor)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
