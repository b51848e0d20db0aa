package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"globalmart/config"
	"globalmart/models"
	"globalmart/utils"
)

const claimsKey = "admin_claims"

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// OptionalAuth decodes the bearer token when one is present and valid,
// threading the identity through the request context. Anonymous and
// invalid-token requests pass through unauthenticated.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims := utils.ValidateToken(token, config.JWTSecret()); claims != nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid token. 401 means the
// caller could not be identified.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			return
		}

		claims := utils.ValidateToken(token, config.JWTSecret())
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireSuperAdmin additionally checks the role. A valid token with an
// insufficient role is 403, not 401.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			return
		}

		claims := utils.ValidateToken(token, config.JWTSecret())
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		if claims.Role != models.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{Error: "Super admin access required"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentAdmin returns the decoded identity for this request, or nil for
// anonymous callers.
func CurrentAdmin(c *gin.Context) *utils.TokenClaims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := value.(*utils.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}
