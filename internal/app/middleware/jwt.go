package middleware

import (
	"errors"
	"strings"

	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/domain/services/container"
	"pdrims-http-service/internal/error/code"
	"pdrims-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by Authentication.
const (
	ContextUserKey   = "user"
	ContextClaimsKey = "claims"
)

// extractToken strips the Bearer prefix. An empty result means no usable token.
func extractToken(authHeader string) string {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authentication validates the bearer token, rejects revoked tokens, and
// reloads the user so deleted accounts lose access at once.
func Authentication(c *container.ServiceContainer) gin.HandlerFunc {
	jwtService := c.GetService("jwt").(services.InterfaceJWTService)
	userService := c.GetService("user").(services.InterfaceUserService)

	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx.GetHeader("Authorization"))
		if tokenString == "" {
			response.FailWithMessage(ctx, code.ErrTokenInvalid, "authorization header must be Bearer {token}")
			return
		}

		claims, err := jwtService.ParseToken(ctx.Request.Context(), tokenString)
		if err != nil {
			response.HandleError(ctx, err, 0)
			return
		}

		user, err := userService.GetUserByID(ctx.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				response.Unauthorized(ctx)
				return
			}
			response.HandleError(ctx, err, 0)
			return
		}
		if !user.Verified {
			response.Fail(ctx, code.ErrUserPending)
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Set(ContextClaimsKey, claims)
		ctx.Next()
	}
}

// RequireCapability rejects users whose role lacks capability. It must run
// after Authentication.
func RequireCapability(capability models.Capability) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := CurrentUser(ctx)
		if user == nil {
			response.Unauthorized(ctx)
			return
		}
		if !user.Role.Can(capability) {
			response.FailWithMessage(ctx, code.ErrForbidden, "insufficient permissions: requires "+string(capability))
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user, or nil
func CurrentUser(ctx *gin.Context) *models.User {
	v, ok := ctx.Get(ContextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// CurrentClaims returns the token claims of the request, or nil
func CurrentClaims(ctx *gin.Context) *services.JWTClaims {
	v, ok := ctx.Get(ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*services.JWTClaims)
	return claims
}
