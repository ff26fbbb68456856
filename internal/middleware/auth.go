package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/selfcheck/internal/auth"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/rs/zerolog/log"
)

const claimsKey = "auth.claims"

// OptionalAuth attaches the token's claims when a valid bearer token is sent.
// A missing token passes through. A present but invalid token is rejected.
func OptionalAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Next()
			return
		}
		tok, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authorization header must use the Bearer scheme"})
			return
		}
		claims, err := tokens.Parse(strings.TrimSpace(tok))
		if err != nil {
			log.Info().Err(err).Str("path", ctx.FullPath()).Msg("OptionalAuth: rejected bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireAuth must run after OptionalAuth.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := Claims(ctx); !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		ctx.Next()
	}
}

func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := Claims(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient permissions"})
	}
}

func Claims(ctx *gin.Context) (*auth.Claims, bool) {
	v, ok := ctx.Get(claimsKey)
	if !ok {
		return nil, false
	}
	c, ok := v.(*auth.Claims)
	return c, ok
}

// Owner is the caller as a result owner; anonymous without a token.
func Owner(ctx *gin.Context) scoring.Owner {
	claims, ok := Claims(ctx)
	if !ok {
		return scoring.Anonymous()
	}
	id, err := claims.UserID()
	if err != nil || id == uuid.Nil {
		return scoring.Anonymous()
	}
	return scoring.OwnedBy(id)
}

// Role is the caller's role, empty when anonymous.
func Role(ctx *gin.Context) model.Role {
	if claims, ok := Claims(ctx); ok {
		return claims.Role
	}
	return ""
}
