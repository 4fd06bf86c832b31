package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ai-match-connect/internal/delivery/http/response"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and resolves the actor for the
// request. The role always comes from the database, never from the token;
// a stale claim cannot grant privileges the account no longer has.
//
// The actor is stored on the request context so usecases can read it
// without touching gin.
func AuthMiddleware(tokens *auth.TokenService, userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.ParseToken(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				response.Error(c, http.StatusUnauthorized, "User not found", nil)
			} else {
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
			c.Abort()
			return
		}

		actor := &domain.Actor{
			ID:          user.ID,
			Email:       user.Email,
			Role:        user.Role,
			IsActive:    user.IsActive,
			IsSuperuser: user.IsSuperuser,
		}
		if user.CandidateProfile != nil {
			actor.CandidateProfileID = &user.CandidateProfile.ID
		}
		if user.RecruiterProfile != nil {
			actor.RecruiterProfileID = &user.RecruiterProfile.ID
		}

		ctx := context.WithValue(c.Request.Context(), domain.KeyActor, actor)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(domain.KeyActor), actor)

		c.Next()
	}
}
