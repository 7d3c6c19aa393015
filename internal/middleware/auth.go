package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/internal/repository"
	"github.com/lokavera/catalog-admin/pkg/token"
)

type AuthMiddleware struct {
	userRepo repository.UserRepository
	verifier *token.Issuer
}

func NewAuthMiddleware(userRepo repository.UserRepository, verifier *token.Issuer) *AuthMiddleware {
	return &AuthMiddleware{userRepo: userRepo, verifier: verifier}
}

// RequireAuth verifies the bearer token, reloads the user by the embedded
// subject id and attaches it to the request context. A token for a deleted
// or deactivated user is rejected even when its signature is still valid.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(tokenString)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, token.ErrExpired) {
				message = "token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": message})
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account is deactivated"})
			c.Abort()
			return
		}

		user.Password = ""
		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("roles", []string(user.Roles))
		c.Next()
	}
}

// RequireRoles allows the request through when the authenticated user holds
// any of the given roles.
func (m *AuthMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Roles.Has(role) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth, or
// nil.
func CurrentUser(c *gin.Context) *model.User {
	raw, exists := c.Get("user")
	if !exists {
		return nil
	}

	user, _ := raw.(*model.User)
	return user
}
