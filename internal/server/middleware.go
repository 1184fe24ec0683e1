package server

import (
	"errors"
	"net/http"

	"feedbackManagement/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireAuth validates the Bearer token from the Authorization header and
// injects the resulting Principal into the request context. Expired tokens
// get a distinct detail string so clients can prompt for a fresh login.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := tokens.ParseFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			detail := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				detail = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": detail})
			return
		}
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

// currentPrincipal retrieves the principal stored by RequireAuth.
func currentPrincipal(c *gin.Context) (*auth.Principal, bool) {
	return auth.FromContext(c.Request.Context())
}
