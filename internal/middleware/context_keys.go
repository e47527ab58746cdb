package middleware

import "github.com/gin-gonic/gin"

// userEmailKey is the key under which the auth middleware stores the
// authenticated identity's email.
const userEmailKey = contextKey("userEmail")

// GetUserEmailFromContext retrieves the authenticated user email from the
// request context. It returns the email and a boolean indicating if it was
// found.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	emailVal := c.Request.Context().Value(userEmailKey)
	if emailVal == nil {
		return "", false
	}
	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
