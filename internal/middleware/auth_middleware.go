package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"go-salon/internal/shared/contextutil"
	"go-salon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token issued by the external identity
// service. Token issuance is not handled here.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			code, message := "INVALID_TOKEN", "Token is invalid"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code, message = "TOKEN_EXPIRED", "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		salonID, ok := claims["salon_id"].(string)
		if !ok || salonID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Salon ID not found in token", nil)
			c.Abort()
			return
		}

		c.Set("user_id_validated", userID)
		c.Set("salon_id", salonID)
		if employeeID, ok := claims["employee_id"].(string); ok {
			c.Set("employee_id", employeeID)
		}

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
