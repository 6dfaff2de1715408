package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"realartist-backend/internal/models"
)

const UserIDKey = "user_id"

// Identity resolves the acting user. Without a secret every request acts as demoUserID.
// With a secret, a request without a bearer token still acts as demoUserID, a valid HS256
// token acts as its integer "sub" claim, and any other token is rejected with 401.
func Identity(demoUserID int64, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if secret == "" || authHeader == "" {
			c.Set(UserIDKey, demoUserID)
			c.Next()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "invalid authorization header format")
			return
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			unauthorized(c, "empty token")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				unauthorized(c, "token has expired")
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				unauthorized(c, "token signature is invalid")
			case errors.Is(err, jwt.ErrTokenMalformed):
				unauthorized(c, "token is malformed")
			default:
				unauthorized(c, "invalid token")
			}
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			unauthorized(c, "invalid token claims")
			return
		}

		userID, err := subjectID(claims)
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// subjectID reads "sub" as a positive integer, given either as a JSON number or a string.
func subjectID(claims jwt.MapClaims) (int64, error) {
	var id int64
	switch sub := claims["sub"].(type) {
	case string:
		n, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("token subject is not a user id")
		}
		id = n
	case float64:
		if sub != float64(int64(sub)) {
			return 0, fmt.Errorf("token subject is not a user id")
		}
		id = int64(sub)
	default:
		return 0, fmt.Errorf("missing user id in token")
	}
	if id <= 0 {
		return 0, fmt.Errorf("token subject is not a user id")
	}
	return id, nil
}

// CurrentUserID returns the id stored by Identity, or false when the middleware did not run.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewErrorResponse(http.StatusUnauthorized, message))
}
