package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/srgjo27/villa_booking/internal/core/domain"
)

const (
	employeeKey = "employee"
	emailKey    = "email"
)

// BearerAuth accepts HS256 tokens signed with secret. The sub, name and email
// claims identify the employee.
func BearerAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(t *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		emp, email, err := employeeFromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(employeeKey, emp)
		c.Set(emailKey, email)
		c.Next()
	}
}

func employeeFromClaims(claims jwt.MapClaims) (domain.Employee, string, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.Employee{}, "", errors.New("token has no subject")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if name == "" {
		name = email
	}
	return domain.Employee{ID: sub, Name: name}, email, nil
}

// EmployeeFrom returns the employee BearerAuth stored on the context.
func EmployeeFrom(c *gin.Context) (domain.Employee, bool) {
	v, ok := c.Get(employeeKey)
	if !ok {
		return domain.Employee{}, false
	}
	emp, ok := v.(domain.Employee)
	return emp, ok
}

func EmailFrom(c *gin.Context) string {
	return c.GetString(emailKey)
}
