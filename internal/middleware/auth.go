package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rageblack12/BusinessGenAiBackend/internal/models"
)

// ActorKey is where AuthRequired parks the authenticated actor in the gin
// context.
const ActorKey = "actor"

// Actor is the caller identity extracted from a verified token.
type Actor struct {
	UserID uint
	Name   string
	Role   string
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	return []byte(secret)
}

// AuthRequired verifies the Bearer token issued by the identity service and
// places the actor in the context. Tokens are HS256; anything else is
// rejected.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access denied. No token provided. Please login to continue",
			})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access denied. Invalid token. Please login again",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access denied. Invalid token. Please login again",
			})
			return
		}

		userID, ok := claims["userId"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access denied. Invalid token. Please login again",
			})
			return
		}
		name, _ := claims["name"].(string)
		role, _ := claims["role"].(string)
		if role == "" {
			role = models.RoleUser
		}

		c.Set(ActorKey, Actor{UserID: uint(userID), Name: name, Role: role})
		c.Next()
	}
}

// AdminRequired gates moderation endpoints. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := CurrentActor(c)
		if actor.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access denied! Admin rights required.",
			})
			return
		}
		c.Next()
	}
}

// CurrentActor returns the actor set by AuthRequired. A zero Actor means
// the middleware never ran, which is a wiring bug, not a runtime state.
func CurrentActor(c *gin.Context) Actor {
	if v, ok := c.Get(ActorKey); ok {
		if actor, ok := v.(Actor); ok {
			return actor
		}
	}
	return Actor{}
}
