package authorization

import (
	"log"
	"strings"

	"PawShelter360/config/jwt"
	"PawShelter360/util"

	"github.com/gin-gonic/gin"
)

/*
* Parse the Bearer token from the Authorization header
* Set code, role and email in the context for downstream services
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, util.FailedResponse(util.E(util.Unauthorized, "missing authorization header")))
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			log.Println("Error while validating token: ", err)
			c.AbortWithStatusJSON(401, util.FailedResponse(util.E(util.Unauthorized, "invalid or expired token")))
			return
		}
		c.Set("code", claims.Code)
		c.Set("role", claims.Role)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// RequireRole guards an endpoint to the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(403, util.FailedResponse(util.E(util.Forbidden, util.INVALID_USER_TO_ACCESS)))
	}
}
