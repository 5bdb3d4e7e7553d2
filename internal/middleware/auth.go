package middleware

import (
	"net/http"

	"github.com/Central-IR/contas-receber/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionHeader carries the opaque credential issued by the portal.
	SessionHeader = "X-Session-Token"

	SessionTokenKey = "session_token"
)

// SessionAuth gates every protected route on the portal session token.
//
// With an empty secret any non-empty token is accepted (the portal is trusted
// to only hand tokens to authenticated users). When secret is set, the token
// must additionally be a valid HMAC-signed JWT issued by the portal.
func SessionAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token não fornecido"))
			return
		}

		if secret != "" {
			parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !parsed.Valid {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token inválido"))
				return
			}
		}

		c.Set(SessionTokenKey, token)
		c.Next()
	}
}

// GetSessionToken retrieves the raw token for pass-through calls to sibling
// services (controle de frete).
func GetSessionToken(c *gin.Context) string {
	return c.GetString(SessionTokenKey)
}
