package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegido", SessionAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": GetSessionToken(c)})
	})
	return r
}

func TestSessionAuthSemToken(t *testing.T) {
	r := setupSessionRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token não fornecido")
}

func TestSessionAuthTokenOpacoAceitoSemSecret(t *testing.T) {
	r := setupSessionRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set(SessionHeader, "sessao-opaca-do-portal")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sessao-opaca-do-portal")
}

func TestSessionAuthComSecretExigeJWTValido(t *testing.T) {
	r := setupSessionRouter("segredo-de-teste")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set(SessionHeader, "nao-e-um-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido")
}

func TestSessionAuthComSecretAceitaJWTAssinado(t *testing.T) {
	secret := "segredo-de-teste"
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "usuario@portal",
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	r := setupSessionRouter(secret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set(SessionHeader, token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuthRejeitaAlgoritmoNaoHMAC(t *testing.T) {
	// Token "none" clássico: cabeçalho válido, assinatura ausente.
	r := setupSessionRouter("segredo-de-teste")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set(SessionHeader, "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ4In0.")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
