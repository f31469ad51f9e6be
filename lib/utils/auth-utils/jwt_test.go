package authutils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"request-mesh/config"
	"request-mesh/models"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	config.Conf = conf
}

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	return token.Claims.(jwt.MapClaims)
}

func TestGetToken(t *testing.T) {
	initTestConfig(t)

	t.Run("токен содержит данные пользователя и срок жизни", func(t *testing.T) {
		tokenString, err := GetToken("user-1", "user@example.com", "Иван", models.UserRoleRequester)
		require.NoError(t, err)

		claims := parseClaims(t, tokenString)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "user@example.com", claims["email"])
		require.Equal(t, "Иван", claims["name"])
		require.Equal(t, string(models.UserRoleRequester), claims["role"])

		exp := int64(claims["exp"].(float64))
		iat := int64(claims["iat"].(float64))
		require.Equal(t, int64(3600), exp-iat)
	})

	t.Run("токен с чужим секретом не проходит проверку", func(t *testing.T) {
		tokenString, err := GetToken("user-1", "user@example.com", "Иван", models.UserRoleApprover)
		require.NoError(t, err)

		_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("other-secret"), nil
		})
		require.Error(t, err)
	})
}

func TestGetServiceToken(t *testing.T) {
	initTestConfig(t)

	tokenString, err := GetServiceToken()
	require.NoError(t, err)

	claims := parseClaims(t, tokenString)
	require.Equal(t, "system", claims["sub"])
	require.Equal(t, models.SystemUser, claims["name"])
	require.Equal(t, string(models.UserRoleApprover), claims["role"])
}
