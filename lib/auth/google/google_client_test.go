package googleclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func testClient(tokenUri, userInfoUri string) impl {
	return impl{
		clientID:     "client-id",
		clientSecret: "client-secret",
		redirectUri:  "http://localhost:8080/auth/google/callback",
		authUri:      defaultAuthUri,
		tokenUri:     tokenUri,
		userInfoUri:  userInfoUri,
	}
}

func TestGetLoginUri(t *testing.T) {
	client := testClient(defaultTokenUri, defaultUserInfoUri)
	loginUri := client.GetLoginUri("state-123")

	parsed, err := url.Parse(loginUri)
	require.NoError(t, err)
	require.Equal(t, "client-id", parsed.Query().Get("client_id"))
	require.Equal(t, "code", parsed.Query().Get("response_type"))
	require.Equal(t, "state-123", parsed.Query().Get("state"))
	require.Contains(t, parsed.Query().Get("scope"), "email")
}

func TestExchangeCode(t *testing.T) {
	t.Run("код меняется на профиль пользователя", func(t *testing.T) {
		userInfoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"sub":"google-1","email":"user@example.com","name":"Иван"}`))
		}))
		defer userInfoSrv.Close()

		tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			require.Equal(t, "auth-code", r.FormValue("code"))
			require.Equal(t, "authorization_code", r.FormValue("grant_type"))
			w.Write([]byte(`{"access_token":"access-token","token_type":"Bearer"}`))
		}))
		defer tokenSrv.Close()

		client := testClient(tokenSrv.URL, userInfoSrv.URL)
		userInfo, err := client.ExchangeCode(context.Background(), "auth-code")
		require.NoError(t, err)
		require.Equal(t, "google-1", userInfo.Sub)
		require.Equal(t, "user@example.com", userInfo.Email)
		require.Equal(t, "Иван", userInfo.Name)
	})

	t.Run("отказ провайдера на обмене кода", func(t *testing.T) {
		tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
		}))
		defer tokenSrv.Close()

		client := testClient(tokenSrv.URL, defaultUserInfoUri)
		_, err := client.ExchangeCode(context.Background(), "bad-code")
		require.Error(t, err)
	})

	t.Run("пустой access token считается ошибкой", func(t *testing.T) {
		tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer tokenSrv.Close()

		client := testClient(tokenSrv.URL, defaultUserInfoUri)
		_, err := client.ExchangeCode(context.Background(), "auth-code")
		require.Error(t, err)
	})

	t.Run("профиль без почты считается ошибкой", func(t *testing.T) {
		userInfoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"sub":"google-1"}`))
		}))
		defer userInfoSrv.Close()

		tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"access_token":"access-token"}`))
		}))
		defer tokenSrv.Close()

		client := testClient(tokenSrv.URL, userInfoSrv.URL)
		_, err := client.ExchangeCode(context.Background(), "auth-code")
		require.Error(t, err)
	})
}
