package gatewayhandler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	t.Run("запрос уходит в целевой сервис без изменений", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/requests/create", r.URL.Path)
			require.Equal(t, "1", r.URL.Query().Get("q"))
			body, _ := io.ReadAll(r.Body)
			require.Equal(t, `{"title":"Отпуск"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer upstream.Close()

		app := fiber.New()
		app.All("/requests/*", Forward(upstream.URL))

		req := httptest.NewRequest(http.MethodPost, "/requests/create?q=1", strings.NewReader(`{"title":"Отпуск"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		require.Equal(t, `{"status":"success"}`, string(body))
	})

	t.Run("статус сервиса отдается как есть", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer upstream.Close()

		app := fiber.New()
		app.All("/requests/*", Forward(upstream.URL))

		req := httptest.NewRequest(http.MethodPost, "/requests/approve-request", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("недоступный сервис дает 500", func(t *testing.T) {
		app := fiber.New()
		app.All("/requests/*", Forward("http://127.0.0.1:1"))

		req := httptest.NewRequest(http.MethodGet, "/requests/pending-requests", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		require.Contains(t, string(body), "сервис временно недоступен")
	})
}
