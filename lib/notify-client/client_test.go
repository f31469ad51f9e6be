package notifyclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"request-mesh/config"
	"request-mesh/models"
	notifyapimodels "request-mesh/models/api/notify"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	config.Conf = conf
}

func TestSendNotifications(t *testing.T) {
	initTestConfig(t)

	t.Run("запрос уходит с сервисным токеном на нужный маршрут", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotBody notifyapimodels.PersonalNotificationData
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer srv.Close()

		client := NewProvider(srv.URL, time.Second)
		err := client.SendLoginNotification(context.Background(), notifyapimodels.PersonalNotificationData{
			Email: "user@example.com",
			Name:  "Иван",
		})
		require.NoError(t, err)
		require.Equal(t, "/notify/send-login-notification", gotPath)
		require.True(t, strings.HasPrefix(gotAuth, "Bearer "))
		require.Equal(t, "user@example.com", gotBody.Email)
	})

	t.Run("маршрут выбирается по типу уведомления", func(t *testing.T) {
		var paths []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer srv.Close()

		client := NewProvider(srv.URL, time.Second)
		data := notifyapimodels.RequestNotificationData{
			Email:         "user@example.com",
			SuperiorEmail: "boss@example.com",
			Title:         "Отпуск",
		}
		require.NoError(t, client.SendRequestNotification(context.Background(), models.NotificationKindRequestCreation, data))
		require.NoError(t, client.SendRequestNotification(context.Background(), models.NotificationKindApproval, data))
		require.NoError(t, client.SendRequestNotification(context.Background(), models.NotificationKindRejection, data))
		require.Equal(t, []string{
			"/notify/send-creation-notification",
			"/notify/send-approval-notification",
			"/notify/send-rejection-notification",
		}, paths)
	})

	t.Run("ошибка сервиса оборачивается в ErrNotificationDelivery", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"status":"fail","message":"Ошибка отправки уведомлений"}`))
		}))
		defer srv.Close()

		client := NewProvider(srv.URL, time.Second)
		err := client.SendLogoutNotification(context.Background(), notifyapimodels.PersonalNotificationData{
			Email: "user@example.com",
			Name:  "Иван",
		})
		require.ErrorIs(t, err, models.ErrNotificationDelivery)
		require.Contains(t, err.Error(), "Ошибка отправки уведомлений")
	})

	t.Run("недоступный сервис оборачивается в ErrNotificationDelivery", func(t *testing.T) {
		client := NewProvider("http://127.0.0.1:1", time.Second)
		err := client.SendLoginNotification(context.Background(), notifyapimodels.PersonalNotificationData{
			Email: "user@example.com",
			Name:  "Иван",
		})
		require.ErrorIs(t, err, models.ErrNotificationDelivery)
	})
}
