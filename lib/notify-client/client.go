package notifyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	authutils "request-mesh/lib/utils/auth-utils"
	"request-mesh/models"
	apimodels "request-mesh/models/api"
	notifyapimodels "request-mesh/models/api/notify"
)

// Provider - клиент сервиса уведомлений для межсервисных вызовов
type Provider interface {
	SendLoginNotification(ctx context.Context, data notifyapimodels.PersonalNotificationData) error
	SendLogoutNotification(ctx context.Context, data notifyapimodels.PersonalNotificationData) error
	SendRequestNotification(ctx context.Context, kind models.NotificationKind, data notifyapimodels.RequestNotificationData) error
}

var Instance Provider

const (
	loginPath     string = "/notify/send-login-notification"
	logoutPath    string = "/notify/send-logout-notification"
	creationPath  string = "/notify/send-creation-notification"
	approvalPath  string = "/notify/send-approval-notification"
	rejectionPath string = "/notify/send-rejection-notification"
)

func NewProvider(host string, timeout time.Duration) Provider {
	Instance = &impl{
		host: host,
		client: &http.Client{
			Timeout: timeout,
		},
	}
	return Instance
}

type impl struct {
	host   string
	client *http.Client
}

func (i impl) SendLoginNotification(ctx context.Context, data notifyapimodels.PersonalNotificationData) error {
	return i.post(ctx, loginPath, data)
}

func (i impl) SendLogoutNotification(ctx context.Context, data notifyapimodels.PersonalNotificationData) error {
	return i.post(ctx, logoutPath, data)
}

func (i impl) SendRequestNotification(ctx context.Context, kind models.NotificationKind, data notifyapimodels.RequestNotificationData) error {
	path := creationPath
	switch kind {
	case models.NotificationKindApproval:
		path = approvalPath
	case models.NotificationKindRejection:
		path = rejectionPath
	}
	return i.post(ctx, path, data)
}

func (i impl) post(ctx context.Context, path string, payload interface{}) error {
	uri := i.host + path
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "ошибка формирования запроса")
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "ошибка формирования запроса")
	}
	token, err := authutils.GetServiceToken()
	if err != nil {
		return errors.Wrap(err, "ошибка формирования сервисного токена")
	}
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+token)

	logger := log.
		WithField("external_request", uri).
		WithField("request_body", string(body))

	resp, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("сервис уведомлений недоступен")
		return errors.Wrap(models.ErrNotificationDelivery, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		msg := string(respBody)
		data := apimodels.Response{}
		if unmErr := json.Unmarshal(respBody, &data); unmErr == nil && data.Message != "" {
			msg = data.Message
		}
		logger.
			WithField("status_code", resp.StatusCode).
			WithField("response", msg).
			Error("сервис уведомлений вернул ошибку")
		return errors.Wrap(models.ErrNotificationDelivery, fmt.Sprintf("код %v: %v", resp.StatusCode, msg))
	}
	return nil
}
