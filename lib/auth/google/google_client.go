package googleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	authapimodels "request-mesh/models/api/auth"
)

type Provider interface {
	GetLoginUri(state string) string
	// ExchangeCode меняет авторизационный код на access token и возвращает
	// профиль пользователя
	ExchangeCode(ctx context.Context, code string) (*authapimodels.GoogleUserInfo, error)
}

var Instance Provider

const (
	defaultAuthUri     string = "https://accounts.google.com/o/oauth2/auth"
	defaultTokenUri    string = "https://oauth2.googleapis.com/token"
	defaultUserInfoUri string = "https://www.googleapis.com/oauth2/v3/userinfo"
)

func NewProvider(clientID, clientSecret, redirectUri string) Provider {
	Instance = &impl{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectUri:  redirectUri,
		authUri:      defaultAuthUri,
		tokenUri:     defaultTokenUri,
		userInfoUri:  defaultUserInfoUri,
	}
	return Instance
}

type impl struct {
	clientID     string
	clientSecret string
	redirectUri  string
	authUri      string
	tokenUri     string
	userInfoUri  string
}

func (i impl) GetLoginUri(state string) string {
	params := url.Values{}
	params.Set("client_id", i.clientID)
	params.Set("redirect_uri", i.redirectUri)
	params.Set("response_type", "code")
	params.Set("scope", "openid email profile")
	params.Set("state", state)
	return i.authUri + "?" + params.Encode()
}

func (i impl) ExchangeCode(ctx context.Context, code string) (*authapimodels.GoogleUserInfo, error) {
	data := url.Values{}
	data.Set("client_id", i.clientID)
	data.Set("client_secret", i.clientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", i.redirectUri)
	data.Set("grant_type", "authorization_code")

	r, _ := http.NewRequestWithContext(ctx, http.MethodPost, i.tokenUri, strings.NewReader(data.Encode()))
	r.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	tokenResp := authapimodels.GoogleTokenResponse{}
	logger := log.WithField("external_request", i.tokenUri)
	if err := i.sendRequest(logger, r, &tokenResp); err != nil {
		return nil, err
	}
	if tokenResp.AccessToken == "" {
		return nil, errors.New("провайдер не вернул access token")
	}

	r, _ = http.NewRequestWithContext(ctx, http.MethodGet, i.userInfoUri, nil)
	r.Header.Add("Authorization", "Bearer "+tokenResp.AccessToken)

	userInfo := authapimodels.GoogleUserInfo{}
	logger = log.WithField("external_request", i.userInfoUri)
	if err := i.sendRequest(logger, r, &userInfo); err != nil {
		return nil, err
	}
	if userInfo.Email == "" {
		return nil, errors.New("провайдер не вернул почту пользователя")
	}
	return &userInfo, nil
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, out interface{}) error {
	resp, err := http.DefaultClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка запроса к провайдеру")
		return errors.Wrap(err, "ошибка запроса к провайдеру")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения ответа провайдера")
		return errors.Wrap(err, "ошибка чтения ответа провайдера")
	}
	if resp.StatusCode != http.StatusOK {
		logger.
			WithField("status_code", resp.StatusCode).
			WithField("response", string(body)).
			Error("провайдер вернул ошибку")
		return errors.Errorf("провайдер вернул ошибку: код %v", resp.StatusCode)
	}
	if err = json.Unmarshal(body, out); err != nil {
		logger.WithError(err).Error("ошибка разбора ответа провайдера")
		return errors.Wrap(err, fmt.Sprintf("ошибка разбора ответа провайдера: %v", string(body)))
	}
	return nil
}
