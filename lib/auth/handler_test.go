package authhandler

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"request-mesh/config"
	"request-mesh/models"
	authapimodels "request-mesh/models/api/auth"
	notifyapimodels "request-mesh/models/api/notify"
	dbmodels "request-mesh/models/db"
)

type mockOAuthClient struct {
	userInfo *authapimodels.GoogleUserInfo
	err      error
}

func (m *mockOAuthClient) GetLoginUri(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (m *mockOAuthClient) ExchangeCode(_ context.Context, _ string) (*authapimodels.GoogleUserInfo, error) {
	return m.userInfo, m.err
}

type mockUserStore struct {
	byGoogleID map[string]*dbmodels.User
	byEmail    map[string]*dbmodels.User
	created    []dbmodels.User
	updated    map[string]map[string]interface{}
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		byGoogleID: map[string]*dbmodels.User{},
		byEmail:    map[string]*dbmodels.User{},
		updated:    map[string]map[string]interface{}{},
	}
}

func (m *mockUserStore) Create(rec dbmodels.User) (string, error) {
	m.created = append(m.created, rec)
	return "user-new", nil
}

func (m *mockUserStore) FindByEmail(email string) (*dbmodels.User, error) {
	return m.byEmail[email], nil
}

func (m *mockUserStore) FindByGoogleID(googleID string) (*dbmodels.User, error) {
	return m.byGoogleID[googleID], nil
}

func (m *mockUserStore) Update(id string, updMap map[string]interface{}) error {
	m.updated[id] = updMap
	return nil
}

type mockPersonalNotifier struct {
	loginCount  int
	logoutCount int
	err         error
}

func (m *mockPersonalNotifier) SendLoginNotification(_ context.Context, _ notifyapimodels.PersonalNotificationData) error {
	m.loginCount++
	return m.err
}

func (m *mockPersonalNotifier) SendLogoutNotification(_ context.Context, _ notifyapimodels.PersonalNotificationData) error {
	m.logoutCount++
	return m.err
}

func (m *mockPersonalNotifier) SendRequestNotification(_ context.Context, _ models.NotificationKind, _ notifyapimodels.RequestNotificationData) error {
	return nil
}

func initTestConfig(t *testing.T) {
	t.Helper()
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	config.Conf = conf
}

func tokenRole(t *testing.T, tokenString string) string {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	return token.Claims.(jwt.MapClaims)["role"].(string)
}

func TestHandleCallback(t *testing.T) {
	initTestConfig(t)
	userInfo := &authapimodels.GoogleUserInfo{
		Sub:   "google-1",
		Email: "user@example.com",
		Name:  "Иван",
	}

	t.Run("новый пользователь создается с ролью сотрудника", func(t *testing.T) {
		store := newMockUserStore()
		notifier := &mockPersonalNotifier{}
		handler := NewHandler(&mockOAuthClient{userInfo: userInfo}, store, notifier, nil, time.Second)

		token, err := handler.HandleCallback(context.Background(), "code")
		require.NoError(t, err)
		require.Len(t, store.created, 1)
		require.Equal(t, models.UserRoleRequester, store.created[0].Role)
		require.Equal(t, string(models.UserRoleRequester), tokenRole(t, token))
		require.Equal(t, 1, notifier.loginCount)
	})

	t.Run("почта из списка согласующих дает роль согласующего", func(t *testing.T) {
		store := newMockUserStore()
		handler := NewHandler(&mockOAuthClient{userInfo: userInfo}, store, &mockPersonalNotifier{},
			[]string{"user@example.com"}, time.Second)

		token, err := handler.HandleCallback(context.Background(), "code")
		require.NoError(t, err)
		require.Equal(t, models.UserRoleApprover, store.created[0].Role)
		require.Equal(t, string(models.UserRoleApprover), tokenRole(t, token))
	})

	t.Run("найденному по почте дописывается google id", func(t *testing.T) {
		store := newMockUserStore()
		store.byEmail["user@example.com"] = &dbmodels.User{
			BaseModel: dbmodels.BaseModel{ID: "user-1"},
			Email:     "user@example.com",
			Name:      "Иван",
			Role:      models.UserRoleRequester,
		}
		handler := NewHandler(&mockOAuthClient{userInfo: userInfo}, store, &mockPersonalNotifier{}, nil, time.Second)

		_, err := handler.HandleCallback(context.Background(), "code")
		require.NoError(t, err)
		require.Empty(t, store.created)
		require.Equal(t, map[string]interface{}{"google_id": "google-1"}, store.updated["user-1"])
	})

	t.Run("повторный вход не трогает запись пользователя", func(t *testing.T) {
		store := newMockUserStore()
		store.byGoogleID["google-1"] = &dbmodels.User{
			BaseModel: dbmodels.BaseModel{ID: "user-1"},
			GoogleID:  "google-1",
			Email:     "user@example.com",
			Role:      models.UserRoleApprover,
		}
		handler := NewHandler(&mockOAuthClient{userInfo: userInfo}, store, &mockPersonalNotifier{}, nil, time.Second)

		token, err := handler.HandleCallback(context.Background(), "code")
		require.NoError(t, err)
		require.Empty(t, store.created)
		require.Empty(t, store.updated)
		require.Equal(t, string(models.UserRoleApprover), tokenRole(t, token))
	})

	t.Run("ошибка обмена кода возвращается без создания пользователя", func(t *testing.T) {
		store := newMockUserStore()
		handler := NewHandler(&mockOAuthClient{err: errors.New("bad code")}, store, &mockPersonalNotifier{}, nil, time.Second)

		_, err := handler.HandleCallback(context.Background(), "code")
		require.Error(t, err)
		require.Empty(t, store.created)
	})

	t.Run("отказ сервиса уведомлений не мешает входу", func(t *testing.T) {
		store := newMockUserStore()
		notifier := &mockPersonalNotifier{err: errors.New("notify svc down")}
		handler := NewHandler(&mockOAuthClient{userInfo: userInfo}, store, notifier, nil, time.Second)

		token, err := handler.HandleCallback(context.Background(), "code")
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})
}

func TestGetByEmail(t *testing.T) {
	initTestConfig(t)

	t.Run("неизвестная почта дает ErrUserNotFound", func(t *testing.T) {
		handler := NewHandler(&mockOAuthClient{}, newMockUserStore(), &mockPersonalNotifier{}, nil, time.Second)

		_, err := handler.GetByEmail("missing@example.com")
		require.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("найденный пользователь конвертируется в представление", func(t *testing.T) {
		store := newMockUserStore()
		store.byEmail["user@example.com"] = &dbmodels.User{
			BaseModel: dbmodels.BaseModel{ID: "user-1"},
			Email:     "user@example.com",
			Name:      "Иван",
			Role:      models.UserRoleRequester,
		}
		handler := NewHandler(&mockOAuthClient{}, store, &mockPersonalNotifier{}, nil, time.Second)

		item, err := handler.GetByEmail("user@example.com")
		require.NoError(t, err)
		require.Equal(t, "user-1", item.ID)
		require.Equal(t, models.UserRoleRequester, item.Role)
	})
}

func TestCreateUser(t *testing.T) {
	initTestConfig(t)

	t.Run("занятая почта дает ErrUserAlreadyExists", func(t *testing.T) {
		store := newMockUserStore()
		store.byEmail["user@example.com"] = &dbmodels.User{Email: "user@example.com"}
		handler := NewHandler(&mockOAuthClient{}, store, &mockPersonalNotifier{}, nil, time.Second)

		_, err := handler.CreateUser(authapimodels.UserCreateData{Email: "user@example.com", Name: "Иван"})
		require.ErrorIs(t, err, models.ErrUserAlreadyExists)
	})

	t.Run("роль без явного значения берется из списка согласующих", func(t *testing.T) {
		store := newMockUserStore()
		handler := NewHandler(&mockOAuthClient{}, store, &mockPersonalNotifier{},
			[]string{"boss@example.com"}, time.Second)

		item, err := handler.CreateUser(authapimodels.UserCreateData{Email: "boss@example.com", Name: "Петр"})
		require.NoError(t, err)
		require.Equal(t, models.UserRoleApprover, item.Role)
	})
}

func TestLogout(t *testing.T) {
	initTestConfig(t)

	notifier := &mockPersonalNotifier{}
	handler := NewHandler(&mockOAuthClient{}, newMockUserStore(), notifier, nil, time.Second)

	handler.Logout(context.Background(), "user@example.com", "Иван")
	require.Equal(t, 1, notifier.logoutCount)
}
