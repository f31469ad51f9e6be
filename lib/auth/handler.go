package authhandler

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	googleclient "request-mesh/lib/auth/google"
	notifyclient "request-mesh/lib/notify-client"
	usersstore "request-mesh/lib/users/store"
	authutils "request-mesh/lib/utils/auth-utils"
	"request-mesh/models"
	authapimodels "request-mesh/models/api/auth"
	notifyapimodels "request-mesh/models/api/notify"
	dbmodels "request-mesh/models/db"
)

type Provider interface {
	// HandleCallback завершает OAuth вход: обмен кода, создание/обновление
	// пользователя, выпуск токена, уведомление о входе
	HandleCallback(ctx context.Context, code string) (token string, err error)
	GetByEmail(email string) (item authapimodels.UserView, err error)
	CreateUser(data authapimodels.UserCreateData) (item authapimodels.UserView, err error)
	Logout(ctx context.Context, email, name string)
}

var Instance Provider

func NewHandler(oauthClient googleclient.Provider, userStore usersstore.Provider, notifier notifyclient.Provider, approverEmails []string, notifyTimeout time.Duration) Provider {
	approvers := make(map[string]struct{}, len(approverEmails))
	for _, email := range approverEmails {
		approvers[email] = struct{}{}
	}
	Instance = impl{
		oauthClient:   oauthClient,
		userStore:     userStore,
		notifier:      notifier,
		approvers:     approvers,
		notifyTimeout: notifyTimeout,
	}
	return Instance
}

type impl struct {
	oauthClient   googleclient.Provider
	userStore     usersstore.Provider
	notifier      notifyclient.Provider
	approvers     map[string]struct{}
	notifyTimeout time.Duration
}

func (i impl) HandleCallback(ctx context.Context, code string) (token string, err error) {
	userInfo, err := i.oauthClient.ExchangeCode(ctx, code)
	if err != nil {
		return "", err
	}
	logger := log.WithField("email", userInfo.Email)

	user, err := i.resolveUser(*userInfo)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения пользователя")
		return "", err
	}

	token, err = authutils.GetToken(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка выпуска токена")
		return "", err
	}

	// уведомление о входе не блокирует выдачу токена
	notifyCtx, cancel := context.WithTimeout(context.Background(), i.notifyTimeout)
	defer cancel()
	notifyErr := i.notifier.SendLoginNotification(notifyCtx, notifyapimodels.PersonalNotificationData{
		Email: user.Email,
		Name:  user.Name,
	})
	if notifyErr != nil {
		logger.WithError(notifyErr).Error("уведомление о входе не отправлено")
	}

	logger.Info("пользователь вошел в систему")
	return token, nil
}

// resolveUser ищет пользователя по google id, затем по почте;
// отсутствующего создает, найденному по почте дописывает google id
func (i impl) resolveUser(userInfo authapimodels.GoogleUserInfo) (*dbmodels.User, error) {
	user, err := i.userStore.FindByGoogleID(userInfo.Sub)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = i.userStore.FindByEmail(userInfo.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		updMap := map[string]interface{}{
			"google_id": userInfo.Sub,
		}
		if err = i.userStore.Update(user.ID, updMap); err != nil {
			return nil, err
		}
		user.GoogleID = userInfo.Sub
		return user, nil
	}

	rec := dbmodels.User{
		GoogleID: userInfo.Sub,
		Name:     userInfo.Name,
		Email:    userInfo.Email,
		Role:     i.resolveRole(userInfo.Email),
	}
	id, err := i.userStore.Create(rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	log.
		WithField("email", rec.Email).
		WithField("role", rec.Role).
		Info("создан пользователь")
	return &rec, nil
}

// роль согласующего выдается по списку адресов из конфигурации
func (i impl) resolveRole(email string) models.UserRole {
	if _, exist := i.approvers[email]; exist {
		return models.UserRoleApprover
	}
	return models.UserRoleRequester
}

func (i impl) GetByEmail(email string) (item authapimodels.UserView, err error) {
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		log.
			WithField("email", email).
			WithError(err).
			Error("ошибка получения пользователя")
		return authapimodels.UserView{}, err
	}
	if user == nil {
		return authapimodels.UserView{}, models.ErrUserNotFound
	}
	return authapimodels.UserConvert(*user), nil
}

func (i impl) CreateUser(data authapimodels.UserCreateData) (item authapimodels.UserView, err error) {
	exist, err := i.userStore.FindByEmail(data.Email)
	if err != nil {
		return authapimodels.UserView{}, err
	}
	if exist != nil {
		return authapimodels.UserView{}, models.ErrUserAlreadyExists
	}
	role := data.Role
	if role == "" {
		role = i.resolveRole(data.Email)
	}
	rec := dbmodels.User{
		GoogleID: data.GoogleID,
		Name:     data.Name,
		Email:    data.Email,
		Role:     role,
	}
	id, err := i.userStore.Create(rec)
	if err != nil {
		log.
			WithField("email", data.Email).
			WithError(err).
			Error("ошибка создания пользователя")
		return authapimodels.UserView{}, err
	}
	rec.ID = id
	return authapimodels.UserConvert(rec), nil
}

func (i impl) Logout(ctx context.Context, email, name string) {
	notifyCtx, cancel := context.WithTimeout(context.Background(), i.notifyTimeout)
	defer cancel()
	err := i.notifier.SendLogoutNotification(notifyCtx, notifyapimodels.PersonalNotificationData{
		Email: email,
		Name:  name,
	})
	if err != nil {
		log.
			WithField("email", email).
			WithError(err).
			Error("уведомление о выходе не отправлено")
	}
}
