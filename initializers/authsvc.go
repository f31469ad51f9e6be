package initializers

import (
	"time"

	"request-mesh/config"
	"request-mesh/db"
	"request-mesh/fiberlog"
	authhandler "request-mesh/lib/auth"
	googleclient "request-mesh/lib/auth/google"
	notifyclient "request-mesh/lib/notify-client"
	usersstore "request-mesh/lib/users/store"
)

var LoggerConfig *fiberlog.Config

// InitAuthService собирает зависимости сервиса аутентификации
func InitAuthService() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection(db.AutoMigrateAuthDB)

	notifyTimeout := time.Duration(config.Conf.Notify.TimeoutInSec) * time.Second
	oauthClient := googleclient.NewProvider(config.Conf.Google.ClientID, config.Conf.Google.ClientSecret, config.Conf.Google.RedirectURL)
	notifier := notifyclient.NewProvider(config.Conf.Notify.ServiceURL, notifyTimeout)
	userStore := usersstore.NewInstance(db.DB)
	authhandler.NewHandler(oauthClient, userStore, notifier, config.Conf.Auth.ApproverEmails, notifyTimeout)
}
