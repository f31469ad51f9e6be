package initializers

import (
	"request-mesh/config"
	"request-mesh/db"
	notificationhandler "request-mesh/lib/notification"
	notificationstore "request-mesh/lib/notification/store"
	"request-mesh/lib/smtp"
)

// InitNotifyService собирает зависимости сервиса уведомлений
func InitNotifyService() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection(db.AutoMigrateNotifyDB)
	InitSmtp()

	notificationhandler.NewHandler(smtp.Instance, notificationstore.NewInstance(db.DB), config.Conf.Smtp.EmailFrom)
}
