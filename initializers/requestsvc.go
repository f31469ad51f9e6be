package initializers

import (
	"context"
	"time"

	"request-mesh/config"
	"request-mesh/db"
	attachmentshandler "request-mesh/lib/attachments"
	attachmentstore "request-mesh/lib/attachments/store"
	xlsexport "request-mesh/lib/export/xls"
	notifyclient "request-mesh/lib/notify-client"
	requesthandler "request-mesh/lib/requests"
	requeststore "request-mesh/lib/requests/store"
	s3client "request-mesh/s3"
)

// InitRequestService собирает зависимости сервиса заявок
func InitRequestService(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection(db.AutoMigrateRequestDB)
	InitS3(ctx)

	notifier := notifyclient.NewProvider(config.Conf.Notify.ServiceURL,
		time.Duration(config.Conf.Notify.TimeoutInSec)*time.Second)
	reqStore := requeststore.NewInstance(db.DB)
	requesthandler.NewHandler(reqStore, notifier)
	attachmentshandler.NewHandler(s3client.Client, config.Conf.S3.BucketName,
		attachmentstore.NewInstance(db.DB), reqStore)
	xlsexport.NewHandler()
}
