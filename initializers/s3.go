package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	s3client "request-mesh/s3"
)

func InitS3(ctx context.Context) {
	if err := s3client.Connect(ctx); err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	log.Info("S3 клиент успешно инициализирован")
}
