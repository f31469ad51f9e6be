package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "request-mesh/models/db"
)

// Каждый сервис мигрирует только собственные таблицы.

func AutoMigrateAuthDB(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций сервиса аутентификации")
	if err := db.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	log.Info("Миграция прошла успешно")
	return nil
}

func AutoMigrateRequestDB(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций сервиса заявок")
	if err := db.AutoMigrate(&dbmodels.Request{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Request")
	}
	if err := db.AutoMigrate(&dbmodels.RequestAttachment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RequestAttachment")
	}
	log.Info("Миграция прошла успешно")
	return nil
}

func AutoMigrateNotifyDB(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций сервиса уведомлений")
	if err := db.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
