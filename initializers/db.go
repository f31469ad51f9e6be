package initializers

import (
	"gorm.io/gorm"
	"request-mesh/config"
	"request-mesh/db"
)

// InitDBConnection - каждый сервис мигрирует только свои таблицы
func InitDBConnection(migrate func(db *gorm.DB) error) {
	if !*config.Conf.Database.MigrateOnStart {
		migrate = nil
	}
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, migrate)
	if err != nil {
		panic(err.Error())
	}
}
