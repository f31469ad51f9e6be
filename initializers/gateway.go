package initializers

import (
	"request-mesh/config"
)

// InitGateway - шлюз работает без БД и внешних хранилищ
func InitGateway() {
	LoggerConfig = InitLogger()
	config.InitConfig()
}
