package dbmodels

import (
	"request-mesh/models"
)

// Notification - журнальная запись отправленного уведомления
type Notification struct {
	BaseModel
	Email   string                  `gorm:"type:varchar(255);index:idx_notification_email"`
	Name    string                  `gorm:"type:varchar(255)"`
	Message string
	Kind    models.NotificationKind `gorm:"type:varchar(100);index:idx_notification_kind"`
}
