package dbmodels

import (
	"request-mesh/models"
)

type User struct {
	BaseModel
	GoogleID string          `gorm:"type:varchar(255);index"`
	Name     string          `gorm:"type:varchar(255)"`
	Email    string          `gorm:"type:varchar(255);uniqueIndex"`
	Role     models.UserRole `gorm:"type:varchar(100)"`
}
