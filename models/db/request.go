package dbmodels

import (
	"request-mesh/models"
)

// Request - заявка сотрудника (отпуск/оборудование/сверхурочные)
type Request struct {
	BaseModel
	Title         string                `gorm:"type:varchar(255)"`
	Description   string
	RequestType   models.RequestType    `gorm:"type:varchar(100)"`
	Urgency       models.RequestUrgency `gorm:"type:varchar(100)"`
	Email         string                `gorm:"type:varchar(255);index:idx_request_email"`
	SuperiorEmail string                `gorm:"type:varchar(255)"`
	Status        models.RequestStatus  `gorm:"type:varchar(100);index:idx_request_status"`
	Attachments   []RequestAttachment   `gorm:"foreignKey:RequestID"`
}

// RequestAttachment - метаданные файла заявки, тело лежит в S3
type RequestAttachment struct {
	BaseModel
	RequestID   string `gorm:"type:varchar(36);index"`
	FileName    string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(255)"`
	Size        int64
}
