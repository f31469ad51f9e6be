package notificationstore

import (
	"gorm.io/gorm"
	dbmodels "request-mesh/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	List() (list []dbmodels.Notification, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List() (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
