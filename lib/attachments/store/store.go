package attachmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "request-mesh/models/db"
)

type Provider interface {
	Save(rec dbmodels.RequestAttachment) (id string, err error)
	GetByID(id string) (rec *dbmodels.RequestAttachment, err error)
	ListByRequest(requestID string) (list []dbmodels.RequestAttachment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.RequestAttachment) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.RequestAttachment, error) {
	rec := dbmodels.RequestAttachment{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByRequest(requestID string) (list []dbmodels.RequestAttachment, err error) {
	list = []dbmodels.RequestAttachment{}
	err = i.db.
		Where("request_id = ?", requestID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
