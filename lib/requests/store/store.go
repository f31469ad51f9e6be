package requeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"request-mesh/models"
	dbmodels "request-mesh/models/db"
)

type Provider interface {
	Create(rec dbmodels.Request) (id string, err error)
	GetByID(id string) (rec *dbmodels.Request, err error)
	ListByStatus(status models.RequestStatus) (list []dbmodels.Request, err error)
	ListByEmail(email string) (list []dbmodels.Request, err error)
	// TransitionStatus - переход только из pending, условным обновлением
	TransitionStatus(id string, newStatus models.RequestStatus) (ok bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
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

func (i impl) ListByStatus(status models.RequestStatus) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.db.
		Where("status = ?", status).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByEmail(email string) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	err = i.db.
		Where("email = ?", email).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) TransitionStatus(id string, newStatus models.RequestStatus) (ok bool, err error) {
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Where("status = ?", models.RequestStatusPending).
		Update("status", newStatus)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
