package requestapimodels

import (
	"time"

	"github.com/pkg/errors"
	"request-mesh/models"
	dbmodels "request-mesh/models/db"
)

type RequestCreateData struct {
	Title         string                `json:"title"`         // название заявки
	Description   string                `json:"description"`   // описание
	RequestType   models.RequestType    `json:"type"`          // тип заявки
	Urgency       models.RequestUrgency `json:"urgency"`       // срочность
	Email         string                `json:"email"`         // почта сотрудника
	SuperiorEmail string                `json:"superiorEmail"` // почта согласующего
}

func (r RequestCreateData) Validate() error {
	if r.Title == "" {
		return errors.New("отсутствует название заявки")
	}
	if r.Email == "" {
		return errors.New("отсутствует почта сотрудника")
	}
	if r.SuperiorEmail == "" {
		return errors.New("отсутствует почта согласующего")
	}
	if err := r.RequestType.Validate(); err != nil {
		return err
	}
	if err := r.Urgency.Validate(); err != nil {
		return err
	}
	return nil
}

type RequestDecideData struct {
	RequestID string `json:"requestId"` // ид заявки
}

func (r RequestDecideData) Validate() error {
	if r.RequestID == "" {
		return errors.New("отсутствует ид заявки")
	}
	return nil
}

type RequestView struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	RequestType   models.RequestType    `json:"type"`
	Urgency       models.RequestUrgency `json:"urgency"`
	Email         string                `json:"email"`
	SuperiorEmail string                `json:"superiorEmail"`
	Status        models.RequestStatus  `json:"status"`
	CreatedAt     time.Time             `json:"createdAt"`
}

func RequestConvert(rec dbmodels.Request) RequestView {
	return RequestView{
		ID:            rec.ID,
		Title:         rec.Title,
		Description:   rec.Description,
		RequestType:   rec.RequestType,
		Urgency:       rec.Urgency,
		Email:         rec.Email,
		SuperiorEmail: rec.SuperiorEmail,
		Status:        rec.Status,
		CreatedAt:     rec.CreatedAt,
	}
}

type AttachmentView struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

func AttachmentConvert(rec dbmodels.RequestAttachment) AttachmentView {
	return AttachmentView{
		ID:          rec.ID,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		Size:        rec.Size,
		CreatedAt:   rec.CreatedAt,
	}
}
