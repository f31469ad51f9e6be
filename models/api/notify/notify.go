package notifyapimodels

import (
	"time"

	"github.com/pkg/errors"
	"request-mesh/models"
	dbmodels "request-mesh/models/db"
)

// PersonalNotificationData - уведомление о входе/выходе, один получатель
type PersonalNotificationData struct {
	Email string `json:"email"` // почта получателя
	Name  string `json:"name"`  // имя получателя
}

func (d PersonalNotificationData) Validate() error {
	if d.Email == "" {
		return errors.New("отсутствует почта получателя")
	}
	if d.Name == "" {
		return errors.New("отсутствует имя получателя")
	}
	return nil
}

// RequestNotificationData - уведомление по заявке, два получателя
type RequestNotificationData struct {
	Email         string                `json:"email"`         // почта сотрудника
	SuperiorEmail string                `json:"superiorEmail"` // почта согласующего
	Title         string                `json:"title"`
	RequestType   models.RequestType    `json:"type"`
	Description   string                `json:"description"`
	Urgency       models.RequestUrgency `json:"urgency"`
}

func (d RequestNotificationData) Validate() error {
	if d.Email == "" {
		return errors.New("отсутствует почта сотрудника")
	}
	if d.SuperiorEmail == "" {
		return errors.New("отсутствует почта согласующего")
	}
	if d.Title == "" {
		return errors.New("отсутствует название заявки")
	}
	return nil
}

type NotificationView struct {
	ID        string                  `json:"id"`
	Email     string                  `json:"email"`
	Name      string                  `json:"name"`
	Message   string                  `json:"message"`
	Kind      models.NotificationKind `json:"type"`
	CreatedAt time.Time               `json:"createdAt"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Email:     rec.Email,
		Name:      rec.Name,
		Message:   rec.Message,
		Kind:      rec.Kind,
		CreatedAt: rec.CreatedAt,
	}
}
