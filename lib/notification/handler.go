package notificationhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	notificationstore "request-mesh/lib/notification/store"
	"request-mesh/lib/smtp"
	"request-mesh/models"
	notifyapimodels "request-mesh/models/api/notify"
	dbmodels "request-mesh/models/db"
)

type Provider interface {
	SendPersonal(kind models.NotificationKind, data notifyapimodels.PersonalNotificationData) error
	SendRequestEvent(kind models.NotificationKind, data notifyapimodels.RequestNotificationData) error
	List() (list []notifyapimodels.NotificationView, err error)
}

var Instance Provider

func NewHandler(sender smtp.Provider, store notificationstore.Provider, emailFrom string) Provider {
	Instance = impl{
		sender:    sender,
		store:     store,
		emailFrom: emailFrom,
	}
	return Instance
}

type impl struct {
	sender    smtp.Provider
	store     notificationstore.Provider
	emailFrom string
}

func (i impl) SendPersonal(kind models.NotificationKind, data notifyapimodels.PersonalNotificationData) error {
	subject, body := personalTemplate(kind, data)
	return i.deliver(kind, data.Email, data.Name, subject, body)
}

// SendRequestEvent отправляет два независимых письма: сотруднику и согласующему.
// Неудачная отправка одному получателю не блокирует отправку другому,
// повторных попыток нет.
func (i impl) SendRequestEvent(kind models.NotificationKind, data notifyapimodels.RequestNotificationData) error {
	subject, body := requesterTemplate(kind, data)
	requesterErr := i.deliver(kind, data.Email, models.UserRoleRequester.ToHuman(), subject, body)

	subject, body = superiorTemplate(kind, data)
	superiorErr := i.deliver(kind, data.SuperiorEmail, models.UserRoleApprover.ToHuman(), subject, body)

	if requesterErr != nil {
		return requesterErr
	}
	return superiorErr
}

// deliver - письмо сначала уходит в транспорт, журнальная запись создается
// только для принятого транспортом сообщения
func (i impl) deliver(kind models.NotificationKind, email, name, subject, body string) error {
	logger := log.
		WithField("recipient", email).
		WithField("kind", kind)
	err := i.sender.SendEMail(i.emailFrom, email, body, subject)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления")
		return errors.Wrap(models.ErrNotificationDelivery, err.Error())
	}
	rec := dbmodels.Notification{
		Email:   email,
		Name:    name,
		Message: body,
		Kind:    kind,
	}
	if _, err = i.store.Create(rec); err != nil {
		logger.WithError(err).Error("уведомление отправлено, но не записано в журнал")
		return err
	}
	logger.Info("уведомление отправлено")
	return nil
}

func (i impl) List() (list []notifyapimodels.NotificationView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения журнала уведомлений")
		return nil, err
	}
	result := make([]notifyapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, notifyapimodels.NotificationConvert(rec))
	}
	return result, nil
}
