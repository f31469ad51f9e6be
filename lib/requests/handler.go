package requesthandler

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	notifyclient "request-mesh/lib/notify-client"
	requeststore "request-mesh/lib/requests/store"
	"request-mesh/models"
	notifyapimodels "request-mesh/models/api/notify"
	requestapimodels "request-mesh/models/api/request"
	dbmodels "request-mesh/models/db"
)

type Provider interface {
	// Create сохраняет заявку в статусе pending и рассылает уведомления.
	// Ошибка рассылки не откатывает созданную заявку и возвращается отдельно.
	Create(ctx context.Context, data requestapimodels.RequestCreateData) (item requestapimodels.RequestView, notifyErr error, err error)
	// Decide - переход pending -> approved/rejected, повторное решение недопустимо
	Decide(ctx context.Context, id string, newStatus models.RequestStatus) (item requestapimodels.RequestView, notifyErr error, err error)
	ListPending() (list []requestapimodels.RequestView, err error)
	ListForUser(email string) (list []requestapimodels.RequestView, err error)
}

var Instance Provider

func NewHandler(store requeststore.Provider, notifier notifyclient.Provider) Provider {
	Instance = impl{
		store:    store,
		notifier: notifier,
	}
	return Instance
}

type impl struct {
	store    requeststore.Provider
	notifier notifyclient.Provider
}

func (i impl) Create(ctx context.Context, data requestapimodels.RequestCreateData) (item requestapimodels.RequestView, notifyErr error, err error) {
	logger := log.WithField("email", data.Email)
	rec := dbmodels.Request{
		Title:         data.Title,
		Description:   data.Description,
		RequestType:   data.RequestType,
		Urgency:       data.Urgency,
		Email:         data.Email,
		SuperiorEmail: data.SuperiorEmail,
		Status:        models.RequestStatusPending,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("Ошибка создания заявки")
		return requestapimodels.RequestView{}, nil, err
	}
	logger = logger.WithField("rec_id", id)
	logger.Info("Создана заявка")

	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		logger.WithError(err).Error("ошибка получения созданной заявки")
		return requestapimodels.RequestView{}, nil, errors.New("ошибка получения созданной заявки")
	}

	notifyErr = i.notifier.SendRequestNotification(ctx, models.NotificationKindRequestCreation, notificationData(*created))
	if notifyErr != nil {
		logger.WithError(notifyErr).Error("заявка создана, но уведомления не отправлены")
	}
	return requestapimodels.RequestConvert(*created), notifyErr, nil
}

func (i impl) Decide(ctx context.Context, id string, newStatus models.RequestStatus) (item requestapimodels.RequestView, notifyErr error, err error) {
	logger := log.
		WithField("rec_id", id).
		WithField("new_status", newStatus)
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.RequestView{}, nil, err
	}
	if !rec.Status.IsAllowChange(newStatus) {
		return requestapimodels.RequestView{}, nil, models.ErrRequestNotPending
	}

	// условное обновление закрывает гонку двух одновременных решений
	ok, err := i.store.TransitionStatus(id, newStatus)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления статуса")
		return requestapimodels.RequestView{}, nil, err
	}
	if !ok {
		return requestapimodels.RequestView{}, nil, models.ErrRequestNotPending
	}
	logger.Info("статус заявки обновлен")
	rec.Status = newStatus

	kind := models.NotificationKindApproval
	if newStatus == models.RequestStatusRejected {
		kind = models.NotificationKindRejection
	}
	notifyErr = i.notifier.SendRequestNotification(ctx, kind, notificationData(*rec))
	if notifyErr != nil {
		logger.WithError(notifyErr).Error("решение сохранено, но уведомления не отправлены")
	}
	return requestapimodels.RequestConvert(*rec), notifyErr, nil
}

func (i impl) ListPending() (list []requestapimodels.RequestView, err error) {
	recList, err := i.store.ListByStatus(models.RequestStatusPending)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка заявок")
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) ListForUser(email string) (list []requestapimodels.RequestView, err error) {
	recList, err := i.store.ListByEmail(email)
	if err != nil {
		log.
			WithField("email", email).
			WithError(err).
			Error("ошибка получения заявок пользователя")
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) getRec(id string) (*dbmodels.Request, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка получения заявки")
		return nil, err
	}
	if rec == nil {
		return nil, models.ErrRequestNotFound
	}
	return rec, nil
}

func notificationData(rec dbmodels.Request) notifyapimodels.RequestNotificationData {
	return notifyapimodels.RequestNotificationData{
		Email:         rec.Email,
		SuperiorEmail: rec.SuperiorEmail,
		Title:         rec.Title,
		RequestType:   rec.RequestType,
		Description:   rec.Description,
		Urgency:       rec.Urgency,
	}
}

func convertList(recList []dbmodels.Request) []requestapimodels.RequestView {
	result := make([]requestapimodels.RequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requestapimodels.RequestConvert(rec))
	}
	return result
}
