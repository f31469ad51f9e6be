package requesthandler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"request-mesh/models"
	notifyapimodels "request-mesh/models/api/notify"
	requestapimodels "request-mesh/models/api/request"
	dbmodels "request-mesh/models/db"
)

type mockStore struct {
	createFn     func(rec dbmodels.Request) (string, error)
	getByIDFn    func(id string) (*dbmodels.Request, error)
	transitionFn func(id string, newStatus models.RequestStatus) (bool, error)
	listByStatus func(status models.RequestStatus) ([]dbmodels.Request, error)
	listByEmail  func(email string) ([]dbmodels.Request, error)
}

func (m *mockStore) Create(rec dbmodels.Request) (string, error) {
	if m.createFn != nil {
		return m.createFn(rec)
	}
	return "rec-id", nil
}

func (m *mockStore) GetByID(id string) (*dbmodels.Request, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockStore) ListByStatus(status models.RequestStatus) ([]dbmodels.Request, error) {
	if m.listByStatus != nil {
		return m.listByStatus(status)
	}
	return nil, nil
}

func (m *mockStore) ListByEmail(email string) ([]dbmodels.Request, error) {
	if m.listByEmail != nil {
		return m.listByEmail(email)
	}
	return nil, nil
}

func (m *mockStore) TransitionStatus(id string, newStatus models.RequestStatus) (bool, error) {
	if m.transitionFn != nil {
		return m.transitionFn(id, newStatus)
	}
	return true, nil
}

type mockNotifier struct {
	sentKinds []models.NotificationKind
	sendErr   error
}

func (m *mockNotifier) SendLoginNotification(_ context.Context, _ notifyapimodels.PersonalNotificationData) error {
	return nil
}

func (m *mockNotifier) SendLogoutNotification(_ context.Context, _ notifyapimodels.PersonalNotificationData) error {
	return nil
}

func (m *mockNotifier) SendRequestNotification(_ context.Context, kind models.NotificationKind, _ notifyapimodels.RequestNotificationData) error {
	m.sentKinds = append(m.sentKinds, kind)
	return m.sendErr
}

func pendingRec(id string) *dbmodels.Request {
	return &dbmodels.Request{
		BaseModel:     dbmodels.BaseModel{ID: id},
		Title:         "Отпуск в июле",
		RequestType:   models.RequestTypeLeave,
		Urgency:       models.RequestUrgencyLow,
		Email:         "user@example.com",
		SuperiorEmail: "boss@example.com",
		Status:        models.RequestStatusPending,
	}
}

func TestCreate(t *testing.T) {
	data := requestapimodels.RequestCreateData{
		Title:         "Отпуск в июле",
		RequestType:   models.RequestTypeLeave,
		Urgency:       models.RequestUrgencyLow,
		Email:         "user@example.com",
		SuperiorEmail: "boss@example.com",
	}

	t.Run("заявка создается в статусе pending и рассылает уведомление", func(t *testing.T) {
		var savedRec dbmodels.Request
		store := &mockStore{
			createFn: func(rec dbmodels.Request) (string, error) {
				savedRec = rec
				return "rec-1", nil
			},
			getByIDFn: func(id string) (*dbmodels.Request, error) {
				return pendingRec(id), nil
			},
		}
		notifier := &mockNotifier{}
		handler := NewHandler(store, notifier)

		item, notifyErr, err := handler.Create(context.Background(), data)
		require.NoError(t, err)
		require.NoError(t, notifyErr)
		require.Equal(t, models.RequestStatusPending, savedRec.Status)
		require.Equal(t, models.RequestStatusPending, item.Status)
		require.Equal(t, []models.NotificationKind{models.NotificationKindRequestCreation}, notifier.sentKinds)
	})

	t.Run("ошибка рассылки не откатывает заявку", func(t *testing.T) {
		store := &mockStore{
			getByIDFn: func(id string) (*dbmodels.Request, error) {
				return pendingRec(id), nil
			},
		}
		notifier := &mockNotifier{sendErr: errors.New("smtp down")}
		handler := NewHandler(store, notifier)

		item, notifyErr, err := handler.Create(context.Background(), data)
		require.NoError(t, err)
		require.Error(t, notifyErr)
		require.Equal(t, "Отпуск в июле", item.Title)
	})

	t.Run("ошибка БД возвращается без уведомлений", func(t *testing.T) {
		store := &mockStore{
			createFn: func(rec dbmodels.Request) (string, error) {
				return "", errors.New("db down")
			},
		}
		notifier := &mockNotifier{}
		handler := NewHandler(store, notifier)

		_, notifyErr, err := handler.Create(context.Background(), data)
		require.Error(t, err)
		require.NoError(t, notifyErr)
		require.Empty(t, notifier.sentKinds)
	})
}

func TestDecide(t *testing.T) {
	t.Run("согласование переводит заявку в approved", func(t *testing.T) {
		store := &mockStore{
			getByIDFn: func(id string) (*dbmodels.Request, error) {
				return pendingRec(id), nil
			},
		}
		notifier := &mockNotifier{}
		handler := NewHandler(store, notifier)

		item, notifyErr, err := handler.Decide(context.Background(), "rec-1", models.RequestStatusApproved)
		require.NoError(t, err)
		require.NoError(t, notifyErr)
		require.Equal(t, models.RequestStatusApproved, item.Status)
		require.Equal(t, []models.NotificationKind{models.NotificationKindApproval}, notifier.sentKinds)
	})

	t.Run("отклонение рассылает уведомление об отклонении", func(t *testing.T) {
		store := &mockStore{
			getByIDFn: func(id string) (*dbmodels.Request, error) {
				return pendingRec(id), nil
			},
		}
		notifier := &mockNotifier{}
		handler := NewHandler(store, notifier)

		item, _, err := handler.Decide(context.Background(), "rec-1", models.RequestStatusRejected)
		require.NoError(t, err)
		require.Equal(t, models.RequestStatusRejected, item.Status)
		require.Equal(t, []models.NotificationKind{models.NotificationKindRejection}, notifier.sentKinds)
	})

	t.Run("повторное решение по закрытой заявке недопустимо", func(t *testing.T) {
		store := &mockStore{
			getByIDFn: func(id string) (*dbmodels.Request, error) {
				rec := pendingRec(id)
				rec.Status = models.RequestStatusApproved
				return rec, nil
			},
		}
		notifier := &mockNotifier{}
		handler := NewHandler(store, notifier)

		_, _, err := handler.Decide(context.Background(), "rec-1", models.RequestStatusRejected)
		require.ErrorIs(t, err, models.ErrRequestNotPending)
		require.Empty(t, notifier.sentKinds)
	})

	t.Run("неизвестная заявка дает ErrRequestNotFound", func(t *testing.T) {
		store := &mockStore{}
		notifier := &mockNotifier{}
		handler := NewHandler(store, notifier)

		_, _, err := handler.Decide(context.Background(), "missing", models.RequestStatusApproved)
		require.ErrorIs(t, err, models.ErrRequestNotFound)
	})

	t.Run("проигрыш гонки за условное обновление дает конфликт", func(t *testing.T) {
		store := &mockStore{
			getByIDFn: func(id string) (*dbmodels.Request, error) {
				return pendingRec(id), nil
			},
			transitionFn: func(id string, newStatus models.RequestStatus) (bool, error) {
				return false, nil
			},
		}
		notifier := &mockNotifier{}
		handler := NewHandler(store, notifier)

		_, _, err := handler.Decide(context.Background(), "rec-1", models.RequestStatusApproved)
		require.ErrorIs(t, err, models.ErrRequestNotPending)
		require.Empty(t, notifier.sentKinds)
	})

	t.Run("ошибка рассылки не отменяет решение", func(t *testing.T) {
		store := &mockStore{
			getByIDFn: func(id string) (*dbmodels.Request, error) {
				return pendingRec(id), nil
			},
		}
		notifier := &mockNotifier{sendErr: errors.New("notify svc down")}
		handler := NewHandler(store, notifier)

		item, notifyErr, err := handler.Decide(context.Background(), "rec-1", models.RequestStatusApproved)
		require.NoError(t, err)
		require.Error(t, notifyErr)
		require.Equal(t, models.RequestStatusApproved, item.Status)
	})
}

func TestList(t *testing.T) {
	t.Run("списки конвертируются в представление", func(t *testing.T) {
		store := &mockStore{
			listByStatus: func(status models.RequestStatus) ([]dbmodels.Request, error) {
				require.Equal(t, models.RequestStatusPending, status)
				return []dbmodels.Request{*pendingRec("rec-1"), *pendingRec("rec-2")}, nil
			},
		}
		handler := NewHandler(store, &mockNotifier{})

		list, err := handler.ListPending()
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "rec-1", list[0].ID)
	})

	t.Run("заявки пользователя отбираются по почте", func(t *testing.T) {
		store := &mockStore{
			listByEmail: func(email string) ([]dbmodels.Request, error) {
				require.Equal(t, "user@example.com", email)
				return []dbmodels.Request{*pendingRec("rec-1")}, nil
			},
		}
		handler := NewHandler(store, &mockNotifier{})

		list, err := handler.ListForUser("user@example.com")
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}
