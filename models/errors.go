package models

import "github.com/pkg/errors"

// Ошибки уровня домена, по которым контроллеры выбирают HTTP статус.
var (
	ErrRequestNotFound      = errors.New("заявка не найдена")
	ErrRequestNotPending    = errors.New("заявка уже рассмотрена")
	ErrUserNotFound         = errors.New("пользователь не найден")
	ErrUserAlreadyExists    = errors.New("пользователь с такой почтой уже существует")
	ErrNotificationDelivery = errors.New("не удалось отправить уведомление")
)
