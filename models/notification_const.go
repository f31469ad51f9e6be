package models

import "github.com/pkg/errors"

type NotificationKind string

const (
	NotificationKindLogin           NotificationKind = "Login"
	NotificationKindLogout          NotificationKind = "Logout"
	NotificationKindRequestCreation NotificationKind = "RequestCreation"
	NotificationKindApproval        NotificationKind = "Approval"
	NotificationKindRejection       NotificationKind = "Rejection"
)

var notificationKindHumanName = map[NotificationKind]string{
	NotificationKindLogin:           "Вход в систему",
	NotificationKindLogout:          "Выход из системы",
	NotificationKindRequestCreation: "Создание заявки",
	NotificationKindApproval:        "Согласование заявки",
	NotificationKindRejection:       "Отклонение заявки",
}

func (k NotificationKind) Validate() error {
	if _, exist := notificationKindHumanName[k]; !exist {
		return errors.Errorf("недопустимый тип уведомления: %v", string(k))
	}
	return nil
}

func (k NotificationKind) ToHuman() string {
	if human, exist := notificationKindHumanName[k]; exist {
		return human
	}
	return string(k)
}
