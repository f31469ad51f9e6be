package notificationhandler

import (
	"fmt"

	"request-mesh/models"
	notifyapimodels "request-mesh/models/api/notify"
)

// Тексты писем фиксированы по типу уведомления, поля подставляются как есть.

func personalTemplate(kind models.NotificationKind, data notifyapimodels.PersonalNotificationData) (subject, body string) {
	switch kind {
	case models.NotificationKindLogout:
		subject = "Выход из системы"
		body = fmt.Sprintf("Здравствуйте, %s!\n\nВы вышли из системы сервиса заявок.", data.Name)
	default:
		subject = "Успешный вход в систему"
		body = fmt.Sprintf("Здравствуйте, %s!\n\nВы успешно вошли в сервис заявок.", data.Name)
	}
	return subject, body
}

func requesterTemplate(kind models.NotificationKind, data notifyapimodels.RequestNotificationData) (subject, body string) {
	details := requestDetails(data)
	switch kind {
	case models.NotificationKindApproval:
		subject = "Заявка согласована"
		body = fmt.Sprintf("Ваша заявка «%s» согласована.\n\n%s", data.Title, details)
	case models.NotificationKindRejection:
		subject = "Заявка отклонена"
		body = fmt.Sprintf("Ваша заявка «%s» отклонена.\n\n%s", data.Title, details)
	default:
		subject = "Заявка создана"
		body = fmt.Sprintf("Ваша заявка «%s» создана и ожидает согласования.\n\n%s", data.Title, details)
	}
	return subject, body
}

func superiorTemplate(kind models.NotificationKind, data notifyapimodels.RequestNotificationData) (subject, body string) {
	details := requestDetails(data)
	switch kind {
	case models.NotificationKindApproval:
		subject = "Заявка согласована"
		body = fmt.Sprintf("Вы согласовали заявку «%s» сотрудника %s.\n\n%s", data.Title, data.Email, details)
	case models.NotificationKindRejection:
		subject = "Заявка отклонена"
		body = fmt.Sprintf("Вы отклонили заявку «%s» сотрудника %s.\n\n%s", data.Title, data.Email, details)
	default:
		subject = "Новая заявка на согласование"
		body = fmt.Sprintf("Сотрудник %s создал заявку «%s», требуется согласование.\n\n%s", data.Email, data.Title, details)
	}
	return subject, body
}

func requestDetails(data notifyapimodels.RequestNotificationData) string {
	return fmt.Sprintf("Тип: %s\nСрочность: %s\nОписание: %s",
		data.RequestType.ToHuman(), data.Urgency.ToHuman(), data.Description)
}
