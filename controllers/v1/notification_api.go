package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"request-mesh/controllers"
	notificationhandler "request-mesh/lib/notification"
	"request-mesh/middleware"
	"request-mesh/models"
	apimodels "request-mesh/models/api"
	notifyapimodels "request-mesh/models/api/notify"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notify", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("send-login-notification", controller.sendLogin)
		router.Post("send-logout-notification", controller.sendLogout)
		router.Post("send-creation-notification", controller.sendCreation)
		router.Post("send-approval-notification", controller.sendApproval)
		router.Post("send-rejection-notification", controller.sendRejection)
	})
	// журнал уведомлений открыт без авторизации
	app.Get("notifications", controller.list)
}

// @Summary Уведомление о входе
// @Tags Уведомления
// @Description Уведомление о входе в систему
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notifyapimodels.PersonalNotificationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /notify/send-login-notification [post]
func (c *notificationApiController) sendLogin(ctx *fiber.Ctx) error {
	return c.sendPersonal(ctx, models.NotificationKindLogin)
}

// @Summary Уведомление о выходе
// @Tags Уведомления
// @Description Уведомление о выходе из системы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notifyapimodels.PersonalNotificationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /notify/send-logout-notification [post]
func (c *notificationApiController) sendLogout(ctx *fiber.Ctx) error {
	return c.sendPersonal(ctx, models.NotificationKindLogout)
}

func (c *notificationApiController) sendPersonal(ctx *fiber.Ctx, kind models.NotificationKind) error {
	var payload notifyapimodels.PersonalNotificationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notificationhandler.Instance.SendPersonal(kind, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки уведомления")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("уведомление отправлено"))
}

// @Summary Уведомление о создании заявки
// @Tags Уведомления
// @Description Уведомление о создании заявки, отправляется сотруднику и согласующему
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notifyapimodels.RequestNotificationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /notify/send-creation-notification [post]
func (c *notificationApiController) sendCreation(ctx *fiber.Ctx) error {
	return c.sendRequestEvent(ctx, models.NotificationKindRequestCreation)
}

// @Summary Уведомление о согласовании заявки
// @Tags Уведомления
// @Description Уведомление о согласовании заявки, отправляется сотруднику и согласующему
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notifyapimodels.RequestNotificationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /notify/send-approval-notification [post]
func (c *notificationApiController) sendApproval(ctx *fiber.Ctx) error {
	return c.sendRequestEvent(ctx, models.NotificationKindApproval)
}

// @Summary Уведомление об отклонении заявки
// @Tags Уведомления
// @Description Уведомление об отклонении заявки, отправляется сотруднику и согласующему
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notifyapimodels.RequestNotificationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /notify/send-rejection-notification [post]
func (c *notificationApiController) sendRejection(ctx *fiber.Ctx) error {
	return c.sendRequestEvent(ctx, models.NotificationKindRejection)
}

func (c *notificationApiController) sendRequestEvent(ctx *fiber.Ctx, kind models.NotificationKind) error {
	var payload notifyapimodels.RequestNotificationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notificationhandler.Instance.SendRequestEvent(kind, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("уведомления отправлены"))
}

// @Summary Журнал уведомлений
// @Tags Уведомления
// @Description Журнал отправленных уведомлений
// @Success 200 {object} apimodels.Response{data=[]notifyapimodels.NotificationView}
// @Failure 500 {object} apimodels.Response
// @router /notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	list, err := notificationhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
