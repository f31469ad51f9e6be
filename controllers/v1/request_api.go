package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"request-mesh/controllers"
	attachmentshandler "request-mesh/lib/attachments"
	xlsexport "request-mesh/lib/export/xls"
	requesthandler "request-mesh/lib/requests"
	"request-mesh/middleware"
	"request-mesh/models"
	apimodels "request-mesh/models/api"
	requestapimodels "request-mesh/models/api/request"
)

type requestApiController struct {
	controllers.BaseAPIController
}

func InitRequestApiRouters(app *fiber.App) {
	controller := requestApiController{}
	app.Route("requests", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Post("create", controller.create)
		router.Get("user-requests", controller.userRequests)
		router.Get("pending-requests", middleware.ApproverRoleRequired(), controller.pendingRequests)
		router.Post("approve-request", middleware.ApproverRoleRequired(), controller.approve)
		router.Post("reject-request", middleware.ApproverRoleRequired(), controller.reject)
		router.Get("export", middleware.ApproverRoleRequired(), controller.export)
		router.Get("attachment/:id", controller.downloadAttachment)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Post("attachment", controller.uploadAttachment)
			idRoute.Get("attachments", controller.listAttachments)
		})
	})
}

// @Summary Создание заявки
// @Tags Заявки
// @Description Создание заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestCreateData	true	"request body"
// @Success 201 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /requests/create [post]
func (c *requestApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, notifyErr, err := requesthandler.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	resp := apimodels.NewResponse(item)
	if notifyErr != nil {
		// заявка создана, неудачная рассылка не откатывает запись
		resp.Message = "заявка создана, но уведомления не отправлены"
	}
	return ctx.Status(fiber.StatusCreated).JSON(resp)
}

// @Summary Список заявок на рассмотрении
// @Tags Заявки
// @Description Список заявок на рассмотрении, доступен согласующему
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /requests/pending-requests [get]
func (c *requestApiController) pendingRequests(ctx *fiber.Ctx) error {
	list, err := requesthandler.Instance.ListPending()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Заявки пользователя
// @Tags Заявки
// @Description Заявки пользователя, без параметра email берется почта из токена
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   email				query		string	false	"почта сотрудника"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /requests/user-requests [get]
func (c *requestApiController) userRequests(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		email = middleware.GetUserEmail(ctx)
	}
	list, err := requesthandler.Instance.ListForUser(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявок пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Согласование заявки
// @Tags Заявки
// @Description Согласование заявки, доступно согласующему
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestDecideData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /requests/approve-request [post]
func (c *requestApiController) approve(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.RequestStatusApproved, "Ошибка согласования заявки")
}

// @Summary Отклонение заявки
// @Tags Заявки
// @Description Отклонение заявки, доступно согласующему
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestDecideData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /requests/reject-request [post]
func (c *requestApiController) reject(ctx *fiber.Ctx) error {
	return c.decide(ctx, models.RequestStatusRejected, "Ошибка отклонения заявки")
}

func (c *requestApiController) decide(ctx *fiber.Ctx, newStatus models.RequestStatus, errMsg string) error {
	var payload requestapimodels.RequestDecideData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, notifyErr, err := requesthandler.Instance.Decide(ctx.UserContext(), payload.RequestID, newStatus)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	resp := apimodels.NewResponse(item)
	if notifyErr != nil {
		resp.Message = "решение сохранено, но уведомления не отправлены"
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Выгрузка заявок в xlsx
// @Tags Заявки
// @Description Выгрузка заявок на рассмотрении в xlsx, доступна согласующему
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file "xlsx файл"
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /requests/export [get]
func (c *requestApiController) export(ctx *fiber.Ctx) error {
	list, err := requesthandler.Instance.ListPending()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	buf, err := xlsexport.Instance.ExportRequestList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования файла")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="requests.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).SendStream(buf)
}

// @Summary Загрузка файла заявки
// @Tags Заявки
// @Description Загрузка файла заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ид заявки"
// @Param   file				formData	file	true	"файл"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /requests/{id}/attachment [post]
func (c *requestApiController) uploadAttachment(ctx *fiber.Ctx) error {
	requestID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан файл"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения файла")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка чтения файла")
	}
	id, err := attachmentshandler.Instance.Upload(ctx.UserContext(), requestID, fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType), body)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки файла")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список файлов заявки
// @Tags Заявки
// @Description Список файлов заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ид заявки"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.AttachmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /requests/{id}/attachments [get]
func (c *requestApiController) listAttachments(ctx *fiber.Ctx) error {
	requestID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := attachmentshandler.Instance.List(requestID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка файлов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Скачивание файла заявки
// @Tags Заявки
// @Description Скачивание файла заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"ид файла"
// @Success 200 {file} file "файл"
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /requests/attachment/{id} [get]
func (c *requestApiController) downloadAttachment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := attachmentshandler.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания файла")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.FileName+`"`)
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	return ctx.Status(fiber.StatusOK).Send(body)
}
