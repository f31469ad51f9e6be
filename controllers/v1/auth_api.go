package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"request-mesh/config"
	"request-mesh/controllers"
	authhandler "request-mesh/lib/auth"
	googleclient "request-mesh/lib/auth/google"
	"request-mesh/middleware"
	apimodels "request-mesh/models/api"
	authapimodels "request-mesh/models/api/auth"
)

const stateCookieName = "oauth_state"

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Get("google", controller.googleLogin)
		router.Get("google/callback", controller.googleCallback)
		router.Get("user", middleware.AuthorizationRequired(), controller.getUser)
		router.Post("user", middleware.AuthorizationRequired(), controller.createUser)
		router.Post("logout", middleware.AuthorizationRequired(), controller.logout)
	})
}

// @Summary Вход через Google
// @Tags Аутентификация
// @Description Переадресация на страницу входа Google
// @Success 307
// @router /auth/google [get]
func (c *authApiController) googleLogin(ctx *fiber.Ctx) error {
	state := uuid.NewString()
	ctx.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.Redirect(googleclient.Instance.GetLoginUri(state), fiber.StatusTemporaryRedirect)
}

// @Summary Завершение входа через Google
// @Tags Аутентификация
// @Description Обмен кода на токен, переадресация на фронт с токеном либо кодом ошибки
// @Param   code				query		string	true	"код авторизации"
// @Param   state				query		string	true	"состояние запроса"
// @Success 307
// @router /auth/google/callback [get]
func (c *authApiController) googleCallback(ctx *fiber.Ctx) error {
	frontend := config.Conf.Gateway.FrontendOrigin
	code := ctx.Query("code")
	state := ctx.Query("state")
	if code == "" || state == "" || state != ctx.Cookies(stateCookieName) {
		c.GetLogger(ctx).Warn("вход отклонен, неверные параметры обратного вызова")
		return ctx.Redirect(frontend+"?error=invalid_request", fiber.StatusTemporaryRedirect)
	}
	ctx.ClearCookie(stateCookieName)

	token, err := authhandler.Instance.HandleCallback(ctx.UserContext(), code)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("Ошибка входа через Google")
		return ctx.Redirect(frontend+"?error=auth_failed", fiber.StatusTemporaryRedirect)
	}
	return ctx.Redirect(frontend+"?token="+token, fiber.StatusTemporaryRedirect)
}

// @Summary Получение пользователя
// @Tags Аутентификация
// @Description Получение пользователя по почте, без параметра email берется почта из токена
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   email				query		string	false	"почта пользователя"
// @Success 200 {object} apimodels.Response{data=authapimodels.UserView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /auth/user [get]
func (c *authApiController) getUser(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		email = middleware.GetUserEmail(ctx)
	}
	item, err := authhandler.Instance.GetByEmail(email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Создание пользователя
// @Tags Аутентификация
// @Description Создание пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 authapimodels.UserCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /auth/user [post]
func (c *authApiController) createUser(ctx *fiber.Ctx) error {
	var payload authapimodels.UserCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := authhandler.Instance.CreateUser(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Выход из системы
// @Tags Аутентификация
// @Description Выход из системы с уведомлением на почту
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @router /auth/logout [post]
func (c *authApiController) logout(ctx *fiber.Ctx) error {
	authhandler.Instance.Logout(ctx.UserContext(), middleware.GetUserEmail(ctx), middleware.GetUserName(ctx))
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("выход выполнен"))
}
