package gatewayhandler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	log "github.com/sirupsen/logrus"
	apimodels "request-mesh/models/api"
)

// Forward проксирует запрос в целевой сервис без изменения метода, пути,
// параметров и тела. Повторных попыток нет, недоступный сервис дает 500.
func Forward(target string) fiber.Handler {
	target = strings.TrimSuffix(target, "/")
	return func(ctx *fiber.Ctx) error {
		uri := target + ctx.OriginalURL()
		if err := proxy.Do(ctx, uri); err != nil {
			log.
				WithField("upstream", uri).
				WithError(err).
				Error("сервис недоступен")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("сервис временно недоступен"))
		}
		// ответ сервиса отдается как есть, без серверного заголовка шлюза
		ctx.Response().Header.Del(fiber.HeaderServer)
		return nil
	}
}
