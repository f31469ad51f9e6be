package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"request-mesh/config"
	apimodels "request-mesh/models/api"
)

// AuthorizationRequired - отсутствие заголовка дает 401, невалидный или
// просроченный токен дает 403
func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			if err == jwtware.ErrJWTMissingOrMalformed {
				return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
			}
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("недействительный токен"))
		},
	})
}
