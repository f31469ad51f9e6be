package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"request-mesh/config"
	_ "request-mesh/docs"
	"request-mesh/fiberlog"
	"request-mesh/initializers"
	gatewayhandler "request-mesh/lib/gateway"
	"request-mesh/middleware"
)

func main() {
	initializers.InitGateway()

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        config.Conf.Gateway.RateLimitMax,
		Expiration: time.Duration(config.Conf.Gateway.RateLimitWindowMin) * time.Minute,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Conf.Gateway.FrontendOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("API Gateway is running.")
	})

	// вход и обратный вызов OAuth идут без токена
	app.All("/auth/*", gatewayhandler.Forward(config.Conf.Gateway.AuthServiceURL))

	// журнал уведомлений открыт, остальные маршруты за проверкой токена
	app.Get("/notifications", gatewayhandler.Forward(config.Conf.Gateway.NotifyServiceURL))
	app.All("/requests/*", middleware.AuthorizationRequired(), gatewayhandler.Forward(config.Conf.Gateway.RequestServiceURL))
	app.All("/notify/*", middleware.AuthorizationRequired(), gatewayhandler.Forward(config.Conf.Gateway.NotifyServiceURL))

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.Gateway.ListenAddr, config.Conf.Gateway.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
