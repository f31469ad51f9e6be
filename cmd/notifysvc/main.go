package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"request-mesh/config"
	apiv1 "request-mesh/controllers/v1"
	"request-mesh/db"
	"request-mesh/fiberlog"
	"request-mesh/initializers"
)

func main() {
	initializers.InitNotifyService()

	app := fiber.New(fiber.Config{})
	app.Use(fiberRecover.New())
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	app.Get("/", healthCheck)
	apiv1.InitNotificationApiRouters(app)

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
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.NotifyService.ListenAddr, config.Conf.NotifyService.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

func healthCheck(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		return ctx.SendStatus(fiber.StatusServiceUnavailable)
	}
	return ctx.SendString("OK")
}
