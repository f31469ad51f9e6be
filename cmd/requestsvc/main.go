package main

import (
	"context"
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
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitRequestService(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())
	app.Use(fiberlog.New(*initializers.LoggerConfig))

	app.Get("/", healthCheck)
	apiv1.InitRequestApiRouters(app)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.RequestService.ListenAddr, config.Conf.RequestService.Port)); err != nil {
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
