package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"jobs-board-backend/config"
	apiv1 "jobs-board-backend/controllers/v1"
	_ "jobs-board-backend/docs"
	"jobs-board-backend/fiberlog"
	"jobs-board-backend/initializers"
	"jobs-board-backend/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		AppName: "jobs-board-backend",
	})
	app.Use(fiberRecover.New())
	app.Use(middleware.RequestID())

	if _, err := os.Stat(config.Conf.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "swagger",
			FilePath: config.Conf.App.SwaggerFile,
		}))
	} else {
		log.WithField("file", config.Conf.App.SwaggerFile).Warn("swagger file not found, /swagger disabled")
	}

	loggerConfig := *initializers.LoggerConfig
	loggerConfig.Skip = []string{"/health"}
	app.Use(fiberlog.New(loggerConfig))
	app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyUrl))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.TrimSpace(config.Conf.App.AllowOrigins),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, PUT, OPTIONS",
	}))
	app.Use(middleware.CurrentUser(config.Conf.DefaultUser.ID))

	apiv1.InitRootApiRouters(app)
	apiv1.InitJobsApiRouters(app)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
