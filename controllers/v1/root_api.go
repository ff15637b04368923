package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"jobs-board-backend/controllers"
	"jobs-board-backend/db"
	apimodels "jobs-board-backend/models/api"
)

type rootApiController struct {
	controllers.BaseAPIController
	ping func() error
}

func InitRootApiRouters(app *fiber.App) {
	controller := rootApiController{ping: db.PingDB}
	app.Get("/", controller.hello)
	app.Get("health", controller.health)
}

func (c *rootApiController) hello(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"hello": "world"})
}

// @Summary Health check
// @Tags System
// @Success 200 {object} apimodels.StatusResponse
// @Failure 503 {object} apimodels.StatusResponse
// @router /health [get]
func (c *rootApiController) health(ctx *fiber.Ctx) error {
	if err := c.ping(); err != nil {
		c.GetLogger(ctx).WithError(err).Error("database ping failed")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.StatusResponse{Status: "fail"})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.StatusResponse{Status: "ok"})
}
