package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"jobs-board-backend/middleware"
	apimodels "jobs-board-backend/models/api"
)

type BaseAPIController struct{}

// GetID reads the positive integer :id route param
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (int, error) {
	raw := ctx.Params("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid id: %q", raw)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("request_id", middleware.GetRequestID(ctx)).
		WithField("user_id", middleware.GetUserID(ctx)).
		WithField("path", ctx.Path())
}

// SendError logs err and answers 500 with the fixed message, the cause never reaches the client
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}

// SendHMsg answers with a user facing message
func (c *BaseAPIController) SendHMsg(ctx *fiber.Ctx, status int, hMsg string) error {
	return ctx.Status(status).JSON(apimodels.NewError(hMsg))
}
