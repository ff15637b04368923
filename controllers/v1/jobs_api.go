package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"jobs-board-backend/controllers"
	jobshandler "jobs-board-backend/lib/jobs"
	"jobs-board-backend/middleware"
	jobsapimodels "jobs-board-backend/models/api/jobs"
)

type jobsApiController struct {
	controllers.BaseAPIController
}

func InitJobsApiRouters(app *fiber.App) {
	controller := jobsApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("favorites", controller.favorites)
		router.Get("favorites/export", controller.exportFavorites)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("favorite", controller.favorite)
		})
	})
}

// @Summary Job list
// @Tags Jobs
// @Description Page of jobs from the job listings api, or recommendations by job title when search is set
// @Param   search	query	string	false	"job title, at least 2 characters"
// @Param   page	query	int		false	"zero based page"
// @Success 200 {object} jobsapimodels.JobListResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /jobs [get]
func (c *jobsApiController) list(ctx *fiber.Ctx) error {
	filter := jobsapimodels.JobFilter{
		Search: ctx.Query("search"),
		Page:   jobsapimodels.ParsePage(ctx.Query("page")),
	}
	resp, hMsg, err := jobshandler.Instance.List(ctx.UserContext(), middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("search", filter.Search), err, "Error fetching jobs")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, fiber.StatusBadRequest, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// @Summary Job by id
// @Tags Jobs
// @Param   id	path	int	true	"job ID"
// @Success 200 {object} jobsapimodels.Job
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /jobs/{id} [get]
func (c *jobsApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendHMsg(ctx, fiber.StatusBadRequest, err.Error())
	}
	job, hMsg, err := jobshandler.Instance.Get(ctx.UserContext(), middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("job_id", id), err, "Error fetching job")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, fiber.StatusNotFound, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(job)
}

// @Summary Toggle favorite
// @Tags Jobs
// @Description Adds the job to favorites, or removes it when it is already there
// @Param   id	path	int	true	"job ID"
// @Success 200 {object} jobsapimodels.FavoriteResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /jobs/{id}/favorite [put]
func (c *jobsApiController) favorite(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendHMsg(ctx, fiber.StatusBadRequest, err.Error())
	}
	favorited, err := jobshandler.Instance.ToggleFavorite(ctx.UserContext(), middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("job_id", id), err, "Error favoriting job")
	}
	message := "Job unfavorited"
	if favorited {
		message = "Job favorited"
	}
	return ctx.Status(fiber.StatusOK).JSON(jobsapimodels.FavoriteResponse{
		Message:    message,
		IsFavorite: favorited,
	})
}

// @Summary Favorite jobs
// @Tags Jobs
// @Success 200 {array} jobsapimodels.Job
// @Failure 500 {object} apimodels.ErrorResponse
// @router /jobs/favorites [get]
func (c *jobsApiController) favorites(ctx *fiber.Ctx) error {
	list, err := jobshandler.Instance.Favorites(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching favorite jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Favorite jobs export
// @Tags Jobs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} apimodels.ErrorResponse
// @router /jobs/favorites/export [get]
func (c *jobsApiController) exportFavorites(ctx *fiber.Ctx) error {
	buf, err := jobshandler.Instance.ExportFavorites(ctx.UserContext(), middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exporting favorite jobs")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Attachment("favorite_jobs.xlsx")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
