package controller

import (
	"errors"

	"noc-monitor/internal/dto"
	"noc-monitor/internal/entity"
	"noc-monitor/internal/pkg/serverutils"
	"noc-monitor/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILogController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	SendLogs(ctx *fiber.Ctx) error
}

type logController struct {
	logService    service.ILogService
	sendEmailLogs service.ISendEmailLogs
}

func NewLogController(logService service.ILogService, sendEmailLogs service.ISendEmailLogs) ILogController {
	return &logController{
		logService:    logService,
		sendEmailLogs: sendEmailLogs,
	}
}

func (c *logController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/logs")
	h.Get("/:severity", c.GetLogs)
	h.Post("/email", c.SendLogs)
}

func (c *logController) GetLogs(ctx *fiber.Ctx) error {
	res, err := c.logService.GetLogs(ctx.Context(), ctx.Params("severity"))
	if err != nil {
		if errors.Is(err, entity.ErrUnknownSeverity) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", res))
}

func (c *logController) SendLogs(ctx *fiber.Ctx) error {
	var req dto.EmailLogsRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	sent := c.sendEmailLogs.Execute(ctx.Context(), req.Recipients)
	res := dto.EmailLogsResponse{Sent: sent}
	if !sent {
		return ctx.Status(fiber.StatusBadGateway).JSON(&serverutils.Response{
			Code:    fiber.StatusBadGateway,
			Message: "Failed to send logs email",
			Data:    res,
		})
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs email sent", res))
}
