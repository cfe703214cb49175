package controller

import (
	"noc-monitor/internal/dto"
	"noc-monitor/internal/pkg/serverutils"
	"noc-monitor/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMonitorController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	RunCheck(ctx *fiber.Ctx) error
}

type monitorController struct {
	monitorService service.IMonitorService
	checkService   service.ICheckService
}

func NewMonitorController(monitorService service.IMonitorService, checkService service.ICheckService) IMonitorController {
	return &monitorController{
		monitorService: monitorService,
		checkService:   checkService,
	}
}

func (c *monitorController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Post("/checks", c.RunCheck)
}

func (c *monitorController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{Status: "ok", MonitorURL: c.monitorService.URL()})
}

// RunCheck checks the body URL, or the monitored URL when none is given.
func (c *monitorController) RunCheck(ctx *fiber.Ctx) error {
	var req dto.CheckRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return err
	}

	var ok bool
	url := req.URL
	if url == "" {
		url = c.monitorService.URL()
		ok = c.monitorService.RunOnce(ctx.Context())
	} else {
		ok = c.checkService.Execute(ctx.Context(), url)
	}

	return ctx.JSON(serverutils.SuccessResponse("Check completed", dto.CheckResponse{URL: url, OK: ok}))
}
