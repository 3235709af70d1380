package controller

import (
	"strings"
	"time"

	"jewelry_backend/internals/features/analytics/dto"
	"jewelry_backend/internals/features/analytics/service"
	helper "jewelry_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
	Log     *zap.Logger
}

func NewAnalyticsController(svc *service.AnalyticsService, log *zap.Logger) *AnalyticsController {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyticsController{Service: svc, Log: log.Named("analytics")}
}

// GET /api/analytics/dashboard?period=7d|30d|90d|1y
func (ctl *AnalyticsController) Dashboard(c *fiber.Ctx) error {
	period := strings.ToLower(strings.TrimSpace(c.Query("period", dto.DefaultPeriod)))
	window, ok := dto.ParsePeriod(period)
	if !ok {
		return helper.BadRequest("Period must be one of: 7d, 30d, 90d, 1y")
	}

	now := time.Now().UTC()
	report, err := ctl.Service.Dashboard(c.UserContext(), period, now.Add(-window), now)
	if err != nil {
		return helper.ServerError("Failed to fetch analytics", err)
	}
	return helper.JsonOK(c, "Analytics fetched", report)
}

// GET /api/analytics/realtime
func (ctl *AnalyticsController) Realtime(c *fiber.Ctx) error {
	report, err := ctl.Service.Realtime(c.UserContext(), time.Now().UTC())
	if err != nil {
		return helper.ServerError("Failed to fetch realtime analytics", err)
	}
	return helper.JsonOK(c, "Realtime analytics fetched", report)
}

func bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	return helper.ValidateStruct(req)
}

// POST /api/analytics/sessions
func (ctl *AnalyticsController) TrackSession(c *fiber.Ctx) error {
	var req dto.SessionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	s, err := ctl.Service.RecordSession(c.UserContext(), &req)
	if err != nil {
		return helper.ServerError("Failed to record session", err)
	}
	return helper.JsonCreated(c, "Session recorded", fiber.Map{"id": s.ID})
}

// POST /api/analytics/pageviews
func (ctl *AnalyticsController) TrackPageView(c *fiber.Ctx) error {
	var req dto.PageViewRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	v, err := ctl.Service.RecordPageView(c.UserContext(), &req)
	if err != nil {
		return helper.ServerError("Failed to record page view", err)
	}
	return helper.JsonCreated(c, "Page view recorded", fiber.Map{"id": v.ID})
}

// POST /api/analytics/events
func (ctl *AnalyticsController) TrackEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	e, err := ctl.Service.RecordEvent(c.UserContext(), &req)
	if err != nil {
		return helper.ServerError("Failed to record event", err)
	}
	ctl.Log.Debug("event recorded", zap.String("name", e.Name), zap.String("session", e.SessionKey))
	return helper.JsonCreated(c, "Event recorded", fiber.Map{"id": e.ID})
}
