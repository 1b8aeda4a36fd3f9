package api

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/carelink/vitals/vitals"
)

type Handler struct {
	vitals vitals.Service
	logger *zap.SugaredLogger
}

type Params struct {
	fx.In

	Vitals vitals.Service
	Logger *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		vitals: p.Vitals,
		logger: p.Logger,
	}
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	g := e.Group("/v1/vitals")
	g.POST("", h.IngestVitals)
	g.GET("/summary", h.GetBaselineSummary)
	g.GET("/insights", h.GetInsights)
}
