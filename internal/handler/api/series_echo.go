package api

import (
	"MacroPulse/internal/domain/models"
	"MacroPulse/internal/service/crisis"
	"MacroPulse/internal/service/generator"
	"MacroPulse/internal/service/ratelimit"
	"MacroPulse/internal/usecase"
	xhttp "MacroPulse/pkg/http"
	applogger "MacroPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SeriesHandler exposes the pipeline over HTTP.
type SeriesHandler struct {
	svc *usecase.SeriesService
	rl  *ratelimit.Limiter
	l   *applogger.Logger
}

func NewSeriesHandler(svc *usecase.SeriesService, l *applogger.Logger) *SeriesHandler {
	return &SeriesHandler{svc: svc, rl: ratelimit.New(), l: l}
}

func (h *SeriesHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/series", h.Series)
	g.GET("/stats", h.Stats)
	g.GET("/signals", h.Signals)
	g.GET("/batch", h.Batch)
	g.POST("/batch", h.Batch)
	g.GET("/indicators", h.Indicators)
	g.GET("/crises", h.Crises)
}

// Series returns the transformed series with statistics.
func (h *SeriesHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, "series", 10, 5) {
		return rateLimited(c)
	}

	res, err := h.svc.GetSeries(c.Request().Context(), *req)
	if err != nil {
		h.l.Error("series usecase error", applogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Stats returns only the statistics for a series.
func (h *SeriesHandler) Stats(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, "stats", 10, 5) {
		return rateLimited(c)
	}

	res, err := h.svc.GetSeries(c.Request().Context(), *req)
	if err != nil {
		h.l.Error("stats usecase error", applogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res.Statistics)
}

// Signals returns the per-point composite signal series.
func (h *SeriesHandler) Signals(c echo.Context) error {
	req := &models.SignalsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, "signals", 5, 2) {
		return rateLimited(c)
	}

	res, err := h.svc.GetSignals(c.Request().Context(), *req)
	if err != nil {
		h.l.Error("signals usecase error", applogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, res, int64(len(res)))
}

// Batch fetches several series concurrently.
func (h *SeriesHandler) Batch(c echo.Context) error {
	req := &models.BatchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, "batch", 2, 1) {
		return rateLimited(c)
	}

	res, err := h.svc.GetBatch(c.Request().Context(), *req)
	if err != nil {
		h.l.Error("batch usecase error", applogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Indicators lists the known indicator descriptors.
func (h *SeriesHandler) Indicators(c echo.Context) error {
	catalog := generator.Catalog()
	return xhttp.ListResponse(c, catalog, int64(len(catalog)))
}

// Crises lists the annotated crisis windows.
func (h *SeriesHandler) Crises(c echo.Context) error {
	return xhttp.ListResponse(c, crisis.Windows, int64(len(crisis.Windows)))
}

func (h *SeriesHandler) allow(c echo.Context, endpoint string, capacity, refillPerSec float64) bool {
	return h.rl.Allow(c.RealIP()+":"+endpoint, capacity, refillPerSec)
}

func rateLimited(c echo.Context) error {
	return xhttp.DataResponse(c, 429, "rate limited")
}
