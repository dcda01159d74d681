package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ammowing/lawncare-api/internal/config"
	"github.com/ammowing/lawncare-api/internal/repository"
	"github.com/ammowing/lawncare-api/internal/utils"
)

// AdminHandler serves the dashboard stats and the service-area check.
type AdminHandler struct {
	Cfg   config.Config
	Stats *repository.StatsRepo
}

func NewAdminHandler(cfg config.Config, stats *repository.StatsRepo) *AdminHandler {
	return &AdminHandler{Cfg: cfg, Stats: stats}
}

// DashboardStats returns the aggregate counters for the admin dashboard.
func (h *AdminHandler) DashboardStats(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	stats, err := h.Stats.Dashboard(ctx)
	if err != nil {
		return apiError(c, http.StatusInternalServerError, "could not compute stats")
	}
	return c.JSON(http.StatusOK, stats)
}

type serviceAreaRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CheckServiceArea reports whether a coordinate falls inside the configured
// service radius. GET takes lat/lng query params; POST takes a JSON body.
func (h *AdminHandler) CheckServiceArea(c echo.Context) error {
	var lat, lng float64

	if c.Request().Method == http.MethodPost {
		var req serviceAreaRequest
		if err := c.Bind(&req); err != nil {
			return apiError(c, http.StatusBadRequest, "invalid request body")
		}
		if req.Latitude == nil || req.Longitude == nil {
			return apiError(c, http.StatusBadRequest, "latitude and longitude are required")
		}
		lat, lng = *req.Latitude, *req.Longitude
	} else {
		var err error
		if lat, err = strconv.ParseFloat(c.QueryParam("latitude"), 64); err != nil {
			return apiError(c, http.StatusBadRequest, "latitude and longitude query parameters are required")
		}
		if lng, err = strconv.ParseFloat(c.QueryParam("longitude"), 64); err != nil {
			return apiError(c, http.StatusBadRequest, "latitude and longitude query parameters are required")
		}
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return apiError(c, http.StatusBadRequest, "coordinates out of range")
	}

	result := utils.CheckServiceArea(h.Cfg.ServiceAreaLat, h.Cfg.ServiceAreaLng, h.Cfg.ServiceAreaRadiusKM, lat, lng)
	return c.JSON(http.StatusOK, result)
}
