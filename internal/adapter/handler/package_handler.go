package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service"
)

// PackageHandler is the admin CRUD surface for the three offer shapes:
// one-way packages, local packages, and round-trip rates.
type PackageHandler struct {
	svc *service.CatalogService
}

func NewPackageHandler(svc *service.CatalogService) *PackageHandler {
	return &PackageHandler{svc: svc}
}

type oneWayPackageRequest struct {
	SourceID      int64    `json:"source_id" binding:"required"`
	DestinationID int64    `json:"destination_id" binding:"required"`
	CabID         int64    `json:"cab_id" binding:"required"`
	PriceFixed    int64    `json:"price_fixed" binding:"required"`
	DistanceKm    *float64 `json:"distance_km"`
	Hours         *int     `json:"estimated_hours"`
	Minutes       *int     `json:"estimated_minutes"`
}

func (r oneWayPackageRequest) toInput() service.OneWayPackageInput {
	return service.OneWayPackageInput{
		SourceID:      r.SourceID,
		DestinationID: r.DestinationID,
		CabID:         r.CabID,
		PriceFixed:    r.PriceFixed,
		DistanceKm:    r.DistanceKm,
		Hours:         r.Hours,
		Minutes:       r.Minutes,
	}
}

func (h *PackageHandler) ListOneWay(c *gin.Context) {
	pkgs, err := h.svc.ListOneWayPackages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch packages"})
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

func (h *PackageHandler) CreateOneWay(c *gin.Context) {
	var req oneWayPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.svc.CreateOneWayPackage(c.Request.Context(), req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) UpdateOneWay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req oneWayPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.svc.UpdateOneWayPackage(c.Request.Context(), id, req.toInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) DeleteOneWay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteOneWayPackage(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type localPackageRequest struct {
	CabID         int64   `json:"cab_id" binding:"required"`
	HoursIncluded int     `json:"hours_included" binding:"required,min=1"`
	KmIncluded    int     `json:"km_included" binding:"required,min=1"`
	PriceFixed    int64   `json:"price_fixed" binding:"required"`
	ExtraKmRate   float64 `json:"extra_km_rate"`
	ExtraHourRate float64 `json:"extra_hour_rate"`
}

func (h *PackageHandler) ListLocal(c *gin.Context) {
	pkgs, err := h.svc.ListLocalPackages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch packages"})
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

func (h *PackageHandler) CreateLocal(c *gin.Context) {
	var req localPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.svc.CreateLocalPackage(c.Request.Context(), postgres.CreateLocalPackageParams{
		CabID:         req.CabID,
		HoursIncluded: req.HoursIncluded,
		KmIncluded:    req.KmIncluded,
		PriceFixed:    req.PriceFixed,
		ExtraKmRate:   req.ExtraKmRate,
		ExtraHourRate: req.ExtraHourRate,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

func (h *PackageHandler) UpdateLocal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req localPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.svc.UpdateLocalPackage(c.Request.Context(), postgres.UpdateLocalPackageParams{
		ID:            id,
		HoursIncluded: req.HoursIncluded,
		KmIncluded:    req.KmIncluded,
		PriceFixed:    req.PriceFixed,
		ExtraKmRate:   req.ExtraKmRate,
		ExtraHourRate: req.ExtraHourRate,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func (h *PackageHandler) DeleteLocal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteLocalPackage(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type roundTripRateRequest struct {
	CabID                 int64   `json:"cab_id" binding:"required"`
	RatePerKm             float64 `json:"rate_per_km" binding:"required"`
	DailyKmLimit          int     `json:"daily_km_limit"`
	DriverAllowancePerDay float64 `json:"driver_allowance_per_day"`

	// Historical alias for daily_km_limit kept for the old admin
	// console payloads.
	MinimumKm int `json:"minimum_km"`
}

func (r roundTripRateRequest) kmLimit() int {
	if r.DailyKmLimit > 0 {
		return r.DailyKmLimit
	}
	return r.MinimumKm
}

func (h *PackageHandler) ListRoundTripRates(c *gin.Context) {
	rates, err := h.svc.ListRoundTripRates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rates"})
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (h *PackageHandler) CreateRoundTripRate(c *gin.Context) {
	var req roundTripRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := h.svc.CreateRoundTripRate(c.Request.Context(), postgres.CreateRoundTripRateParams{
		CabID:                 req.CabID,
		RatePerKm:             req.RatePerKm,
		DailyKmLimit:          req.kmLimit(),
		DriverAllowancePerDay: req.DriverAllowancePerDay,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rate)
}

func (h *PackageHandler) UpdateRoundTripRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req roundTripRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := h.svc.UpdateRoundTripRate(c.Request.Context(), postgres.UpdateRoundTripRateParams{
		ID:                    id,
		RatePerKm:             req.RatePerKm,
		DailyKmLimit:          req.kmLimit(),
		DriverAllowancePerDay: req.DriverAllowancePerDay,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

func (h *PackageHandler) DeleteRoundTripRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteRoundTripRate(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
