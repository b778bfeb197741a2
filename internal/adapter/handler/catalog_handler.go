package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service"
)

// CatalogHandler exposes locations and cabs: public listings for the
// storefront forms plus the admin CRUD surface.
type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.svc.ListLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch locations"})
		return
	}
	c.JSON(http.StatusOK, locations)
}

type locationRequest struct {
	CityName  string `json:"city_name" binding:"required"`
	State     string `json:"state"`
	IsAirport bool   `json:"is_airport"`
}

func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := h.svc.CreateLocation(c.Request.Context(), postgres.CreateLocationParams{
		CityName:  req.CityName,
		State:     req.State,
		IsAirport: req.IsAirport,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, loc)
}

func (h *CatalogHandler) UpdateLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := h.svc.UpdateLocation(c.Request.Context(), postgres.UpdateLocationParams{
		ID:        id,
		CityName:  req.CityName,
		State:     req.State,
		IsAirport: req.IsAirport,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (h *CatalogHandler) DeleteLocation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteLocation(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrLocationInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "location is used by packages and cannot be deleted"})
			return
		}
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListCabs(c *gin.Context) {
	cabs, err := h.svc.ListCabs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cabs"})
		return
	}
	c.JSON(http.StatusOK, cabs)
}

type cabRequest struct {
	Name               string   `json:"name" binding:"required"`
	Type               string   `json:"type" binding:"required"`
	CapacityPassengers int      `json:"capacity_passengers" binding:"required,min=1"`
	CapacityLuggage    int      `json:"capacity_luggage" binding:"min=0"`
	Features           []string `json:"features"`
	Description        string   `json:"description"`
}

func (h *CatalogHandler) CreateCab(c *gin.Context) {
	var req cabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cab, err := h.svc.CreateCab(c.Request.Context(), postgres.CreateCabParams{
		Name:               req.Name,
		Type:               domain.CabType(req.Type),
		CapacityPassengers: req.CapacityPassengers,
		CapacityLuggage:    req.CapacityLuggage,
		Features:           req.Features,
		Description:        req.Description,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cab)
}

func (h *CatalogHandler) UpdateCab(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req cabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cab, err := h.svc.UpdateCab(c.Request.Context(), postgres.UpdateCabParams{
		ID:                 id,
		Name:               req.Name,
		Type:               domain.CabType(req.Type),
		CapacityPassengers: req.CapacityPassengers,
		CapacityLuggage:    req.CapacityLuggage,
		Features:           req.Features,
		Description:        req.Description,
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, cab)
}

func (h *CatalogHandler) DeleteCab(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteCab(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the :id path segment, answering 400 itself on bad
// input.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrDuplicateName),
		errors.Is(err, domain.ErrDuplicateOffer):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidRate),
		errors.Is(err, domain.ErrInvalidKmLimit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
