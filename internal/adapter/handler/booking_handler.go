package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service"
)

type BookingHandler struct {
	svc *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type CreateBookingRequest struct {
	TripType          string  `json:"trip_type" binding:"required"`
	PickupLocationID  *int64  `json:"pickup_location_id"`
	DropLocationID    *int64  `json:"drop_location_id"`
	PickupDate        string  `json:"pickup_date"`
	PickupTime        string  `json:"pickup_time"`
	JourneyDays       *int    `json:"journey_days"`
	CustomerName      string  `json:"customer_name" binding:"required"`
	Mobile            string  `json:"mobile" binding:"required"`
	Email             string  `json:"email" binding:"omitempty,email"`
	AlternativeNumber string  `json:"alternative_number"`
	FlightNumber      string  `json:"flight_number"`
	SpecialRequest    string  `json:"special_request"`
	CabID             *int64  `json:"cab_id"`
	OneWayPackageID   *int64  `json:"one_way_package_id"`
	LocalPackageID    *int64  `json:"local_package_id"`
	EstimatedPrice    *int64  `json:"estimated_price"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var pickupDate *time.Time
	if req.PickupDate != "" {
		t, err := time.Parse("2006-01-02", req.PickupDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pickup_date must be YYYY-MM-DD"})
			return
		}
		pickupDate = &t
	}

	booking, err := h.svc.Create(c.Request.Context(), postgres.CreateBookingParams{
		TripType:          domain.ParseTripType(req.TripType),
		PickupLocationID:  req.PickupLocationID,
		DropLocationID:    req.DropLocationID,
		PickupDate:        pickupDate,
		PickupTime:        req.PickupTime,
		JourneyDays:       req.JourneyDays,
		CustomerName:      req.CustomerName,
		Mobile:            req.Mobile,
		Email:             req.Email,
		AlternativeNumber: req.AlternativeNumber,
		FlightNumber:      req.FlightNumber,
		SpecialRequest:    req.SpecialRequest,
		CabID:             req.CabID,
		OneWayPackageID:   req.OneWayPackageID,
		LocalPackageID:    req.LocalPackageID,
		EstimatedPrice:    req.EstimatedPrice,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.svc.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
