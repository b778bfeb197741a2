package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service/fare"
)

type QuoteHandler struct {
	quotes *service.QuoteService
	calc   *fare.Calculator
}

func NewQuoteHandler(quotes *service.QuoteService, calc *fare.Calculator) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, calc: calc}
}

type quoteQuery struct {
	TripType      string `form:"tripType" binding:"required"`
	SourceID      int64  `form:"sourceId"`
	DestinationID int64  `form:"destinationId"`
	JourneyDays   int    `form:"days"`
}

// List returns the candidate offers for a trip, cheapest first. Zero
// offers is a valid answer: nothing is configured for the route.
func (h *QuoteHandler) List(c *gin.Context) {
	var q quoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := service.QuoteRequest{
		TripType:      domain.ParseTripType(q.TripType),
		SourceID:      q.SourceID,
		DestinationID: q.DestinationID,
		JourneyDays:   q.JourneyDays,
	}

	offers, err := h.quotes.Quote(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTripType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown trip type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute quotes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

type estimateRequest struct {
	FromCity  string  `json:"from_city" binding:"required"`
	ToCity    string  `json:"to_city"`
	RatePerKm float64 `json:"rate_per_km" binding:"required"`
	TripType  string  `json:"trip_type" binding:"required"`

	// Round-trip terms; all three present selects the configured
	// formula, otherwise the legacy fallback applies.
	DailyKmLimit          *int     `json:"daily_km_limit"`
	DriverAllowancePerDay *float64 `json:"driver_allowance_per_day"`
	Days                  *int     `json:"days"`
}

// Estimate is the generic per-km calculator, kept alongside the package
// flow for rate-card style estimates where no fixed package exists.
func (h *QuoteHandler) Estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cfg *fare.RoundTripConfig
	if req.DailyKmLimit != nil && req.DriverAllowancePerDay != nil && req.Days != nil {
		cfg = &fare.RoundTripConfig{
			DailyKmLimit:          *req.DailyKmLimit,
			DriverAllowancePerDay: *req.DriverAllowancePerDay,
			Days:                  *req.Days,
		}
	}

	quote := h.calc.Compute(req.FromCity, req.ToCity, req.RatePerKm, domain.ParseTripType(req.TripType), cfg)
	c.JSON(http.StatusOK, quote)
}
