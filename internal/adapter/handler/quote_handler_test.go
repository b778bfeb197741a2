package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service/fare"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service/geo"
)

func estimateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	matrix := geo.NewMatrix(zap.NewNop())
	calc := fare.NewCalculator(geo.NewChainResolver(matrix, geo.NewEstimator()))
	h := NewQuoteHandler(nil, calc)

	r := gin.New()
	r.POST("/api/v1/fare/estimate", h.Estimate)
	return r
}

func postEstimate(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, domain.Quote) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fare/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var quote domain.Quote
	if w.Code == http.StatusOK {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	}
	return w, quote
}

func TestQuoteHandler_Estimate_OneWay(t *testing.T) {
	r := estimateRouter()

	w, quote := postEstimate(t, r, `{
		"from_city": "Mumbai", "to_city": "Surat",
		"rate_per_km": 12, "trip_type": "oneway"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	// Road distance from the matrix, not the great-circle figure.
	assert.Equal(t, 280.0, quote.DistanceKm)
	assert.Equal(t, 500+280*12.0, quote.TotalPrice)
}

func TestQuoteHandler_Estimate_LegacyRoundTrip(t *testing.T) {
	r := estimateRouter()

	// No round-trip terms supplied: base fare plus both legs.
	w, quote := postEstimate(t, r, `{
		"from_city": "Mumbai", "to_city": "Surat",
		"rate_per_km": 10, "trip_type": "round-trip"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 500+2800+2800.0, quote.TotalPrice)
	assert.Equal(t, 560.0, quote.DistanceKm)
	assert.Equal(t, 500.0, quote.Breakdown.BaseFare)
	assert.Equal(t, 2800.0, quote.Breakdown.ReturnFare)
}

func TestQuoteHandler_Estimate_ConfiguredRoundTrip(t *testing.T) {
	r := estimateRouter()

	w, quote := postEstimate(t, r, `{
		"from_city": "Mumbai", "to_city": "Surat",
		"rate_per_km": 15, "trip_type": "roundtrip",
		"daily_km_limit": 300, "driver_allowance_per_day": 400, "days": 2
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	// 600 km daily minimum beats the 560 km actual; no base fare in
	// this model.
	assert.Equal(t, 600.0, quote.DistanceKm)
	assert.Equal(t, 9800.0, quote.TotalPrice)
	assert.Zero(t, quote.Breakdown.BaseFare)
	assert.Equal(t, 800.0, quote.Breakdown.DriverAllowance)
}

func TestQuoteHandler_Estimate_MissingFields(t *testing.T) {
	r := estimateRouter()

	w, _ := postEstimate(t, r, `{"from_city": "Mumbai"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
