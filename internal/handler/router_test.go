//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"parking-facility/internal/domain/payment"
	"parking-facility/internal/domain/pricing"
	"parking-facility/internal/domain/spot"
	"parking-facility/internal/facility"
	"parking-facility/internal/handler"
	"parking-facility/internal/handler/api"
	resdto "parking-facility/internal/handler/dto/response"
	"parking-facility/internal/lot"
	"parking-facility/internal/pkg/clock"
	"parking-facility/internal/pkg/config"
	"parking-facility/internal/usecase/commands"
	"parking-facility/internal/usecase/queries"
	"parking-facility/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RouterTestSuite wires the real engine end to end: no mocks, a one-floor
// test layout, and the full middleware chain.
type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	clk    *clock.MockClock
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	s.clk = clock.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	policy, err := pricing.NewHourlyPolicy(map[spot.Category]int64{
		spot.CategoryCompact:    cfg.Pricing.CompactRateCents,
		spot.CategoryRegular:    cfg.Pricing.RegularRateCents,
		spot.CategoryLarge:      cfg.Pricing.LargeRateCents,
		spot.CategoryAccessible: cfg.Pricing.AccessibleRateCents,
	}, cfg.Pricing.DiscountAfterHours, cfg.Pricing.DiscountPercent)
	s.Require().NoError(err)

	counts := map[spot.Category]int{
		spot.CategoryCompact:    cfg.Facility.CompactPerFloor,
		spot.CategoryRegular:    cfg.Facility.RegularPerFloor,
		spot.CategoryLarge:      cfg.Facility.LargePerFloor,
		spot.CategoryAccessible: cfg.Facility.AccessiblePerFloor,
	}
	floors := make([]*lot.Floor, 0, cfg.Facility.Floors)
	for number := 1; number <= cfg.Facility.Floors; number++ {
		floor, err := lot.NewFloor(number, counts)
		s.Require().NoError(err)
		floors = append(floors, floor)
	}

	promRegistry := prometheus.NewRegistry()
	fac, err := facility.New(floors, policy, payment.NewValidatorRegistry(), s.clk, facility.NewMetrics(promRegistry))
	s.Require().NoError(err)

	parkingHandler := api.NewParkingHandler(
		commands.NewParkingCommands(fac),
		queries.NewParkingQueries(fac),
	)

	s.router = gin.New()
	handler.NewRouter(s.router, cfg, parkingHandler, promRegistry)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealthCheck() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil)

	var body map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("ok", body["status"])
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestEntryExitRoundTrip() {
	entryBody := map[string]any{"plate": "XYZ-789", "vehicle_kind": "car"}
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/parking/entry", entryBody)

	var issued resdto.TicketResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &issued)
	s.NotEmpty(issued.ID)
	s.Equal("regular", issued.SpotCategory)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/parking/tickets", nil)
	var active []resdto.TicketResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &active)
	require.Len(s.T(), active, 1)

	s.clk.Add(2 * time.Hour)

	exitBody := map[string]any{
		"ticket_id": issued.ID,
		"payment":   map[string]any{"method": "cash", "amount_cents": 1000},
	}
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/parking/exit", exitBody)

	var receipt resdto.ReceiptResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &receipt)
	s.Equal(issued.ID, receipt.TicketID)
	s.Equal(int64(1000), receipt.FeeCents)
	s.Equal(int64(2), receipt.Hours)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/parking/availability", nil)
	var availability resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &availability)
	s.Equal(2, availability.Availability["regular"])
}

func (s *RouterTestSuite) TestStatusReportsFloorsAndAvailability() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/parking/status", nil)

	var status resdto.StatusResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &status)
	s.Equal(1, status.Floors)
	s.Equal(3, status.Availability["compact"])
	s.Empty(status.ActiveTickets)
}
