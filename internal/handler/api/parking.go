package api

import (
	"errors"
	"net/http"

	reqdto "parking-facility/internal/handler/dto/request"
	resdto "parking-facility/internal/handler/dto/response"
	"parking-facility/internal/handler/httperr"
	"parking-facility/internal/usecase/commands"
	"parking-facility/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ParkingHandler struct {
	parkingCommands commands.ParkingCommands
	parkingQueries  queries.ParkingQueries
}

func NewParkingHandler(parkingCommands commands.ParkingCommands, parkingQueries queries.ParkingQueries) *ParkingHandler {
	return &ParkingHandler{
		parkingCommands: parkingCommands,
		parkingQueries:  parkingQueries,
	}
}

// @Summary Vehicle entry
// @Description Assign a spot to an arriving vehicle and issue a ticket
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.EntryRequest true "Entry request"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /parking/entry [post]
func (h *ParkingHandler) Entry(c *gin.Context) {
	var req reqdto.EntryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.parkingCommands.IssueTicket(c.Request.Context(), commands.IssueTicketParams{
		Plate:       req.Plate,
		VehicleKind: req.VehicleKind,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidVehicle):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle", nil)
		case errors.Is(err, commands.ErrCapacityExhausted):
			httperr.AbortWithError(c, http.StatusConflict, err, "No spot available for this vehicle", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTicketView(view))
}

// @Summary Vehicle exit
// @Description Settle the ticket's fee and free the assigned spot
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.ExitRequest true "Exit request"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parking/exit [post]
func (h *ParkingHandler) Exit(c *gin.Context) {
	var req reqdto.ExitRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	method, err := req.ToMethod()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	receipt, err := h.parkingCommands.SettleTicket(c.Request.Context(), req.TicketID, method)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTicketNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
		case errors.Is(err, commands.ErrPaymentDeclined):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment declined", nil)
		case errors.Is(err, commands.ErrUnsupportedMethod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported payment method", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReceipt(receipt))
}

// @Summary Availability summary
// @Description Free spot counts per category across all floors
// @Tags parking
// @Produce json
// @Success 200 {object} resdto.AvailabilityResponse
// @Router /parking/availability [get]
func (h *ParkingHandler) Availability(c *gin.Context) {
	summary := h.parkingQueries.AvailabilitySummary(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromAvailability(summary))
}

// @Summary Facility status
// @Description Floors, availability and the active ticket snapshot
// @Tags parking
// @Produce json
// @Success 200 {object} resdto.StatusResponse
// @Router /parking/status [get]
func (h *ParkingHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromStatusView(h.parkingQueries.Status(c.Request.Context())))
}

// @Summary Active tickets
// @Description Snapshot of all currently active tickets
// @Tags parking
// @Produce json
// @Success 200 {array} resdto.TicketResponse
// @Router /parking/tickets [get]
func (h *ParkingHandler) ActiveTickets(c *gin.Context) {
	views := h.parkingQueries.ActiveTickets(c.Request.Context())
	tickets := make([]*resdto.TicketResponse, len(views))
	for i := range views {
		tickets[i] = resdto.FromTicketView(&views[i])
	}
	c.JSON(http.StatusOK, tickets)
}
