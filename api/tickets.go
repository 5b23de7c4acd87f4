package api

import (
	"net/http"

	"github.com/avykhor/airport-api/internal/service/orders"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service orders.OrderUseCase
}

type createTicketRequest struct {
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
	FlightID int64 `json:"flight_id"`
	OrderID  int64 `json:"order_id"`
}

func NewTicketHandler(service orders.OrderUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

// Register wires the staff-only ticket routes. Regular passengers
// create tickets through orders; this surface exists for back office
// corrections and audits.
func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
}

func (h *TicketHandler) list(c *gin.Context) {
	tickets, err := h.service.ListTickets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ticket, err := h.service.GetTicket(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spec := orders.TicketSpecInput{Row: req.Row, Seat: req.Seat, FlightID: req.FlightID}
	ticket, err := h.service.CreateTicket(c.Request.Context(), spec, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}
