package api

import (
	"net/http"

	"github.com/avykhor/airport-api/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type AirplaneTypeHandler struct {
	service fleet.FleetUseCase
}

func NewAirplaneTypeHandler(service fleet.FleetUseCase) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{service: service}
}

func (h *AirplaneTypeHandler) Register(router *gin.RouterGroup, staff ...gin.HandlerFunc) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)

	write := router.Group("", staff...)
	write.POST("/", h.create)
	write.PUT("/:id", h.update)
	write.DELETE("/:id", h.delete)
}

func (h *AirplaneTypeHandler) list(c *gin.Context) {
	types, err := h.service.ListAirplaneTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *AirplaneTypeHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.service.GetAirplaneType(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *AirplaneTypeHandler) create(c *gin.Context) {
	var req fleet.AirplaneTypeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.service.CreateAirplaneType(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *AirplaneTypeHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req fleet.AirplaneTypeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.service.UpdateAirplaneType(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *AirplaneTypeHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplaneType(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
