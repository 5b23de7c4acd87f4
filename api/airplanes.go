package api

import (
	"net/http"

	"github.com/avykhor/airport-api/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type AirplaneHandler struct {
	service fleet.FleetUseCase
}

func NewAirplaneHandler(service fleet.FleetUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup, staff ...gin.HandlerFunc) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)

	write := router.Group("", staff...)
	write.POST("/", h.create)
	write.PUT("/:id", h.update)
	write.DELETE("/:id", h.delete)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplanes)
}

func (h *AirplaneHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var req fleet.AirplaneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.service.CreateAirplane(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AirplaneHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req fleet.AirplaneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.service.UpdateAirplane(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AirplaneHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
