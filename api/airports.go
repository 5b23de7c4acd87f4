package api

import (
	"net/http"

	"github.com/avykhor/airport-api/internal/service/geo"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service geo.GeoUseCase
}

func NewAirportHandler(service geo.GeoUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup, staff ...gin.HandlerFunc) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)

	write := router.Group("", staff...)
	write.POST("/", h.create)
	write.PUT("/:id", h.update)
	write.DELETE("/:id", h.delete)
}

func (h *AirportHandler) list(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *AirportHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airport, err := h.service.GetAirport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) create(c *gin.Context) {
	var req geo.AirportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport, err := h.service.CreateAirport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airport)
}

func (h *AirportHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req geo.AirportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport, err := h.service.UpdateAirport(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, airport)
}

func (h *AirportHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAirport(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
