package api

import (
	"net/http"

	"github.com/avykhor/airport-api/internal/service/geo"
	"github.com/gin-gonic/gin"
)

type CountryHandler struct {
	service geo.GeoUseCase
}

func NewCountryHandler(service geo.GeoUseCase) *CountryHandler {
	return &CountryHandler{service: service}
}

func (h *CountryHandler) Register(router *gin.RouterGroup, staff ...gin.HandlerFunc) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)

	write := router.Group("", staff...)
	write.POST("/", h.create)
	write.PUT("/:id", h.update)
	write.DELETE("/:id", h.delete)
}

func (h *CountryHandler) list(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

func (h *CountryHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	country, err := h.service.GetCountry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *CountryHandler) create(c *gin.Context) {
	var req geo.CountryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	country, err := h.service.CreateCountry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, country)
}

func (h *CountryHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req geo.CountryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	country, err := h.service.UpdateCountry(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (h *CountryHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCountry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
