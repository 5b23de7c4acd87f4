package api

import (
	"net/http"

	"github.com/avykhor/airport-api/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type CrewHandler struct {
	service fleet.FleetUseCase
}

func NewCrewHandler(service fleet.FleetUseCase) *CrewHandler {
	return &CrewHandler{service: service}
}

func (h *CrewHandler) Register(router *gin.RouterGroup, staff ...gin.HandlerFunc) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)

	write := router.Group("", staff...)
	write.POST("/", h.create)
	write.PUT("/:id", h.update)
	write.DELETE("/:id", h.delete)
}

func (h *CrewHandler) list(c *gin.Context) {
	crews, err := h.service.ListCrews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crews)
}

func (h *CrewHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	crew, err := h.service.GetCrew(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crew)
}

func (h *CrewHandler) create(c *gin.Context) {
	var req fleet.CrewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	crew, err := h.service.CreateCrew(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crew)
}

func (h *CrewHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req fleet.CrewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	crew, err := h.service.UpdateCrew(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crew)
}

func (h *CrewHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCrew(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
