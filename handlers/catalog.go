package handlers

import (
	"net/http"

	petRepo "pawbook/database/repository/pet"
	"pawbook/services/booking"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static service catalogue and the caller's pets.
type CatalogHandler struct {
	Pets petRepo.Repository
}

func NewCatalogHandler(pets petRepo.Repository) *CatalogHandler {
	return &CatalogHandler{Pets: pets}
}

// ListServices returns every catalogue entry.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services := booking.GetServicesMap()
	out := make([]booking.ServiceDetails, 0, len(services))
	for _, details := range services {
		out = append(out, details)
	}
	c.JSON(http.StatusOK, out)
}

// GetService returns one catalogue entry with its applicability rules.
func (h *CatalogHandler) GetService(c *gin.Context) {
	details, err := booking.GetServiceByID(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}

// ListPets returns the pets owned by the given user.
func (h *CatalogHandler) ListPets(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	pets, err := h.Pets.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pets"})
		return
	}
	c.JSON(http.StatusOK, pets)
}
