package handlers

import (
	"errors"
	"net/http"

	"pawbook/models"
	"pawbook/services/booking"
	"pawbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP. Each endpoint is a thin
// binding; all state transitions live in the wizard service.
type BookingHandler struct {
	Wizard booking.WizardService
	Logger *zap.Logger
}

func NewBookingHandler(wizard booking.WizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Wizard: wizard, Logger: logger}
}

// StartWizard creates a new booking session for a service.
func (h *BookingHandler) StartWizard(c *gin.Context) {
	var input struct {
		UserID      string `json:"userId" binding:"required"`
		ServiceID   string `json:"serviceId" binding:"required"`
		ServiceType string `json:"serviceType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Wizard.Start(c.Request.Context(), input.UserID, input.ServiceID, input.ServiceType)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetWizard returns the current session state.
func (h *BookingHandler) GetWizard(c *gin.Context) {
	session, err := h.Wizard.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetPet records the pet selection and reports compatibility.
func (h *BookingHandler) SetPet(c *gin.Context) {
	var input struct {
		PetID string `json:"petId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, compat, err := h.Wizard.SetPet(c.Request.Context(), c.Param("sessionID"), input.PetID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "compatibility": compat})
}

func (h *BookingHandler) SetEmployee(c *gin.Context) {
	var input struct {
		EmployeeID string `json:"employeeId"` // empty keeps the booking unassigned
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Wizard.SetEmployee(c.Request.Context(), c.Param("sessionID"), input.EmployeeID)
	h.respond(c, session, err)
}

func (h *BookingHandler) SetDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Wizard.SetDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	h.respond(c, session, err)
}

func (h *BookingHandler) SetTimeSlot(c *gin.Context) {
	var input struct {
		Indices []int `json:"indices" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Wizard.SetTimeSlot(c.Request.Context(), c.Param("sessionID"), input.Indices)
	h.respond(c, session, err)
}

func (h *BookingHandler) SetNotes(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Wizard.SetNotes(c.Request.Context(), c.Param("sessionID"), input.Notes)
	h.respond(c, session, err)
}

func (h *BookingHandler) SetPaymentMethod(c *gin.Context) {
	var input struct {
		Method models.PaymentMethod `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Wizard.SetPaymentMethod(c.Request.Context(), c.Param("sessionID"), input.Method)
	h.respond(c, session, err)
}

// Advance moves to the next step when the current gate passes.
func (h *BookingHandler) Advance(c *gin.Context) {
	session, err := h.Wizard.Advance(c.Request.Context(), c.Param("sessionID"))
	h.respond(c, session, err)
}

// Retreat moves one step back; at PET it exits the wizard.
func (h *BookingHandler) Retreat(c *gin.Context) {
	session, exited, err := h.Wizard.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "exited": exited})
}

// CanAdvance reports whether the current step's gate passes.
func (h *BookingHandler) CanAdvance(c *gin.Context) {
	ok, err := h.Wizard.CanAdvance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"canAdvance": ok})
}

// FetchAvailability loads the time-slot board for the draft's current inputs.
func (h *BookingHandler) FetchAvailability(c *gin.Context) {
	session, err := h.Wizard.FetchAvailability(c.Request.Context(), c.Param("sessionID"))
	h.respond(c, session, err)
}

// Submit finalizes the booking: creation first, then payment.
func (h *BookingHandler) Submit(c *gin.Context) {
	result, err := h.Wizard.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelWizard discards the session.
func (h *BookingHandler) CancelWizard(c *gin.Context) {
	if err := h.Wizard.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *BookingHandler) respond(c *gin.Context, session *models.WizardSession, err error) {
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *BookingHandler) renderError(c *gin.Context, err error) {
	var validation *booking.ValidationError

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validation.Message, "field": validation.Field})
	case errors.Is(err, booking.ErrStepBlocked), errors.Is(err, booking.ErrNotOnReview):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSubmitInFlight):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNonContiguousSelection):
		// Contract violation, not user error; log loudly and keep the message opaque.
		h.Logger.Error("non-contiguous slot selection from client", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	default:
		h.Logger.Error("wizard operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
