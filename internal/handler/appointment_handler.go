package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"family-health-api/internal/model"
)

type createAppointmentRequest struct {
	FamilyMember *string `json:"familyMember"`
	Doctor       string  `json:"doctor" binding:"required"`
	Specialty    string  `json:"specialty"`
	Date         *Date   `json:"date" binding:"required"`
	Time         string  `json:"time" binding:"required"`
	Type         string  `json:"type" binding:"omitempty,oneof=Check-up Follow-up Consultation Emergency Procedure"`
	Duration     *int    `json:"duration" binding:"omitempty,min=0"`
	Location     string  `json:"location"`
	Notes        string  `json:"notes"`
	Status       string  `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	SendReminder bool    `json:"sendReminder"`
}

type updateAppointmentRequest struct {
	FamilyMember *string `json:"familyMember"`
	Doctor       *string `json:"doctor"`
	Specialty    *string `json:"specialty"`
	Date         *Date   `json:"date"`
	Time         *string `json:"time"`
	Type         *string `json:"type" binding:"omitempty,oneof=Check-up Follow-up Consultation Emergency Procedure"`
	Duration     *int    `json:"duration" binding:"omitempty,min=0"`
	Location     *string `json:"location"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	SendReminder *bool   `json:"sendReminder"`
}

func (h *Handler) AddAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	a := &model.Appointment{
		UserID:       uid(c),
		Doctor:       req.Doctor,
		Specialty:    req.Specialty,
		Date:         req.Date.Time,
		Time:         req.Time,
		Type:         req.Type,
		Location:     req.Location,
		Notes:        req.Notes,
		Status:       req.Status,
		SendReminder: req.SendReminder,
	}
	if id := optID(req.FamilyMember); id != nil {
		a.FamilyMember = &model.MemberRef{ID: *id}
	}
	a.Duration = model.DefaultAppointmentDuration
	if req.Duration != nil {
		a.Duration = *req.Duration
	}

	if err := h.store.CreateAppointment(c.Request.Context(), a); err != nil {
		h.storeError(c, "Appointment", err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// ListAppointments serves GET /get?status=, sorted by date then time.
func (h *Handler) ListAppointments(c *gin.Context) {
	apts, err := h.store.ListAppointments(c.Request.Context(), uid(c), c.Query("status"))
	if err != nil {
		h.storeError(c, "Appointment", err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	p := model.AppointmentPatch{
		FamilyMember: req.FamilyMember,
		Doctor:       req.Doctor,
		Specialty:    req.Specialty,
		Date:         req.Date.ptr(),
		Time:         req.Time,
		Type:         req.Type,
		Duration:     req.Duration,
		Location:     req.Location,
		Notes:        req.Notes,
		Status:       req.Status,
		SendReminder: req.SendReminder,
	}

	a, err := h.store.UpdateAppointment(c.Request.Context(), uid(c), c.Param("id"), p)
	if err != nil {
		h.storeError(c, "Appointment", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.store.DeleteAppointment(c.Request.Context(), uid(c), c.Param("id")); err != nil {
		h.storeError(c, "Appointment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
