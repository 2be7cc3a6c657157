package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"family-health-api/internal/model"
)

// The client's list view reads a singular "time" field; medicines only carry
// the "times" array.
type medicineRequest struct {
	FamilyMember     *string                `json:"familyMember"`
	Name             string                 `json:"name" binding:"required"`
	Dosage           string                 `json:"dosage" binding:"required"`
	Frequency        string                 `json:"frequency"`
	Times            []string               `json:"times"`
	StartDate        *Date                  `json:"startDate"`
	EndDate          *Date                  `json:"endDate"`
	Instructions     string                 `json:"instructions"`
	ReminderSettings model.ReminderSettings `json:"reminderSettings"`
}

func (h *Handler) AddMedicine(c *gin.Context) {
	var req medicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	m := &model.Medicine{
		UserID:           uid(c),
		FamilyMemberID:   optID(req.FamilyMember),
		Name:             req.Name,
		Dosage:           req.Dosage,
		Frequency:        req.Frequency,
		Times:            orEmpty(req.Times),
		StartDate:        req.StartDate.ptr(),
		EndDate:          req.EndDate.ptr(),
		Instructions:     req.Instructions,
		ReminderSettings: req.ReminderSettings,
	}
	if err := h.store.CreateMedicine(c.Request.Context(), m); err != nil {
		h.storeError(c, "Medicine", err)
		return
	}
	h.log.WithField("user_id", m.UserID).Debugf("medicine %s added", m.ID)
	c.JSON(http.StatusCreated, m)
}

// ListMedicines serves GET /get?familyMemberId=.
func (h *Handler) ListMedicines(c *gin.Context) {
	meds, err := h.store.ListMedicines(c.Request.Context(), uid(c), c.Query("familyMemberId"))
	if err != nil {
		h.storeError(c, "Medicine", err)
		return
	}
	c.JSON(http.StatusOK, meds)
}
