package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"family-health-api/internal/model"
)

type familyMemberRequest struct {
	Name             string   `json:"name" binding:"required"`
	Relationship     string   `json:"relationship" binding:"required"`
	Age              *int     `json:"age" binding:"required,min=0"`
	BloodType        string   `json:"bloodType"`
	Gender           string   `json:"gender"`
	Allergies        []string `json:"allergies"`
	Conditions       []string `json:"conditions"`
	EmergencyContact string   `json:"emergencyContact"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	Notes            string   `json:"notes"`
}

// Family members can only be added and listed; there is no update or delete.

func (h *Handler) AddFamilyMember(c *gin.Context) {
	var req familyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	m := &model.FamilyMember{
		UserID:           uid(c),
		Name:             req.Name,
		Relationship:     req.Relationship,
		Age:              *req.Age,
		BloodType:        req.BloodType,
		Gender:           req.Gender,
		Allergies:        orEmpty(req.Allergies),
		Conditions:       orEmpty(req.Conditions),
		EmergencyContact: req.EmergencyContact,
		Phone:            req.Phone,
		Email:            req.Email,
		Notes:            req.Notes,
	}
	if err := h.store.CreateFamilyMember(c.Request.Context(), m); err != nil {
		h.storeError(c, "Family member", err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListFamilyMembers(c *gin.Context) {
	members, err := h.store.ListFamilyMembers(c.Request.Context(), uid(c))
	if err != nil {
		h.storeError(c, "Family member", err)
		return
	}
	c.JSON(http.StatusOK, members)
}
