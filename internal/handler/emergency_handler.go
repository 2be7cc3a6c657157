package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"family-health-api/internal/model"
)

type createContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Relationship string `json:"relationship" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Specialty    string `json:"specialty"`
	Availability string `json:"availability"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
}

type updateContactRequest struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Specialty    *string `json:"specialty"`
	Availability *string `json:"availability"`
	Address      *string `json:"address"`
	Notes        *string `json:"notes"`
}

func (h *Handler) AddContact(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	ec := &model.EmergencyContact{
		UserID:       uid(c),
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Email:        req.Email,
		Specialty:    req.Specialty,
		Availability: req.Availability,
		Address:      req.Address,
		Notes:        req.Notes,
	}
	if err := h.store.CreateContact(c.Request.Context(), ec); err != nil {
		h.storeError(c, "Contact", err)
		return
	}
	c.JSON(http.StatusCreated, ec)
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.store.ListContacts(c.Request.Context(), uid(c))
	if err != nil {
		h.storeError(c, "Contact", err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *Handler) UpdateContact(c *gin.Context) {
	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	ec, err := h.store.UpdateContact(c.Request.Context(), uid(c), c.Param("id"), model.EmergencyContactPatch(req))
	if err != nil {
		h.storeError(c, "Contact", err)
		return
	}
	c.JSON(http.StatusOK, ec)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	if err := h.store.DeleteContact(c.Request.Context(), uid(c), c.Param("id")); err != nil {
		h.storeError(c, "Contact", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Emergency contact deleted successfully"})
}
