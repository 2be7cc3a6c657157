package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"family-health-api/internal/auth"
	"family-health-api/internal/model"
	"family-health-api/internal/store"
)

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func viewOf(u *model.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	if _, err := h.store.UserByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Email already in use"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	u := &model.User{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := h.store.CreateUser(c.Request.Context(), u); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	h.log.WithField("user_id", u.ID).Info("user signed up")
	c.JSON(http.StatusCreated, gin.H{"user": viewOf(u)})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	u, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Wrong password"})
		return
	}

	tok, err := auth.MakeToken(u.ID, h.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tok, "user": viewOf(u)})
}
