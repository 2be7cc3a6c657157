package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"family-health-api/internal/middleware"
	"family-health-api/internal/model"
	"family-health-api/internal/store"
)

// Store is what the handlers need from persistence. Every resource method
// takes the owning user id and must never touch another user's rows.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)

	CreateFamilyMember(ctx context.Context, m *model.FamilyMember) error
	ListFamilyMembers(ctx context.Context, userID string) ([]model.FamilyMember, error)

	CreateMedicine(ctx context.Context, m *model.Medicine) error
	ListMedicines(ctx context.Context, userID, familyMemberID string) ([]model.Medicine, error)

	CreateAppointment(ctx context.Context, a *model.Appointment) error
	ListAppointments(ctx context.Context, userID, status string) ([]model.Appointment, error)
	UpdateAppointment(ctx context.Context, userID, id string, p model.AppointmentPatch) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, userID, id string) error

	CreateContact(ctx context.Context, c *model.EmergencyContact) error
	ListContacts(ctx context.Context, userID string) ([]model.EmergencyContact, error)
	UpdateContact(ctx context.Context, userID, id string, p model.EmergencyContactPatch) (*model.EmergencyContact, error)
	DeleteContact(ctx context.Context, userID, id string) error
}

var _ Store = (*store.Store)(nil)

type Handler struct {
	store  Store
	secret string
	log    logrus.FieldLogger
}

func New(st Store, secret string, log logrus.FieldLogger) *Handler {
	return &Handler{store: st, secret: secret, log: log}
}

func uid(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// storeError replies 404 for a missing (or foreign) record and 500 with the
// raw error message for anything else.
func (h *Handler) storeError(c *gin.Context, resource string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
		return
	}
	h.log.WithFields(logrus.Fields{
		"resource": resource,
		"user_id":  uid(c),
	}).WithError(err).Error("store failure")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
