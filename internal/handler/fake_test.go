package handler_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"family-health-api/internal/model"
	"family-health-api/internal/store"
)

// memStore is an in-memory, owner-scoped stand-in for store.Store.
type memStore struct {
	mu           sync.Mutex
	now          time.Time
	users        map[string]*model.User
	members      []model.FamilyMember
	medicines    []model.Medicine
	appointments []model.Appointment
	contacts     []model.EmergencyContact
	failWith     error
}

func newMemStore() *memStore {
	return &memStore{
		now:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		users: map[string]*model.User{},
	}
}

// stamp hands out strictly increasing timestamps so newest-first order is
// deterministic.
func (m *memStore) stamp() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *memStore) CreateUser(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.users[u.Email]; ok {
		return store.ErrEmailTaken
	}
	u.ID = uuid.New().String()
	u.CreatedAt = m.stamp()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	u, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) CreateFamilyMember(_ context.Context, f *model.FamilyMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	f.ID = uuid.New().String()
	f.CreatedAt = m.stamp()
	f.UpdatedAt = f.CreatedAt
	m.members = append(m.members, *f)
	return nil
}

func (m *memStore) ListFamilyMembers(_ context.Context, userID string) ([]model.FamilyMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []model.FamilyMember{}
	for i := len(m.members) - 1; i >= 0; i-- {
		if m.members[i].UserID == userID {
			out = append(out, m.members[i])
		}
	}
	return out, nil
}

func (m *memStore) CreateMedicine(_ context.Context, med *model.Medicine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	med.ID = uuid.New().String()
	med.CreatedAt = m.stamp()
	med.UpdatedAt = med.CreatedAt
	m.medicines = append(m.medicines, *med)
	return nil
}

func (m *memStore) ListMedicines(_ context.Context, userID, familyMemberID string) ([]model.Medicine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []model.Medicine{}
	for i := len(m.medicines) - 1; i >= 0; i-- {
		med := m.medicines[i]
		if med.UserID != userID {
			continue
		}
		if familyMemberID != "" && (med.FamilyMemberID == nil || *med.FamilyMemberID != familyMemberID) {
			continue
		}
		out = append(out, med)
	}
	return out, nil
}

func (m *memStore) CreateAppointment(_ context.Context, a *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	a.ID = uuid.New().String()
	if a.Type == "" {
		a.Type = model.DefaultAppointmentType
	}
	if a.Status == "" {
		a.Status = model.StatusPending
	}
	a.CreatedAt = m.stamp()
	a.UpdatedAt = a.CreatedAt
	m.appointments = append(m.appointments, *a)
	return nil
}

func (m *memStore) ListAppointments(_ context.Context, userID, status string) ([]model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []model.Appointment{}
	for _, a := range m.appointments {
		if a.UserID != userID || (status != "" && a.Status != status) {
			continue
		}
		if a.FamilyMember != nil {
			ref := *a.FamilyMember
			for _, f := range m.members {
				if f.ID == ref.ID && f.UserID == userID {
					ref.Name, ref.Relationship = f.Name, f.Relationship
				}
			}
			a.FamilyMember = &ref
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (m *memStore) UpdateAppointment(_ context.Context, userID, id string, p model.AppointmentPatch) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.appointments {
		a := &m.appointments[i]
		if a.ID != id || a.UserID != userID {
			continue
		}
		if p.FamilyMember != nil {
			a.FamilyMember = nil
			if *p.FamilyMember != "" {
				a.FamilyMember = &model.MemberRef{ID: *p.FamilyMember}
			}
		}
		setStr(&a.Doctor, p.Doctor)
		setStr(&a.Specialty, p.Specialty)
		if p.Date != nil {
			a.Date = *p.Date
		}
		setStr(&a.Time, p.Time)
		setStr(&a.Type, p.Type)
		if p.Duration != nil {
			a.Duration = *p.Duration
		}
		setStr(&a.Location, p.Location)
		setStr(&a.Notes, p.Notes)
		setStr(&a.Status, p.Status)
		if p.SendReminder != nil {
			a.SendReminder = *p.SendReminder
		}
		a.UpdatedAt = m.stamp()
		cp := *a
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) DeleteAppointment(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for i, a := range m.appointments {
		if a.ID == id && a.UserID == userID {
			m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) CreateContact(_ context.Context, c *model.EmergencyContact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	c.ID = uuid.New().String()
	c.CreatedAt = m.stamp()
	c.UpdatedAt = c.CreatedAt
	m.contacts = append(m.contacts, *c)
	return nil
}

func (m *memStore) ListContacts(_ context.Context, userID string) ([]model.EmergencyContact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []model.EmergencyContact{}
	for i := len(m.contacts) - 1; i >= 0; i-- {
		if m.contacts[i].UserID == userID {
			out = append(out, m.contacts[i])
		}
	}
	return out, nil
}

func (m *memStore) UpdateContact(_ context.Context, userID, id string, p model.EmergencyContactPatch) (*model.EmergencyContact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.contacts {
		c := &m.contacts[i]
		if c.ID != id || c.UserID != userID {
			continue
		}
		setStr(&c.Name, p.Name)
		setStr(&c.Relationship, p.Relationship)
		setStr(&c.Phone, p.Phone)
		setStr(&c.Email, p.Email)
		setStr(&c.Specialty, p.Specialty)
		setStr(&c.Availability, p.Availability)
		setStr(&c.Address, p.Address)
		setStr(&c.Notes, p.Notes)
		c.UpdatedAt = m.stamp()
		cp := *c
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore) DeleteContact(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for i, c := range m.contacts {
		if c.ID == id && c.UserID == userID {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

var errDBDown = errors.New("connection refused")
