package store

import (
	"context"

	"github.com/google/uuid"

	"family-health-api/internal/model"
)

const appointmentCols = `id, user_id, family_member_id, doctor, specialty, date, time, type,
	duration, location, notes, status, send_reminder, created_at, updated_at`

// scan targets for appointmentCols; the family member id lands in *fm
func appointmentDest(a *model.Appointment, fm **string) []any {
	return []any{
		&a.ID, &a.UserID, fm, &a.Doctor, &a.Specialty, &a.Date, &a.Time, &a.Type,
		&a.Duration, &a.Location, &a.Notes, &a.Status, &a.SendReminder, &a.CreatedAt, &a.UpdatedAt,
	}
}

func memberRef(id *string) *model.MemberRef {
	if id == nil {
		return nil
	}
	return &model.MemberRef{ID: *id}
}

// CreateAppointment inserts a. Empty Type and Status take the schema
// defaults; Duration is stored as given.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	a.ID = uuid.New().String()
	if a.Type == "" {
		a.Type = model.DefaultAppointmentType
	}
	if a.Status == "" {
		a.Status = model.StatusPending
	}

	var fm *string
	if a.FamilyMember != nil && a.FamilyMember.ID != "" {
		fm = &a.FamilyMember.ID
	}

	return s.pool.QueryRow(ctx,
		`INSERT INTO appointments (id, user_id, family_member_id, doctor, specialty, date, time,
		    type, duration, location, notes, status, send_reminder)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		 RETURNING created_at, updated_at`,
		a.ID, a.UserID, fm, a.Doctor, a.Specialty, a.Date, a.Time,
		a.Type, a.Duration, a.Location, a.Notes, a.Status, a.SendReminder,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// ListAppointments returns the user's appointments ordered by date then time.
// A non-empty status narrows the result. The referenced family member's name
// and relationship are filled only when that member belongs to the same user.
func (s *Store) ListAppointments(ctx context.Context, userID, status string) ([]model.Appointment, error) {
	q := `SELECT a.id, a.user_id, a.family_member_id, a.doctor, a.specialty, a.date, a.time, a.type,
	             a.duration, a.location, a.notes, a.status, a.send_reminder, a.created_at, a.updated_at,
	             f.name, f.relationship
	      FROM appointments a
	      LEFT JOIN family_members f ON f.id = a.family_member_id AND f.user_id = a.user_id
	      WHERE a.user_id = $1`
	args := []any{userID}

	if status != "" {
		q += ` AND a.status = $2`
		args = append(args, status)
	}
	q += ` ORDER BY a.date, a.time, a.id`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Appointment{}
	for rows.Next() {
		var (
			a         model.Appointment
			fm        *string
			name, rel *string
		)
		dest := append(appointmentDest(&a, &fm), &name, &rel)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		a.FamilyMember = memberRef(fm)
		if a.FamilyMember != nil && name != nil {
			a.FamilyMember.Name = *name
			a.FamilyMember.Relationship = *rel
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateAppointment applies the non-nil fields of p to appointment id owned
// by userID and returns the stored result.
func (s *Store) UpdateAppointment(ctx context.Context, userID, id string, p model.AppointmentPatch) (*model.Appointment, error) {
	set := &setList{}
	if p.FamilyMember != nil {
		if *p.FamilyMember == "" {
			set.add("family_member_id", nil)
		} else {
			set.add("family_member_id", *p.FamilyMember)
		}
	}
	if p.Doctor != nil {
		set.add("doctor", *p.Doctor)
	}
	if p.Specialty != nil {
		set.add("specialty", *p.Specialty)
	}
	if p.Date != nil {
		set.add("date", *p.Date)
	}
	if p.Time != nil {
		set.add("time", *p.Time)
	}
	if p.Type != nil {
		set.add("type", *p.Type)
	}
	if p.Duration != nil {
		set.add("duration", *p.Duration)
	}
	if p.Location != nil {
		set.add("location", *p.Location)
	}
	if p.Notes != nil {
		set.add("notes", *p.Notes)
	}
	if p.Status != nil {
		set.add("status", *p.Status)
	}
	if p.SendReminder != nil {
		set.add("send_reminder", *p.SendReminder)
	}

	a := &model.Appointment{}
	var fm *string
	if err := s.update(ctx, "appointments", userID, id, set, appointmentCols, appointmentDest(a, &fm)...); err != nil {
		return nil, err
	}
	a.FamilyMember = memberRef(fm)
	return a, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, userID, id string) error {
	return s.remove(ctx, "appointments", userID, id)
}
