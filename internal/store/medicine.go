package store

import (
	"context"

	"github.com/google/uuid"

	"family-health-api/internal/model"
)

func (s *Store) CreateMedicine(ctx context.Context, m *model.Medicine) error {
	m.ID = uuid.New().String()
	m.Times = nonNil(m.Times)
	return s.pool.QueryRow(ctx,
		`INSERT INTO medicines (id, user_id, family_member_id, name, dosage, frequency, times,
		    start_date, end_date, instructions, sms_reminder, email_reminder)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 RETURNING created_at, updated_at`,
		m.ID, m.UserID, m.FamilyMemberID, m.Name, m.Dosage, m.Frequency, m.Times,
		m.StartDate, m.EndDate, m.Instructions,
		m.ReminderSettings.SMSReminder, m.ReminderSettings.EmailReminder,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
}

// ListMedicines returns the user's medicines, newest first. A non-empty
// familyMemberID narrows to medicines for that member.
func (s *Store) ListMedicines(ctx context.Context, userID, familyMemberID string) ([]model.Medicine, error) {
	q := `SELECT id, user_id, family_member_id, name, dosage, frequency, times,
	             start_date, end_date, instructions, sms_reminder, email_reminder,
	             created_at, updated_at
	      FROM medicines
	      WHERE user_id = $1`
	args := []any{userID}

	if familyMemberID != "" {
		q += ` AND family_member_id = $2`
		args = append(args, familyMemberID)
	}
	q += ` ORDER BY created_at DESC, id`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Medicine{}
	for rows.Next() {
		var m model.Medicine
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.FamilyMemberID, &m.Name, &m.Dosage, &m.Frequency, &m.Times,
			&m.StartDate, &m.EndDate, &m.Instructions,
			&m.ReminderSettings.SMSReminder, &m.ReminderSettings.EmailReminder,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		m.Times = nonNil(m.Times)
		out = append(out, m)
	}
	return out, rows.Err()
}
