package store

import (
	"context"

	"github.com/google/uuid"

	"family-health-api/internal/model"
)

const familyCols = `id, user_id, name, relationship, age, blood_type, gender,
	allergies, conditions, emergency_contact, phone, email, notes, created_at, updated_at`

func (s *Store) CreateFamilyMember(ctx context.Context, m *model.FamilyMember) error {
	m.ID = uuid.New().String()
	m.Allergies = nonNil(m.Allergies)
	m.Conditions = nonNil(m.Conditions)
	return s.pool.QueryRow(ctx,
		`INSERT INTO family_members (id, user_id, name, relationship, age, blood_type, gender,
		    allergies, conditions, emergency_contact, phone, email, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		 RETURNING created_at, updated_at`,
		m.ID, m.UserID, m.Name, m.Relationship, m.Age, m.BloodType, m.Gender,
		m.Allergies, m.Conditions, m.EmergencyContact, m.Phone, m.Email, m.Notes,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
}

// ListFamilyMembers returns the user's family members, newest first.
func (s *Store) ListFamilyMembers(ctx context.Context, userID string) ([]model.FamilyMember, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+familyCols+` FROM family_members
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.FamilyMember{}
	for rows.Next() {
		var m model.FamilyMember
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.Relationship, &m.Age, &m.BloodType, &m.Gender,
			&m.Allergies, &m.Conditions, &m.EmergencyContact, &m.Phone, &m.Email, &m.Notes,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		m.Allergies = nonNil(m.Allergies)
		m.Conditions = nonNil(m.Conditions)
		out = append(out, m)
	}
	return out, rows.Err()
}
