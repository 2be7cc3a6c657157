package store

import (
	"context"

	"github.com/google/uuid"

	"family-health-api/internal/model"
)

const contactCols = `id, user_id, name, relationship, phone, email, specialty,
	availability, address, notes, created_at, updated_at`

func contactDest(c *model.EmergencyContact) []any {
	return []any{
		&c.ID, &c.UserID, &c.Name, &c.Relationship, &c.Phone, &c.Email, &c.Specialty,
		&c.Availability, &c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	}
}

func (s *Store) CreateContact(ctx context.Context, c *model.EmergencyContact) error {
	c.ID = uuid.New().String()
	return s.pool.QueryRow(ctx,
		`INSERT INTO emergency_contacts (id, user_id, name, relationship, phone, email,
		    specialty, availability, address, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING created_at, updated_at`,
		c.ID, c.UserID, c.Name, c.Relationship, c.Phone, c.Email,
		c.Specialty, c.Availability, c.Address, c.Notes,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// ListContacts returns the user's emergency contacts, newest first.
func (s *Store) ListContacts(ctx context.Context, userID string) ([]model.EmergencyContact, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+contactCols+` FROM emergency_contacts
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.EmergencyContact{}
	for rows.Next() {
		var c model.EmergencyContact
		if err := rows.Scan(contactDest(&c)...); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateContact(ctx context.Context, userID, id string, p model.EmergencyContactPatch) (*model.EmergencyContact, error) {
	set := &setList{}
	for _, f := range []struct {
		col string
		v   *string
	}{
		{"name", p.Name},
		{"relationship", p.Relationship},
		{"phone", p.Phone},
		{"email", p.Email},
		{"specialty", p.Specialty},
		{"availability", p.Availability},
		{"address", p.Address},
		{"notes", p.Notes},
	} {
		if f.v != nil {
			set.add(f.col, *f.v)
		}
	}

	c := &model.EmergencyContact{}
	if err := s.update(ctx, "emergency_contacts", userID, id, set, contactCols, contactDest(c)...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) DeleteContact(ctx context.Context, userID, id string) error {
	return s.remove(ctx, "emergency_contacts", userID, id)
}
