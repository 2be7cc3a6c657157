package handler

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date accepts either a calendar day ("2006-01-02") or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

var dateLayouts = []string{"2006-01-02", time.RFC3339Nano}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

func (d *Date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// optID turns an absent or empty reference into nil.
func optID(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
