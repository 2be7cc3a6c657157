package model

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type FamilyMember struct {
	ID               string    `json:"_id"`
	UserID           string    `json:"user"`
	Name             string    `json:"name"`
	Relationship     string    `json:"relationship"`
	Age              int       `json:"age"`
	BloodType        string    `json:"bloodType,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	Allergies        []string  `json:"allergies"`
	Conditions       []string  `json:"conditions"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ReminderSettings struct {
	SMSReminder   bool `json:"smsReminder"`
	EmailReminder bool `json:"emailReminder"`
}

type Medicine struct {
	ID               string           `json:"_id"`
	UserID           string           `json:"user"`
	FamilyMemberID   *string          `json:"familyMember,omitempty"`
	Name             string           `json:"name"`
	Dosage           string           `json:"dosage"`
	Frequency        string           `json:"frequency,omitempty"`
	Times            []string         `json:"times"`
	StartDate        *time.Time       `json:"startDate,omitempty"`
	EndDate          *time.Time       `json:"endDate,omitempty"`
	Instructions     string           `json:"instructions,omitempty"`
	ReminderSettings ReminderSettings `json:"reminderSettings"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// MemberRef is the family member an appointment is for. Name and
// Relationship are only filled when listing.
type MemberRef struct {
	ID           string `json:"_id"`
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

type Appointment struct {
	ID           string     `json:"_id"`
	UserID       string     `json:"user"`
	FamilyMember *MemberRef `json:"familyMember,omitempty"`
	Doctor       string     `json:"doctor"`
	Specialty    string     `json:"specialty,omitempty"`
	Date         time.Time  `json:"date"`
	Time         string     `json:"time"`
	Type         string     `json:"type"`
	Duration     int        `json:"duration"`
	Location     string     `json:"location,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Status       string     `json:"status"`
	SendReminder bool       `json:"sendReminder"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// AppointmentPatch holds the fields an update may change; nil means keep.
// An empty FamilyMember clears the reference.
type AppointmentPatch struct {
	FamilyMember *string
	Doctor       *string
	Specialty    *string
	Date         *time.Time
	Time         *string
	Type         *string
	Duration     *int
	Location     *string
	Notes        *string
	Status       *string
	SendReminder *bool
}

type EmergencyContact struct {
	ID           string    `json:"_id"`
	UserID       string    `json:"user"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	Specialty    string    `json:"specialty,omitempty"`
	Availability string    `json:"availability,omitempty"`
	Address      string    `json:"address,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type EmergencyContactPatch struct {
	Name         *string
	Relationship *string
	Phone        *string
	Email        *string
	Specialty    *string
	Availability *string
	Address      *string
	Notes        *string
}

// ReminderLog records a scheduled dose reminder. Nothing writes these yet.
type ReminderLog struct {
	ID             string    `json:"_id"`
	MedicineID     string    `json:"medicineId"`
	FamilyMemberID *string   `json:"familyMemberId,omitempty"`
	ScheduledTime  time.Time `json:"scheduledTime"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const DefaultAppointmentType = "Consultation"

const DefaultAppointmentDuration = 30
