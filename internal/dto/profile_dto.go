package dto

import "github.com/nigelkyalo/mamacare-backend/internal/models"

// ReminderSettings are four independent toggles; callers submit the
// complete set on every save.
type ReminderSettings struct {
	Appointments bool `json:"appointments"`
	Medications  bool `json:"medications"`
	Tips         bool `json:"tips"`
	Emergency    bool `json:"emergency"`
}

// ProfileRequest is the full profile shape. Every save replaces all
// fields; omitted fields are stored as their zero values.
type ProfileRequest struct {
	FirstName           string           `json:"firstName"`
	LastName            string           `json:"lastName"`
	Email               string           `json:"email"`
	Phone               string           `json:"phone"`
	Age                 string           `json:"age"`
	CalculationMethod   string           `json:"calculationMethod"`
	DueDate             string           `json:"dueDate,omitempty"`
	LastMenstrualPeriod string           `json:"lastMenstrualPeriod,omitempty"`
	PregnancyNumber     string           `json:"pregnancyNumber"`
	Location            string           `json:"location"`
	Hospital            string           `json:"hospital"`
	HealthConditions    []string         `json:"healthConditions"`
	Language            string           `json:"language"`
	Reminders           ReminderSettings `json:"reminders"`
	CommunicationMethod string           `json:"communicationMethod"`
	AgreedToTerms       bool             `json:"agreedToTerms"`
}

type ProfileResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message,omitempty"`
	Data    *models.PregnancyProfile `json:"data"`
}
