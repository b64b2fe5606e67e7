package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Calculation methods for the pregnancy timeline. Exactly one of
// DueDate / LastMenstrualPeriod is populated, selected by the method.
const (
	MethodDueDate             = "dueDate"
	MethodLastMenstrualPeriod = "lastMenstrualPeriod"
)

// PregnancyProfile is the single tracking document owned by a user.
// Submissions replace the whole row; there is no partial patch.
type PregnancyProfile struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              string         `gorm:"size:64;not null;index" json:"userId"`
	FirstName           string         `gorm:"size:100" json:"firstName"`
	LastName            string         `gorm:"size:100" json:"lastName"`
	Email               string         `gorm:"size:255;not null" json:"email"`
	Phone               string         `gorm:"size:30" json:"phone"`
	Age                 string         `gorm:"size:20" json:"age"`
	CalculationMethod   string         `gorm:"size:30" json:"calculationMethod"`
	DueDate             string         `gorm:"size:10" json:"dueDate,omitempty"`
	LastMenstrualPeriod string         `gorm:"size:10" json:"lastMenstrualPeriod,omitempty"`
	PregnancyNumber     string         `gorm:"size:20" json:"pregnancyNumber"`
	Location            string         `gorm:"size:100" json:"location"`
	Hospital            string         `gorm:"size:255" json:"hospital"`
	HealthConditions    datatypes.JSON `gorm:"type:jsonb" json:"healthConditions"`
	Language            string         `gorm:"size:30" json:"language"`
	Reminders           datatypes.JSON `gorm:"type:jsonb" json:"reminders"`
	CommunicationMethod string         `gorm:"size:30" json:"communicationMethod"`
	AgreedToTerms       bool           `json:"agreedToTerms"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}
