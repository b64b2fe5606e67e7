package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nigelkyalo/mamacare-backend/internal/dto"
	"github.com/nigelkyalo/mamacare-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired   = errors.New("email is required")
	ErrProfileNotFound = errors.New("no pregnancy profile found")
)

// ProfileService maps a user id to at most one pregnancy profile.
// Uniqueness is find-or-replace semantics, not a store constraint:
// concurrent saves for the same user are last-writer-wins, which the
// domain (one user editing their own profile) tolerates.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetLatest returns the most recently created profile for the user.
func (s *ProfileService) GetLatest(userID string) (*models.PregnancyProfile, error) {
	var profile models.PregnancyProfile
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}

// Upsert replaces the user's profile in full, or creates it. The
// second return reports creation. CreatedAt survives replaces;
// UpdatedAt is refreshed either way.
func (s *ProfileService) Upsert(userID string, req *dto.ProfileRequest) (*models.PregnancyProfile, bool, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, false, ErrEmailRequired
	}

	var existing models.PregnancyProfile
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").First(&existing).Error

	if err == nil {
		applyFields(&existing, req)
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, false, fmt.Errorf("failed to update profile: %w", err)
		}
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up profile: %w", err)
	}

	profile := models.PregnancyProfile{
		ID:     uuid.New(),
		UserID: userID,
	}
	applyFields(&profile, req)
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, true, nil
}

func applyFields(p *models.PregnancyProfile, req *dto.ProfileRequest) {
	p.FirstName = req.FirstName
	p.LastName = req.LastName
	p.Email = req.Email
	p.Phone = req.Phone
	p.Age = req.Age
	p.CalculationMethod = req.CalculationMethod
	p.DueDate = req.DueDate
	p.LastMenstrualPeriod = req.LastMenstrualPeriod
	p.PregnancyNumber = req.PregnancyNumber
	p.Location = req.Location
	p.Hospital = req.Hospital
	p.HealthConditions = marshalJSON(conditionsOrEmpty(req.HealthConditions))
	p.Language = req.Language
	p.Reminders = marshalJSON(req.Reminders)
	p.CommunicationMethod = req.CommunicationMethod
	p.AgreedToTerms = req.AgreedToTerms
}

func conditionsOrEmpty(conditions []string) []string {
	if conditions == nil {
		return []string{}
	}
	return conditions
}

func marshalJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(b)
}
