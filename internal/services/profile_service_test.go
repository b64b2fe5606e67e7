package services

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/nigelkyalo/mamacare-backend/internal/dto"
	"github.com/nigelkyalo/mamacare-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PregnancyProfile{}))
	return db
}

func fullProfile() *dto.ProfileRequest {
	return &dto.ProfileRequest{
		FirstName:           "Amina",
		LastName:            "Odhiambo",
		Email:               "amina@example.com",
		Phone:               "+254700000000",
		Age:                 "26-30",
		CalculationMethod:   models.MethodLastMenstrualPeriod,
		LastMenstrualPeriod: "2024-01-01",
		PregnancyNumber:     "first",
		Location:            "nairobi",
		Hospital:            "Kenyatta National Hospital",
		HealthConditions:    []string{"Diabetes"},
		Language:            "swahili",
		Reminders: dto.ReminderSettings{
			Appointments: true,
			Medications:  true,
			Tips:         false,
			Emergency:    true,
		},
		CommunicationMethod: "sms",
		AgreedToTerms:       true,
	}
}

func TestProfileService_Upsert_EmailRequired(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newTestDB(t))

	req := fullProfile()
	req.Email = "   "
	_, _, err := svc.Upsert("user-1", req)
	require.ErrorIs(t, err, ErrEmailRequired)
}

func TestProfileService_CreateThenGetLatest(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newTestDB(t))

	saved, created, err := svc.Upsert("user-1", fullProfile())
	require.NoError(t, err)
	assert.True(t, created)

	got, err := svc.GetLatest("user-1")
	require.NoError(t, err)

	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "amina@example.com", got.Email)
	assert.Equal(t, models.MethodLastMenstrualPeriod, got.CalculationMethod)
	assert.Equal(t, "2024-01-01", got.LastMenstrualPeriod)
	assert.Empty(t, got.DueDate)

	var conditions []string
	require.NoError(t, json.Unmarshal(got.HealthConditions, &conditions))
	assert.Equal(t, []string{"Diabetes"}, conditions)

	var reminders dto.ReminderSettings
	require.NoError(t, json.Unmarshal(got.Reminders, &reminders))
	assert.True(t, reminders.Appointments)
	assert.False(t, reminders.Tips)
}

func TestProfileService_GetLatest_Idempotent(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newTestDB(t))

	_, _, err := svc.Upsert("user-1", fullProfile())
	require.NoError(t, err)

	first, err := svc.GetLatest("user-1")
	require.NoError(t, err)
	second, err := svc.GetLatest("user-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProfileService_GetLatest_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newTestDB(t))

	_, err := svc.GetLatest("nobody")
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileService_Upsert_ReplacesInPlace(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newTestDB(t))

	original, created, err := svc.Upsert("user-1", fullProfile())
	require.NoError(t, err)
	require.True(t, created)

	time.Sleep(20 * time.Millisecond)

	resubmit := fullProfile()
	resubmit.CalculationMethod = models.MethodDueDate
	resubmit.DueDate = "2024-10-07"
	resubmit.LastMenstrualPeriod = ""
	resubmit.Hospital = "Aga Khan University Hospital"
	resubmit.HealthConditions = nil

	updated, created, err := svc.Upsert("user-1", resubmit)
	require.NoError(t, err)
	assert.False(t, created)

	// Same row: id and creation time survive, everything else is the
	// latest submission.
	assert.Equal(t, original.ID, updated.ID)
	assert.WithinDuration(t, original.CreatedAt, updated.CreatedAt, time.Millisecond)
	assert.True(t, updated.UpdatedAt.After(original.UpdatedAt))
	assert.Equal(t, models.MethodDueDate, updated.CalculationMethod)
	assert.Equal(t, "2024-10-07", updated.DueDate)
	assert.Empty(t, updated.LastMenstrualPeriod)
	assert.Equal(t, "Aga Khan University Hospital", updated.Hospital)

	var conditions []string
	require.NoError(t, json.Unmarshal(updated.HealthConditions, &conditions))
	assert.Empty(t, conditions)

	// Still exactly one profile for the user.
	var count int64
	require.NoError(t, svc.db.Model(&models.PregnancyProfile{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfileService_ProfilesAreScopedToUser(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newTestDB(t))

	_, _, err := svc.Upsert("user-1", fullProfile())
	require.NoError(t, err)

	other := fullProfile()
	other.Email = "grace@example.com"
	_, created, err := svc.Upsert("user-2", other)
	require.NoError(t, err)
	assert.True(t, created)

	mine, err := svc.GetLatest("user-1")
	require.NoError(t, err)
	assert.Equal(t, "amina@example.com", mine.Email)

	theirs, err := svc.GetLatest("user-2")
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", theirs.Email)
}
