package db

import (
	"errors"
	"time"

	"github.com/junipershade/petal/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) FindSettings(userID uint) (models.CycleSettings, bool, error) {
	var settings models.CycleSettings
	err := repo.database.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CycleSettings{}, false, nil
	}
	if err != nil {
		return models.CycleSettings{}, false, err
	}
	return settings, true, nil
}

// UpsertSettings replaces the user's cycle configuration, creating the row on
// first setup.
func (repo *CycleRepository) UpsertSettings(settings *models.CycleSettings) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.CycleSettings
		err := tx.Where("user_id = ?", settings.UserID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(settings).Error
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&existing).Updates(map[string]any{
			"cycle_length":  settings.CycleLength,
			"period_length": settings.PeriodLength,
			"start_date":    settings.StartDate,
		}).Error; err != nil {
			return err
		}
		settings.ID = existing.ID
		return nil
	})
}

// LatestStartedPeriodLog returns the most recent confirmed period, ordered by
// actual start date then ID. Every prediction and status call goes through
// this one query so all call sites agree on what "latest" means.
func (repo *CycleRepository) LatestStartedPeriodLog(userID uint) (models.PeriodLog, bool, error) {
	var entry models.PeriodLog
	result := repo.database.
		Where("user_id = ? AND actual_start_date IS NOT NULL", userID).
		Order("actual_start_date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.PeriodLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *CycleRepository) ListPeriodLogsSince(userID uint, from time.Time) ([]models.PeriodLog, error) {
	logs := make([]models.PeriodLog, 0)
	if err := repo.database.
		Where("user_id = ? AND expected_date >= ?", userID, from).
		Order("expected_date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *CycleRepository) ListRecentPeriodLogs(userID uint, limit int) ([]models.PeriodLog, error) {
	logs := make([]models.PeriodLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("expected_date DESC, id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *CycleRepository) FindPeriodLogByID(userID uint, logID uint) (models.PeriodLog, bool, error) {
	var entry models.PeriodLog
	err := repo.database.Where("user_id = ? AND id = ?", userID, logID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PeriodLog{}, false, nil
	}
	if err != nil {
		return models.PeriodLog{}, false, err
	}
	return entry, true, nil
}

func (repo *CycleRepository) CreatePeriodLog(entry *models.PeriodLog) error {
	return repo.database.Create(entry).Error
}

func (repo *CycleRepository) SavePeriodLog(entry *models.PeriodLog) error {
	return repo.database.Save(entry).Error
}

func (repo *CycleRepository) FindActivePeriod(userID uint) (models.ActivePeriod, bool, error) {
	var period models.ActivePeriod
	result := repo.database.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("id DESC").
		Limit(1).
		Find(&period)
	if result.Error != nil {
		return models.ActivePeriod{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ActivePeriod{}, false, nil
	}
	return period, true, nil
}

// DeactivateActivePeriod clears the active flag. Safe to call repeatedly on
// an already-deactivated row.
func (repo *CycleRepository) DeactivateActivePeriod(periodID uint) error {
	return repo.database.Model(&models.ActivePeriod{}).
		Where("id = ?", periodID).
		Update("is_active", false).Error
}

// StartPeriod appends the confirmed log entry and swaps the active period in
// one transaction: any previously active row is deactivated before the new
// one is created, so the at-most-one-active invariant holds at every commit.
func (repo *CycleRepository) StartPeriod(entry *models.PeriodLog, period *models.ActivePeriod) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ActivePeriod{}).
			Where("user_id = ? AND is_active = ?", period.UserID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(period).Error
	})
}

// CloseActivePeriod finishes the user's active period: the period log whose
// actual start falls on the active row's start day picks up the duration and
// notes (skipped silently when no such log exists), then the row is
// deactivated. Returns false without touching anything when nothing is active.
func (repo *CycleRepository) CloseActivePeriod(userID uint, duration *int, notes string) (models.ActivePeriod, bool, error) {
	var closed models.ActivePeriod
	found := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var period models.ActivePeriod
		result := tx.
			Where("user_id = ? AND is_active = ?", userID, true).
			Order("id DESC").
			Limit(1).
			Find(&period)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		found = true

		dayStart := period.StartDate
		dayEnd := dayStart.AddDate(0, 0, 1)
		var entry models.PeriodLog
		logResult := tx.
			Where("user_id = ? AND actual_start_date >= ? AND actual_start_date < ?", userID, dayStart, dayEnd).
			Order("id DESC").
			Limit(1).
			Find(&entry)
		if logResult.Error != nil {
			return logResult.Error
		}
		if logResult.RowsAffected > 0 {
			if err := tx.Model(&entry).Updates(map[string]any{
				"duration": duration,
				"notes":    notes,
			}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&period).Update("is_active", false).Error; err != nil {
			return err
		}
		closed = period
		closed.IsActive = false
		return nil
	})
	if err != nil {
		return models.ActivePeriod{}, false, err
	}
	return closed, found, nil
}
