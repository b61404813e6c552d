package db

import (
	"time"

	"github.com/junipershade/petal/internal/models"
	"gorm.io/gorm"
)

type WellnessRepository struct {
	database *gorm.DB
}

func NewWellnessRepository(database *gorm.DB) *WellnessRepository {
	return &WellnessRepository{database: database}
}

func (repo *WellnessRepository) FindMoodByDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error) {
	var entry models.MoodEntry
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *WellnessRepository) CreateMood(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *WellnessRepository) SaveMood(entry *models.MoodEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *WellnessRepository) ListMoodsSince(userID uint, from time.Time) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WellnessRepository) FindWaterByDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.WaterEntry, bool, error) {
	var entry models.WaterEntry
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WaterEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WaterEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *WellnessRepository) CreateWater(entry *models.WaterEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *WellnessRepository) SaveWater(entry *models.WaterEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *WellnessRepository) ListWaterInRange(userID uint, from time.Time, toEnd time.Time) ([]models.WaterEntry, error) {
	entries := make([]models.WaterEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, toEnd).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WellnessRepository) FindNutritionByDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.NutritionEntry, bool, error) {
	var entry models.NutritionEntry
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.NutritionEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.NutritionEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *WellnessRepository) CreateNutrition(entry *models.NutritionEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *WellnessRepository) SaveNutrition(entry *models.NutritionEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *WellnessRepository) ListNutritionInRange(userID uint, from time.Time, toEnd time.Time) ([]models.NutritionEntry, error) {
	entries := make([]models.NutritionEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, toEnd).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WellnessRepository) CreateSelfCare(entry *models.SelfCareActivity) error {
	return repo.database.Create(entry).Error
}

func (repo *WellnessRepository) ListSelfCareSince(userID uint, from time.Time) ([]models.SelfCareActivity, error) {
	entries := make([]models.SelfCareActivity, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WellnessRepository) FindFavoriteByText(userID uint, tipText string) (models.FavoriteTip, bool, error) {
	var tip models.FavoriteTip
	result := repo.database.
		Where("user_id = ? AND tip_text = ?", userID, tipText).
		Limit(1).
		Find(&tip)
	if result.Error != nil {
		return models.FavoriteTip{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FavoriteTip{}, false, nil
	}
	return tip, true, nil
}

func (repo *WellnessRepository) CreateFavorite(tip *models.FavoriteTip) error {
	return repo.database.Create(tip).Error
}

func (repo *WellnessRepository) ListFavorites(userID uint) ([]models.FavoriteTip, error) {
	tips := make([]models.FavoriteTip, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

// DeleteFavorite removes the tip and reports whether a row was deleted.
func (repo *WellnessRepository) DeleteFavorite(userID uint, tipID uint) (bool, error) {
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, tipID).
		Delete(&models.FavoriteTip{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
