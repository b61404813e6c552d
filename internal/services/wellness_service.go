package services

import (
	"errors"
	"time"

	"github.com/junipershade/petal/internal/models"
)

const dailyWaterTargetLiters = 2.0

var ErrInvalidWellnessInput = errors.New("invalid wellness input")

type WellnessStore interface {
	FindMoodByDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error)
	CreateMood(entry *models.MoodEntry) error
	SaveMood(entry *models.MoodEntry) error
	ListMoodsSince(userID uint, from time.Time) ([]models.MoodEntry, error)
	FindWaterByDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.WaterEntry, bool, error)
	CreateWater(entry *models.WaterEntry) error
	SaveWater(entry *models.WaterEntry) error
	ListWaterInRange(userID uint, from time.Time, toEnd time.Time) ([]models.WaterEntry, error)
	FindNutritionByDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.NutritionEntry, bool, error)
	CreateNutrition(entry *models.NutritionEntry) error
	SaveNutrition(entry *models.NutritionEntry) error
	ListNutritionInRange(userID uint, from time.Time, toEnd time.Time) ([]models.NutritionEntry, error)
	CreateSelfCare(entry *models.SelfCareActivity) error
	ListSelfCareSince(userID uint, from time.Time) ([]models.SelfCareActivity, error)
}

type WellnessService struct {
	store    WellnessStore
	location *time.Location
}

func NewWellnessService(store WellnessStore, location *time.Location) *WellnessService {
	if location == nil {
		location = time.UTC
	}
	return &WellnessService{store: store, location: location}
}

// UpsertMood replaces the mood entry for (user, day), creating it on first
// write. Replace semantics: both mood and symptoms take the new values.
func (service *WellnessService) UpsertMood(userID uint, day time.Time, mood string, symptoms string) (models.MoodEntry, error) {
	if mood == "" {
		return models.MoodEntry{}, ErrInvalidWellnessInput
	}

	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.store.FindMoodByDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.MoodEntry{}, err
	}
	if found {
		entry.Mood = mood
		entry.Symptoms = symptoms
		return entry, service.store.SaveMood(&entry)
	}

	entry = models.MoodEntry{
		UserID:   userID,
		Date:     dayStart,
		Mood:     mood,
		Symptoms: symptoms,
	}
	return entry, service.store.CreateMood(&entry)
}

func (service *WellnessService) MoodForDay(userID uint, day time.Time) (models.MoodEntry, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.store.FindMoodByDayRange(userID, dayStart, dayEnd)
}

func (service *WellnessService) UpsertWater(userID uint, day time.Time, drankWater bool, liters float64) (models.WaterEntry, error) {
	if liters < 0 {
		return models.WaterEntry{}, ErrInvalidWellnessInput
	}

	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.store.FindWaterByDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.WaterEntry{}, err
	}
	if found {
		entry.DrankWater = drankWater
		entry.Liters = liters
		return entry, service.store.SaveWater(&entry)
	}

	entry = models.WaterEntry{
		UserID:     userID,
		Date:       dayStart,
		DrankWater: drankWater,
		Liters:     liters,
	}
	return entry, service.store.CreateWater(&entry)
}

func (service *WellnessService) UpsertNutrition(userID uint, day time.Time, ateIronRich bool, ateHealthy bool, notes string) (models.NutritionEntry, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.store.FindNutritionByDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.NutritionEntry{}, err
	}
	if found {
		entry.AteIronRich = ateIronRich
		entry.AteHealthy = ateHealthy
		entry.Notes = notes
		return entry, service.store.SaveNutrition(&entry)
	}

	entry = models.NutritionEntry{
		UserID:      userID,
		Date:        dayStart,
		AteIronRich: ateIronRich,
		AteHealthy:  ateHealthy,
		Notes:       notes,
	}
	return entry, service.store.CreateNutrition(&entry)
}

// AddSelfCare appends a self-care activity; unlike the daily trackers these
// are not keyed by day and never replace earlier entries.
func (service *WellnessService) AddSelfCare(userID uint, day time.Time, activityType string, durationMinutes int, notes string) (models.SelfCareActivity, error) {
	if activityType == "" || durationMinutes < 0 {
		return models.SelfCareActivity{}, ErrInvalidWellnessInput
	}

	dayStart, _ := DayRange(day, service.location)
	entry := models.SelfCareActivity{
		UserID:          userID,
		Date:            dayStart,
		ActivityType:    activityType,
		DurationMinutes: durationMinutes,
		Notes:           notes,
	}
	return entry, service.store.CreateSelfCare(&entry)
}

func (service *WellnessService) RecentSelfCare(userID uint, today time.Time, days int) ([]models.SelfCareActivity, error) {
	dayStart, _ := DayRange(today, service.location)
	return service.store.ListSelfCareSince(userID, dayStart.AddDate(0, 0, -days))
}

func (service *WellnessService) MoodHistory(userID uint, today time.Time, days int) ([]models.MoodEntry, error) {
	dayStart, _ := DayRange(today, service.location)
	return service.store.ListMoodsSince(userID, dayStart.AddDate(0, 0, -days))
}

// WaterStats summarizes the current Monday-based week of water tracking
// against a 2 L/day target.
type WaterStats struct {
	TotalDays     int     `json:"total_days"`
	DaysWithWater int     `json:"days_with_water"`
	TotalLiters   float64 `json:"total_liters"`
	TargetLiters  float64 `json:"target_liters"`
	Percentage    float64 `json:"percentage"`
}

func (service *WellnessService) WeeklyWaterStats(userID uint, today time.Time) (WaterStats, error) {
	weekStart, weekEnd := service.weekBounds(today)
	entries, err := service.store.ListWaterInRange(userID, weekStart, weekEnd)
	if err != nil {
		return WaterStats{}, err
	}

	stats := WaterStats{
		TotalDays:    7,
		TargetLiters: 7 * dailyWaterTargetLiters,
	}
	for _, entry := range entries {
		if entry.DrankWater {
			stats.DaysWithWater++
		}
		stats.TotalLiters += entry.Liters
	}
	stats.Percentage = float64(stats.DaysWithWater) / float64(stats.TotalDays) * 100
	return stats, nil
}

// NutritionStats summarizes the current Monday-based week of nutrition
// tracking.
type NutritionStats struct {
	TotalDays         int     `json:"total_days"`
	DaysWithIron      int     `json:"days_with_iron"`
	DaysHealthy       int     `json:"days_healthy"`
	IronPercentage    float64 `json:"iron_percentage"`
	HealthyPercentage float64 `json:"healthy_percentage"`
}

func (service *WellnessService) WeeklyNutritionStats(userID uint, today time.Time) (NutritionStats, error) {
	weekStart, weekEnd := service.weekBounds(today)
	entries, err := service.store.ListNutritionInRange(userID, weekStart, weekEnd)
	if err != nil {
		return NutritionStats{}, err
	}

	stats := NutritionStats{TotalDays: 7}
	for _, entry := range entries {
		if entry.AteIronRich {
			stats.DaysWithIron++
		}
		if entry.AteHealthy {
			stats.DaysHealthy++
		}
	}
	stats.IronPercentage = float64(stats.DaysWithIron) / float64(stats.TotalDays) * 100
	stats.HealthyPercentage = float64(stats.DaysHealthy) / float64(stats.TotalDays) * 100
	return stats, nil
}

// weekBounds returns [monday, next monday) for the week containing today.
func (service *WellnessService) weekBounds(today time.Time) (time.Time, time.Time) {
	day := DateAtLocation(today, service.location)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	weekStart := day.AddDate(0, 0, -sinceMonday)
	return weekStart, weekStart.AddDate(0, 0, 7)
}
