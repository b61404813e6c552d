package models

import "time"

type MoodEntry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_mood_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_mood_user_date"`
	Mood      string    `gorm:"not null"`
	Symptoms  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WaterEntry struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_water_user_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_water_user_date"`
	DrankWater bool      `gorm:"not null;default:false"`
	Liters     float64   `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type NutritionEntry struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_nutrition_user_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_nutrition_user_date"`
	AteIronRich bool      `gorm:"not null;default:false"`
	AteHealthy  bool      `gorm:"not null;default:false"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SelfCareActivity struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index"`
	Date            time.Time `gorm:"type:date;not null"`
	ActivityType    string    `gorm:"not null"`
	DurationMinutes int       `gorm:"not null;default:0"`
	Notes           string
	CreatedAt       time.Time
}

type FavoriteTip struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	TipText   string `gorm:"not null"`
	Category  string `gorm:"not null;default:general"`
	CreatedAt time.Time
}
