package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// CycleSettings holds the per-user cycle configuration. One row per user,
// created or replaced by the setup flow and read-only everywhere else.
type CycleSettings struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"uniqueIndex;not null"`
	CycleLength  int       `gorm:"not null;default:28"`
	PeriodLength int       `gorm:"not null;default:5"`
	StartDate    time.Time `gorm:"type:date;not null"`
	CreatedAt    time.Time
}

// PeriodLog is one entry of the append-only period history. ActualStartDate
// stays nil until the user confirms the period really started.
type PeriodLog struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index"`
	ExpectedDate    time.Time `gorm:"type:date;not null"`
	ActualStartDate *time.Time `gorm:"type:date"`
	DelayDays       int        `gorm:"not null;default:0"`
	Duration        *int
	Notes           string
	CreatedAt       time.Time
}

// ActivePeriod marks an ongoing, confirmed period. At most one row per user
// may have IsActive set; the cycle service enforces that on every swap.
type ActivePeriod struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index"`
	StartDate       time.Time `gorm:"type:date;not null"`
	ExpectedEndDate time.Time `gorm:"type:date;not null"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time
}
