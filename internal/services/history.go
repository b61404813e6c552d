package services

import (
	"errors"
	"time"

	"github.com/junipershade/petal/internal/models"
)

var ErrPeriodLogNotFound = errors.New("period log not found")

// PeriodHistory lists the user's period logs from the last `days` days,
// newest first.
func (service *CycleService) PeriodHistory(userID uint, today time.Time, days int) ([]models.PeriodLog, error) {
	dayStart, _ := DayRange(today, service.location)
	return service.store.ListPeriodLogsSince(userID, dayStart.AddDate(0, 0, -days))
}

// RecentPeriodLogs returns up to limit most recent logs for report export.
func (service *CycleService) RecentPeriodLogs(userID uint, limit int) ([]models.PeriodLog, error) {
	return service.store.ListRecentPeriodLogs(userID, limit)
}

// AddPeriodLog records a manually entered history row. The delay is derived
// from the dates and clamped at zero: an early start counts as no delay.
func (service *CycleService) AddPeriodLog(userID uint, expectedDate time.Time, actualStartDate *time.Time, duration *int, notes string) (*models.PeriodLog, error) {
	expected := DateAtLocation(expectedDate, service.location)
	entry := models.PeriodLog{
		UserID:       userID,
		ExpectedDate: expected,
		Duration:     duration,
		Notes:        notes,
	}
	if actualStartDate != nil {
		actual := DateAtLocation(*actualStartDate, service.location)
		entry.ActualStartDate = &actual
		entry.DelayDays = clampDelay(DaysBetween(expected, actual))
	}
	if err := service.store.CreatePeriodLog(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// EditPeriodLog updates an existing history row. The actual start date is
// only replaced when provided; the delay is recomputed and clamped whenever
// an actual date is set.
func (service *CycleService) EditPeriodLog(userID uint, logID uint, actualStartDate *time.Time, duration *int, notes string) (*models.PeriodLog, error) {
	entry, found, err := service.store.FindPeriodLogByID(userID, logID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPeriodLogNotFound
	}

	if actualStartDate != nil {
		actual := DateAtLocation(*actualStartDate, service.location)
		entry.ActualStartDate = &actual
		entry.DelayDays = clampDelay(DaysBetween(entry.ExpectedDate, actual))
	}
	entry.Duration = duration
	entry.Notes = notes

	if err := service.store.SavePeriodLog(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func clampDelay(days int) int {
	if days < 0 {
		return 0
	}
	return days
}
