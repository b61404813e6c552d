package services

import (
	"time"

	"github.com/junipershade/petal/internal/models"
)

const (
	lutealPhaseDays       = 14
	ovulationWindowRadius = 2
)

// PredictNextPeriod projects the next expected period start. The projection
// anchors on the latest confirmed period start when one exists, otherwise on
// the configured reference start date, and adds one average cycle length.
// It deliberately does not chain forward past today: when periods go
// unconfirmed for months the prediction stays in the past and the status
// machine reports an ever-growing delay instead of silently resetting.
func PredictNextPeriod(settings *models.CycleSettings, latest *models.PeriodLog) (time.Time, bool) {
	if settings == nil {
		return time.Time{}, false
	}

	anchor := settings.StartDate
	if latest != nil && latest.ActualStartDate != nil {
		anchor = *latest.ActualStartDate
	}
	return DateAtLocation(anchor, anchor.Location()).AddDate(0, 0, settings.CycleLength), true
}

// PredictOvulationWindow derives the fertile window from the next predicted
// period: the midpoint sits fourteen days before it and the window spans two
// days either side, inclusive.
func PredictOvulationWindow(settings *models.CycleSettings, latest *models.PeriodLog) (time.Time, time.Time, bool) {
	next, ok := PredictNextPeriod(settings, latest)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	midpoint := next.AddDate(0, 0, -lutealPhaseDays)
	return midpoint.AddDate(0, 0, -ovulationWindowRadius), midpoint.AddDate(0, 0, ovulationWindowRadius), true
}
