package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/junipershade/petal/internal/models"
)

const (
	PhasePeriod = "period"
	PhaseCycle  = "cycle"

	OutlookDelayed  = "Delayed"
	OutlookUpcoming = "Upcoming"
	OutlookOnTrack  = "On track"
	OutlookNoData   = "No cycle data"
)

var (
	ErrNoCycleSettings = errors.New("cycle settings not configured")
	ErrNoActivePeriod  = errors.New("no active period")
)

// CycleStatus is the derived state of the user's cycle for a given day,
// consumed as-is by the dashboard and the confirmation endpoints.
type CycleStatus struct {
	Phase            string `json:"phase"`
	Day              int    `json:"day"`
	TotalDays        int    `json:"total_days"`
	Message          string `json:"message"`
	ShowConfirmation bool   `json:"show_confirmation"`
	DelayDays        int    `json:"delay_days"`
}

type CycleStore interface {
	FindSettings(userID uint) (models.CycleSettings, bool, error)
	UpsertSettings(settings *models.CycleSettings) error
	LatestStartedPeriodLog(userID uint) (models.PeriodLog, bool, error)
	ListPeriodLogsSince(userID uint, from time.Time) ([]models.PeriodLog, error)
	ListRecentPeriodLogs(userID uint, limit int) ([]models.PeriodLog, error)
	FindPeriodLogByID(userID uint, logID uint) (models.PeriodLog, bool, error)
	CreatePeriodLog(entry *models.PeriodLog) error
	SavePeriodLog(entry *models.PeriodLog) error
	FindActivePeriod(userID uint) (models.ActivePeriod, bool, error)
	DeactivateActivePeriod(periodID uint) error
	StartPeriod(entry *models.PeriodLog, period *models.ActivePeriod) error
	CloseActivePeriod(userID uint, duration *int, notes string) (models.ActivePeriod, bool, error)
}

type CycleService struct {
	store    CycleStore
	location *time.Location
}

func NewCycleService(store CycleStore, location *time.Location) *CycleService {
	if location == nil {
		location = time.UTC
	}
	return &CycleService{store: store, location: location}
}

func (service *CycleService) Settings(userID uint) (*models.CycleSettings, error) {
	settings, found, err := service.store.FindSettings(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &settings, nil
}

// SaveSettings creates or replaces the user's cycle configuration.
func (service *CycleService) SaveSettings(userID uint, cycleLength int, periodLength int, startDate time.Time) (*models.CycleSettings, error) {
	if cycleLength <= 0 || periodLength <= 0 {
		return nil, errors.New("cycle and period lengths must be positive")
	}

	settings := models.CycleSettings{
		UserID:       userID,
		CycleLength:  cycleLength,
		PeriodLength: periodLength,
		StartDate:    DateAtLocation(startDate, service.location),
	}
	if err := service.store.UpsertSettings(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// NextPeriod resolves the predicted next period start for the user, or
// ok=false when no settings exist yet.
func (service *CycleService) NextPeriod(userID uint) (time.Time, bool, error) {
	settings, latest, err := service.loadPredictionInputs(userID)
	if err != nil || settings == nil {
		return time.Time{}, false, err
	}
	next, ok := PredictNextPeriod(settings, latest)
	return next, ok, nil
}

// OvulationWindow resolves the predicted fertile window for the user.
func (service *CycleService) OvulationWindow(userID uint) (time.Time, time.Time, bool, error) {
	settings, latest, err := service.loadPredictionInputs(userID)
	if err != nil || settings == nil {
		return time.Time{}, time.Time{}, false, err
	}
	start, end, ok := PredictOvulationWindow(settings, latest)
	return start, end, ok, nil
}

// Outlook summarizes how today's date relates to the predicted next period.
func (service *CycleService) Outlook(userID uint, today time.Time) (string, error) {
	next, ok, err := service.NextPeriod(userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return OutlookNoData, nil
	}

	daysUntil := DaysBetween(DateAtLocation(today, service.location), next)
	switch {
	case daysUntil < 0:
		return OutlookDelayed, nil
	case daysUntil <= 3:
		return OutlookUpcoming, nil
	default:
		return OutlookOnTrack, nil
	}
}

// DeriveStatus computes the user's day-in-cycle status for today. It returns
// (nil, nil) when the user has not configured a cycle yet; callers branch on
// the nil and prompt setup. A lapsed active period is deactivated in passing,
// which is the one persisted side effect of this read path; repeating the
// call on an already-deactivated row changes nothing.
func (service *CycleService) DeriveStatus(userID uint, today time.Time) (*CycleStatus, error) {
	settings, latest, err := service.loadPredictionInputs(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, nil
	}

	day := DateAtLocation(today, service.location)

	active, hasActive, err := service.store.FindActivePeriod(userID)
	if err != nil {
		return nil, err
	}
	if hasActive {
		if !day.Before(active.StartDate) && !day.After(active.ExpectedEndDate) {
			periodDay := DaysBetween(active.StartDate, day) + 1
			return &CycleStatus{
				Phase:     PhasePeriod,
				Day:       periodDay,
				TotalDays: settings.PeriodLength,
				Message:   fmt.Sprintf("Day %d of Period", periodDay),
			}, nil
		}
		if day.After(active.ExpectedEndDate) {
			if err := service.store.DeactivateActivePeriod(active.ID); err != nil {
				return nil, err
			}
		}
	}

	cycleStart := settings.StartDate
	if latest != nil && latest.ActualStartDate != nil {
		cycleStart = *latest.ActualStartDate
	}
	cycleDay := DaysBetween(DateAtLocation(cycleStart, service.location), day) + 1
	if cycleDay < 1 {
		cycleDay = 1
	}

	next, _ := PredictNextPeriod(settings, latest)
	daysUntil := DaysBetween(day, next)

	status := &CycleStatus{
		Phase:     PhaseCycle,
		Day:       cycleDay,
		TotalDays: settings.CycleLength,
		Message:   fmt.Sprintf("Day %d of Cycle", cycleDay),
	}
	if daysUntil <= 0 {
		status.ShowConfirmation = true
		status.DelayDays = -daysUntil
		if status.DelayDays > 0 {
			status.Message = delayedMessage(status.DelayDays)
		}
	}
	return status, nil
}

// ConfirmPeriodStart records that the period began today: the history gains a
// confirmed log entry and the active-period flag swaps to a fresh row ending
// one average period length from today.
func (service *CycleService) ConfirmPeriodStart(userID uint, today time.Time) (*CycleStatus, error) {
	settings, latest, err := service.loadPredictionInputs(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrNoCycleSettings
	}

	day := DateAtLocation(today, service.location)

	expected := day
	delay := 0
	if next, ok := PredictNextPeriod(settings, latest); ok {
		expected = next
		if sinceExpected := DaysBetween(next, day); sinceExpected > 0 {
			delay = sinceExpected
		}
	}

	entry := models.PeriodLog{
		UserID:          userID,
		ExpectedDate:    expected,
		ActualStartDate: &day,
		DelayDays:       delay,
	}
	period := models.ActivePeriod{
		UserID:          userID,
		StartDate:       day,
		ExpectedEndDate: day.AddDate(0, 0, settings.PeriodLength-1),
		IsActive:        true,
	}
	if err := service.store.StartPeriod(&entry, &period); err != nil {
		return nil, err
	}

	return &CycleStatus{
		Phase:     PhasePeriod,
		Day:       1,
		TotalDays: settings.PeriodLength,
		Message:   "Day 1 of Period",
	}, nil
}

// ConfirmPeriodDelayed acknowledges a "not started yet" answer. Nothing is
// persisted; the caller gets the current delay and a supportive message.
func (service *CycleService) ConfirmPeriodDelayed(userID uint, today time.Time) (int, string, error) {
	settings, latest, err := service.loadPredictionInputs(userID)
	if err != nil {
		return 0, "", err
	}
	if settings == nil {
		return 0, "", ErrNoCycleSettings
	}

	delay := 0
	if next, ok := PredictNextPeriod(settings, latest); ok {
		if sinceExpected := DaysBetween(next, DateAtLocation(today, service.location)); sinceExpected > 0 {
			delay = sinceExpected
		}
	}
	return delay, SupportiveMessage(delay), nil
}

// CompletePeriod closes the active period, copying duration and notes onto
// the matching history entry, and resets the status to cycle day one.
// Returns ErrNoActivePeriod, with no mutation, when nothing is active.
func (service *CycleService) CompletePeriod(userID uint, duration *int, notes string) (*CycleStatus, error) {
	settings, found, err := service.store.FindSettings(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoCycleSettings
	}

	_, closed, err := service.store.CloseActivePeriod(userID, duration, notes)
	if err != nil {
		return nil, err
	}
	if !closed {
		return nil, ErrNoActivePeriod
	}

	return &CycleStatus{
		Phase:     PhaseCycle,
		Day:       1,
		TotalDays: settings.CycleLength,
		Message:   "Day 1 of Cycle",
	}, nil
}

func (service *CycleService) loadPredictionInputs(userID uint) (*models.CycleSettings, *models.PeriodLog, error) {
	settings, found, err := service.store.FindSettings(userID)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, nil
	}

	latest, hasLatest, err := service.store.LatestStartedPeriodLog(userID)
	if err != nil {
		return nil, nil, err
	}
	if !hasLatest {
		return &settings, nil, nil
	}
	return &settings, &latest, nil
}

func delayedMessage(delayDays int) string {
	if delayDays == 1 {
		return "1 Day Delayed"
	}
	return fmt.Sprintf("%d Days Delayed", delayDays)
}
