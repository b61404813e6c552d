package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/junipershade/petal/internal/models"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "petal-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func seedTestUser(t *testing.T, database *gorm.DB) uint {
	t.Helper()

	user := models.User{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "irrelevant",
		CreatedAt:    time.Now(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return parsed
}

func TestUpsertSettingsReplacesExistingRow(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)
	userID := seedTestUser(t, database)
	repo := NewCycleRepository(database)

	first := models.CycleSettings{UserID: userID, CycleLength: 28, PeriodLength: 5, StartDate: day(t, "2026-02-01")}
	if err := repo.UpsertSettings(&first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := models.CycleSettings{UserID: userID, CycleLength: 30, PeriodLength: 6, StartDate: day(t, "2026-02-10")}
	if err := repo.UpsertSettings(&second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected the existing row reused, got ids %d and %d", first.ID, second.ID)
	}

	settings, found, err := repo.FindSettings(userID)
	if err != nil {
		t.Fatalf("find settings: %v", err)
	}
	if !found {
		t.Fatal("expected settings to exist")
	}
	if settings.CycleLength != 30 || settings.PeriodLength != 6 {
		t.Fatalf("expected replaced values, got %+v", settings)
	}

	var count int64
	if err := database.Model(&models.CycleSettings{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count settings: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single settings row, got %d", count)
	}
}

func TestLatestStartedPeriodLogOrdering(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)
	userID := seedTestUser(t, database)
	repo := NewCycleRepository(database)

	early := day(t, "2026-01-05")
	late := day(t, "2026-02-03")
	logs := []models.PeriodLog{
		{UserID: userID, ExpectedDate: day(t, "2026-02-01"), ActualStartDate: &late},
		{UserID: userID, ExpectedDate: day(t, "2026-01-04"), ActualStartDate: &early},
		{UserID: userID, ExpectedDate: day(t, "2026-03-01")},
	}
	for i := range logs {
		if err := repo.CreatePeriodLog(&logs[i]); err != nil {
			t.Fatalf("create log %d: %v", i, err)
		}
	}

	latest, found, err := repo.LatestStartedPeriodLog(userID)
	if err != nil {
		t.Fatalf("latest started: %v", err)
	}
	if !found {
		t.Fatal("expected a confirmed log")
	}
	if latest.ActualStartDate == nil || !latest.ActualStartDate.Equal(late) {
		t.Fatalf("expected latest actual start %s, got %v", late.Format("2006-01-02"), latest.ActualStartDate)
	}
}

func TestLatestStartedPeriodLogIgnoresUnconfirmed(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)
	userID := seedTestUser(t, database)
	repo := NewCycleRepository(database)

	entry := models.PeriodLog{UserID: userID, ExpectedDate: day(t, "2026-03-01")}
	if err := repo.CreatePeriodLog(&entry); err != nil {
		t.Fatalf("create log: %v", err)
	}

	if _, found, err := repo.LatestStartedPeriodLog(userID); err != nil {
		t.Fatalf("latest started: %v", err)
	} else if found {
		t.Fatal("expected no confirmed log")
	}
}

func TestLatestStartedPeriodLogPrefersNewerRowOnSameDay(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)
	userID := seedTestUser(t, database)
	repo := NewCycleRepository(database)

	sameDay := day(t, "2026-02-03")
	first := models.PeriodLog{UserID: userID, ExpectedDate: day(t, "2026-02-01"), ActualStartDate: &sameDay}
	second := models.PeriodLog{UserID: userID, ExpectedDate: day(t, "2026-02-02"), ActualStartDate: &sameDay}
	if err := repo.CreatePeriodLog(&first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := repo.CreatePeriodLog(&second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	latest, found, err := repo.LatestStartedPeriodLog(userID)
	if err != nil {
		t.Fatalf("latest started: %v", err)
	}
	if !found || latest.ID != second.ID {
		t.Fatalf("expected the higher id to win the tie, got id %d", latest.ID)
	}
}

func TestStartPeriodKeepsSingleActiveRow(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)
	userID := seedTestUser(t, database)
	repo := NewCycleRepository(database)

	for i, start := range []string{"2026-02-01", "2026-03-01", "2026-03-29"} {
		startDate := day(t, start)
		entry := models.PeriodLog{UserID: userID, ExpectedDate: startDate, ActualStartDate: &startDate}
		period := models.ActivePeriod{
			UserID:          userID,
			StartDate:       startDate,
			ExpectedEndDate: startDate.AddDate(0, 0, 4),
			IsActive:        true,
		}
		if err := repo.StartPeriod(&entry, &period); err != nil {
			t.Fatalf("start period %d: %v", i, err)
		}
	}

	var activeCount int64
	if err := database.Model(&models.ActivePeriod{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&activeCount).Error; err != nil {
		t.Fatalf("count active: %v", err)
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly one active period, got %d", activeCount)
	}

	active, found, err := repo.FindActivePeriod(userID)
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if !found {
		t.Fatal("expected an active period")
	}
	if got := active.StartDate.Format("2006-01-02"); got != "2026-03-29" {
		t.Fatalf("expected latest start active, got %s", got)
	}
}

func TestCloseActivePeriodCopiesDurationOntoLog(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)
	userID := seedTestUser(t, database)
	repo := NewCycleRepository(database)

	startDate := day(t, "2026-03-01")
	entry := models.PeriodLog{UserID: userID, ExpectedDate: startDate, ActualStartDate: &startDate}
	period := models.ActivePeriod{
		UserID:          userID,
		StartDate:       startDate,
		ExpectedEndDate: startDate.AddDate(0, 0, 4),
		IsActive:        true,
	}
	if err := repo.StartPeriod(&entry, &period); err != nil {
		t.Fatalf("start period: %v", err)
	}

	duration := 4
	closed, found, err := repo.CloseActivePeriod(userID, &duration, "light flow")
	if err != nil {
		t.Fatalf("close active period: %v", err)
	}
	if !found {
		t.Fatal("expected an active period to close")
	}
	if closed.IsActive {
		t.Fatal("expected the returned row deactivated")
	}

	if _, stillActive, err := repo.FindActivePeriod(userID); err != nil {
		t.Fatalf("find active: %v", err)
	} else if stillActive {
		t.Fatal("expected no active period after close")
	}

	updated, found, err := repo.FindPeriodLogByID(userID, entry.ID)
	if err != nil {
		t.Fatalf("find log: %v", err)
	}
	if !found {
		t.Fatal("expected the log to exist")
	}
	if updated.Duration == nil || *updated.Duration != 4 {
		t.Fatalf("expected duration 4 on the log, got %v", updated.Duration)
	}
	if updated.Notes != "light flow" {
		t.Fatalf("expected notes on the log, got %q", updated.Notes)
	}
}

func TestCloseActivePeriodWithoutActiveRow(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)
	userID := seedTestUser(t, database)
	repo := NewCycleRepository(database)

	if _, found, err := repo.CloseActivePeriod(userID, nil, ""); err != nil {
		t.Fatalf("close active period: %v", err)
	} else if found {
		t.Fatal("expected found=false without an active period")
	}
}

func TestDeactivateActivePeriodIsIdempotent(t *testing.T) {
	t.Parallel()

	database := newTestDatabase(t)
	userID := seedTestUser(t, database)
	repo := NewCycleRepository(database)

	startDate := day(t, "2026-03-01")
	entry := models.PeriodLog{UserID: userID, ExpectedDate: startDate, ActualStartDate: &startDate}
	period := models.ActivePeriod{
		UserID:          userID,
		StartDate:       startDate,
		ExpectedEndDate: startDate.AddDate(0, 0, 4),
		IsActive:        true,
	}
	if err := repo.StartPeriod(&entry, &period); err != nil {
		t.Fatalf("start period: %v", err)
	}

	if err := repo.DeactivateActivePeriod(period.ID); err != nil {
		t.Fatalf("first deactivate: %v", err)
	}
	if err := repo.DeactivateActivePeriod(period.ID); err != nil {
		t.Fatalf("second deactivate: %v", err)
	}

	if _, stillActive, err := repo.FindActivePeriod(userID); err != nil {
		t.Fatalf("find active: %v", err)
	} else if stillActive {
		t.Fatal("expected the period to stay deactivated")
	}
}
