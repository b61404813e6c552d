package activity

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const appendTimeout = 8 * time.Second

// SheetsLogger appends one row per event to a Google Sheets worksheet. The
// client is constructed once for the process lifetime and injected wherever
// events are emitted. Every append runs in its own goroutine with a bounded
// timeout; failures are logged locally and dropped.
type SheetsLogger struct {
	service       *sheets.Service
	spreadsheetID string
	worksheet     string
	log           *logrus.Logger
}

func NewSheetsLogger(ctx context.Context, credentialsFile string, spreadsheetID string, worksheet string, log *logrus.Logger) (*SheetsLogger, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	return &SheetsLogger{
		service:       service,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
		log:           log,
	}, nil
}

func (logger *SheetsLogger) Log(event Event) {
	go logger.append(event)
}

func (logger *SheetsLogger) append(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	row := []any{
		event.ID,
		event.OccurredAt.Format("2006-01-02 15:04:05"),
		event.Action,
		strconv.FormatUint(uint64(event.UserID), 10),
		event.Email,
		event.Name,
		event.OriginAddress,
	}
	values := &sheets.ValueRange{Values: [][]any{row}}

	_, err := logger.service.Spreadsheets.Values.
		Append(logger.spreadsheetID, logger.worksheet, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		logger.log.WithError(err).WithField("action", event.Action).Warn("activity log append failed")
	}
}
