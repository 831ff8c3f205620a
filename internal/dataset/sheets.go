package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"caredash/internal/core"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// SheetsSource reads the dataset from a Google spreadsheet. The first row of
// the read range is the header; authentication uses Service Account
// credentials from the environment.
type SheetsSource struct {
	spreadsheetID string
	readRange     string
}

func NewSheetsSource(spreadsheetID, readRange string) *SheetsSource {
	return &SheetsSource{spreadsheetID: spreadsheetID, readRange: readRange}
}

func (s *SheetsSource) Load(ctx context.Context) (core.Table, error) {
	svc, err := newSheetsService(ctx)
	if err != nil {
		return core.Table{}, fmt.Errorf("sheets service: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return core.Table{}, fmt.Errorf("read range %s: %w", s.readRange, err)
	}
	if len(resp.Values) == 0 {
		return core.Table{}, fmt.Errorf("range %s of spreadsheet %s is empty", s.readRange, s.spreadsheetID)
	}

	header := make([]string, len(resp.Values[0]))
	for i, v := range resp.Values[0] {
		header[i] = cellString(v)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return core.Table{}, fmt.Errorf("spreadsheet %s: %w", s.spreadsheetID, err)
	}

	var records []core.Record
	for _, raw := range resp.Values[1:] {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = cellString(v)
		}
		records = append(records, coerceRecord(rowCell(idx, row)))
	}

	table := core.NewTable(records)
	logLoad(ctx, "sheets", table)
	return table, nil
}

// newSheetsService initializes a read-only Sheets service using Service
// Account credentials. Uses GOOGLE_SERVICE_ACCOUNT_JSON,
// GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS; falls back
// to Application Default Credentials when none is set.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		data, err := os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = data
	default:
		return gsheet.NewService(ctx, goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	}

	if len(credentialsJSON) == 0 {
		return nil, errors.New("empty service account credentials")
	}
	return gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
}

func cellString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
