package store

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

// Values is the subset of the Sheets values API the store relies on.
type Values interface {
	Get(ctx context.Context, rng string) ([][]interface{}, error)
	Append(ctx context.Context, rng string, rows [][]interface{}) error
	Update(ctx context.Context, rng string, rows [][]interface{}) error
	Check(ctx context.Context) (string, error)
}

type SheetsValues struct {
	svc           *sheets.Service
	spreadsheetID string
}

func NewSheetsValues(svc *sheets.Service, spreadsheetID string) *SheetsValues {
	return &SheetsValues{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}
}

func (v *SheetsValues) Get(ctx context.Context, rng string) ([][]interface{}, error) {
	resp, err := v.svc.Spreadsheets.Values.Get(v.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (v *SheetsValues) Append(ctx context.Context, rng string, rows [][]interface{}) error {
	_, err := v.svc.Spreadsheets.Values.Append(v.spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (v *SheetsValues) Update(ctx context.Context, rng string, rows [][]interface{}) error {
	_, err := v.svc.Spreadsheets.Values.Update(v.spreadsheetID, rng, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

// Check fetches the spreadsheet metadata and returns its title.
func (v *SheetsValues) Check(ctx context.Context) (string, error) {
	resp, err := v.svc.Spreadsheets.Get(v.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if resp.Properties == nil {
		return "", nil
	}
	return resp.Properties.Title, nil
}
