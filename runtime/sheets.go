package runtime

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Sheets struct {
	*sheets.Service
	SpreadsheetID string
}

// serviceAccountJSON prefers the inline JSON (as set on hosted platforms) and
// falls back to the credentials file.
func serviceAccountJSON(config *SheetsConfig) ([]byte, error) {
	if config.ServiceAccount != "" {
		return []byte(config.ServiceAccount), nil
	}
	if config.CredentialsPath == "" {
		return nil, fmt.Errorf("no google sheets credentials configured")
	}
	data, err := os.ReadFile(config.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	return data, nil
}

func initSheets(ctx context.Context, config *SheetsConfig) (*Sheets, error) {
	data, err := serviceAccountJSON(config)
	if err != nil {
		return nil, err
	}

	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Sheets{
		Service:       svc,
		SpreadsheetID: config.SpreadsheetID,
	}, nil
}
