// Package sheets syncs the project collection from the owner's
// spreadsheet into the flat-file content storage the site serves from.
package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/nothingsolutions/portfolio-backend/config"
)

// Client reads raw sheet rows either from a published CSV export or,
// when a spreadsheet ID is configured, through the Sheets API with
// application default credentials.
type Client struct {
	csvURL     string
	sheetID    string
	readRange  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg config.SheetsConfig) *Client {
	return &Client{
		csvURL:    cfg.CSVURL,
		sheetID:   cfg.SheetID,
		readRange: cfg.ReadRange,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(4), 8),
	}
}

// Rows fetches the sheet as raw rows, header row first. The API path
// wins when both sources are configured.
func (c *Client) Rows(ctx context.Context) ([][]string, error) {
	if c.sheetID != "" {
		return c.rowsFromAPI(ctx)
	}
	if c.csvURL != "" {
		return c.rowsFromCSV(ctx)
	}
	return nil, errors.New("no sheet source configured (SHEET_ID or SHEETS_CSV_URL)")
}

func (c *Client) rowsFromCSV(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.csvURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet CSV: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sheet CSV: status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse sheet CSV: %w", err)
	}
	return rows, nil
}

func (c *Client) rowsFromAPI(ctx context.Context) ([][]string, error) {
	creds, _ := google.FindDefaultCredentials(ctx, sheetsapi.SpreadsheetsReadonlyScope)
	var opts []option.ClientOption
	if creds != nil && creds.JSON != nil {
		opts = append(opts, option.WithCredentialsJSON(creds.JSON))
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets.NewService: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(c.sheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("Spreadsheets.Values.Get(%s): %w", c.sheetID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
