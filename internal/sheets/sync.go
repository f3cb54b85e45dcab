package sheets

import (
	"context"
	"fmt"
	"log"
)

// Sync pulls the sheet, converts it and rewrites the fallback JSON
// document. Returns the number of projects written.
func Sync(ctx context.Context, client *Client, jsonPath string) (int, error) {
	rows, err := client.Rows(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch sheet: %w", err)
	}

	projects := Convert(rows)
	if err := WriteJSON(jsonPath, projects); err != nil {
		return 0, err
	}

	log.Printf("[sheets] synced %d projects to %s", len(projects), jsonPath)
	return len(projects), nil
}
