package sheets

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nothingsolutions/portfolio-backend/internal/projects/domain"
)

// Expected sheet columns (case-insensitive): Image, Item, Client,
// Category, Role, Date, Program, Supplier, Notes, Image 2, Image 3,
// Status. Extra columns are ignored.

var driveSharePattern = regexp.MustCompile(`drive\.google\.com/file/d/([A-Za-z0-9_-]+)`)

// Convert maps raw sheet rows (header row first) onto projects. Rows
// whose cells are all blank are dropped; IDs are assigned positionally
// when the sheet carries no ID column.
func Convert(rows [][]string) []domain.Project {
	if len(rows) < 2 {
		return []domain.Project{}
	}

	col := headerIndex(rows[0])
	projects := make([]domain.Project, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}

		images := make([]string, 0, 3)
		for _, key := range []string{"image", "image 2", "image 3"} {
			if img := strings.TrimSpace(cell(row, col, key)); img != "" {
				images = append(images, directImageURL(img))
			}
		}

		id := strings.TrimSpace(cell(row, col, "id"))
		if id == "" {
			id = strconv.Itoa(len(projects) + 1)
		}

		status := strings.TrimSpace(cell(row, col, "status"))
		if status == "" {
			status = domain.StatusPublic
		}

		projects = append(projects, domain.Project{
			ID:       id,
			Images:   images,
			Item:     strings.TrimSpace(cell(row, col, "item")),
			Client:   strings.TrimSpace(cell(row, col, "client")),
			Category: strings.TrimSpace(cell(row, col, "category")),
			Role:     strings.TrimSpace(cell(row, col, "role")),
			Date:     strings.TrimSpace(cell(row, col, "date")),
			Program:  strings.TrimSpace(cell(row, col, "program")),
			Supplier: strings.TrimSpace(cell(row, col, "supplier")),
			Notes:    strings.TrimSpace(cell(row, col, "notes")),
			Status:   status,
		})
	}

	return projects
}

func headerIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

func cell(row []string, col map[string]int, key string) string {
	i, ok := col[key]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// directImageURL rewrites a Google Drive share link into the direct
// image URL the gallery can load; anything else passes through.
func directImageURL(url string) string {
	if m := driveSharePattern.FindStringSubmatch(url); m != nil {
		return "https://drive.google.com/uc?id=" + m[1]
	}
	return url
}
