package main

import (
	"context"
	"encoding/csv"
	"log"
	"os"

	"github.com/nothingsolutions/portfolio-backend/config"
	"github.com/nothingsolutions/portfolio-backend/internal/projects/repository"
	"github.com/nothingsolutions/portfolio-backend/internal/sheets"
)

// RunSync pulls the configured sheet and rewrites the fallback JSON.
func RunSync() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := sheets.NewClient(cfg.Sheets)
	n, err := sheets.Sync(context.Background(), client, cfg.Content.FallbackJSON)
	if err != nil {
		log.Fatalf("sync: %v", err)
	}
	log.Printf("synced %d projects", n)
}

// RunConvert converts a locally exported CSV into the fallback JSON.
func RunConvert(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: worker convert <csvPath>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("open CSV: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("parse CSV: %v", err)
	}

	projects := sheets.Convert(rows)
	if err := sheets.WriteJSON(cfg.Content.FallbackJSON, projects); err != nil {
		log.Fatalf("write JSON: %v", err)
	}
	log.Printf("wrote %d projects to %s", len(projects), cfg.Content.FallbackJSON)
}

// RunMigrate expands the fallback JSON into one frontmatter file per
// project, the layout the CMS edits.
func RunMigrate() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Empty content dir forces the store onto the JSON fallback.
	store := repository.NewFileStore("", cfg.Content.FallbackJSON)
	projects, err := store.All(context.Background())
	if err != nil {
		log.Fatalf("load projects: %v", err)
	}
	if len(projects) == 0 {
		log.Fatal("no projects in fallback JSON, nothing to migrate")
	}

	if err := sheets.WriteMarkdown(cfg.Content.Dir, projects); err != nil {
		log.Fatalf("write markdown: %v", err)
	}
	log.Printf("migrated %d projects into %s", len(projects), cfg.Content.Dir)
}
