package main

import (
	"context"
	"log"

	"github.com/nothingsolutions/portfolio-backend/config"
	"github.com/nothingsolutions/portfolio-backend/internal/bootstrap"
	"github.com/nothingsolutions/portfolio-backend/internal/sheets"
	cronjob "github.com/nothingsolutions/portfolio-backend/internal/sheets/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	rdb := bootstrap.OpenRedis(cfg.Unlock.RedisAddr)

	if cfg.Sheets.Schedule != "" {
		client := sheets.NewClient(cfg.Sheets)
		scheduler := cronjob.NewScheduler(cfg.Sheets.Schedule, func(ctx context.Context) error {
			_, err := sheets.Sync(ctx, client, cfg.Content.FallbackJSON)
			return err
		})
		if err := scheduler.Start(); err != nil {
			log.Printf("Failed to start sync scheduler: %v", err)
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		Cfg:         cfg,
		Redis:       rdb,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
