package main

import (
	"context"
	"log"

	httpadapter "cert-roadmap/internal/adapter/http"
	repo "cert-roadmap/internal/adapter/repository"
	"cert-roadmap/internal/catalog"
	"cert-roadmap/internal/config"
	"cert-roadmap/internal/infrastructure/migration"
	"cert-roadmap/internal/usecase"
	infra "cert-roadmap/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// infra setup; without a database the service keeps running on the
	// in-memory store, matching the degrade-don't-crash posture everywhere
	// else in this system.
	var store repo.Store
	pool, err := infra.NewStorePool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Printf("warning: roadmap DB not available, using in-memory store: %v", err)
		store = repo.NewMemoryStore()
	} else {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		store = repo.NewPostgresStore(pool)
	}

	storage := repo.NewService(store, cfg.DataVersion, cfg.BackupLimit)
	if err := storage.Init(ctx); err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	cat := catalog.New()
	generator := usecase.NewGenerator(cat, storage)
	if roadmap := storage.LoadRoadmap(ctx); roadmap != nil {
		generator.SetCurrent(roadmap)
	}

	app := fiber.New()
	h := httpadapter.NewHandler(storage, generator, cat)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
