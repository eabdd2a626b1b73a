package app

import (
	"log"

	"corpportal/internal/changefeed"
	"corpportal/internal/config"
	"corpportal/internal/database"
	"corpportal/internal/repository"
	"corpportal/internal/service"
	"corpportal/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, *changefeed.Hub) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	hub := changefeed.NewHub()

	services := service.NewService(repo, cfg, minioClient, hub)

	return db, repo, services, hub
}
