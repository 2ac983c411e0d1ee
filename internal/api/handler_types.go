package api

import (
	"time"

	"github.com/terraincognita07/habithero/internal/db"
	"github.com/terraincognita07/habithero/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db            *gorm.DB
	location      *time.Location
	repositories  *db.Repositories
	exportService *services.ExportService
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	repositories := db.NewRepositories(database)
	return &Handler{
		db:            database,
		location:      location,
		repositories:  repositories,
		exportService: services.NewExportService(repositories.Habits, location),
	}
}
