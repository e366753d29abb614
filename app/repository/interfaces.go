package repository

import (
	"github.com/vistorialabs/laudoforge/app/models"
	"gorm.io/gorm"
)

// ReportRepository defines the interface for report-related database operations
type ReportRepository interface {
	Create(report *models.Report) error
	GetByID(id uint64) (*models.Report, error)
	GetByUUID(uuid string) (*models.Report, error)
	Update(report *models.Report) error
	Delete(id uint64) error
	List(offset, limit int) ([]models.Report, error)
	ListByKind(kind string, offset, limit int) ([]models.Report, error)
	Count() (int64, error)
	CountByKind(kind string) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Report ReportRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Report: NewReportRepository(db),
	}
}
