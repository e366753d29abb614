package repository

import (
	"github.com/vistorialabs/laudoforge/app/models"
	"gorm.io/gorm"
)

// reportRepository implements the ReportRepository interface
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new report in the database
func (r *reportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a report by its ID
func (r *reportRepository) GetByID(id uint64) (*models.Report, error) {
	var report models.Report
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByUUID retrieves a report by its public UUID
func (r *reportRepository) GetByUUID(uuid string) (*models.Report, error) {
	return models.FindReportByUUID(r.db, uuid)
}

// Update persists the full report row. Concurrent editors overwrite each
// other wholesale; the last write wins.
func (r *reportRepository) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

// Delete soft deletes a report by its ID
func (r *reportRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Report{}, id).Error
}

// List retrieves reports with pagination, newest first
func (r *reportRepository) List(offset, limit int) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&reports).Error
	return reports, err
}

// ListByKind retrieves reports of one kind with pagination, newest first
func (r *reportRepository) ListByKind(kind string, offset, limit int) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Where("kind = ?", kind).Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&reports).Error
	return reports, err
}

// Count returns the total number of reports
func (r *reportRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Count(&count).Error
	return count, err
}

// CountByKind returns the number of reports of one kind
func (r *reportRepository) CountByKind(kind string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Report{}).Where("kind = ?", kind).Count(&count).Error
	return count, err
}
