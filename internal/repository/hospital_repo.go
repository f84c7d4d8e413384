package repository

import (
	"github.com/sanjaiduresh/Niral-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// Create inserts a new hospital. The name uniqueIndex enforces global
// name uniqueness.
func (r *HospitalRepository) Create(hospital *models.Hospital) error {
	return translate(r.db.Create(hospital).Error)
}

// FindAll retrieves all hospitals ordered by name
func (r *HospitalRepository) FindAll() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Order("name ASC").Find(&hospitals).Error
	return hospitals, translate(err)
}

// FindByID retrieves a hospital by primary key
func (r *HospitalRepository) FindByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := r.db.First(&hospital, id).Error; err != nil {
		return nil, translate(err)
	}
	return &hospital, nil
}

// FindByName retrieves a hospital by its unique name
func (r *HospitalRepository) FindByName(name string) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := r.db.Where("name = ?", name).First(&hospital).Error; err != nil {
		return nil, translate(err)
	}
	return &hospital, nil
}

// Update persists all fields of an existing hospital
func (r *HospitalRepository) Update(hospital *models.Hospital) error {
	return translate(r.db.Save(hospital).Error)
}
