package repository

import (
	"github.com/sanjaiduresh/Niral-backend/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create inserts a new department. The compound (name, hospital_id)
// uniqueIndex enforces per-hospital name uniqueness.
func (r *DepartmentRepository) Create(department *models.Department) error {
	return translate(r.db.Create(department).Error)
}

// FindAll retrieves all departments
func (r *DepartmentRepository) FindAll() ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Order("name ASC").Find(&departments).Error
	return departments, translate(err)
}

// FindByID retrieves a department by primary key
func (r *DepartmentRepository) FindByID(id uint) (*models.Department, error) {
	var department models.Department
	if err := r.db.First(&department, id).Error; err != nil {
		return nil, translate(err)
	}
	return &department, nil
}

// FindByIDAndHospital retrieves a department by id constrained to a
// hospital. A department id from another hospital does not match.
func (r *DepartmentRepository) FindByIDAndHospital(id, hospitalID uint) (*models.Department, error) {
	var department models.Department
	err := r.db.Where("id = ? AND hospital_id = ?", id, hospitalID).First(&department).Error
	if err != nil {
		return nil, translate(err)
	}
	return &department, nil
}

// FindByNameAndHospital retrieves a department by name within a hospital
func (r *DepartmentRepository) FindByNameAndHospital(name string, hospitalID uint) (*models.Department, error) {
	var department models.Department
	err := r.db.Where("name = ? AND hospital_id = ?", name, hospitalID).First(&department).Error
	if err != nil {
		return nil, translate(err)
	}
	return &department, nil
}

// FindByHospital retrieves all departments of a hospital
func (r *DepartmentRepository) FindByHospital(hospitalID uint) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Where("hospital_id = ?", hospitalID).Order("name ASC").Find(&departments).Error
	return departments, translate(err)
}

// Update persists all fields of an existing department
func (r *DepartmentRepository) Update(department *models.Department) error {
	return translate(r.db.Save(department).Error)
}
