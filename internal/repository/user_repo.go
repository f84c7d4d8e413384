package repository

import (
	"github.com/sanjaiduresh/Niral-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The email uniqueIndex makes this the
// authoritative duplicate-email check.
func (r *UserRepository) Create(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

// FindByEmail finds a user by email regardless of role
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByEmailAndRole finds a user matching both email and role. The same
// email under a different role is a different identity and does not match.
func (r *UserRepository) FindByEmailAndRole(email, role string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ? AND role = ?", email, role).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByID finds a user by primary key
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindDoctorsByDepartment retrieves all doctors assigned to a department
func (r *UserRepository) FindDoctorsByDepartment(departmentID uint) ([]models.User, error) {
	var doctors []models.User
	err := r.db.
		Where("department_id = ? AND role = ?", departmentID, models.RoleDoctor).
		Order("name ASC").
		Find(&doctors).Error
	return doctors, translate(err)
}
